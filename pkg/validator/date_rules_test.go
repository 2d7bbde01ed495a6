package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

// Wednesday, 12 June 2024.
var now = time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC)

func fixedDate() *validator.DateValidator {
	return validator.Date().WithClock(validator.FixedClock(now))
}

func TestDateValidator_Coercion(t *testing.T) {
	t.Parallel()

	t.Run("accepts time values and pointers", func(t *testing.T) {
		v := fixedDate()
		assert.True(t, v.Validate(now).IsValid())
		assert.True(t, v.Validate(&now).IsValid())
	})

	t.Run("parses supported string layouts", func(t *testing.T) {
		v := fixedDate()
		for _, s := range []string{
			"2024-06-12",
			"2024-06-12T10:00:00Z",
			"2024-06-12T10:00:00.123456789+02:00",
			"2024-06-12T10:00:00",
			"2024-06-12 10:00:00",
			"06/12/2024",
		} {
			assert.True(t, v.Validate(s).IsValid(), "expected %q to parse", s)
		}
	})

	t.Run("rejects unparseable strings", func(t *testing.T) {
		res := fixedDate().Validate("not a date")
		assert.Equal(t, []string{"Value must be a date/time type, but got string"}, res.Errors())
	})

	t.Run("rejects other types", func(t *testing.T) {
		res := fixedDate().Validate(42)
		assert.Equal(t, []string{"Value must be a date/time type, but got int"}, res.Errors())
	})

	t.Run("nil fails", func(t *testing.T) {
		var tp *time.Time
		assert.Equal(t, []string{"Value cannot be null"}, fixedDate().Validate(nil).Errors())
		assert.Equal(t, []string{"Value cannot be null"}, fixedDate().Validate(tp).Errors())
	})

	t.Run("custom layouts replace the defaults", func(t *testing.T) {
		v := fixedDate().Layouts("02.01.2006")
		assert.True(t, v.Validate("12.06.2024").IsValid())
		assert.False(t, v.Validate("2024-06-12").IsValid())
	})

	t.Run("strings without a zone use the clock location", func(t *testing.T) {
		loc := time.FixedZone("UTC+3", 3*60*60)
		v := validator.Date().
			WithClock(validator.FixedClock(time.Date(2024, time.June, 12, 1, 0, 0, 0, loc))).
			IsToday()
		assert.True(t, v.Validate("2024-06-12 00:30:00").IsValid())
	})
}

func TestDateValidator_Range(t *testing.T) {
	t.Parallel()

	lower := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	upper := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	v := fixedDate().MinDate(lower).MaxDate(upper)

	t.Run("bounds are inclusive", func(t *testing.T) {
		assert.True(t, v.Validate(lower).IsValid())
		assert.True(t, v.Validate(upper).IsValid())
	})

	t.Run("before minimum", func(t *testing.T) {
		res := v.Validate("2023-12-31")
		assert.Equal(t, []string{"Date must be after 2024-01-01"}, res.Errors())
	})

	t.Run("after maximum", func(t *testing.T) {
		res := v.Validate("2025-01-01")
		assert.Equal(t, []string{"Date must be before 2024-12-31"}, res.Errors())
	})

	t.Run("range errors precede custom errors", func(t *testing.T) {
		res := fixedDate().MinDate(lower).IsWeekday().Validate("2023-12-30")
		assert.Equal(t, []string{
			"Date must be after 2024-01-01",
			"Date failed custom validation",
		}, res.Errors())
	})
}

func TestDateValidator_Custom(t *testing.T) {
	t.Parallel()

	t.Run("in future", func(t *testing.T) {
		v := fixedDate().InFuture()
		assert.True(t, v.Validate(now.Add(time.Minute)).IsValid())
		assert.Equal(t, []string{"Date failed custom validation"}, v.Validate(now.Add(-time.Minute)).Errors())
		assert.False(t, v.Validate(now).IsValid())
	})

	t.Run("in past", func(t *testing.T) {
		v := fixedDate().InPast()
		assert.True(t, v.Validate("2024-06-11").IsValid())
		assert.False(t, v.Validate("2024-06-13").IsValid())
	})

	t.Run("is today", func(t *testing.T) {
		v := fixedDate().IsToday()
		assert.True(t, v.Validate("2024-06-12T23:59:59Z").IsValid())
		assert.True(t, v.Validate("2024-06-12").IsValid())
		assert.False(t, v.Validate("2024-06-13").IsValid())
		assert.False(t, v.Validate("2023-06-12").IsValid())
	})

	t.Run("is weekday", func(t *testing.T) {
		v := fixedDate().IsWeekday()
		assert.True(t, v.Validate("2024-06-14").IsValid())
		assert.False(t, v.Validate("2024-06-15").IsValid())
		assert.False(t, v.Validate("2024-06-16").IsValid())
	})

	t.Run("only the first failing predicate is reported", func(t *testing.T) {
		res := fixedDate().InFuture().IsWeekday().Validate("2024-06-08")
		assert.Equal(t, []string{"Date failed custom validation"}, res.Errors())
	})

	t.Run("clock is read at evaluation time", func(t *testing.T) {
		current := now
		v := validator.Date().WithClock(validator.ClockFunc(func() time.Time { return current })).InFuture()
		target := now.Add(time.Hour)

		assert.True(t, v.Validate(target).IsValid())
		current = now.Add(2 * time.Hour)
		assert.False(t, v.Validate(target).IsValid())
	})

	t.Run("custom predicate", func(t *testing.T) {
		v := fixedDate().Custom(func(t time.Time) bool { return t.Month() == time.June })
		assert.True(t, v.Validate(now).IsValid())
		assert.False(t, v.Validate("2024-07-01").IsValid())
	})

	t.Run("system clock is the default", func(t *testing.T) {
		v := validator.Date().InPast()
		assert.True(t, v.Validate(time.Now().Add(-time.Hour)).IsValid())
		assert.False(t, v.Validate(time.Now().Add(time.Hour)).IsValid())
	})
}

func TestDateValidator_WithMessage(t *testing.T) {
	t.Parallel()

	res := fixedDate().InFuture().WithMessage("Event must be scheduled ahead").Validate("2024-01-01")
	assert.Equal(t, []string{"Event must be scheduled ahead"}, res.Errors())
}

func TestDateValidator_DefaultLayoutsAreCopied(t *testing.T) {
	v := fixedDate()

	saved := validator.DefaultDateLayouts[len(validator.DefaultDateLayouts)-1]
	validator.DefaultDateLayouts[len(validator.DefaultDateLayouts)-1] = "2006"
	t.Cleanup(func() {
		validator.DefaultDateLayouts[len(validator.DefaultDateLayouts)-1] = saved
	})

	assert.True(t, v.Validate("06/12/2024").IsValid(), "built validators keep their own layouts")
	assert.False(t, v.Validate("2024").IsValid())
}
