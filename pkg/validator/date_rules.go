package validator

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// DefaultDateLayouts are tried in order when a date is given as a string.
var DefaultDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateTime,
	time.DateOnly,
	"01/02/2006",
}

// DateValidator checks time.Time values and parseable date strings.
type DateValidator struct {
	base
	minDate *time.Time
	maxDate *time.Time
	layouts []string
	clock   Clock
	checks  []func(time.Time) bool
}

// Date returns a DateValidator reading the system clock.
func Date() *DateValidator {
	return &DateValidator{
		layouts: slices.Clone(DefaultDateLayouts),
		clock:   SystemClock,
	}
}

// MinDate rejects values before t.
func (d *DateValidator) MinDate(t time.Time) *DateValidator {
	d.minDate = &t
	return d
}

// MaxDate rejects values after t.
func (d *DateValidator) MaxDate(t time.Time) *DateValidator {
	d.maxDate = &t
	return d
}

// Layouts replaces the layouts used to parse string input.
func (d *DateValidator) Layouts(layouts ...string) *DateValidator {
	d.layouts = slices.Clone(layouts)
	return d
}

// WithClock sets the time source read by InFuture, InPast and IsToday and
// the location used to parse strings without a zone.
func (d *DateValidator) WithClock(c Clock) *DateValidator {
	if c == nil {
		c = SystemClock
	}
	d.clock = c
	return d
}

// Custom registers a predicate. Only the first failing predicate is reported.
func (d *DateValidator) Custom(fn func(time.Time) bool) *DateValidator {
	if fn == nil {
		panic(ErrNilPredicate)
	}
	d.checks = append(d.checks, fn)
	return d
}

func (d *DateValidator) InFuture() *DateValidator {
	return d.Custom(func(t time.Time) bool {
		return t.After(d.clock.Now())
	})
}

func (d *DateValidator) InPast() *DateValidator {
	return d.Custom(func(t time.Time) bool {
		return t.Before(d.clock.Now())
	})
}

// IsToday requires the same calendar date as now, in the clock's location.
func (d *DateValidator) IsToday() *DateValidator {
	return d.Custom(func(t time.Time) bool {
		now := d.clock.Now()
		y1, m1, d1 := t.In(now.Location()).Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	})
}

func (d *DateValidator) IsWeekday() *DateValidator {
	return d.Custom(func(t time.Time) bool {
		wd := t.Weekday()
		return wd != time.Saturday && wd != time.Sunday
	})
}

func (d *DateValidator) Validate(value any) Result {
	v, ok := indirect(value)
	if !ok {
		return d.failure("Value cannot be null")
	}

	t, ok := d.coerce(v)
	if !ok {
		return d.failure(fmt.Sprintf("Value must be a date/time type, but got %s", typeName(v)))
	}

	var errs []string

	if d.minDate != nil && t.Before(*d.minDate) {
		errs = append(errs, d.errorMessage("Date must be after "+d.minDate.Format(time.DateOnly)))
	}

	if d.maxDate != nil && t.After(*d.maxDate) {
		errs = append(errs, d.errorMessage("Date must be before "+d.maxDate.Format(time.DateOnly)))
	}

	for _, check := range d.checks {
		if !check(t) {
			errs = append(errs, d.errorMessage("Date failed custom validation"))
			break
		}
	}

	if len(errs) == 0 {
		return Success()
	}
	return Failure(errs...)
}

func (d *DateValidator) Optional() Validator[any] {
	return Optional[any](d)
}

func (d *DateValidator) WithMessage(message string) Validator[any] {
	d.setMessage(message)
	return d
}

func (d *DateValidator) coerce(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		return d.parse(t)
	}
	return time.Time{}, false
}

func (d *DateValidator) parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	loc := d.clock.Now().Location()
	for _, layout := range d.layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
