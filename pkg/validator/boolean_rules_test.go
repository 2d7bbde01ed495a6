package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

func TestBooleanValidator(t *testing.T) {
	t.Parallel()

	t.Run("accepts booleans and their encodings", func(t *testing.T) {
		v := validator.Boolean()
		for _, value := range []any{true, false, "true", "FALSE", " True ", 0, 1, uint8(1)} {
			assert.True(t, v.Validate(value).IsValid(), "expected %#v to be accepted", value)
		}
	})

	t.Run("rejects other values", func(t *testing.T) {
		v := validator.Boolean()
		assert.Equal(t, []string{"Value must be a boolean type, but got int"}, v.Validate(2).Errors())
		assert.Equal(t, []string{"Value must be a boolean type, but got string"}, v.Validate("yes").Errors())
		assert.Equal(t, []string{"Value must be a boolean type, but got float64"}, v.Validate(1.0).Errors())
	})

	t.Run("nil fails", func(t *testing.T) {
		assert.Equal(t, []string{"Value cannot be null"}, validator.Boolean().Validate(nil).Errors())
	})

	t.Run("must be true", func(t *testing.T) {
		v := validator.Boolean().MustBeTrue()
		assert.True(t, v.Validate(true).IsValid())
		assert.True(t, v.Validate(1).IsValid())
		assert.Equal(t, []string{"Value must be true"}, v.Validate(false).Errors())
	})

	t.Run("must be false", func(t *testing.T) {
		v := validator.Boolean().MustBeFalse()
		assert.True(t, v.Validate("false").IsValid())
		assert.Equal(t, []string{"Value must be false"}, v.Validate("true").Errors())
	})

	t.Run("coercion failure wins over the required value", func(t *testing.T) {
		res := validator.Boolean().MustBeTrue().Validate("maybe")
		assert.Equal(t, []string{"Value must be a boolean type, but got string"}, res.Errors())
	})

	t.Run("custom message", func(t *testing.T) {
		res := validator.Boolean().MustBeTrue().WithMessage("You must accept the terms").Validate(false)
		assert.Equal(t, []string{"You must accept the terms"}, res.Errors())
	})
}
