package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// integerTolerance is the largest fractional part still treated as a whole number.
const integerTolerance = 1e-9

type bound struct {
	value     float64
	inclusive bool
}

// NumberValidator checks numeric values as 64-bit floats.
// NaN and infinities are always rejected, whatever the configured bounds.
type NumberValidator struct {
	base
	min    *bound
	max    *bound
	checks []func(float64) bool
}

// Number returns a NumberValidator with no rules.
func Number() *NumberValidator {
	return &NumberValidator{}
}

// Min requires values greater than or equal to v.
func (n *NumberValidator) Min(v float64) *NumberValidator {
	n.min = &bound{value: v, inclusive: true}
	return n
}

// GreaterThan requires values strictly greater than v.
func (n *NumberValidator) GreaterThan(v float64) *NumberValidator {
	n.min = &bound{value: v}
	return n
}

// Max requires values less than or equal to v.
func (n *NumberValidator) Max(v float64) *NumberValidator {
	n.max = &bound{value: v, inclusive: true}
	return n
}

// LessThan requires values strictly less than v.
func (n *NumberValidator) LessThan(v float64) *NumberValidator {
	n.max = &bound{value: v}
	return n
}

// Custom registers a predicate. Only the first failing predicate is reported.
func (n *NumberValidator) Custom(fn func(float64) bool) *NumberValidator {
	if fn == nil {
		panic(ErrNilPredicate)
	}
	n.checks = append(n.checks, fn)
	return n
}

func (n *NumberValidator) Positive() *NumberValidator {
	return n.Custom(func(v float64) bool { return v > 0 })
}

func (n *NumberValidator) Negative() *NumberValidator {
	return n.Custom(func(v float64) bool { return v < 0 })
}

// Integer requires a value without a fractional part.
func (n *NumberValidator) Integer() *NumberValidator {
	return n.Custom(func(v float64) bool {
		frac := math.Abs(v - math.Trunc(v))
		return frac < integerTolerance || 1-frac < integerTolerance
	})
}

func (n *NumberValidator) Validate(value any) Result {
	v, ok := indirect(value)
	if !ok {
		return n.failure("Value cannot be null")
	}

	num, ok := coerceFloat(v)
	if !ok {
		return n.failure(fmt.Sprintf("Value must be a numeric type, but got %s", typeName(v)))
	}

	var errs []string

	if n.min != nil {
		switch {
		case n.min.inclusive && num < n.min.value:
			errs = append(errs, n.errorMessage("Value must be greater than or equal to "+formatFloat(n.min.value)))
		case !n.min.inclusive && num <= n.min.value:
			errs = append(errs, n.errorMessage("Value must be greater than "+formatFloat(n.min.value)))
		}
	}

	if n.max != nil {
		switch {
		case n.max.inclusive && num > n.max.value:
			errs = append(errs, n.errorMessage("Value must be less than or equal to "+formatFloat(n.max.value)))
		case !n.max.inclusive && num >= n.max.value:
			errs = append(errs, n.errorMessage("Value must be less than "+formatFloat(n.max.value)))
		}
	}

	if math.IsNaN(num) {
		errs = append(errs, n.errorMessage("Value cannot be NaN"))
	}
	if math.IsInf(num, 0) {
		errs = append(errs, n.errorMessage("Value cannot be infinite"))
	}

	for _, check := range n.checks {
		if !check(num) {
			errs = append(errs, n.errorMessage("Number failed custom validation"))
			break
		}
	}

	if len(errs) == 0 {
		return Success()
	}
	return Failure(errs...)
}

func (n *NumberValidator) Optional() Validator[any] {
	return Optional[any](n)
}

func (n *NumberValidator) WithMessage(message string) Validator[any] {
	n.setMessage(message)
	return n
}

// coerceFloat converts any integer or float kind, or a json.Number, to float64.
func coerceFloat(v any) (float64, bool) {
	if num, ok := v.(json.Number); ok {
		f, err := num.Float64()
		return f, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
