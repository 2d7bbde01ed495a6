package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// BooleanValidator checks values coerced to bool.
type BooleanValidator struct {
	base
	required *bool
}

// Boolean returns a BooleanValidator accepting either value.
func Boolean() *BooleanValidator {
	return &BooleanValidator{}
}

func (b *BooleanValidator) MustBeTrue() *BooleanValidator {
	v := true
	b.required = &v
	return b
}

func (b *BooleanValidator) MustBeFalse() *BooleanValidator {
	v := false
	b.required = &v
	return b
}

func (b *BooleanValidator) Validate(value any) Result {
	v, ok := indirect(value)
	if !ok {
		return b.failure("Value cannot be null")
	}

	flag, ok := coerceBool(v)
	if !ok {
		return b.failure(fmt.Sprintf("Value must be a boolean type, but got %s", typeName(v)))
	}

	if b.required != nil && flag != *b.required {
		return b.failure("Value must be " + strconv.FormatBool(*b.required))
	}

	return Success()
}

func (b *BooleanValidator) Optional() Validator[any] {
	return Optional[any](b)
}

func (b *BooleanValidator) WithMessage(message string) Validator[any] {
	b.setMessage(message)
	return b
}

// coerceBool accepts bool kinds, the strings "true" and "false" in any case,
// and the integers 0 and 1.
func coerceBool(v any) (bool, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), true
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		switch {
		case strings.EqualFold(s, "true"):
			return true, true
		case strings.EqualFold(s, "false"):
			return false, true
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch rv.Int() {
		case 0:
			return false, true
		case 1:
			return true, true
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		switch rv.Uint() {
		case 0:
			return false, true
		case 1:
			return true, true
		}
	}
	return false, false
}
