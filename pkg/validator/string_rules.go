package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// StringValidator checks values coerced to text.
type StringValidator struct {
	base
	minLength *int
	maxLength *int
	pattern   *regexp.Regexp
	checks    []func(string) bool
}

// String returns a StringValidator with no rules.
func String() *StringValidator {
	return &StringValidator{}
}

func (s *StringValidator) MinLength(n int) *StringValidator {
	s.minLength = &n
	return s
}

func (s *StringValidator) MaxLength(n int) *StringValidator {
	s.maxLength = &n
	return s
}

// Pattern compiles expr and requires values to match it.
// It panics if expr is not a valid regular expression.
func (s *StringValidator) Pattern(expr string) *StringValidator {
	s.pattern = regexp.MustCompile(expr)
	return s
}

// Regexp requires values to match re.
func (s *StringValidator) Regexp(re *regexp.Regexp) *StringValidator {
	if re == nil {
		panic(ErrNilPredicate)
	}
	s.pattern = re
	return s
}

// Custom registers a predicate. Predicates run in registration order and only
// the first failing one is reported.
func (s *StringValidator) Custom(fn func(string) bool) *StringValidator {
	if fn == nil {
		panic(ErrNilPredicate)
	}
	s.checks = append(s.checks, fn)
	return s
}

// NotEmpty rejects empty and whitespace-only strings.
func (s *StringValidator) NotEmpty() *StringValidator {
	return s.Custom(func(v string) bool {
		return strings.TrimSpace(v) != ""
	})
}

// AlphaNumeric requires every character to be a letter or a digit.
func (s *StringValidator) AlphaNumeric() *StringValidator {
	return s.Custom(func(v string) bool {
		for _, r := range v {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return false
			}
		}
		return true
	})
}

// OneOf requires the value to equal one of values exactly.
func (s *StringValidator) OneOf(values ...string) *StringValidator {
	allowed := slices.Clone(values)
	return s.Custom(func(v string) bool {
		return slices.Contains(allowed, v)
	})
}

func (s *StringValidator) Validate(value any) Result {
	v, ok := indirect(value)
	if !ok {
		return s.failure("Value cannot be null")
	}

	src := v
	if _, ok := value.(fmt.Stringer); ok {
		// pointer receivers are lost once dereferenced
		src = value
	}
	str, ok := coerceString(src)
	if !ok {
		return s.failure(fmt.Sprintf("Value must be convertible to string, but got %s", typeName(v)))
	}

	var errs []string
	length := utf8.RuneCountInString(str)

	if s.minLength != nil && length < *s.minLength {
		errs = append(errs, s.errorMessage(fmt.Sprintf("String must be at least %d characters long", *s.minLength)))
	}

	if s.maxLength != nil && length > *s.maxLength {
		errs = append(errs, s.errorMessage(fmt.Sprintf("String must be no more than %d characters long", *s.maxLength)))
	}

	if s.pattern != nil && !s.pattern.MatchString(str) {
		errs = append(errs, s.errorMessage(fmt.Sprintf("String does not match required pattern: %s", s.pattern)))
	}

	for _, check := range s.checks {
		if !check(str) {
			errs = append(errs, s.errorMessage("String failed custom validation"))
			break
		}
	}

	if len(errs) == 0 {
		return Success()
	}
	return Failure(errs...)
}

func (s *StringValidator) Optional() Validator[any] {
	return Optional[any](s)
}

func (s *StringValidator) WithMessage(message string) Validator[any] {
	s.setMessage(message)
	return s
}

// coerceString renders v as text. Functions, channels and unsafe pointers
// have no meaningful textual form and are rejected.
func coerceString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case []byte:
		return string(t), true
	case fmt.Stringer:
		return t.String(), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return "", false
	}
	return fmt.Sprint(v), true
}
