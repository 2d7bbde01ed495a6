package validator

import (
	"errors"
	"strings"
)

// Result is the immutable outcome of a single Validate call.
// A Result is valid if and only if it carries no error messages.
type Result struct {
	errors []string
}

// Success returns a valid Result.
func Success() Result {
	return Result{}
}

// Failure returns an invalid Result carrying messages in the given order.
// Duplicates are preserved. A call without messages records the generic
// ErrValidationFailed text so the Result is still reported as invalid.
func Failure(messages ...string) Result {
	if len(messages) == 0 {
		return Result{errors: []string{ErrValidationFailed.Error()}}
	}
	return Result{errors: append([]string(nil), messages...)}
}

// Combine merges results into one. The combined Result is valid only if every
// input is valid; errors are concatenated in input order.
func Combine(results ...Result) Result {
	var errs []string
	for _, r := range results {
		errs = append(errs, r.errors...)
	}
	return Result{errors: errs}
}

func (r Result) IsValid() bool {
	return len(r.errors) == 0
}

// Errors returns a copy of the error messages in discovery order.
func (r Result) Errors() []string {
	if len(r.errors) == 0 {
		return []string{}
	}
	return append([]string(nil), r.errors...)
}

// Prefixed returns a copy of r with prefix prepended to every message.
func (r Result) Prefixed(prefix string) Result {
	if r.IsValid() {
		return r
	}
	errs := make([]string, len(r.errors))
	for i, msg := range r.errors {
		errs[i] = prefix + msg
	}
	return Result{errors: errs}
}

// Err converts a failed Result into ValidationErrors. It returns nil for a
// valid Result.
func (r Result) Err() error {
	if r.IsValid() {
		return nil
	}
	return ValidationErrors(r.Errors())
}

// ValidationErrors is the error form of a failed Result.
type ValidationErrors []string

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(ve, "; ")
}

// Is reports whether target is ErrValidationFailed.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// ExtractValidationErrors extracts ValidationErrors from an error chain.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
