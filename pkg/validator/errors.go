package validator

import "errors"

var (
	// ErrValidationFailed is matched by every error produced from a failed Result.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNilItemValidator is raised when Array is constructed without an item validator.
	ErrNilItemValidator = errors.New("array validator requires an item validator")

	// ErrNilValidator is raised when a nil validator is registered or wrapped.
	ErrNilValidator = errors.New("validator must not be nil")

	// ErrNilPredicate is raised when a nil custom predicate is registered.
	ErrNilPredicate = errors.New("custom predicate must not be nil")
)
