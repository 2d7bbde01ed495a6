package validator

import (
	"fmt"
	"iter"
)

// ArrayValidator checks a sequence of T and each of its elements.
type ArrayValidator[T any] struct {
	base
	item        Validator[T]
	minLength   *int
	maxLength   *int
	exactLength *int
}

// Array returns an ArrayValidator for []any checking every element with item.
// It panics with ErrNilItemValidator if item is nil.
func Array(item Validator[any]) *ArrayValidator[any] {
	return ArrayOf(item)
}

// ArrayOf returns an ArrayValidator for []T, for item validators of a static
// type such as nested arrays:
//
//	validator.ArrayOf[[]any](validator.Array(validator.Number()))
//
// It panics with ErrNilItemValidator if item is nil.
func ArrayOf[T any](item Validator[T]) *ArrayValidator[T] {
	if item == nil {
		panic(ErrNilItemValidator)
	}
	return &ArrayValidator[T]{item: item}
}

func (a *ArrayValidator[T]) MinLength(n int) *ArrayValidator[T] {
	a.minLength = &n
	return a
}

func (a *ArrayValidator[T]) MaxLength(n int) *ArrayValidator[T] {
	a.maxLength = &n
	return a
}

// ExactLength requires exactly n elements. When set, MinLength and MaxLength
// are ignored.
func (a *ArrayValidator[T]) ExactLength(n int) *ArrayValidator[T] {
	a.exactLength = &n
	return a
}

func (a *ArrayValidator[T]) NotEmpty() *ArrayValidator[T] {
	return a.MinLength(1)
}

// Validate checks the slice. A nil slice is treated as absent.
func (a *ArrayValidator[T]) Validate(value []T) Result {
	if value == nil {
		return a.failure("Array cannot be null")
	}
	return a.validateItems(value)
}

// ValidateSeq materializes seq once and validates the collected elements.
// A nil sequence is treated as absent.
func (a *ArrayValidator[T]) ValidateSeq(seq iter.Seq[T]) Result {
	if seq == nil {
		return a.failure("Array cannot be null")
	}
	items := make([]T, 0)
	for item := range seq {
		items = append(items, item)
	}
	return a.validateItems(items)
}

func (a *ArrayValidator[T]) validateItems(items []T) Result {
	var errs []string
	length := len(items)

	if a.exactLength != nil {
		if length != *a.exactLength {
			errs = append(errs, a.errorMessage(fmt.Sprintf("Array must contain exactly %d elements", *a.exactLength)))
		}
	} else {
		if a.minLength != nil && length < *a.minLength {
			errs = append(errs, a.errorMessage(fmt.Sprintf("Array must contain at least %d elements", *a.minLength)))
		}
		if a.maxLength != nil && length > *a.maxLength {
			errs = append(errs, a.errorMessage(fmt.Sprintf("Array must contain no more than %d elements", *a.maxLength)))
		}
	}

	for i, item := range items {
		res := a.item.Validate(item)
		if !res.IsValid() {
			errs = append(errs, res.Prefixed(fmt.Sprintf("Element at index %d: ", i)).errors...)
		}
	}

	if len(errs) == 0 {
		return Success()
	}
	return Failure(errs...)
}

func (a *ArrayValidator[T]) Optional() Validator[[]T] {
	return Optional[[]T](a)
}

func (a *ArrayValidator[T]) WithMessage(message string) Validator[[]T] {
	a.setMessage(message)
	return a
}
