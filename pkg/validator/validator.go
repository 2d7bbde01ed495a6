package validator

import (
	"fmt"
	"reflect"
)

// Validator checks values of type T.
//
// Configuration methods on concrete validators mutate the receiver and return
// it for chaining. A validator must be fully configured before its first
// Validate call; after that it may be shared freely because validation never
// mutates configuration.
type Validator[T any] interface {
	// Validate checks value and reports every failure it finds.
	Validate(value T) Result
	// Optional returns a validator that treats an absent value as valid.
	Optional() Validator[T]
	// WithMessage replaces every message this validator emits with message.
	WithMessage(message string) Validator[T]
}

// base holds the state shared by every concrete validator.
type base struct {
	message string
	custom  bool
}

func (b *base) setMessage(message string) {
	b.message = message
	b.custom = true
}

// errorMessage returns the override message if one was set, otherwise def.
func (b *base) errorMessage(def string) string {
	if b.custom {
		return b.message
	}
	return def
}

// failure is a shorthand for Failure(errorMessage(def)).
func (b *base) failure(def string) Result {
	return Failure(b.errorMessage(def))
}

// Optional wraps v so that absent values succeed without invoking v.
func Optional[T any](v Validator[T]) Validator[T] {
	if v == nil {
		panic(ErrNilValidator)
	}
	if o, ok := v.(*optionalValidator[T]); ok {
		return o
	}
	return &optionalValidator[T]{inner: v}
}

type optionalValidator[T any] struct {
	inner Validator[T]
}

func (o *optionalValidator[T]) Validate(value T) Result {
	if isAbsent(value) {
		return Success()
	}
	return o.inner.Validate(value)
}

func (o *optionalValidator[T]) Optional() Validator[T] {
	return o
}

func (o *optionalValidator[T]) WithMessage(message string) Validator[T] {
	o.inner.WithMessage(message)
	return o
}

// Any returns a validator that accepts every value, including absent ones.
// It marks fields that are intentionally left unchecked.
func Any[T any]() Validator[T] {
	return &anyValidator[T]{}
}

type anyValidator[T any] struct {
	base
}

func (a *anyValidator[T]) Validate(T) Result {
	return Success()
}

func (a *anyValidator[T]) Optional() Validator[T] {
	return Optional[T](a)
}

func (a *anyValidator[T]) WithMessage(message string) Validator[T] {
	a.setMessage(message)
	return a
}

// Typed adapts a validator of a static type to one accepting values of
// unknown type, so it can be registered as an object property.
//
// An absent value is forwarded as the zero T. A value of type T is passed
// through. When T is a slice type, any slice or array whose elements are
// assignable to T's element type is converted first; nil interface elements
// become the element's zero value. Every other value fails with
// "Expected type <T> but got <actual>".
func Typed[T any](v Validator[T]) Validator[any] {
	if v == nil {
		panic(ErrNilValidator)
	}
	return &typedValidator[T]{inner: v}
}

type typedValidator[T any] struct {
	inner Validator[T]
}

func (t *typedValidator[T]) Validate(value any) Result {
	if isAbsent(value) {
		var zero T
		return t.inner.Validate(zero)
	}
	if typed, ok := value.(T); ok {
		return t.inner.Validate(typed)
	}
	if converted, ok := convertSlice[T](value); ok {
		return t.inner.Validate(converted)
	}
	return Failure(fmt.Sprintf("Expected type %s but got %s", reflect.TypeFor[T](), typeName(value)))
}

func (t *typedValidator[T]) Optional() Validator[any] {
	return &typedValidator[T]{inner: t.inner.Optional()}
}

func (t *typedValidator[T]) WithMessage(message string) Validator[any] {
	t.inner.WithMessage(message)
	return t
}

// convertSlice copies a slice or array value into a new T when T is a slice
// type and every element is assignable to its element type.
func convertSlice[T any](value any) (T, bool) {
	var zero T
	target := reflect.TypeFor[T]()
	if target.Kind() != reflect.Slice {
		return zero, false
	}

	src := reflect.ValueOf(value)
	if src.Kind() != reflect.Slice && src.Kind() != reflect.Array {
		return zero, false
	}

	elem := target.Elem()
	out := reflect.MakeSlice(target, src.Len(), src.Len())
	for i := 0; i < src.Len(); i++ {
		item := src.Index(i)
		switch {
		case item.Type().AssignableTo(elem):
			out.Index(i).Set(item)
		case item.Kind() == reflect.Interface && item.IsNil():
			// left as the zero element
		case item.Kind() == reflect.Interface && item.Elem().Type().AssignableTo(elem):
			out.Index(i).Set(item.Elem())
		default:
			return zero, false
		}
	}
	return out.Interface().(T), true
}

// isAbsent reports whether value is nil or a nil reference of any kind.
func isAbsent(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// indirect dereferences pointers until it reaches a non-pointer value.
// The boolean is false when the result is absent (see isAbsent).
func indirect(value any) (any, bool) {
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	out := rv.Interface()
	return out, !isAbsent(out)
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}
