// Package validator provides composable, fluent validators for strings,
// numbers, booleans, dates, arrays and objects that aggregate every failure
// into an immutable Result.
//
// A validator is built once through chained configuration calls and then
// used for any number of Validate calls. Composite validators (Array and
// Object) delegate to child validators and prefix the child messages with the
// element index or property name, so a single Result describes every problem
// found in a value graph. A registered property missing from the value is a
// failure unless it was registered with OptionalProperty.
//
// # Architecture
//
// Each source file groups one validator family (`string_rules.go`,
// `numeric_rules.go`, `date_rules.go`, `collection_rules.go`,
// `object_rules.go` ...). Core building blocks:
//   - Result: success flag derived from an ordered list of messages
//   - Validator[T]: Validate, Optional and WithMessage
//   - String, Number, Boolean, Date: primitive validators coercing untyped input
//   - Array, ArrayOf, Object: composite validators
//   - Optional, Any, Typed: wrappers
//
// The constructors String, Number, Boolean, Date, Array, Object and Any are
// the entry points; they carry no state of their own.
//
// # Usage
//
//	user := validator.Object().
//	    Property("Name", validator.String().MinLength(2).MaxLength(50)).
//	    Property("Email", validator.String().Email()).
//	    Property("Age", validator.Number().Min(0).Max(150).Integer()).
//	    Property("Tags", validator.Typed(validator.Array(validator.String().NotEmpty()).Optional())).
//	    OptionalProperty("Nickname", validator.String().MaxLength(20))
//
//	res := user.Validate(input)
//	if !res.IsValid() {
//	    for _, msg := range res.Errors() {
//	        // "Property 'Age': Value must be less than or equal to 150"
//	    }
//	}
//
// # Rule evaluation
//
// Primitive validators evaluate every bound and pattern check and report each
// failure, then run custom predicates in registration order and report only
// the first one that fails, using a generic message such as
// "String failed custom validation". WithMessage replaces every message a
// validator emits with a single caller-supplied text.
//
// # Error Handling
//
// Validation failures are data, never panics. Result.Err converts a failed
// Result into ValidationErrors, which matches ErrValidationFailed through
// errors.Is. Programming mistakes such as a nil item validator or a malformed
// pattern panic at configuration time.
//
// # Concurrency
//
// Validate never mutates configuration, so a fully configured validator may
// be shared between goroutines. Configuring a validator while it is in use is
// not supported. Object validation recurses through nested values without
// cycle detection.
package validator
