package main

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

var errUnknownKind = errors.New("unknown record kind")

var eventTypes = []string{"signup", "login", "logout", "purchase"}

// catalog maps record kinds to the schema their records must satisfy.
type catalog map[string]*validator.ObjectValidator

func newCatalog(clock validator.Clock) catalog {
	return catalog{
		"user":  userSchema(),
		"event": eventSchema(clock),
	}
}

func (c catalog) kinds() []string {
	return slices.Sorted(maps.Keys(c))
}

func (c catalog) lookup(kind string) (*validator.ObjectValidator, error) {
	schema, ok := c[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownKind, kind)
	}
	return schema, nil
}

func userSchema() *validator.ObjectValidator {
	address := validator.Object().
		Property("street", validator.String().MinLength(3).MaxLength(200)).
		Property("city", validator.String().MinLength(2).MaxLength(100)).
		Property("postal_code", validator.String().Pattern(`^[0-9A-Za-z -]{3,10}$`)).
		Property("country", validator.String().Pattern(`^[A-Z]{2}$`).WithMessage("country must be an ISO 3166 alpha-2 code"))

	tags := validator.Array(validator.String().MinLength(1).MaxLength(32).AlphaNumeric()).MaxLength(10)

	return validator.Object().
		Property("name", validator.String().MinLength(2).MaxLength(100)).
		Property("email", validator.String().Email().WithMessage("email must be a valid address")).
		Property("age", validator.Number().Min(0).Max(150).Integer()).
		OptionalProperty("active", validator.Boolean()).
		OptionalProperty("website", validator.String().URL()).
		OptionalProperty("tags", validator.Typed[[]any](tags)).
		OptionalProperty("address", address).
		AllowAdditionalProperties(false)
}

func eventSchema(clock validator.Clock) *validator.ObjectValidator {
	return validator.Object().
		Property("id", validator.String().UUID().WithMessage("id must be a UUID")).
		Property("type", validator.String().OneOf(eventTypes...)).
		Property("at", validator.Date().WithClock(clock).InPast().WithMessage("at must be a timestamp in the past")).
		OptionalProperty("payload", validator.Object()).
		AllowAdditionalProperties(false)
}
