package validator_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

func TestStringValidator_Email(t *testing.T) {
	t.Parallel()

	v := validator.String().Email()

	for _, email := range []string{"user@example.com", "test.email@domain.org", "user+tag@example.co.uk"} {
		assert.True(t, v.Validate(email).IsValid(), "expected %q to be valid", email)
	}

	for _, email := range []string{"", "invalid-email", "@example.com", "user@", "user name@example.com"} {
		res := v.Validate(email)
		assert.Equal(t, []string{"String failed custom validation"}, res.Errors(), "expected %q to be invalid", email)
	}
}

func TestStringValidator_URL(t *testing.T) {
	t.Parallel()

	v := validator.String().URL()
	assert.True(t, v.Validate("https://example.com/path?q=1").IsValid())
	assert.True(t, v.Validate("http://localhost:8080").IsValid())
	assert.False(t, v.Validate("example").IsValid())
	assert.False(t, v.Validate("").IsValid())
}

func TestStringValidator_UUID(t *testing.T) {
	t.Parallel()

	v := validator.String().UUID()
	assert.True(t, v.Validate(uuid.NewString()).IsValid())
	assert.True(t, v.Validate(uuid.New()).IsValid(), "uuid.UUID is coerced through its String method")

	for _, s := range []string{
		"",
		"not-a-uuid",
		"{" + uuid.NewString() + "}",
		"urn:uuid:" + uuid.NewString(),
		"zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz",
	} {
		assert.False(t, v.Validate(s).IsValid(), "expected %q to be invalid", s)
	}
}

func TestStringValidator_FormatsCombine(t *testing.T) {
	t.Parallel()

	res := validator.String().MaxLength(5).Email().Validate("not-an-email")
	assert.Equal(t, []string{
		"String must be no more than 5 characters long",
		"String failed custom validation",
	}, res.Errors())
}
