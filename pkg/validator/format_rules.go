package validator

import (
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	formatOnce     sync.Once
	formatInstance *playground.Validate
)

// formats returns the shared format checker. playground.Validate caches
// parsed tags and is safe for concurrent use once created.
func formats() *playground.Validate {
	formatOnce.Do(func() {
		formatInstance = playground.New(playground.WithRequiredStructEnabled())
	})
	return formatInstance
}

func checkFormat(value, tag string) bool {
	return formats().Var(value, tag) == nil
}

// Email requires a syntactically valid e-mail address.
func (s *StringValidator) Email() *StringValidator {
	return s.Custom(func(v string) bool {
		return checkFormat(v, "required,email")
	})
}

// URL requires an absolute URL with a scheme.
func (s *StringValidator) URL() *StringValidator {
	return s.Custom(func(v string) bool {
		return checkFormat(v, "required,url")
	})
}

// UUID requires a UUID in the canonical 36 character form.
func (s *StringValidator) UUID() *StringValidator {
	return s.Custom(func(v string) bool {
		if strings.TrimSpace(v) == "" {
			return false
		}

		// Fast rejection before parsing: uuid.Parse also accepts braced and urn forms.
		if len(v) != 36 || v[8] != '-' || v[13] != '-' || v[18] != '-' || v[23] != '-' {
			return false
		}

		_, err := uuid.Parse(v)
		return err == nil
	})
}
