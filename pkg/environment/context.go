package environment

import (
	"context"
	"log/slog"
	"strings"
)

// Environment represents application environment.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Names lists the canonical environment names.
func Names() []string {
	return []string{string(Development), string(Staging), string(Production)}
}

// Parse maps a name or its short alias ("dev", "stage", "prod") to an
// Environment, ignoring case and surrounding spaces. Unknown names are
// returned as is.
func Parse(name string) Environment {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "dev", string(Development):
		return Development
	case "stage", string(Staging):
		return Staging
	case "prod", string(Production):
		return Production
	}
	return Environment(n)
}

// Known reports whether e is one of the predefined environments.
func (e Environment) Known() bool {
	switch e {
	case Development, Staging, Production:
		return true
	}
	return false
}

func (e Environment) String() string { return string(e) }

type contextKey struct{}

// WithContext adds environment to context.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext retrieves environment from context. Returns "" when unset.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

// LogExtractor returns the environment stored in ctx as an "env" attribute.
// Its signature matches logger.ContextExtractor.
func LogExtractor(ctx context.Context) (slog.Attr, bool) {
	env := FromContext(ctx)
	if env == "" {
		return slog.Attr{}, false
	}
	return slog.String("env", string(env)), true
}
