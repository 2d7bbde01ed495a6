package main

import (
	"log/slog"

	"github.com/dmitrymomot/schemakit/pkg/config"
	"github.com/dmitrymomot/schemakit/pkg/environment"
	"github.com/dmitrymomot/schemakit/pkg/validator"
)

const envPrefix = "SCHEMACHECK_"

// Config is read from SCHEMACHECK_* variables.
type Config struct {
	Env      string `env:"ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`
	Kind     string `env:"KIND" envDefault:"user"`
	FailFast bool   `env:"FAIL_FAST" envDefault:"false"`
	Workers  int    `env:"WORKERS" envDefault:"4"`
}

func loadConfig() (Config, error) {
	var cfg Config
	err := config.Load(&cfg, config.WithPrefix(envPrefix))
	return cfg, err
}

// configSchema checks a loaded Config against the kinds the catalog knows.
func configSchema(kinds []string) *validator.ObjectValidator {
	knownEnv := validator.String().Custom(func(s string) bool {
		return environment.Parse(s).Known()
	})
	level := validator.String().Custom(func(s string) bool {
		if s == "" {
			// unset keeps the environment preset
			return true
		}
		var l slog.Level
		return l.UnmarshalText([]byte(s)) == nil
	})

	return validator.Object().
		Property("Env", knownEnv.WithMessage("unknown environment")).
		Property("LogLevel", level.WithMessage("unknown log level")).
		Property("Kind", validator.String().OneOf(kinds...).WithMessage("unknown record kind")).
		Property("FailFast", validator.Boolean()).
		Property("Workers", validator.Number().Min(1).Max(64).Integer())
}

func (c Config) validate(kinds []string) error {
	return configSchema(kinds).Validate(c).Err()
}
