// Package config loads application configuration from environment variables
// into tagged Go structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - the default .env file in the working directory is loaded once when it
//     exists, and WithEnvFiles loads further files that must exist;
//   - fields are populated from `env`, `envDefault` and `required` tags, with
//     WithPrefix prepending a common prefix to every variable name;
//   - each struct type and prefix pair is parsed once per process and served
//     from an in-memory cache afterwards.
//
// # Usage
//
//	type Config struct {
//	    Env      string `env:"ENV" envDefault:"development"`
//	    Kind     string `env:"KIND" envDefault:"user"`
//	    FailFast bool   `env:"FAIL_FAST"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("SCHEMACHECK_")); err != nil {
//	    return err
//	}
//
// MustLoad panics instead of returning an error.
//
// # Errors
//
// Sentinel errors are joined with their cause and match with errors.Is:
// ErrParsingConfig, ErrLoadingEnvFile, ErrConfigNotLoaded and ErrNilPointer.
// A failed load is not cached, so a later call retries.
//
// ResetCache clears the cache between tests.
package config
