package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option adjusts a single Load call.
type Option func(*options)

type options struct {
	prefix   string
	envFiles []string
}

// WithPrefix prepends prefix to every env tag of the struct, so
// `env:"KIND"` reads APP_KIND with WithPrefix("APP_").
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles loads the given .env files before parsing. Unlike the default
// .env file, a missing explicit file is an error. Variables already present
// in the process environment are not overridden.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) { o.envFiles = append(o.envFiles, paths...) }
}

type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v according to its `env` tags.
//
// The default .env file in the working directory is loaded once per process
// when present. Each combination of type and prefix is parsed once; later
// calls copy the cached value into v.
//
//	type Config struct {
//		Kind     string `env:"KIND" envDefault:"user"`
//		FailFast bool   `env:"FAIL_FAST"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("SCHEMACHECK_")); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// the default file is optional
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	key := cacheKey[T](o.prefix)
	if cached, ok := lookup[T](key); ok {
		*v = cached
		return nil
	}

	globalCache.mu.Lock()
	once, exists := globalCache.onces[key]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[key] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		if len(o.envFiles) > 0 {
			if loadErr := godotenv.Load(o.envFiles...); loadErr != nil {
				err = errors.Join(ErrLoadingEnvFile, loadErr)
				return
			}
		}
		if parseErr := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			return
		}

		globalCache.mu.Lock()
		globalCache.values[key] = *v
		globalCache.mu.Unlock()
	})

	if err != nil {
		// allow a retry once the environment is fixed
		globalCache.mu.Lock()
		delete(globalCache.onces, key)
		globalCache.mu.Unlock()
		return err
	}

	if cached, ok := lookup[T](key); ok {
		*v = cached
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ResetCache forgets every loaded configuration. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
}

func lookup[T any](key string) (T, bool) {
	globalCache.mu.RLock()
	defer globalCache.mu.RUnlock()
	cached, ok := globalCache.values[key].(T)
	return cached, ok
}

func cacheKey[T any](prefix string) string {
	return reflect.TypeFor[T]().String() + "|" + prefix
}
