package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/config"
)

type defaultsConfig struct {
	TestString string `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_DEFAULT" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_DEFAULT" envDefault:"true"`
}

type successConfig struct {
	TestString string `env:"TEST_STRING_SUCCESS" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_SUCCESS" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_SUCCESS" envDefault:"true"`
}

type singletonConfig struct {
	TestString string `env:"TEST_STRING_SINGLETON" envDefault:"default_value"`
}

type prefixedConfig struct {
	Kind     string `env:"KIND" envDefault:"user"`
	FailFast bool   `env:"FAIL_FAST"`
}

type requiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

type fileConfig struct {
	TestString string   `env:"TEST_FILE_STRING"`
	TestList   []string `env:"TEST_FILE_LIST" envSeparator:","`
	TestQuoted string   `env:"TEST_FILE_QUOTED"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_STRING_SUCCESS", "test_value")
	t.Setenv("TEST_INT_SUCCESS", "100")
	t.Setenv("TEST_BOOL_SUCCESS", "false")

	var cfg successConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "test_value", cfg.TestString)
	assert.Equal(t, 100, cfg.TestInt)
	assert.False(t, cfg.TestBool)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_STRING_DEFAULT")
	os.Unsetenv("TEST_INT_DEFAULT")
	os.Unsetenv("TEST_BOOL_DEFAULT")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "default_value", cfg.TestString)
	assert.Equal(t, 42, cfg.TestInt)
	assert.True(t, cfg.TestBool)
}

func TestLoad_Cached(t *testing.T) {
	t.Setenv("TEST_STRING_SINGLETON", "first_value")

	var first singletonConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_STRING_SINGLETON", "second_value")

	var second singletonConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first_value", second.TestString, "later loads are served from the cache")

	config.ResetCache()
	var third singletonConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second_value", third.TestString, "reset forces a fresh parse")
}

func TestLoad_Prefix(t *testing.T) {
	t.Setenv("ALPHA_KIND", "event")
	t.Setenv("ALPHA_FAIL_FAST", "true")
	os.Unsetenv("BETA_KIND")
	os.Unsetenv("BETA_FAIL_FAST")

	var alpha prefixedConfig
	require.NoError(t, config.Load(&alpha, config.WithPrefix("ALPHA_")))
	assert.Equal(t, prefixedConfig{Kind: "event", FailFast: true}, alpha)

	var beta prefixedConfig
	require.NoError(t, config.Load(&beta, config.WithPrefix("BETA_")))
	assert.Equal(t, prefixedConfig{Kind: "user"}, beta, "each prefix is cached separately")
}

func TestLoad_EnvFiles(t *testing.T) {
	for _, k := range []string{"TEST_FILE_STRING", "TEST_FILE_LIST", "TEST_FILE_QUOTED"} {
		os.Unsetenv(k)
	}
	t.Cleanup(func() {
		for _, k := range []string{"TEST_FILE_STRING", "TEST_FILE_LIST", "TEST_FILE_QUOTED"} {
			os.Unsetenv(k)
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		var cfg fileConfig
		err := config.Load(&cfg, config.WithEnvFiles("testdata/.env.missing"))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("values come from the file", func(t *testing.T) {
		var cfg fileConfig
		require.NoError(t, config.Load(&cfg, config.WithEnvFiles("testdata/.env.test")))
		assert.Equal(t, "from_file", cfg.TestString)
		assert.Equal(t, []string{"a", "b", "c"}, cfg.TestList)
		assert.Equal(t, "quoted value", cfg.TestQuoted)
	})
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("REQUIRED_VALUE", "present")
	require.NoError(t, config.Load(&cfg), "a failed load is retried")
	assert.Equal(t, "present", cfg.Required)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *successConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
