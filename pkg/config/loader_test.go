package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/config"
)

type defaultsConfig struct {
	SelectOnError bool   `env:"CFG_TEST_SELECT_ON_ERROR" envDefault:"true"`
	Name          string `env:"CFG_TEST_NAME" envDefault:"signup"`
}

type envConfig struct {
	Name string `env:"CFG_TEST_ENV_NAME"`
	Port int    `env:"CFG_TEST_ENV_PORT"`
}

type cachedConfig struct {
	Value string `env:"CFG_TEST_CACHED"`
}

type prefixedConfig struct {
	ScrollOnError bool `env:"SCROLL_ON_ERROR" envDefault:"true"`
}

type requiredConfig struct {
	Required string `env:"CFG_TEST_REQUIRED,required"`
}

type fileConfig struct {
	Value string `env:"CFG_TEST_FROM_FILE"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.True(t, cfg.SelectOnError)
	assert.Equal(t, "signup", cfg.Name)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CFG_TEST_ENV_NAME", "checkout")
	t.Setenv("CFG_TEST_ENV_PORT", "8081")

	var cfg envConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "checkout", cfg.Name)
	assert.Equal(t, 8081, cfg.Port)
}

func TestLoad_Cached(t *testing.T) {
	t.Cleanup(config.ResetCache)
	t.Setenv("CFG_TEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CFG_TEST_CACHED", "second")
	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)

	config.ResetCache()
	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoadPrefixed(t *testing.T) {
	t.Setenv("SIGNUP_SCROLL_ON_ERROR", "false")

	var signup, checkout prefixedConfig
	require.NoError(t, config.LoadPrefixed(&signup, "SIGNUP_"))
	require.NoError(t, config.LoadPrefixed(&checkout, "CHECKOUT_"))

	assert.False(t, signup.ScrollOnError)
	assert.True(t, checkout.ScrollOnError)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("CFG_TEST_REQUIRED")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *envConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	t.Cleanup(func() { os.Unsetenv("CFG_TEST_FROM_FILE") })

	path := filepath.Join(t.TempDir(), ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("CFG_TEST_FROM_FILE=from_file\n"), 0o600))
	require.NoError(t, config.LoadEnv(path))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Value)

	assert.ErrorIs(t, config.LoadEnv(filepath.Join(t.TempDir(), "missing")), config.ErrLoadingEnvFile)
}
