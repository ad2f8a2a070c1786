// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: a default
// .env file is read once if present, then the environment is parsed into any
// struct annotated with env tags. Each configuration type (and prefix) is
// parsed once and cached for the lifetime of the process.
//
//	type FormConfig struct {
//	    SelectOnError bool `env:"SELECT_ON_ERROR" envDefault:"true"`
//	    ScrollOnError bool `env:"SCROLL_ON_ERROR" envDefault:"true"`
//	}
//
//	var cfg FormConfig
//	if err := config.LoadPrefixed(&cfg, "SIGNUP_FORM_"); err != nil {
//	    return err
//	}
//
// LoadEnv reads extra dotenv files explicitly; ResetCache drops cached values
// and is meant for tests.
package config
