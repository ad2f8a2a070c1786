package form

// Config holds the attention settings applied to the first invalid element.
type Config struct {
	SelectOnError bool `env:"FORM_SELECT_ON_ERROR" envDefault:"true"`
	ScrollOnError bool `env:"FORM_SCROLL_ON_ERROR" envDefault:"true"`
}

// DefaultConfig enables both attention primitives.
func DefaultConfig() Config {
	return Config{SelectOnError: true, ScrollOnError: true}
}
