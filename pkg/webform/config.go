package webform

import "github.com/dmitrymomot/formrules/pkg/form"

// Config holds presentation settings.
type Config struct {
	Title          string `env:"WEBFORM_TITLE"`
	SubmitLabel    string `env:"WEBFORM_SUBMIT_LABEL" envDefault:"Submit"`
	SuccessMessage string `env:"WEBFORM_SUCCESS_MESSAGE" envDefault:"Thank you!"`
	BasePath       string `env:"WEBFORM_BASE_PATH" envDefault:"/"`
	ScriptURL      string `env:"WEBFORM_DATASTAR_URL" envDefault:"https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"`
	Form           form.Config
}

// DefaultConfig mirrors the env defaults.
func DefaultConfig() Config {
	return Config{
		SubmitLabel:    "Submit",
		SuccessMessage: "Thank you!",
		BasePath:       "/",
		ScriptURL:      "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js",
		Form:           form.DefaultConfig(),
	}
}
