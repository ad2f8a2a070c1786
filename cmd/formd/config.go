package main

import (
	"time"

	"github.com/dmitrymomot/formrules/pkg/webform"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Service  string `env:"APP_NAME" envDefault:"formd"`
	FormFile string `env:"FORM_FILE"`
	// MountPath is where the form is served; it also becomes the form action.
	MountPath string `env:"FORM_MOUNT_PATH" envDefault:"/signup"`

	HTTP    serverConfig
	Webform webform.Config
}

type serverConfig struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
