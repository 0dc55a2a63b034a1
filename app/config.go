package app

import "github.com/echoip/echoip/core/server"

// Config is the full application configuration, loaded from the environment.
type Config struct {
	AppName  string `env:"APP_NAME" envDefault:"echoip"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Server server.Config
}
