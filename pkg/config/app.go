package config

import (
	"log/slog"

	"github.com/dmitrymomot/carelink/pkg/environment"
	"github.com/dmitrymomot/carelink/pkg/logger"
)

// App holds the settings shared by the server and the fieldcheck CLI.
type App struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"carelink"`
	LogLevel string `env:"LOG_LEVEL"`
}

func (a App) Environment() environment.Environment {
	return environment.Parse(a.Env)
}

// Logger builds the process logger: environment presets first, then
// LOG_LEVEL when it is set.
func (a App) Logger(opts ...logger.Option) (*slog.Logger, error) {
	all := []logger.Option{logger.WithEnvironment(a.Environment(), a.Name)}
	if a.LogLevel != "" {
		level, err := logger.ParseLevel(a.LogLevel)
		if err != nil {
			return nil, err
		}
		all = append(all, logger.WithLevel(level))
	}
	return logger.New(append(all, opts...)...), nil
}
