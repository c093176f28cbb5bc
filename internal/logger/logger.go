// Package logger builds the service's zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/eaglebank/transactions/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const serviceName = "transactions"

// New returns the root logger and installs it as the zerolog global so that
// shared packages logging through zerolog/log pick up the same settings.
func New(cfg config.LoggingConfig, env string) zerolog.Logger {
	return NewWithWriter(cfg, env, os.Stdout)
}

func NewWithWriter(cfg config.LoggingConfig, env string, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("env", env).
		Logger()

	log.Logger = logger
	zerolog.DefaultContextLogger = &logger
	return logger
}
