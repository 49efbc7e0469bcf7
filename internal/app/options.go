package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/tasklist/internal/config"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger            *slog.Logger
	clock             func() time.Time
	strict            bool
	defaultCategories []string
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithClock sets the time source used to decide which tasks are overdue
func WithClock(clock func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.clock = clock
	}
}

// WithConfig applies the user's settings to the services
func WithConfig(c *config.Config) Option {
	return func(cfg *appConfig) {
		cfg.strict = c.StrictValidation
		cfg.defaultCategories = c.DefaultCategories
	}
}
