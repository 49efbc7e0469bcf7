// Package cli holds the shared plumbing for tasklist's commands
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tasklist/internal/app"
	"github.com/thenoetrevino/tasklist/internal/config"
	"github.com/thenoetrevino/tasklist/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	// db is set only when this CLI opened the database itself
	db *sql.DB
}

type contextKey string

const (
	appKey    contextKey = "app"
	configKey contextKey = "config"
)

// WithApp returns a context carrying a ready-made App. Commands run with
// such a context use it instead of opening the configured database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithConfig returns a context carrying the loaded configuration
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the configuration stored by WithConfig,
// or the defaults
func ConfigFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
		return cfg
	}
	return config.Default()
}

// GetCLIFromContext returns a CLI backed by the App in ctx, or opens the
// configured database when there is none.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	cfg := ConfigFromContext(ctx)

	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: cfg}, nil
	}

	return NewCLI(ctx, cfg)
}

// NewCLI initializes the CLI with the database named in cfg
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	dbPath, err := cfg.ResolvedDatabasePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}

	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(db,
		app.WithConfig(cfg),
		app.WithLogger(slog.Default()),
	)

	return &CLI{
		App:    application,
		Config: cfg,
		db:     db,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
