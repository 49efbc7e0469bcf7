package app

import (
	"database/sql"

	"github.com/thenoetrevino/tasklist/internal/database"
	taskservice "github.com/thenoetrevino/tasklist/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Service layer (business logic)
	TaskService taskservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := database.NewRepository(db)

	taskOpts := []taskservice.Option{
		taskservice.WithStrictValidation(cfg.strict),
		taskservice.WithDefaultCategories(cfg.defaultCategories),
	}
	if cfg.logger != nil {
		taskOpts = append(taskOpts, taskservice.WithLogger(cfg.logger))
	}
	if cfg.clock != nil {
		taskOpts = append(taskOpts, taskservice.WithClock(cfg.clock))
	}

	return &App{
		repo:        repo,
		TaskService: taskservice.NewService(repo, taskOpts...),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}
