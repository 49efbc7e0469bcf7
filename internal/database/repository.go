package database

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*TaskRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	xdb := sqlx.NewDb(db, DriverName)
	return &Repository{
		TaskRepo: &TaskRepo{db: xdb},
	}
}

var _ DataStore = (*Repository)(nil)
