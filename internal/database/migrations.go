package database

import (
	"context"
	"database/sql"
)

// RunMigrations creates the database schema if needed. It is idempotent.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	// Create tasks table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			deadline TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'Pending'
				CHECK (status IN ('Pending', 'Done', 'Overdue')),
			category TEXT NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		return err
	}

	// Reconciliation scans on (status, deadline)
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_tasks_status_deadline
		ON tasks(status, deadline)
	`)
	if err != nil {
		return err
	}

	return nil
}
