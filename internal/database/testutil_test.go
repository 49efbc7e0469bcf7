package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/tasklist/internal/models"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open(DriverName, ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Every pooled connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "tasks.db")

	db, err := InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	return db, dbPath
}

// ============================================================================
// FIXTURES
// ============================================================================

// insertTask writes a task row directly, bypassing the repository
func insertTask(t *testing.T, db *sql.DB, title, deadline string, status models.Status, category string) int {
	t.Helper()
	result, err := db.Exec(
		"INSERT INTO tasks (title, notes, deadline, status, category) VALUES (?, '', ?, ?, ?)",
		title, deadline, string(status), category,
	)
	if err != nil {
		t.Fatalf("Failed to insert task: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// statusOf reads a task's stored status
func statusOf(t *testing.T, db *sql.DB, id int) models.Status {
	t.Helper()
	var status string
	if err := db.QueryRow("SELECT status FROM tasks WHERE id = ?", id).Scan(&status); err != nil {
		t.Fatalf("Failed to read status of task %d: %v", id, err)
	}
	return models.Status(status)
}

func ptr[T any](v T) *T {
	return &v
}
