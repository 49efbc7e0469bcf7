package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"os"
	"testing"

	"github.com/thenoetrevino/tasklist/internal/database"
	"github.com/thenoetrevino/tasklist/internal/models"
	_ "modernc.org/sqlite"
)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Execute function
	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	// Get captured output
	return <-outC
}

// SetupTestDB creates an in-memory database with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open(database.DriverName, ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Every pooled connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := database.RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// InsertTask writes a row directly, skipping status derivation.
// Use it to set up states the service would never produce on its own.
func InsertTask(t *testing.T, db *sql.DB, title, deadline string, status models.Status, category string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO tasks (title, notes, deadline, status, category) VALUES (?, '', ?, ?, ?)",
		title, deadline, string(status), category,
	)
	if err != nil {
		t.Fatalf("Failed to insert test task: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// StatusOf reads the stored status of a task
func StatusOf(t *testing.T, db *sql.DB, id int) models.Status {
	t.Helper()
	var status string
	err := db.QueryRowContext(context.Background(), "SELECT status FROM tasks WHERE id = ?", id).Scan(&status)
	if err != nil {
		t.Fatalf("Failed to read status of task %d: %v", id, err)
	}
	return models.Status(status)
}

// AllStatuses returns every stored status keyed by task ID
func AllStatuses(t *testing.T, db *sql.DB) map[int]models.Status {
	t.Helper()
	rows, err := db.QueryContext(context.Background(), "SELECT id, status FROM tasks")
	if err != nil {
		t.Fatalf("Failed to read statuses: %v", err)
	}
	defer rows.Close()

	statuses := make(map[int]models.Status)
	for rows.Next() {
		var (
			id     int
			status string
		)
		if err := rows.Scan(&id, &status); err != nil {
			t.Fatalf("Failed to scan status: %v", err)
		}
		statuses[id] = models.Status(status)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Failed to read statuses: %v", err)
	}
	return statuses
}
