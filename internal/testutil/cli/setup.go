// Package cli holds helpers for testing tasklist's cobra commands
package cli

import (
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/tasklist/internal/app"
	"github.com/thenoetrevino/tasklist/internal/models"
	"github.com/thenoetrevino/tasklist/internal/testutil"
)

// FixedNow is the "today" CLI tests run against
var FixedNow = time.Date(2024, time.March, 10, 9, 30, 0, 0, time.Local)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T, opts ...app.Option) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	opts = append([]app.Option{app.WithClock(func() time.Time { return FixedNow })}, opts...)
	appInstance := app.New(db, opts...)

	return db, appInstance
}

// CreateTestTask wraps testutil.InsertTask for CLI tests
// Creates a task with the given status and returns its ID
func CreateTestTask(t *testing.T, db *sql.DB, title, deadline string, status models.Status, category string) int {
	t.Helper()
	return testutil.InsertTask(t, db, title, deadline, status, category)
}
