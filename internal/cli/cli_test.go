package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasklist/internal/app"
	"github.com/thenoetrevino/tasklist/internal/config"
	taskservice "github.com/thenoetrevino/tasklist/internal/services/task"
	"github.com/thenoetrevino/tasklist/internal/testutil"
)

func TestGetCLIFromContext_UsesInjectedApp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testApp := app.New(db)

	c, err := GetCLIFromContext(WithApp(context.Background(), testApp))
	require.NoError(t, err)

	assert.Same(t, testApp, c.App)
	assert.Equal(t, config.Default(), c.Config)

	// The injected app's database belongs to the caller
	require.NoError(t, c.Close())
	require.NoError(t, db.PingContext(context.Background()))
}

func TestGetCLIFromContext_OpensConfiguredDatabase(t *testing.T) {
	cfg := config.Default()
	cfg.DatabasePath = filepath.Join(t.TempDir(), "data", "tasks.db")
	ctx := WithConfig(context.Background(), cfg)

	c, err := GetCLIFromContext(ctx)
	require.NoError(t, err)

	task, err := c.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		Title:    "Persisted",
		Deadline: "2999-01-01",
	})
	require.NoError(t, err)
	require.NoError(t, c.Close())

	// A second CLI sees the task written by the first
	c, err = GetCLIFromContext(ctx)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	got, err := c.App.TaskService.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Persisted", got.Title)
	assert.Same(t, cfg, c.Config)
}

func TestParseTaskID(t *testing.T) {
	id, err := ParseTaskID("12")
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	for _, bad := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := ParseTaskID(bad)
		assert.Error(t, err, bad)
	}
}
