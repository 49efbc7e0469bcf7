package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasklist/internal/app"
	appcli "github.com/thenoetrevino/tasklist/internal/cli"
	"github.com/thenoetrevino/tasklist/internal/config"
	"github.com/thenoetrevino/tasklist/internal/models"
	"github.com/thenoetrevino/tasklist/internal/testutil"
	"github.com/thenoetrevino/tasklist/internal/testutil/cli"
)

func TestAddTask_Positive(t *testing.T) {
	db, testApp := cli.SetupCLITest(t)

	t.Run("Future deadline is Pending", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, testApp, AddCmd(), []string{
			"--title", "Buy milk",
			"--deadline", "2024-03-11",
			"--category", "Household",
		})

		require.NoError(t, err)
		assert.Contains(t, output, "Task 'Buy milk' created successfully")
		assert.Contains(t, output, "Pending")

		var title, category string
		err = db.QueryRowContext(context.Background(),
			"SELECT title, category FROM tasks WHERE title = 'Buy milk'").Scan(&title, &category)
		require.NoError(t, err)
		assert.Equal(t, "Household", category)
	})

	t.Run("Past deadline is Overdue - quiet mode output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, testApp, AddCmd(), []string{
			"--title", "Pay rent",
			"--deadline", "2024-03-09",
			"--quiet",
		})

		require.NoError(t, err)

		var taskID int
		_, err = fmt.Sscanf(output, "%d\n", &taskID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusOverdue, testutil.StatusOf(t, db, taskID))
	})

	t.Run("Deadline today is Pending - JSON mode output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, testApp, AddCmd(), []string{
			"--title", "Read chapter 3",
			"--notes", "Take *notes*",
			"--deadline", "2024-03-10",
			"--category", "Study",
			"--json",
		})

		require.NoError(t, err)

		var result map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(output), &result))
		assert.Equal(t, true, result["success"])

		task := result["task"].(map[string]interface{})
		assert.Equal(t, "Read chapter 3", task["title"])
		assert.Equal(t, "Take *notes*", task["notes"])
		assert.Equal(t, "2024-03-10", task["deadline"])
		assert.Equal(t, "Pending", task["status"])
		assert.Equal(t, "Study", task["category"])
		assert.NotZero(t, task["id"])
	})

	t.Run("No category shows as Uncategorized", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, testApp, AddCmd(), []string{
			"--title", "Loose end",
			"--deadline", "2024-04-01",
			"--json",
		})

		require.NoError(t, err)
		result := cli.ParseJSON(t, output)
		task := result["task"].(map[string]interface{})
		assert.Equal(t, models.UncategorizedLabel, task["category"])
	})

	t.Run("New category marker is stored as empty", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, testApp, AddCmd(), []string{
			"--title", "Marker",
			"--deadline", "2024-04-01",
			"--category", models.AddNewCategoryMarker,
			"--quiet",
		})
		require.NoError(t, err)

		var category string
		err = db.QueryRowContext(context.Background(),
			"SELECT category FROM tasks WHERE id = ?", mustAtoi(t, output)).Scan(&category)
		require.NoError(t, err)
		assert.Empty(t, category)
	})
}

func TestAddTask_Negative(t *testing.T) {
	_, testApp := cli.SetupCLITest(t)

	t.Run("Missing title flag", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, testApp, AddCmd(), []string{"--deadline", "2024-03-11"})
		assert.Error(t, err)
	})

	t.Run("Blank title is accepted by default", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, testApp, AddCmd(), []string{
			"--title", "   ",
			"--deadline", "2024-03-11",
			"--json",
		})

		require.NoError(t, err)
		task := cli.ParseJSON(t, output)["task"].(map[string]interface{})
		assert.Equal(t, "", task["title"])
		assert.Equal(t, "Pending", task["status"])
	})

	t.Run("Malformed deadline is accepted by default", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, testApp, AddCmd(), []string{
			"--title", "Odd date",
			"--deadline", "someday",
			"--quiet",
		})
		assert.NoError(t, err)
	})
}

func TestAddTask_StrictValidation(t *testing.T) {
	cfg := config.Default()
	cfg.StrictValidation = true
	_, testApp := cli.SetupCLITest(t, app.WithConfig(cfg))

	output, err := cli.ExecuteCLICommand(t, testApp, AddCmd(), []string{
		"--title", "Odd date",
		"--deadline", "someday",
		"--json",
	})

	assert.Equal(t, appcli.ExitValidation, appcli.ExitCodeFor(err))

	result := cli.ParseJSON(t, output)
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errData["code"])

	_, err = cli.ExecuteCLICommand(t, testApp, AddCmd(), []string{
		"--title", "  ",
		"--deadline", "2024-03-11",
	})
	var exitErr *appcli.ExitCodeError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, appcli.ExitValidation, exitErr.Code)
}

func TestAddTask_NotesFromStdin(t *testing.T) {
	_, testApp := cli.SetupCLITest(t)

	cmd := AddCmd()
	cmd.SetIn(strings.NewReader("Remember **oat** milk\n"))
	output, err := cli.ExecuteCLICommand(t, testApp, cmd, []string{
		"--title", "Buy milk",
		"--notes", "-",
		"--deadline", "2024-03-11",
		"--json",
	})

	require.NoError(t, err)
	task := cli.ParseJSON(t, output)["task"].(map[string]interface{})
	assert.Equal(t, "Remember **oat** milk", task["notes"])
}

func mustAtoi(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(strings.TrimSpace(s))
	require.NoError(t, err)
	return n
}
