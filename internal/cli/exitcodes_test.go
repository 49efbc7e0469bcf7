package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasklist/internal/models"
	taskservice "github.com/thenoetrevino/tasklist/internal/services/task"
	"github.com/thenoetrevino/tasklist/internal/testutil"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"not found", fmt.Errorf("failed to toggle task: %w", models.ErrTaskNotFound), ExitNotFound},
		{"invalid status", fmt.Errorf("%w: %q", models.ErrInvalidStatus, "Later"), ExitValidation},
		{"invalid argument", taskservice.ErrEmptyTitle, ExitValidation},
		{"storage", fmt.Errorf("%w: list tasks: boom", models.ErrStorageUnavailable), ExitError},
		{"plain", errors.New("boom"), ExitError},
		{"explicit", &ExitCodeError{Code: ExitDataErr, Err: models.ErrTaskNotFound}, ExitDataErr},
		{"wrapped explicit", fmt.Errorf("export: %w", &ExitCodeError{Code: ExitUsage, Err: errors.New("bad flag")}), ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFor(tt.err))
		})
	}
}

func TestFail(t *testing.T) {
	t.Run("Not found gets its own code", func(t *testing.T) {
		formatter := &OutputFormatter{JSON: true}
		var err error

		output := testutil.CaptureOutput(t, func() {
			err = Fail(formatter, "TASK_FETCH_ERROR", fmt.Errorf("get task 9: %w", models.ErrTaskNotFound))
		})

		var exitErr *ExitCodeError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, ExitNotFound, exitErr.Code)
		assert.ErrorIs(t, err, models.ErrTaskNotFound)
		assert.Contains(t, output, `"code":"TASK_NOT_FOUND"`)
		assert.Contains(t, output, `"success":false`)
	})

	t.Run("Other errors keep the fallback code", func(t *testing.T) {
		formatter := &OutputFormatter{JSON: true}
		var err error

		output := testutil.CaptureOutput(t, func() {
			err = Fail(formatter, "TASK_FETCH_ERROR", errors.New("disk on fire"))
		})

		assert.Equal(t, ExitError, ExitCodeFor(err))
		assert.Contains(t, output, `"code":"TASK_FETCH_ERROR"`)
		assert.Contains(t, output, "disk on fire")
	})
}

func TestUsage(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}
	var err error

	output := testutil.CaptureOutput(t, func() {
		err = Usage(formatter, "INVALID_TASK_ID", errors.New("invalid task ID: x"), "Task IDs are positive integers")
	})

	assert.Equal(t, ExitUsage, ExitCodeFor(err))
	assert.Contains(t, output, `"suggestion":"Task IDs are positive integers"`)
}

func TestExitCodeError(t *testing.T) {
	err := &ExitCodeError{Code: ExitError, Err: models.ErrStorageUnavailable}

	assert.Equal(t, 1, ExitError)
	assert.Equal(t, models.ErrStorageUnavailable.Error(), err.Error())
	assert.ErrorIs(t, fmt.Errorf("list: %w", err), models.ErrStorageUnavailable)
}
