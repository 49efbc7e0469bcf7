package handler

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasklist/internal/models"
)

// ============================================================================
// Test Helpers
// ============================================================================

// createTestCommand creates a command with the flags the task commands use
// and parses args into it
func createTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{
		Use: "test",
		Run: func(cmd *cobra.Command, args []string) {},
	}
	cmd.Flags().String("title", "", "")
	cmd.Flags().String("notes", "", "")
	cmd.Flags().String("deadline", "", "")
	cmd.Flags().String("status", "", "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

// ============================================================================
// ParseTaskID Tests
// ============================================================================

func TestParseTaskID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		index   int
		want    int
		wantErr bool
	}{
		{name: "valid task ID", args: []string{"42"}, want: 42},
		{name: "second position", args: []string{"7", "Done"}, index: 0, want: 7},
		{name: "zero task ID", args: []string{"0"}, wantErr: true},
		{name: "negative task ID", args: []string{"-1"}, wantErr: true},
		{name: "not a number", args: []string{"abc"}, wantErr: true},
		{name: "missing", args: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewFlagParser(createTestCommand(t))

			got, err := p.ParseTaskID(tt.args, tt.index)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ============================================================================
// Flag Tests
// ============================================================================

func TestChanged(t *testing.T) {
	p := NewFlagParser(createTestCommand(t, "--title", ""))

	assert.True(t, p.Changed("title"))
	assert.False(t, p.Changed("deadline"))
	assert.True(t, p.AnyChanged("deadline", "title"))
	assert.False(t, p.AnyChanged("deadline", "status"))
}

func TestParseString_Trims(t *testing.T) {
	p := NewFlagParser(createTestCommand(t, "--title", "  Buy milk  "))

	title, err := p.ParseString("title")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", title)

	_, err = p.ParseString("unknown")
	assert.Error(t, err)
}

func TestParseNotes(t *testing.T) {
	t.Run("Inline value", func(t *testing.T) {
		p := NewFlagParser(createTestCommand(t, "--notes", "bring a bag\n"))

		notes, err := p.ParseNotes("notes")
		require.NoError(t, err)
		assert.Equal(t, "bring a bag", notes)
	})

	t.Run("Dash reads stdin", func(t *testing.T) {
		cmd := createTestCommand(t, "--notes", "-")
		cmd.SetIn(strings.NewReader("# Shopping\n- milk\n"))

		notes, err := NewFlagParser(cmd).ParseNotes("notes")
		require.NoError(t, err)
		assert.Equal(t, "# Shopping\n- milk", notes)
	})
}

func TestParseDeadline(t *testing.T) {
	now := time.Date(2024, time.March, 10, 23, 59, 0, 0, time.Local)

	deadline, err := NewFlagParser(createTestCommand(t)).ParseDeadline("deadline", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10", deadline)

	deadline, err = NewFlagParser(createTestCommand(t, "--deadline", "2025-01-31")).ParseDeadline("deadline", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-31", deadline)
}

func TestParseStatus(t *testing.T) {
	status, err := NewFlagParser(createTestCommand(t, "--status", "overdue")).ParseStatus("status")
	require.NoError(t, err)
	assert.Equal(t, models.StatusOverdue, status)

	_, err = NewFlagParser(createTestCommand(t, "--status", "Later")).ParseStatus("status")
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}
