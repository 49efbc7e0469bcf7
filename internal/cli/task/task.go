// Package task holds the cli commands that create, edit and complete tasks
// e.g., tasklist task ...
package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklist/internal/cli/styles"
	"github.com/thenoetrevino/tasklist/internal/models"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DoneCmd())
	cmd.AddCommand(StatusCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// taskJSON is the JSON shape of a task in command output
func taskJSON(t *models.Task) map[string]interface{} {
	return map[string]interface{}{
		"id":       t.ID,
		"title":    t.Title,
		"notes":    t.Notes,
		"deadline": t.Deadline,
		"status":   t.Status,
		"category": t.CategoryLabel(),
	}
}

// printTaskLine prints the one-line summary used by list and the write commands
func printTaskLine(t *models.Task) {
	fmt.Printf("#%-4d %s  %s  %s %s\n",
		t.ID,
		styles.RenderStatus(t.Status),
		styles.ValueStyle.Render(t.Deadline),
		styles.TitleStyle.Render(t.Title),
		styles.SubtitleStyle.Render("["+t.CategoryLabel()+"]"),
	)
}
