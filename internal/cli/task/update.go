package task

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklist/internal/cli"
	"github.com/thenoetrevino/tasklist/internal/cli/handler"
	"github.com/thenoetrevino/tasklist/internal/models"
	taskservice "github.com/thenoetrevino/tasklist/internal/services/task"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <task_id>",
		Short: "Edit a task",
		Long: `Edit a task. Flags that are not given keep their current value.

A Done task stays Done. Any other status is recomputed from the deadline,
so --status only has an effect when it is Done.

Examples:
  tasklist task update 5 --title="New title"
  tasklist task update 5 --deadline=2025-12-31 --category=Personal
  tasklist task update 5 --status=Done
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "New task title")
	cmd.Flags().String("notes", "", "New notes (use - for stdin)")
	cmd.Flags().String("deadline", "", "New deadline as yyyy-MM-dd")
	cmd.Flags().String("status", "", "New status: Pending, Overdue or Done")
	cmd.Flags().String("category", "", "New category (empty string for none)")

	cli.AddOutputFlags(cmd)

	return cmd
}

var updateFlags = []string{"title", "notes", "deadline", "status", "category"}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	parser := handler.NewFlagParser(cmd)

	taskID, err := parser.ParseTaskID(args, 0)
	if err != nil {
		return cli.Usage(formatter, "INVALID_TASK_ID", err, "Task IDs are positive integers")
	}

	if !parser.AnyChanged(updateFlags...) {
		return cli.Usage(formatter, "NO_UPDATES",
			errors.New("no fields to update"),
			"Pass at least one of --title, --notes, --deadline, --status, --category")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, "INITIALIZATION_ERROR", err)
	}
	defer cli.CloseCLI(cmd, cliInstance)

	current, err := cliInstance.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return cli.Fail(formatter, "TASK_FETCH_ERROR", err)
	}

	req, err := applyUpdateFlags(parser, current)
	if err != nil {
		return cli.Fail(formatter, "INVALID_FLAG", err)
	}

	if err := cliInstance.App.TaskService.UpdateTask(ctx, req); err != nil {
		return cli.Fail(formatter, "TASK_UPDATE_ERROR", err)
	}

	updated, err := cliInstance.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return cli.Fail(formatter, "TASK_FETCH_ERROR", err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", updated.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]interface{}{"task": taskJSON(updated)})
	}

	fmt.Printf("✓ Task %d updated successfully\n", updated.ID)
	printTaskLine(updated)
	return nil
}

// applyUpdateFlags starts from current and overwrites only the fields
// whose flags were given
func applyUpdateFlags(parser *handler.FlagParser, current *models.Task) (taskservice.UpdateTaskRequest, error) {
	req := taskservice.UpdateTaskRequest{
		TaskID:   current.ID,
		Title:    current.Title,
		Notes:    current.Notes,
		Deadline: current.Deadline,
		Status:   current.Status,
		Category: current.Category,
	}

	var err error
	if parser.Changed("title") {
		if req.Title, err = parser.ParseString("title"); err != nil {
			return req, err
		}
	}
	if parser.Changed("notes") {
		if req.Notes, err = parser.ParseNotes("notes"); err != nil {
			return req, err
		}
	}
	if parser.Changed("deadline") {
		if req.Deadline, err = parser.ParseString("deadline"); err != nil {
			return req, err
		}
	}
	if parser.Changed("status") {
		if req.Status, err = parser.ParseStatus("status"); err != nil {
			return req, err
		}
	}
	if parser.Changed("category") {
		if req.Category, err = parser.ParseString("category"); err != nil {
			return req, err
		}
	}
	return req, nil
}
