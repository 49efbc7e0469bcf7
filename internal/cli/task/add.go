package task

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklist/internal/cli"
	"github.com/thenoetrevino/tasklist/internal/cli/handler"
	taskservice "github.com/thenoetrevino/tasklist/internal/services/task"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new task",
		Long: `Add a new task. Its status is Overdue if the deadline has already
passed and Pending otherwise.

Examples:
  # Simple task due today
  tasklist task add --title="Buy milk"

  # Full example
  tasklist task add \
    --title="Write report" \
    --notes="Cover **Q3** numbers" \
    --deadline=2025-10-01 \
    --category=Study

  # Quiet mode for bash capture
  TASK_ID=$(tasklist task add --title="Buy milk" --quiet)
`,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("title", "", "Task title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("notes", "", "Task notes, markdown allowed (use - for stdin)")
	cmd.Flags().String("deadline", "", "Deadline as yyyy-MM-dd (defaults to today)")
	cmd.Flags().String("category", "", "Category (any name; omit for none)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	parser := handler.NewFlagParser(cmd)

	title, err := parser.ParseString("title")
	if err != nil {
		return cli.Usage(formatter, "INVALID_FLAG", err, "")
	}
	category, err := parser.ParseString("category")
	if err != nil {
		return cli.Usage(formatter, "INVALID_FLAG", err, "")
	}
	deadline, err := parser.ParseDeadline("deadline", time.Now())
	if err != nil {
		return cli.Usage(formatter, "INVALID_FLAG", err, "")
	}
	notes, err := parser.ParseNotes("notes")
	if err != nil {
		return cli.Fail(formatter, "STDIN_READ_ERROR", err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, "INITIALIZATION_ERROR", err)
	}
	defer cli.CloseCLI(cmd, cliInstance)

	task, err := cliInstance.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		Title:    title,
		Notes:    notes,
		Deadline: deadline,
		Category: category,
	})
	if err != nil {
		return cli.Fail(formatter, "TASK_CREATE_ERROR", err)
	}

	// Output based on mode (JSON/Quiet/Human)
	if formatter.Quiet {
		fmt.Printf("%d\n", task.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]interface{}{"task": taskJSON(task)})
	}

	fmt.Printf("✓ Task '%s' created successfully (ID: %d)\n", task.Title, task.ID)
	printTaskLine(task)
	return nil
}
