package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklist/internal/cli"
	"github.com/thenoetrevino/tasklist/internal/cli/handler"
	"github.com/thenoetrevino/tasklist/internal/models"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task_id>",
		Short: "Toggle a task between done and open",
		Long: `Mark an open task as Done. Running it on a Done task reopens it as
Pending, or Overdue when its deadline has passed.

Examples:
  tasklist task done 5
`,
		Args: cobra.ExactArgs(1),
		RunE: runDone,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDone(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	parser := handler.NewFlagParser(cmd)

	taskID, err := parser.ParseTaskID(args, 0)
	if err != nil {
		return cli.Usage(formatter, "INVALID_TASK_ID", err, "Task IDs are positive integers")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, "INITIALIZATION_ERROR", err)
	}
	defer cli.CloseCLI(cmd, cliInstance)

	task, err := cliInstance.App.TaskService.ToggleDone(ctx, taskID)
	if err != nil {
		return cli.Fail(formatter, "TASK_UPDATE_ERROR", err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", task.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]interface{}{"task": taskJSON(task)})
	}

	if task.Status == models.StatusDone {
		fmt.Printf("✓ Task %d completed\n", task.ID)
	} else {
		fmt.Printf("✓ Task %d reopened\n", task.ID)
	}
	printTaskLine(task)
	return nil
}
