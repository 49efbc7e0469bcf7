package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklist/internal/cli"
	"github.com/thenoetrevino/tasklist/internal/cli/handler"
	"github.com/thenoetrevino/tasklist/internal/models"
)

// StatusCmd returns the task status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <task_id> <Pending|Overdue|Done>",
		Short: "Set a task's status directly",
		Long: `Set a task's status as given. The deadline is not consulted, but the
next listing will move a non-Done task back in line with its deadline.

Examples:
  tasklist task status 5 Done
  tasklist task status 5 pending
`,
		Args: cobra.ExactArgs(2),
		RunE: runStatus,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	parser := handler.NewFlagParser(cmd)

	taskID, err := parser.ParseTaskID(args, 0)
	if err != nil {
		return cli.Usage(formatter, "INVALID_TASK_ID", err, "Task IDs are positive integers")
	}

	status, err := models.ParseStatus(strings.TrimSpace(args[1]))
	if err != nil {
		return cli.Fail(formatter, "INVALID_STATUS", err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, "INITIALIZATION_ERROR", err)
	}
	defer cli.CloseCLI(cmd, cliInstance)

	if err := cliInstance.App.TaskService.SetStatus(ctx, taskID, status); err != nil {
		return cli.Fail(formatter, "TASK_UPDATE_ERROR", err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", taskID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]interface{}{
			"task_id": taskID,
			"status":  status,
		})
	}

	fmt.Printf("✓ Task %d status set to %s\n", taskID, status)
	return nil
}
