package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklist/internal/cli"
	"github.com/thenoetrevino/tasklist/internal/cli/handler"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task_id>",
		Short: "Delete a task",
		Long: `Delete a task. Deleting an ID that does not exist is not an error.

Examples:
  tasklist task delete 5
`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if err := cliInstance.App.TaskService.DeleteTask(ctx, taskID); err != nil {
		return cli.Fail(formatter, "TASK_DELETE_ERROR", err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", taskID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]interface{}{"deleted_task_id": taskID})
	}

	fmt.Printf("✓ Task %d deleted\n", taskID)
	return nil
}
