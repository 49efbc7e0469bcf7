package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklist/internal/cli"
	"github.com/thenoetrevino/tasklist/internal/cli/handler"
	"github.com/thenoetrevino/tasklist/internal/cli/styles"
	taskservice "github.com/thenoetrevino/tasklist/internal/services/task"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks: pending first, then overdue, then done, each by deadline.

Examples:
  tasklist task list
  tasklist task list --status=Overdue
  tasklist task list --category=Study --search=essay
  tasklist task list --category=Uncategorized
`,
		RunE: runList,
	}

	cmd.Flags().String("category", "", "Only tasks in this category ('Uncategorized' for none)")
	cmd.Flags().String("status", "", "Only tasks with this status: Pending, Overdue or Done")
	cmd.Flags().String("search", "", "Only tasks whose title contains this text (case-sensitive)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	parser := handler.NewFlagParser(cmd)

	category, err := parser.ParseString("category")
	if err != nil {
		return cli.Usage(formatter, "INVALID_FLAG", err, "")
	}
	status, err := parser.ParseString("status")
	if err != nil {
		return cli.Usage(formatter, "INVALID_FLAG", err, "")
	}
	// Search is matched as typed, spaces included
	search, _ := cmd.Flags().GetString("search")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, "INITIALIZATION_ERROR", err)
	}
	defer cli.CloseCLI(cmd, cliInstance)

	tasks, err := cliInstance.App.TaskService.ListTasks(ctx, taskservice.ListTasksRequest{
		Category: category,
		Status:   status,
		Search:   search,
	})
	if err != nil {
		return cli.Fail(formatter, "TASK_FETCH_ERROR", err)
	}

	if formatter.Quiet {
		for _, task := range tasks {
			fmt.Printf("%d\n", task.ID)
		}
		return nil
	}

	if formatter.JSON {
		items := make([]map[string]interface{}, 0, len(tasks))
		for _, task := range tasks {
			items = append(items, taskJSON(task))
		}
		return formatter.JSONSuccess(map[string]interface{}{"tasks": items})
	}

	if len(tasks) == 0 {
		fmt.Println(styles.SubtitleStyle.Render("No tasks found"))
		return nil
	}

	for _, task := range tasks {
		printTaskLine(task)
	}
	return nil
}
