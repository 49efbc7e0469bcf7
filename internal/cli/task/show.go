package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklist/internal/cli"
	"github.com/thenoetrevino/tasklist/internal/cli/handler"
	"github.com/thenoetrevino/tasklist/internal/cli/styles"
	"github.com/thenoetrevino/tasklist/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task_id>",
		Short: "Show a task with its notes",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	task, err := cliInstance.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return cli.Fail(formatter, "TASK_FETCH_ERROR", err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", task.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]interface{}{"task": taskJSON(task)})
	}

	fmt.Println(styles.RenderCard(renderTaskCard(task)))
	return nil
}

func renderTaskCard(task *models.Task) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d %s", task.ID, task.Title)))
	b.WriteString("\n\n")
	b.WriteString(styles.LabelStyle.Render("Status:") + " " + styles.RenderStatus(task.Status) + "\n")
	b.WriteString(styles.RenderField("Deadline", task.Deadline) + "\n")
	b.WriteString(styles.RenderField("Category", task.CategoryLabel()) + "\n")
	b.WriteString(styles.SectionStyle.Render("Notes") + "\n")
	b.WriteString(styles.RenderNotes(task.Notes, styles.CardWidth-6))
	return b.String()
}
