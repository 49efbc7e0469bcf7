package report

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklist/internal/cli"
	"github.com/thenoetrevino/tasklist/internal/cli/styles"
	"github.com/thenoetrevino/tasklist/internal/models"
)

const progressBarWidth = 30

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task counts and progress",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, "INITIALIZATION_ERROR", err)
	}
	defer cli.CloseCLI(cmd, cliInstance)

	stats, err := cliInstance.App.TaskService.GetStats(ctx)
	if err != nil {
		return cli.Fail(formatter, "STATS_FETCH_ERROR", err)
	}

	if formatter.Quiet {
		fmt.Printf("%d/%d\n", stats.Done, stats.Total)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]interface{}{
			"total":    stats.Total,
			"done":     stats.Done,
			"overdue":  stats.Overdue,
			"pending":  stats.Pending,
			"progress": stats.Progress(),
		})
	}

	fmt.Println(styles.RenderCard(renderStats(stats)))
	return nil
}

func renderStats(stats models.Stats) string {
	return styles.TitleStyle.Render("Task statistics") + "\n\n" +
		styles.RenderField("Total", fmt.Sprintf("%d", stats.Total)) + "\n" +
		styles.LabelStyle.Render("Done:") + " " + styles.ColoredText(fmt.Sprintf("%d", stats.Done), styles.StatusColor(models.StatusDone)) + "\n" +
		styles.LabelStyle.Render("Overdue:") + " " + styles.ColoredText(fmt.Sprintf("%d", stats.Overdue), styles.StatusColor(models.StatusOverdue)) + "\n" +
		styles.LabelStyle.Render("Pending:") + " " + styles.ColoredText(fmt.Sprintf("%d", stats.Pending), styles.StatusColor(models.StatusPending)) + "\n\n" +
		styles.RenderProgressBar(stats.Progress(), progressBarWidth)
}
