// Package report holds the read-only commands that summarise the task list
package report

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklist/internal/cli"
	"github.com/thenoetrevino/tasklist/internal/cli/styles"
)

// CategoriesCmd returns the categories command
func CategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Long: `List the categories in use together with the default ones, sorted
by name.`,
		Args: cobra.NoArgs,
		RunE: runCategories,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCategories(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, "INITIALIZATION_ERROR", err)
	}
	defer cli.CloseCLI(cmd, cliInstance)

	categories, err := cliInstance.App.TaskService.ListCategories(ctx)
	if err != nil {
		return cli.Fail(formatter, "CATEGORY_FETCH_ERROR", err)
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]interface{}{"categories": categories})
	}

	for _, category := range categories {
		if formatter.Quiet {
			fmt.Println(category)
			continue
		}
		fmt.Println(styles.ValueStyle.Render("• " + category))
	}
	return nil
}
