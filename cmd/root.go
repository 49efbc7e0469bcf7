// Package cmd assembles the tasklist command tree
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklist/internal/cli"
	"github.com/thenoetrevino/tasklist/internal/cli/report"
	"github.com/thenoetrevino/tasklist/internal/cli/setup"
	"github.com/thenoetrevino/tasklist/internal/cli/styles"
	"github.com/thenoetrevino/tasklist/internal/cli/task"
	"github.com/thenoetrevino/tasklist/internal/config"
	"github.com/thenoetrevino/tasklist/internal/logging"
)

// logFile is the open log file, closed after the command runs
var logFile io.Closer

var rootCmd = &cobra.Command{
	Use:   "tasklist",
	Short: "tasklist - a local task list",
	Long: `tasklist keeps your tasks in a local SQLite database. Tasks whose
deadline has passed are marked Overdue automatically; completed tasks stay
Done until you reopen them.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupCommand,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile == nil {
			return
		}
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing log file: %v\n", err)
		}
		logFile = nil
	},
}

func init() {
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(report.CategoriesCmd())
	rootCmd.AddCommand(report.StatsCmd())
	rootCmd.AddCommand(report.ExportCmd())
	rootCmd.AddCommand(setup.ConfigCmd())
}

// setupCommand initializes logging, loads the config and hands it to the
// command through its context
func setupCommand(cmd *cobra.Command, args []string) error {
	closer, err := logging.Init()
	if err != nil {
		// Commands still work without a log file
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	} else {
		logFile = closer
	}

	// Tag every line logged by this invocation
	slog.SetDefault(slog.Default().With(
		"run_id", uuid.NewString(),
		"command", cmd.CommandPath(),
	))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return fmt.Errorf("failed to load config: %w", err)
	}

	styles.Init(cfg.ColorScheme)
	cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
	return nil
}

// Execute runs the command named on the command line
func Execute() error {
	return rootCmd.Execute()
}
