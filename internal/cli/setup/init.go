package setup

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklist/internal/cli"
	"github.com/thenoetrevino/tasklist/internal/config"
)

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Write the default configuration so it can be edited by hand.

An existing file is left alone unless --force is given.

Examples:
  # Write to $XDG_CONFIG_HOME/tasklist/config.yaml
  tasklist config init

  # Overwrite an existing file
  tasklist config init --force

  # Write somewhere else
  tasklist config init --path=./tasklist.yaml
`,
		RunE: runInit,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cmd.Flags().String("path", "", "Write to this file instead of the default location")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	force, _ := cmd.Flags().GetBool("force")
	path, _ := cmd.Flags().GetString("path")

	if path == "" {
		var err error
		path, err = config.Path()
		if err != nil {
			return cli.Fail(formatter, "CONFIG_PATH_ERROR", err)
		}
	}

	if _, err := os.Stat(path); err == nil && !force {
		return cli.Usage(formatter, "CONFIG_EXISTS",
			fmt.Errorf("config file already exists: %s", path),
			"Use --force to overwrite it")
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cli.Fail(formatter, "CONFIG_WRITE_ERROR", err)
	}

	if err := config.Default().SaveFile(path); err != nil {
		return cli.Fail(formatter, "CONFIG_WRITE_ERROR", fmt.Errorf("failed to write config: %w", err))
	}

	if formatter.Quiet {
		fmt.Println(path)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]interface{}{"path": path})
	}

	fmt.Printf("✓ Config written to %s\n", path)
	return nil
}
