// Package setup holds the commands that manage tasklist's own configuration
package setup

import (
	"github.com/spf13/cobra"
)

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the tasklist configuration file",
		Long:  `Create and inspect the YAML file tasklist reads its settings from.`,
	}

	cmd.AddCommand(InitCmd())
	cmd.AddCommand(PathCmd())

	return cmd
}
