package setup

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklist/internal/cli"
	"github.com/thenoetrevino/tasklist/internal/config"
)

// PathCmd returns the config path subcommand
func PathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where tasklist looks for its config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return cli.Fail(cli.NewFormatter(cmd), "CONFIG_PATH_ERROR", err)
			}
			fmt.Println(path)
			return nil
		},
	}
}
