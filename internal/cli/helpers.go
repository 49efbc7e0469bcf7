package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// ParseTaskID parses a positional task ID argument
func ParseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task ID: %s", arg)
	}
	return id, nil
}

// CloseCLI closes c, reporting rather than returning any error
func CloseCLI(cmd *cobra.Command, c *CLI) {
	if err := c.Close(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error closing CLI: %v\n", err)
	}
}
