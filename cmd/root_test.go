package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	paths := [][]string{
		{"task", "add"},
		{"task", "list"},
		{"task", "show"},
		{"task", "update"},
		{"task", "done"},
		{"task", "status"},
		{"task", "delete"},
		{"categories"},
		{"stats"},
		{"export"},
		{"config", "init"},
		{"config", "path"},
	}

	for _, path := range paths {
		cmd, rest, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Empty(t, rest, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestOutputFlagsOnEveryLeafCommand(t *testing.T) {
	for _, path := range [][]string{{"task", "add"}, {"task", "list"}, {"stats"}, {"export"}} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err)
		assert.NotNil(t, cmd.Flags().Lookup("json"), path)
		assert.NotNil(t, cmd.Flags().Lookup("quiet"), path)
	}
}
