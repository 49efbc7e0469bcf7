// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklist/internal/cli"
	"github.com/thenoetrevino/tasklist/internal/models"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseTaskID parses the positional task ID at args[index]
func (p *FlagParser) ParseTaskID(args []string, index int) (int, error) {
	if index >= len(args) {
		return 0, fmt.Errorf("missing task ID")
	}
	return cli.ParseTaskID(args[index])
}

// Changed reports whether flagName was given on the command line
func (p *FlagParser) Changed(flagName string) bool {
	return p.cmd.Flags().Changed(flagName)
}

// AnyChanged reports whether any of flagNames was given
func (p *FlagParser) AnyChanged(flagNames ...string) bool {
	for _, name := range flagNames {
		if p.Changed(name) {
			return true
		}
	}
	return false
}

// ParseString extracts a string flag with surrounding whitespace removed
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return strings.TrimSpace(value), nil
}

// ParseNotes extracts a notes flag. A value of "-" reads the notes from
// the command's stdin.
func (p *FlagParser) ParseNotes(flagName string) (string, error) {
	notes, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if notes != "-" {
		return strings.TrimSpace(notes), nil
	}

	data, err := io.ReadAll(p.cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read notes from stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// ParseDeadline extracts a deadline flag, defaulting to the day of now
func (p *FlagParser) ParseDeadline(flagName string, now time.Time) (string, error) {
	deadline, err := p.ParseString(flagName)
	if err != nil {
		return "", err
	}
	if deadline == "" {
		return models.Today(now).String(), nil
	}
	return deadline, nil
}

// ParseStatus extracts a status flag; names are matched case-insensitively
func (p *FlagParser) ParseStatus(flagName string) (models.Status, error) {
	raw, err := p.ParseString(flagName)
	if err != nil {
		return "", err
	}
	return models.ParseStatus(raw)
}
