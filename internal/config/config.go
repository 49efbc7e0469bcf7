// Package config loads the user's YAML configuration
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/thenoetrevino/tasklist/internal/config/colors"
	"github.com/thenoetrevino/tasklist/internal/models"
	"gopkg.in/yaml.v3"
)

// ColorScheme is re-exported so callers need not import the colors package
type ColorScheme = colors.ColorScheme

// Config represents the application configuration
type Config struct {
	// DatabasePath is the SQLite file; a leading ~ expands to the home directory
	DatabasePath string `yaml:"database_path"`

	// StrictValidation rejects empty titles and malformed deadlines
	StrictValidation bool `yaml:"strict_validation"`

	// DefaultCategories are always offered alongside the ones in use
	DefaultCategories []string `yaml:"default_categories"`

	// ExportDelimiter separates CSV fields in exports
	ExportDelimiter string `yaml:"export_delimiter"`

	ColorScheme ColorScheme `yaml:"theme"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path, returning defaults if it does not exist
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() (string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return "", err
	}
	return configPath, c.SaveFile(configPath)
}

// SaveFile writes the config to path, creating its directory
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// ResolvedDatabasePath expands a leading ~ in DatabasePath
func (c *Config) ResolvedDatabasePath() (string, error) {
	path := c.DatabasePath
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}

// Path returns where Load and Save look for the config file
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tasklist", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tasklist", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		c.DatabasePath = "~/.tasklist/tasks.db"
	}
	if len(c.DefaultCategories) == 0 {
		c.DefaultCategories = slices.Clone(models.DefaultCategories)
	}
	if c.ExportDelimiter == "" {
		c.ExportDelimiter = ";"
	}
	c.ColorScheme.ApplyDefaults()
}
