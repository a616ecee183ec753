// Package cli provides common configuration and utility functions for the rc CLI.
package cli

import (
	"github.com/lerenn/resource-cleaner/pkg/config"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
)

// GetConfigPath returns the config file path used by the CLI.
func GetConfigPath() string {
	if ConfigPath != "" {
		return ConfigPath
	}
	return config.DefaultConfigPath()
}

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() config.Manager {
	return config.NewManager(GetConfigPath())
}
