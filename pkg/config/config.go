// Package config provides configuration management functionality for the resource cleaner.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/resource-cleaner/configs"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Scan   ScanConfig   `yaml:"scan" toml:"scan"`
	Header HeaderConfig `yaml:"header" toml:"header"`
}

// ScanConfig controls which files are searched for symbol usage.
type ScanConfig struct {
	Extensions  []string `yaml:"extensions" toml:"extensions"`
	SkipDirs    []string `yaml:"skip_dirs" toml:"skip_dirs"`
	MaxFileSize int64    `yaml:"max_file_size" toml:"max_file_size"`
	Workers     int      `yaml:"workers" toml:"workers"`
}

// HeaderConfig controls how the resource header is located and parsed.
type HeaderConfig struct {
	FileName        string `yaml:"file_name" toml:"file_name"`
	AllowDuplicates bool   `yaml:"allow_duplicates" toml:"allow_duplicates"`
}

// defaultConfig is decoded once from the embedded default file.
var defaultConfig = mustParseDefault()

func mustParseDefault() Config {
	var cfg Config
	if err := yaml.Unmarshal(configs.DefaultConfigYAML, &cfg); err != nil {
		panic(fmt.Sprintf("embedded default configuration is invalid: %v", err))
	}
	return cfg
}

// Default returns a copy of the embedded default configuration.
func Default() Config {
	cfg := defaultConfig
	cfg.Scan.Extensions = append([]string(nil), defaultConfig.Scan.Extensions...)
	cfg.Scan.SkipDirs = append([]string(nil), defaultConfig.Scan.SkipDirs...)
	return cfg
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if len(c.Scan.Extensions) == 0 {
		return ErrExtensionsEmpty
	}
	for _, ext := range c.Scan.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: %q", ErrInvalidExtension, ext)
		}
	}

	if c.Scan.MaxFileSize <= 0 {
		return ErrMaxFileSizeInvalid
	}

	if c.Scan.Workers < 0 {
		return ErrWorkersInvalid
	}

	if strings.TrimSpace(c.Header.FileName) == "" {
		return ErrHeaderFileNameEmpty
	}

	return nil
}

// isTOML reports whether the path selects the TOML format.
func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
