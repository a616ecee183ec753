package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse      = errors.New("failed to parse config file")
	ErrConfigNotInitialized = errors.New("configuration not found. Run 'rc init' to initialize")
	ErrConfigExists         = errors.New("configuration file already exists")

	// Configuration validation errors.
	ErrExtensionsEmpty     = errors.New("scan.extensions cannot be empty")
	ErrInvalidExtension    = errors.New("scan.extensions entries must start with '.'")
	ErrMaxFileSizeInvalid  = errors.New("scan.max_file_size must be positive")
	ErrWorkersInvalid      = errors.New("scan.workers cannot be negative")
	ErrHeaderFileNameEmpty = errors.New("header.file_name cannot be empty")
)
