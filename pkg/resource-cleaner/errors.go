// Package rescleaner finds unused resource symbols in a native project,
// drops them from its resource header and renumbers the survivors.
package rescleaner

import "errors"

// Error definitions for rescleaner package.
var (
	// Input errors.
	ErrInvalidRoot         = errors.New("root path is empty or not a directory")
	ErrHeaderNotFound      = errors.New("resource header not found")
	ErrNoDefinitionsFound  = errors.New("no numeric #define found in header")
	ErrDuplicateDefinition = errors.New("header defines the same name more than once")

	// Apply errors.
	ErrBackupAlreadyExists = errors.New("backup file already exists")
	ErrHeaderLocked        = errors.New("header is locked by another process")

	// Interactive errors.
	ErrNoRootSelected = errors.New("no root folder selected")

	// Initialization errors.
	ErrConfigExists = errors.New("configuration already exists, use --force to overwrite")
)
