// Package backup creates timestamped copies of files before they are rewritten.
package backup

import "errors"

// Error definitions for backup package.
var (
	// ErrBackupAlreadyExists is returned when a backup with the same timestamp already exists.
	ErrBackupAlreadyExists = errors.New("backup already exists")
)
