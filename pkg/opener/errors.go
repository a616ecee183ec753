// Package opener opens files and folders with an external application.
package opener

import "errors"

var (
	// ErrOpenerNotInstalled is returned when the opener command is not available on the system.
	ErrOpenerNotInstalled = errors.New("opener not installed")

	// ErrUnsupportedOpener is returned when an opener name is not registered.
	ErrUnsupportedOpener = errors.New("unsupported opener")

	// ErrOpenerExecutionFailed is returned when the opener command cannot be started.
	ErrOpenerExecutionFailed = errors.New("failed to execute opener command")

	// ErrPathNotFound is returned when the path to open does not exist.
	ErrPathNotFound = errors.New("path not found")
)
