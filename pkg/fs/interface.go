// Package fs provides the file system operations used by the resource cleaner.
package fs

import (
	"os"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=interface.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides file system operations for tree walking, scanning and header rewriting.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)

	// Stat returns the file info of the given path.
	Stat(path string) (os.FileInfo, error)

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// ReadDir reads the contents of a directory.
	ReadDir(path string) ([]os.DirEntry, error)

	// GetHomeDir returns the user's home directory path.
	GetHomeDir() (string, error)

	// WriteFileAtomic writes data to a file atomically using a temporary file and rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error

	// CopyFileExclusive copies src to dst byte for byte, failing with ErrFileExists if dst exists.
	CopyFileExclusive(src, dst string) error

	// FileLock acquires a file lock and returns an unlock function.
	FileLock(filename string) (func(), error)

	// Which finds the executable path for a command using the system's PATH.
	Which(command string) (string, error)

	// ExecuteCommand executes a command with arguments in the background.
	ExecuteCommand(command string, args ...string) error

	// ExpandPath expands ~ to user's home directory.
	ExpandPath(path string) (string, error)

	// SamePath reports whether two paths designate the same file, ignoring case.
	SamePath(a, b string) (bool, error)
}

type realFS struct {
	// No fields needed for basic file system operations
}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
