//go:build windows

package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileLock acquires a file lock and returns an unlock function.
// The lock is the exclusive creation of "<filename>.lock"; a leftover lock
// file from a crashed run has to be removed by hand.
func (f *realFS) FileLock(filename string) (func(), error) {
	// Create lock file path
	lockPath := filename + ".lock"

	// Ensure parent directory exists before creating lock file
	lockDir := filepath.Dir(lockPath)
	if err := os.MkdirAll(lockDir, 0755); err != nil {
		return nil, err
	}

	lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrFileLock, filename, err)
		}
		return nil, err
	}

	// Return unlock function that removes the lock file
	unlock := func() {
		_ = lockFile.Close()
		_ = os.Remove(lockPath)
	}

	return unlock, nil
}
