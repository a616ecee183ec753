//go:build !windows

package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// FileLock acquires a file lock and returns an unlock function.
// This implementation uses syscall.Flock which is available on Unix systems.
func (f *realFS) FileLock(filename string) (func(), error) {
	// Create lock file path
	lockPath := filename + ".lock"

	// Ensure parent directory exists before creating lock file
	lockDir := filepath.Dir(lockPath)
	if err := os.MkdirAll(lockDir, 0755); err != nil {
		return nil, err
	}

	lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}

	// Acquire file lock (non-blocking). The lock file belongs to the holder.
	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		_ = lockFile.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrFileLock, filename, err)
	}

	// Return unlock function
	unlock := func() {
		_ = os.Remove(lockPath)
		_ = syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)
		_ = lockFile.Close()
	}

	return unlock, nil
}
