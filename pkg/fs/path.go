package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (f *realFS) GetHomeDir() (string, error) {
	return os.UserHomeDir()
}

// ExpandPath expands a leading "~" or "~/" to the user's home directory.
// Other paths, "~user" included, are returned as is.
func (f *realFS) ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}

	homeDir, err := f.GetHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}

	return filepath.Join(homeDir, path[1:]), nil
}

// SamePath reports whether two paths designate the same file, ignoring case.
// Both paths are made absolute and cleaned before comparison.
func (f *realFS) SamePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrPathResolution, err)
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrPathResolution, err)
	}
	return strings.EqualFold(filepath.Clean(absA), filepath.Clean(absB)), nil
}
