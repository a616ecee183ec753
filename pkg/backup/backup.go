package backup

import (
	"errors"
	"fmt"
	"time"

	"github.com/lerenn/resource-cleaner/pkg/fs"
)

// Suffix separates the original file name from the backup timestamp.
const Suffix = ".bak_"

// TimestampLayout is the local-time layout of backup suffixes (yyyyMMdd_HHmmss).
const TimestampLayout = "20060102_150405"

// Manager creates backups.
type Manager struct {
	fs  fs.FS
	now func() time.Time
}

// NewParams contains parameters for creating a backup Manager.
type NewParams struct {
	FS fs.FS
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// New creates a new backup Manager.
func New(params NewParams) *Manager {
	now := params.Now
	if now == nil {
		now = time.Now
	}

	return &Manager{
		fs:  params.FS,
		now: now,
	}
}

// PathFor returns the backup path for path at time t.
func PathFor(path string, t time.Time) string {
	return path + Suffix + t.Local().Format(TimestampLayout)
}

// Create copies path to a new timestamped sibling and returns its path.
// An existing backup is never overwritten.
func (m *Manager) Create(path string) (string, error) {
	dst := PathFor(path, m.now())

	if err := m.fs.CopyFileExclusive(path, dst); err != nil {
		if errors.Is(err, fs.ErrFileExists) {
			return "", fmt.Errorf("%w: %s", ErrBackupAlreadyExists, dst)
		}
		return "", fmt.Errorf("failed to back up %s: %w", path, err)
	}

	return dst, nil
}
