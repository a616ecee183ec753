package rescleaner

import (
	"fmt"

	"github.com/lerenn/resource-cleaner/pkg/backup"
)

// applyRewrite backs the header up and replaces it with rewritten, in the
// header's original encoding. The header is locked for the duration.
func (r *realResourceCleaner) applyRewrite(path string, doc *headerDocument, rewritten string) (string, error) {
	unlock, err := r.deps.FS.FileLock(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrHeaderLocked, path, err)
	}
	defer unlock()

	info, err := r.deps.FS.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat header %s: %w", path, err)
	}

	data, err := doc.encoding.Encode(rewritten)
	if err != nil {
		return "", fmt.Errorf("failed to encode header %s: %w", path, err)
	}

	backupPath, err := backup.New(backup.NewParams{FS: r.deps.FS}).Create(path)
	if err != nil {
		return "", translateError(err)
	}
	r.VerbosePrint("Backed up %s to %s", path, backupPath)

	if err := r.deps.FS.WriteFileAtomic(path, data, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("failed to write header %s: %w", path, err)
	}
	r.VerbosePrint("Rewrote %s (%s)", path, doc.encoding)

	return backupPath, nil
}
