package fs

import (
	"fmt"
	"io"
	"os"
)

// CopyFileExclusive copies src to dst byte for byte, failing with ErrFileExists if dst exists.
func (f *realFS) CopyFileExclusive(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	// O_EXCL makes the existence check and the creation a single step
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", ErrFileExists, dst)
		}
		return err
	}

	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		if err != nil {
			_ = os.Remove(dst)
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}

	return out.Sync()
}
