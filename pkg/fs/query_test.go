//go:build integration

package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestFS_ExistsAndIsDir(t *testing.T) {
	fs := NewFS()
	root := t.TempDir()
	header := filepath.Join(root, "res", "resource.h")
	writeTestFile(t, header, "#define IDC_OK 1\n")

	tests := []struct {
		name      string
		path      string
		exists    bool
		isDir     bool
		isDirErrs bool
	}{
		{name: "file", path: header, exists: true},
		{name: "directory", path: filepath.Dir(header), exists: true, isDir: true},
		{name: "missing", path: filepath.Join(root, "missing.h"), isDirErrs: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := fs.Exists(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.exists, exists)

			isDir, err := fs.IsDir(tt.path)
			if tt.isDirErrs {
				assert.True(t, errors.Is(err, os.ErrNotExist))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.isDir, isDir)
		})
	}
}

func TestFS_StatAndReadFile(t *testing.T) {
	fs := NewFS()
	header := filepath.Join(t.TempDir(), "resource.h")
	writeTestFile(t, header, "#define IDC_OK 1\r\n")

	info, err := fs.Stat(header)
	require.NoError(t, err)
	assert.Equal(t, int64(len("#define IDC_OK 1\r\n")), info.Size())

	data, err := fs.ReadFile(header)
	require.NoError(t, err)
	assert.Equal(t, "#define IDC_OK 1\r\n", string(data))

	_, err = fs.ReadFile(header + ".missing")
	assert.True(t, os.IsNotExist(err))
}

func TestFS_ReadDir(t *testing.T) {
	fs := NewFS()
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "main.cpp"), "")
	writeTestFile(t, filepath.Join(root, "App.rc"), "")
	writeTestFile(t, filepath.Join(root, "bin", "out.obj"), "")

	entries, err := fs.ReadDir(root)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"App.rc", "bin", "main.cpp"}, names)
	assert.True(t, entries[1].IsDir())

	_, err = fs.ReadDir(filepath.Join(root, "missing"))
	assert.True(t, os.IsNotExist(err))
}
