//go:build integration

package rescleaner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lerenn/resource-cleaner/pkg/config"
	"github.com/lerenn/resource-cleaner/pkg/dependencies"
	"github.com/lerenn/resource-cleaner/pkg/fs"
	"github.com/lerenn/resource-cleaner/pkg/header"
	"github.com/lerenn/resource-cleaner/pkg/renumber"
	"github.com/lerenn/resource-cleaner/pkg/textenc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files (relative path -> content) under a fresh root.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func newTestCleaner(t *testing.T, fsys fs.FS) ResourceCleaner {
	t.Helper()
	deps := dependencies.New().
		WithFS(fsys).
		WithConfig(config.NewManager(filepath.Join(t.TempDir(), "absent.yaml")))

	rc, err := NewResourceCleaner(NewResourceCleanerParams{Dependencies: deps})
	require.NoError(t, err)
	return rc
}

// backups lists the backup files sitting next to path.
func backups(t *testing.T, path string) []string {
	t.Helper()
	matches, err := filepath.Glob(path + ".bak_*")
	require.NoError(t, err)
	return matches
}

func TestAnalyzeAndRenumber_DryRun(t *testing.T) {
	root := writeTree(t, map[string]string{
		"resource.h": "#define IDC_BTN 101\n#define IDC_OLD 102\n",
		"main.cpp":   "int x = IDC_BTN; // IDC_OLD\n",
	})
	headerPath := filepath.Join(root, "resource.h")
	before, err := os.ReadFile(headerPath)
	require.NoError(t, err)

	res, err := newTestCleaner(t, fs.NewFS()).AnalyzeAndRenumber(context.Background(), AnalyzeParams{RootPath: root})
	require.NoError(t, err)

	assert.Equal(t, headerPath, res.HeaderPath)
	assert.Equal(t, 2, res.TotalDefines)
	assert.Equal(t, 1, res.KeptDefines)
	assert.Equal(t, 1, res.RemovedDefines)
	assert.Equal(t, []header.Assignment{{Name: "IDC_BTN", NewValue: 1}}, res.After)
	assert.Equal(t, []renumber.Entry{
		{Name: "IDC_BTN", OldValue: 101, Used: true},
		{Name: "IDC_OLD", OldValue: 102, Used: false},
	}, res.Before)
	assert.Equal(t, 1, res.FilesScanned)
	assert.Empty(t, res.BackupPath)

	after, err := os.ReadFile(headerPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Empty(t, backups(t, headerPath))
}

func TestAnalyzeAndRenumber_Apply(t *testing.T) {
	original := "#define IDC_BTN 101\n#define IDC_OLD 102\n"
	root := writeTree(t, map[string]string{
		"resource.h": original,
		"main.cpp":   "int x = IDC_BTN; // IDC_OLD\n",
	})
	headerPath := filepath.Join(root, "resource.h")

	res, err := newTestCleaner(t, fs.NewFS()).AnalyzeAndRenumber(context.Background(), AnalyzeParams{
		RootPath: root,
		Apply:    true,
	})
	require.NoError(t, err)

	want := header.BeginMarker + "\n#define IDC_BTN  1\n" + header.EndMarker + "\n"
	got, err := os.ReadFile(headerPath)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
	assert.Equal(t, want, res.Rewritten)

	require.NotEmpty(t, res.BackupPath)
	assert.True(t, strings.HasPrefix(res.BackupPath, headerPath+".bak_"))
	saved, err := os.ReadFile(res.BackupPath)
	require.NoError(t, err)
	assert.Equal(t, original, string(saved))

	assert.NoFileExists(t, headerPath+".lock")
}

func TestAnalyzeAndRenumber_PreservesSurroundingLines(t *testing.T) {
	root := writeTree(t, map[string]string{
		"res/resource.h": "// Copyright\n#pragma once\n\n#define IDD_MAIN 100\n// dialogs\n#define IDC_OK 1\n#define IDC_GONE 7\n\n#ifdef APSTUDIO_INVOKED\n#endif\n",
		"src/dlg.cpp":    "DoModal(IDD_MAIN); GetDlgItem(IDC_OK);\n",
	})

	res, err := newTestCleaner(t, fs.NewFS()).AnalyzeAndRenumber(context.Background(), AnalyzeParams{RootPath: root})
	require.NoError(t, err)

	want := strings.Join([]string{
		"// Copyright",
		"#pragma once",
		"",
		header.BeginMarker,
		"#define IDC_OK    1",
		"#define IDD_MAIN  2",
		header.EndMarker,
		"// dialogs",
		"",
		"#ifdef APSTUDIO_INVOKED",
		"#endif",
	}, "\n") + "\n"
	assert.Equal(t, want, res.Rewritten)
}

func TestAnalyzeAndRenumber_PreservesEncodingAndNewlines(t *testing.T) {
	text := "// hdr\r\n#define A 5\r\n#define B 6\r\n#define C 9\r\n"
	want := "// hdr\r\n" + header.BeginMarker + "\r\n#define A  1\r\n#define B  2\r\n" + header.EndMarker + "\r\n"

	tests := []struct {
		name     string
		encoding textenc.Encoding
	}{
		{name: "utf-8 with bom", encoding: textenc.UTF8BOM},
		{name: "utf-16 little endian", encoding: textenc.UTF16LE},
		{name: "utf-16 big endian", encoding: textenc.UTF16BE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := tt.encoding.Encode(text)
			require.NoError(t, err)

			root := writeTree(t, map[string]string{"app.rc": "CONTROL A, B\r\n"})
			headerPath := filepath.Join(root, "resource.h")
			require.NoError(t, os.WriteFile(headerPath, raw, 0o644))

			res, err := newTestCleaner(t, fs.NewFS()).AnalyzeAndRenumber(context.Background(), AnalyzeParams{
				RootPath: root,
				Apply:    true,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.encoding.String(), res.Encoding)

			got, err := os.ReadFile(headerPath)
			require.NoError(t, err)
			assert.Equal(t, tt.encoding, textenc.Detect(got))

			decoded, _, err := textenc.Decode(got)
			require.NoError(t, err)
			assert.Equal(t, want, decoded)

			saved, err := os.ReadFile(res.BackupPath)
			require.NoError(t, err)
			assert.Equal(t, raw, saved)
		})
	}
}

func TestAnalyzeAndRenumber_UsageRules(t *testing.T) {
	root := writeTree(t, map[string]string{
		"resource.h":        "#define IDR_MAIN 1\n#define IDR_MAINX_ONLY 2\n#define IDS_RC 3\n#define IDS_BIN 4\n#define IDS_STRING 5\n#define IDS_TXT 6\n",
		"a.cpp":             "Load(IDR_MAINX);\nauto s = \"IDS_STRING\";\n",
		"b.h":               "#define USE (IDR_MAIN)\n",
		"app.RC":            "STRINGTABLE { IDS_RC \"x\" }\n",
		"bin/generated.cpp": "IDS_BIN;\n",
		"notes.txt":         "IDS_TXT\n",
	})

	res, err := newTestCleaner(t, fs.NewFS()).AnalyzeAndRenumber(context.Background(), AnalyzeParams{RootPath: root})
	require.NoError(t, err)

	used := make(map[string]bool)
	for _, e := range res.Before {
		used[e.Name] = e.Used
	}
	assert.Equal(t, map[string]bool{
		"IDR_MAIN":       true,
		"IDR_MAINX_ONLY": false,
		"IDS_RC":         true,
		"IDS_BIN":        false,
		"IDS_STRING":     false,
		"IDS_TXT":        false,
	}, used)
	assert.Equal(t, []header.Assignment{{Name: "IDR_MAIN", NewValue: 1}, {Name: "IDS_RC", NewValue: 2}}, res.After)
}

func TestAnalyzeAndRenumber_MaxFileSize(t *testing.T) {
	root := writeTree(t, map[string]string{
		"resource.h": "#define IDC_BIG 1\n",
		"big.cpp":    "IDC_BIG;" + strings.Repeat(" ", 100) + "\n",
	})

	rc := newTestCleaner(t, fs.NewFS())

	res, err := rc.AnalyzeAndRenumber(context.Background(), AnalyzeParams{RootPath: root, MaxFileSizeBytes: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, res.KeptDefines)
	assert.Equal(t, 0, res.FilesScanned)

	res, err = rc.AnalyzeAndRenumber(context.Background(), AnalyzeParams{RootPath: root})
	require.NoError(t, err)
	assert.Equal(t, 1, res.KeptDefines)
}

func TestAnalyzeAndRenumber_ParallelMatchesSequential(t *testing.T) {
	files := map[string]string{}
	var defs strings.Builder
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&defs, "#define IDC_SYM%02d %d\n", i, 1000+i)
		if i%3 != 0 {
			files[fmt.Sprintf("src/f%02d.cpp", i)] = fmt.Sprintf("Use(IDC_SYM%02d);\n", i)
		}
	}
	files["resource.h"] = defs.String()
	root := writeTree(t, files)

	rc := newTestCleaner(t, fs.NewFS())
	sequential, err := rc.AnalyzeAndRenumber(context.Background(), AnalyzeParams{RootPath: root, Workers: 1})
	require.NoError(t, err)
	parallel, err := rc.AnalyzeAndRenumber(context.Background(), AnalyzeParams{RootPath: root, Workers: 8})
	require.NoError(t, err)

	assert.Equal(t, sequential.Before, parallel.Before)
	assert.Equal(t, sequential.After, parallel.After)
	assert.Equal(t, sequential.TotalDefines, sequential.KeptDefines+sequential.RemovedDefines)
}

func TestAnalyzeAndRenumber_ExplicitHeader(t *testing.T) {
	headerDir := writeTree(t, map[string]string{"custom.h": "#define ID_X 10\n#define ID_Y 11\n"})
	root := writeTree(t, map[string]string{"main.cpp": "ID_Y\n"})

	res, err := newTestCleaner(t, fs.NewFS()).AnalyzeAndRenumber(context.Background(), AnalyzeParams{
		RootPath:   root,
		HeaderPath: filepath.Join(headerDir, "custom.h"),
	})
	require.NoError(t, err)
	assert.Equal(t, []header.Assignment{{Name: "ID_Y", NewValue: 1}}, res.After)
}

func TestAnalyzeAndRenumber_Duplicates(t *testing.T) {
	root := writeTree(t, map[string]string{
		"resource.h": "#define IDC_A 1\n#define IDC_B 2\n#define IDC_A 3\n",
		"main.cpp":   "IDC_A IDC_B\n",
	})
	rc := newTestCleaner(t, fs.NewFS())

	_, err := rc.AnalyzeAndRenumber(context.Background(), AnalyzeParams{RootPath: root})
	assert.ErrorIs(t, err, ErrDuplicateDefinition)
	assert.ErrorContains(t, err, "IDC_A")

	res, err := rc.AnalyzeAndRenumber(context.Background(), AnalyzeParams{RootPath: root, AllowDuplicates: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"IDC_A"}, res.Duplicates)
	assert.Equal(t, 2, res.TotalDefines)
	assert.Equal(t, []renumber.Entry{
		{Name: "IDC_B", OldValue: 2, Used: true},
		{Name: "IDC_A", OldValue: 3, Used: true},
	}, res.Before)
	assert.Equal(t, header.BeginMarker+"\n#define IDC_A  1\n#define IDC_B  2\n"+header.EndMarker+"\n", res.Rewritten)
}

func TestAnalyzeAndRenumber_Errors(t *testing.T) {
	file := writeTree(t, map[string]string{"plain.txt": "x"})

	tests := []struct {
		name    string
		files   map[string]string
		params  func(root string) AnalyzeParams
		wantErr error
	}{
		{
			name:    "empty root",
			params:  func(string) AnalyzeParams { return AnalyzeParams{} },
			wantErr: ErrInvalidRoot,
		},
		{
			name:    "missing root",
			params:  func(root string) AnalyzeParams { return AnalyzeParams{RootPath: filepath.Join(root, "nope")} },
			wantErr: ErrInvalidRoot,
		},
		{
			name:    "root is a file",
			params:  func(string) AnalyzeParams { return AnalyzeParams{RootPath: filepath.Join(file, "plain.txt")} },
			wantErr: ErrInvalidRoot,
		},
		{
			name:    "no header",
			files:   map[string]string{"main.cpp": "x"},
			params:  func(root string) AnalyzeParams { return AnalyzeParams{RootPath: root} },
			wantErr: ErrHeaderNotFound,
		},
		{
			name:  "explicit header missing",
			files: map[string]string{"resource.h": "#define A 1\n"},
			params: func(root string) AnalyzeParams {
				return AnalyzeParams{RootPath: root, HeaderPath: filepath.Join(root, "other.h")}
			},
			wantErr: ErrHeaderNotFound,
		},
		{
			name:    "header without definitions",
			files:   map[string]string{"resource.h": "// empty\n#define NAME_ONLY\n#define STR \"x\"\n"},
			params:  func(root string) AnalyzeParams { return AnalyzeParams{RootPath: root} },
			wantErr: ErrNoDefinitionsFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writeTree(t, tt.files)

			res, err := newTestCleaner(t, fs.NewFS()).AnalyzeAndRenumber(context.Background(), tt.params(root))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, res)
		})
	}
}

// collidingFS reports every backup target as already present.
type collidingFS struct {
	fs.FS
}

func (c collidingFS) CopyFileExclusive(_, dst string) error {
	return fmt.Errorf("%w: %s", fs.ErrFileExists, dst)
}

func TestAnalyzeAndRenumber_BackupCollision(t *testing.T) {
	original := "#define IDC_A 5\n#define IDC_B 6\n"
	root := writeTree(t, map[string]string{"resource.h": original, "main.cpp": "IDC_A\n"})

	_, err := newTestCleaner(t, collidingFS{FS: fs.NewFS()}).AnalyzeAndRenumber(context.Background(), AnalyzeParams{
		RootPath: root,
		Apply:    true,
	})
	assert.ErrorIs(t, err, ErrBackupAlreadyExists)

	got, err := os.ReadFile(filepath.Join(root, "resource.h"))
	require.NoError(t, err)
	assert.Equal(t, original, string(got))
}

func TestAnalyzeAndRenumber_Cancelled(t *testing.T) {
	root := writeTree(t, map[string]string{"resource.h": "#define A 1\n", "main.cpp": "A\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestCleaner(t, fs.NewFS()).AnalyzeAndRenumber(ctx, AnalyzeParams{RootPath: root})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzeAndRenumber_UsesConfigFile(t *testing.T) {
	root := writeTree(t, map[string]string{
		"Res.H":    "#define IDC_A 1\n#define IDC_B 2\n",
		"main.txt": "IDC_A\n",
	})
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[scan]\nextensions = [\".txt\"]\n\n[header]\nfile_name = \"res.h\"\n"), 0o644))

	deps := dependencies.New().WithConfig(config.NewManager(configPath))
	rc, err := NewResourceCleaner(NewResourceCleanerParams{Dependencies: deps})
	require.NoError(t, err)

	res, err := rc.AnalyzeAndRenumber(context.Background(), AnalyzeParams{RootPath: root})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "Res.H"), res.HeaderPath)
	assert.Equal(t, []header.Assignment{{Name: "IDC_A", NewValue: 1}}, res.After)
}
