package walker

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lerenn/resource-cleaner/pkg/fs"
	"github.com/lerenn/resource-cleaner/pkg/logger"
)

// DefaultMaxFileSize is the default size ceiling for candidate files, in bytes.
const DefaultMaxFileSize int64 = 5_000_000

// DefaultExtensions lists the native source extensions scanned for symbol usage.
var DefaultExtensions = []string{
	".c", ".cc", ".cpp", ".cxx", ".h", ".hpp", ".inl",
	".rc", ".rc2", ".idl", ".mc", ".def", ".asm",
}

// DefaultSkipDirs lists the version-control, build-output and IDE-cache
// directory names pruned from the walk.
var DefaultSkipDirs = []string{
	"bin", "obj", ".git", ".github", ".vs", "node_modules", "packages",
	"Debug", "Release", "x64", "x86", "arm", "arm64",
}

// Options configures a Walker. Lookup sets are built once by New.
type Options struct {
	Extensions  []string
	SkipDirs    []string
	MaxFileSize int64
}

// Walker traverses a directory tree depth-first, best effort.
type Walker struct {
	fs          fs.FS
	logger      logger.Logger
	extensions  map[string]bool
	skipDirs    map[string]bool
	maxFileSize int64
}

// NewParams contains parameters for creating a new Walker instance.
type NewParams struct {
	FS      fs.FS
	Logger  logger.Logger
	Options Options
}

// New creates a new Walker. Empty option fields fall back to the defaults.
func New(params NewParams) *Walker {
	opts := params.Options
	if len(opts.Extensions) == 0 {
		opts.Extensions = DefaultExtensions
	}
	if len(opts.SkipDirs) == 0 {
		opts.SkipDirs = DefaultSkipDirs
	}
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = DefaultMaxFileSize
	}

	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	return &Walker{
		fs:          params.FS,
		logger:      log,
		extensions:  lowerSet(opts.Extensions),
		skipDirs:    lowerSet(opts.SkipDirs),
		maxFileSize: opts.MaxFileSize,
	}
}

func lowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = true
	}
	return set
}

// Walk calls fn for every file under root, pruning deny-listed directories
// below root. Unreadable directories are skipped. Walk stops early when fn
// returns false or ctx is done, and returns ctx.Err() in the latter case.
func (w *Walker) Walk(ctx context.Context, root string, fn func(path string, entry os.DirEntry) bool) error {
	stack := []string{root}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := w.fs.ReadDir(dir)
		if err != nil {
			w.logger.Logf("Skipping unreadable directory %s: %v", dir, err)
			continue
		}

		var subdirs []string
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				if w.skipDirs[strings.ToLower(entry.Name())] {
					continue
				}
				subdirs = append(subdirs, path)
				continue
			}
			if !fn(path, entry) {
				return nil
			}
		}

		// Pushed in reverse so that subdirectories pop in name order.
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	return nil
}

// Candidates returns the files under root that may reference symbols:
// allow-listed extension, within the size ceiling, and not the header
// being analyzed.
func (w *Walker) Candidates(ctx context.Context, root, headerPath string) ([]string, error) {
	var files []string

	err := w.Walk(ctx, root, func(path string, entry os.DirEntry) bool {
		if !w.extensions[strings.ToLower(filepath.Ext(path))] {
			return true
		}

		info, err := entry.Info()
		if err != nil {
			w.logger.Logf("Skipping %s: %v", path, err)
			return true
		}
		if info.Size() > w.maxFileSize {
			w.logger.Logf("Skipping %s: %d bytes exceeds %d", path, info.Size(), w.maxFileSize)
			return true
		}

		if headerPath != "" {
			same, err := w.fs.SamePath(path, headerPath)
			if err == nil && same {
				return true
			}
		}

		files = append(files, path)
		return true
	})

	return files, err
}

// FindHeader returns the file named name (case-insensitive) under root with
// the shortest full path, the most likely top-level header. Equal lengths
// are ordered lexicographically.
func (w *Walker) FindHeader(ctx context.Context, root, name string) (string, error) {
	var matches []string

	err := w.Walk(ctx, root, func(path string, _ os.DirEntry) bool {
		if strings.EqualFold(filepath.Base(path), name) {
			matches = append(matches, path)
		}
		return true
	})
	if err != nil {
		return "", err
	}

	if len(matches) == 0 {
		return "", ErrHeaderNotFound
	}

	sort.Slice(matches, func(i, j int) bool {
		if len(matches[i]) != len(matches[j]) {
			return len(matches[i]) < len(matches[j])
		}
		return matches[i] < matches[j]
	})

	return matches[0], nil
}
