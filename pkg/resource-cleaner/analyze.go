package rescleaner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lerenn/resource-cleaner/pkg/backup"
	"github.com/lerenn/resource-cleaner/pkg/config"
	"github.com/lerenn/resource-cleaner/pkg/header"
	"github.com/lerenn/resource-cleaner/pkg/renumber"
	"github.com/lerenn/resource-cleaner/pkg/resource-cleaner/consts"
	"github.com/lerenn/resource-cleaner/pkg/scanner"
	"github.com/lerenn/resource-cleaner/pkg/textenc"
	"github.com/lerenn/resource-cleaner/pkg/walker"
)

// AnalyzeAndRenumber finds the unused symbols of a header and computes the
// renumbering of the others, rewriting the header when params.Apply is set.
func (r *realResourceCleaner) AnalyzeAndRenumber(ctx context.Context, params AnalyzeParams) (*Result, error) {
	operation := consts.Analyze
	if params.Apply {
		operation = consts.Apply
	}

	hookParams := map[string]interface{}{
		"rootPath":         params.RootPath,
		"headerPath":       params.HeaderPath,
		"apply":            params.Apply,
		"maxFileSizeBytes": params.MaxFileSizeBytes,
		"workers":          params.Workers,
		"allowDuplicates":  params.AllowDuplicates,
		"openHeader":       params.OpenHeader,
		"openerName":       params.OpenerName,
	}

	var result *Result
	err := r.executeWithHooks(operation, hookParams, func(results map[string]interface{}) error {
		var err error
		result, err = r.analyzeAndRenumber(ctx, params)
		if err != nil {
			return err
		}

		results["headerPath"] = result.HeaderPath
		results["totalDefines"] = result.TotalDefines
		results["keptDefines"] = result.KeptDefines
		results["removedDefines"] = result.RemovedDefines
		results["backupPath"] = result.BackupPath
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// analyzeAndRenumber runs the pipeline: validate root, locate and parse the
// header, scan candidates, renumber, then optionally back up and rewrite.
func (r *realResourceCleaner) analyzeAndRenumber(ctx context.Context, params AnalyzeParams) (*Result, error) {
	cfg, err := r.getConfig()
	if err != nil {
		return nil, err
	}
	r.applyOverrides(&cfg, params)

	if err := r.validateRoot(params.RootPath); err != nil {
		return nil, err
	}

	w := walker.New(walker.NewParams{
		FS:     r.deps.FS,
		Logger: r.deps.Logger,
		Options: walker.Options{
			Extensions:  cfg.Scan.Extensions,
			SkipDirs:    cfg.Scan.SkipDirs,
			MaxFileSize: cfg.Scan.MaxFileSize,
		},
	})

	headerPath, err := r.locateHeader(ctx, w, params, cfg.Header.FileName)
	if err != nil {
		return nil, err
	}
	r.VerbosePrint("Using header %s", headerPath)

	doc, err := r.readHeader(headerPath)
	if err != nil {
		return nil, err
	}

	parsed, err := header.Parse(doc.lines)
	if err != nil {
		return nil, translateError(err)
	}

	duplicates := parsed.Duplicates()
	if len(duplicates) > 0 && !cfg.Header.AllowDuplicates {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateDefinition, strings.Join(duplicates, ", "))
	}
	defs := parsed.Unique()
	r.VerbosePrint("Parsed %d definitions from %s", len(defs), headerPath)

	files, err := w.Candidates(ctx, params.RootPath, headerPath)
	if err != nil {
		return nil, err
	}
	r.VerbosePrint("Found %d candidate files under %s", len(files), params.RootPath)

	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}

	s := scanner.New(scanner.NewParams{
		FS:      r.deps.FS,
		Logger:  r.deps.Logger,
		Options: scanner.Options{Workers: cfg.Scan.Workers},
	})
	usage, stats, err := s.Scan(ctx, files, names)
	if err != nil {
		return nil, err
	}
	r.VerbosePrint("Scanned %d files (%d skipped, early exit: %t)", stats.Scanned, stats.Skipped, stats.EarlyExit)

	plan := renumber.Compute(defs, usage)
	rewritten := textenc.JoinLines(header.Rewrite(doc.lines, plan.After), doc.newline)

	result := &Result{
		HeaderPath:     headerPath,
		TotalDefines:   plan.Total,
		RemovedDefines: plan.Removed,
		KeptDefines:    plan.Kept,
		Before:         plan.Before,
		After:          plan.After,
		Duplicates:     duplicates,
		Encoding:       doc.encoding.String(),
		Scan:           stats,
		FilesScanned:   len(files),
		Original:       doc.text,
		Rewritten:      rewritten,
	}
	r.VerbosePrint("Kept %d of %d definitions, removed %d", plan.Kept, plan.Total, plan.Removed)

	if !params.Apply {
		return result, nil
	}

	backupPath, err := r.applyRewrite(headerPath, doc, rewritten)
	if err != nil {
		return nil, err
	}
	result.BackupPath = backupPath

	return result, nil
}

// applyOverrides lets call parameters take precedence over the configuration.
func (r *realResourceCleaner) applyOverrides(cfg *config.Config, params AnalyzeParams) {
	if params.MaxFileSizeBytes > 0 {
		cfg.Scan.MaxFileSize = params.MaxFileSizeBytes
	}
	if params.Workers > 0 {
		cfg.Scan.Workers = params.Workers
	}
	if params.AllowDuplicates {
		cfg.Header.AllowDuplicates = true
	}
}

// validateRoot checks that root names an existing directory.
func (r *realResourceCleaner) validateRoot(root string) error {
	if strings.TrimSpace(root) == "" {
		return ErrInvalidRoot
	}

	isDir, err := r.deps.FS.IsDir(root)
	if err != nil || !isDir {
		return fmt.Errorf("%w: %s", ErrInvalidRoot, root)
	}

	return nil
}

// locateHeader returns the explicit header path when given, otherwise the
// shallowest file named fileName under the root.
func (r *realResourceCleaner) locateHeader(
	ctx context.Context, w *walker.Walker, params AnalyzeParams, fileName string) (string, error) {
	if params.HeaderPath == "" {
		path, err := w.FindHeader(ctx, params.RootPath, fileName)
		if err != nil {
			return "", translateError(err)
		}
		return path, nil
	}

	exists, err := r.deps.FS.Exists(params.HeaderPath)
	if err != nil {
		return "", fmt.Errorf("failed to check header %s: %w", params.HeaderPath, err)
	}
	isDir, err := r.deps.FS.IsDir(params.HeaderPath)
	if !exists || err != nil || isDir {
		return "", fmt.Errorf("%w: %s", ErrHeaderNotFound, params.HeaderPath)
	}

	return params.HeaderPath, nil
}

// headerDocument is the decoded header with what is needed to write it back.
type headerDocument struct {
	text     string
	lines    []string
	encoding textenc.Encoding
	newline  string
}

func (r *realResourceCleaner) readHeader(path string) (*headerDocument, error) {
	raw, err := r.deps.FS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read header %s: %w", path, err)
	}

	text, enc, err := textenc.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode header %s: %w", path, err)
	}

	return &headerDocument{
		text:     text,
		lines:    textenc.SplitLines(text),
		encoding: enc,
		newline:  textenc.Newline(text),
	}, nil
}

// translateError maps the errors of the building blocks to this package's sentinels.
func translateError(err error) error {
	switch {
	case errors.Is(err, walker.ErrHeaderNotFound):
		return fmt.Errorf("%w: %w", ErrHeaderNotFound, err)
	case errors.Is(err, header.ErrNoDefinitionsFound):
		return fmt.Errorf("%w: %w", ErrNoDefinitionsFound, err)
	case errors.Is(err, backup.ErrBackupAlreadyExists):
		return fmt.Errorf("%w: %w", ErrBackupAlreadyExists, err)
	default:
		return err
	}
}
