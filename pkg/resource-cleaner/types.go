package rescleaner

import (
	"github.com/lerenn/resource-cleaner/pkg/header"
	"github.com/lerenn/resource-cleaner/pkg/renumber"
	"github.com/lerenn/resource-cleaner/pkg/scanner"
)

// AnalyzeParams contains parameters for AnalyzeAndRenumber.
type AnalyzeParams struct {
	// RootPath is the directory tree searched for symbol usage.
	RootPath string
	// HeaderPath overrides the header located under RootPath.
	HeaderPath string
	// Apply rewrites the header after backing it up. Otherwise nothing is written.
	Apply bool
	// MaxFileSizeBytes skips larger files. Zero or less uses the configured ceiling.
	MaxFileSizeBytes int64
	// Workers overrides the configured scan concurrency when positive.
	Workers int
	// AllowDuplicates accepts repeated names, the last declaration winning.
	// The configured header.allow_duplicates also enables it.
	AllowDuplicates bool
	// OpenHeader opens the rewritten header once the apply succeeded.
	OpenHeader bool
	// OpenerName selects the opener used by OpenHeader.
	OpenerName string
}

// Result is the outcome of one analysis.
type Result struct {
	HeaderPath     string
	TotalDefines   int
	RemovedDefines int
	KeptDefines    int
	// Before lists every definition in declaration order with its usage.
	Before []renumber.Entry
	// After lists the kept symbols with their new values, in byte-wise name order.
	After []header.Assignment
	// BackupPath is empty unless the header was rewritten.
	BackupPath string
	// Duplicates lists names declared more than once and resolved last-wins.
	Duplicates []string
	// Encoding is the header's text encoding, kept on rewrite.
	Encoding string
	Scan     scanner.Stats
	// FilesScanned counts the candidate files handed to the scanner.
	FilesScanned int
	// Original and Rewritten are the decoded header text before and after.
	Original  string
	Rewritten string
}

// OpenParams contains parameters for Open.
type OpenParams struct {
	Path       string
	OpenerName string
}

// InitOpts contains optional parameters for Init.
type InitOpts struct {
	Force          bool
	NonInteractive bool
}
