package scanner

import (
	"context"
	"regexp"
	"sync/atomic"

	"github.com/lerenn/resource-cleaner/pkg/fs"
	"github.com/lerenn/resource-cleaner/pkg/logger"
	"github.com/lerenn/resource-cleaner/pkg/strip"
	"github.com/lerenn/resource-cleaner/pkg/textenc"
	"golang.org/x/sync/errgroup"
)

// Options configures a Scanner.
type Options struct {
	// Workers is the number of files processed concurrently. Values below 2
	// select the sequential scan.
	Workers int
	// DisableEarlyExit keeps reading files after every symbol is used.
	DisableEarlyExit bool
}

// Stats summarizes a scan.
type Stats struct {
	// Scanned counts files read and searched.
	Scanned int
	// Skipped counts files that could not be read or decoded.
	Skipped int
	// EarlyExit is set when the scan stopped before the last file.
	EarlyExit bool
}

// Scanner searches stripped source files for whole-word symbol occurrences.
type Scanner struct {
	fs      fs.FS
	logger  logger.Logger
	options Options
}

// NewParams contains parameters for creating a new Scanner instance.
type NewParams struct {
	FS      fs.FS
	Logger  logger.Logger
	Options Options
}

// New creates a new Scanner.
func New(params NewParams) *Scanner {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &Scanner{fs: params.FS, logger: log, options: params.Options}
}

// matcher is a compiled whole-word pattern for one symbol.
type matcher struct {
	name string
	re   *regexp.Regexp
}

func compileMatchers(usage *Usage) []matcher {
	names := usage.Names()
	matchers := make([]matcher, len(names))
	for i, name := range names {
		matchers[i] = matcher{name: name, re: regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)}
	}
	return matchers
}

// Scan marks every name occurring as a whole word in the stripped text of
// any of files. Unreadable files are skipped. The returned error is only
// ever the cancellation of ctx.
func (s *Scanner) Scan(ctx context.Context, files, names []string) (*Usage, Stats, error) {
	usage := NewUsage(names)
	matchers := compileMatchers(usage)

	if s.options.Workers > 1 {
		stats, err := s.scanParallel(ctx, files, usage, matchers)
		return usage, stats, err
	}
	stats, err := s.scanSequential(ctx, files, usage, matchers)
	return usage, stats, err
}

func (s *Scanner) scanSequential(ctx context.Context, files []string, usage *Usage, matchers []matcher) (Stats, error) {
	var stats Stats

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		if !s.scanFile(file, usage, matchers) {
			stats.Skipped++
			continue
		}
		stats.Scanned++

		if !s.options.DisableEarlyExit && usage.AllUsed() {
			stats.EarlyExit = i < len(files)-1
			return stats, nil
		}
	}

	return stats, nil
}

func (s *Scanner) scanParallel(ctx context.Context, files []string, usage *Usage, matchers []matcher) (Stats, error) {
	// done is cancelled once every symbol is used, independently of ctx.
	done, stop := context.WithCancel(ctx)
	defer stop()

	var scanned, skipped atomic.Int64
	var stopped atomic.Bool

	g, gctx := errgroup.WithContext(done)
	g.SetLimit(s.options.Workers)

	for _, file := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			if !s.scanFile(file, usage, matchers) {
				skipped.Add(1)
				return nil
			}
			scanned.Add(1)
			if !s.options.DisableEarlyExit && usage.AllUsed() {
				stopped.Store(true)
				stop()
			}
			return nil
		})
	}
	_ = g.Wait()

	stats := Stats{
		Scanned: int(scanned.Load()),
		Skipped: int(skipped.Load()),
	}
	stats.EarlyExit = stopped.Load() && stats.Scanned+stats.Skipped < len(files)

	if err := ctx.Err(); err != nil {
		return stats, err
	}
	return stats, nil
}

// scanFile reads, decodes and strips file, then marks the unused symbols it
// mentions. It returns false when the file could not be read or decoded.
func (s *Scanner) scanFile(file string, usage *Usage, matchers []matcher) bool {
	raw, err := s.fs.ReadFile(file)
	if err != nil {
		s.logger.Logf("Skipping unreadable file %s: %v", file, err)
		return false
	}

	text, _, err := textenc.Decode(raw)
	if err != nil {
		s.logger.Logf("Skipping undecodable file %s: %v", file, err)
		return false
	}

	stripped := strip.Strip(text)
	for _, m := range matchers {
		if usage.IsUsed(m.name) {
			continue
		}
		if m.re.MatchString(stripped) {
			usage.Mark(m.name)
		}
	}
	return true
}
