package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lerenn/resource-cleaner/cmd/rc/internal/cli"
	"github.com/lerenn/resource-cleaner/pkg/report"
	rescleaner "github.com/lerenn/resource-cleaner/pkg/resource-cleaner"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// analyzeFlags holds the flags shared by analyze and apply.
type analyzeFlags struct {
	header          string
	maxSize         int64
	workers         int
	pick            bool
	diff            bool
	allowDuplicates bool
}

func (f *analyzeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.header, "header", "", "Use this header instead of searching the root for it")
	cmd.Flags().Int64Var(&f.maxSize, "max-size", 0, "Skip files larger than this many bytes (0 uses the configuration)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Number of files scanned concurrently (0 uses the configuration)")
	cmd.Flags().BoolVar(&f.pick, "pick", false, "Choose the root folder interactively")
	cmd.Flags().BoolVar(&f.diff, "diff", false, "Show a unified diff of the header")
	cmd.Flags().BoolVar(&f.allowDuplicates, "allow-duplicates", false,
		"Accept symbols declared more than once, the last declaration winning")
}

func (f *analyzeFlags) params(root string) rescleaner.AnalyzeParams {
	return rescleaner.AnalyzeParams{
		RootPath:         root,
		HeaderPath:       f.header,
		MaxFileSizeBytes: f.maxSize,
		Workers:          f.workers,
		AllowDuplicates:  f.allowDuplicates,
	}
}

func createAnalyzeCmd() *cobra.Command {
	var flags analyzeFlags

	analyzeCmd := &cobra.Command{
		Use:   "analyze [root] [--header <path>] [--max-size <bytes>] [--workers <n>] [--pick] [--diff]",
		Short: "Report unused resource identifiers without changing anything",
		Long: `Locate the resource header under the root, search every source file for its symbols
and report which ones are unused together with the renumbering that apply would write.

Examples:
  rc analyze
  rc analyze ./MyProject --diff
  rc analyze --pick
  rc analyze ./MyProject --header ./MyProject/res/resource.h --workers 8`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := cli.NewResourceCleaner()
			if err != nil {
				return err
			}

			root, err := resolveRoot(rc, args, flags.pick)
			if err != nil {
				return err
			}

			res, err := rc.AnalyzeAndRenumber(cmd.Context(), flags.params(root))
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), res, flags.diff)
		},
	}

	flags.register(analyzeCmd)

	return analyzeCmd
}

// resolveRoot returns the root given on the command line, or asks for one
// when --pick is set or when no root is given on an interactive terminal.
func resolveRoot(rc rescleaner.ResourceCleaner, args []string, pick bool) (string, error) {
	start := "."
	if len(args) > 0 {
		start = args[0]
	}

	if pick || (len(args) == 0 && isInteractive()) {
		return rc.SelectRoot(start)
	}

	return start, nil
}

func isInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// printResult writes the report, and the header diff when asked to.
func printResult(w io.Writer, res *rescleaner.Result, withDiff bool) error {
	if cli.Quiet {
		return nil
	}

	if err := report.Summary(w, res); err != nil {
		return err
	}
	if err := report.Table(w, res); err != nil {
		return err
	}

	if !withDiff {
		return nil
	}

	diff, err := report.Diff(res)
	if err != nil {
		return fmt.Errorf("failed to compute diff: %w", err)
	}
	if diff == "" {
		_, err = fmt.Fprintln(w, "Header unchanged.")
		return err
	}
	_, err = io.WriteString(w, report.ColorDiff(diff))
	return err
}
