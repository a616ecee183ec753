// Package main provides the command-line interface for the resource cleaner.
package main

import (
	"log"

	"github.com/lerenn/resource-cleaner/cmd/rc/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rc",
		Short: "Resource Cleaner - resource header renumbering",
		Long: `Find the resource identifiers of a Windows resource header that no source file ` +
			`references anymore, drop them and renumber the others.`,
		SilenceUsage: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")

	// Add subcommands
	rootCmd.AddCommand(createAnalyzeCmd(), createApplyCmd(), createOpenCmd(), createInitCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
