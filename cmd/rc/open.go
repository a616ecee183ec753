package main

import (
	"fmt"
	"log"

	"github.com/lerenn/resource-cleaner/cmd/rc/internal/cli"
	"github.com/lerenn/resource-cleaner/pkg/opener"
	rescleaner "github.com/lerenn/resource-cleaner/pkg/resource-cleaner"
	"github.com/spf13/cobra"
)

func createOpenCmd() *cobra.Command {
	var openerName string

	openCmd := &cobra.Command{
		Use:   "open <path> [--opener <name>]",
		Short: "Open a file or folder with the system default application",
		Long: `Open a file or folder, typically the resource header or its backup, with an external application.

Examples:
  rc open ./MyProject/resource.h
  rc open ./MyProject --opener ` + opener.DefaultOpener,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			rc, err := cli.NewResourceCleaner()
			if err != nil {
				return err
			}

			if err := rc.Open(rescleaner.OpenParams{Path: args[0], OpenerName: openerName}); err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}

			// Only log success message in verbose mode
			if cli.Verbose {
				log.Printf("Opened %s", args[0])
			}
			return nil
		},
	}

	openCmd.Flags().StringVarP(&openerName, "opener", "o", opener.DefaultOpener, "Opener to use")

	return openCmd
}
