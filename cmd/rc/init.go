package main

import (
	"fmt"

	"github.com/lerenn/resource-cleaner/cmd/rc/internal/cli"
	rescleaner "github.com/lerenn/resource-cleaner/pkg/resource-cleaner"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	var force bool
	var nonInteractive bool

	initCmd := &cobra.Command{
		Use:   "init [--force] [--non-interactive]",
		Short: "Write the default configuration",
		Long: `Write the default configuration file, asking where to put it unless --non-interactive is set.

Flags:
  --force            Overwrite an existing configuration file
  --non-interactive  Use the path given by --config (or the default path) without asking`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc, err := cli.NewResourceCleaner()
			if err != nil {
				return err
			}

			if err := rc.Init(rescleaner.InitOpts{Force: force, NonInteractive: nonInteractive}); err != nil {
				return err
			}

			if !cli.Quiet {
				fmt.Fprintln(cmd.OutOrStdout(), "rc initialized successfully!")
			}
			return nil
		},
	}

	// Add flags
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")
	initCmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Do not prompt for the configuration path")

	return initCmd
}
