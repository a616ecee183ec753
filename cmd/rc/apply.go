package main

import (
	"fmt"

	"github.com/lerenn/resource-cleaner/cmd/rc/internal/cli"
	"github.com/lerenn/resource-cleaner/pkg/opener"
	"github.com/lerenn/resource-cleaner/pkg/prompt"
	"github.com/spf13/cobra"
)

func createApplyCmd() *cobra.Command {
	var flags analyzeFlags
	var yes bool
	var openHeader bool
	var openerName string

	applyCmd := &cobra.Command{
		Use:   "apply [root] [--yes] [--open] [--opener <name>]",
		Short: "Drop unused resource identifiers and renumber the header",
		Long: `Run the analysis, then back up the header next to itself and rewrite it with the
unused symbols removed and the others renumbered from 1.

Examples:
  rc apply ./MyProject
  rc apply ./MyProject --yes
  rc apply --pick --diff
  rc apply ./MyProject --yes --open`,
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
			params := flags.params(root)

			if !yes {
				preview, err := rc.AnalyzeAndRenumber(cmd.Context(), params)
				if err != nil {
					return err
				}
				if err := printResult(cmd.OutOrStdout(), preview, flags.diff); err != nil {
					return err
				}

				confirmed, err := prompt.NewPrompt().PromptForConfirmation(
					fmt.Sprintf("Rewrite %s?", preview.HeaderPath), false)
				if err != nil {
					return err
				}
				if !confirmed {
					return ErrApplyCancelled
				}
				params.HeaderPath = preview.HeaderPath
			}

			params.Apply = true
			params.OpenHeader = openHeader
			params.OpenerName = openerName

			res, err := rc.AnalyzeAndRenumber(cmd.Context(), params)
			if err != nil {
				return err
			}

			if yes {
				if err := printResult(cmd.OutOrStdout(), res, flags.diff); err != nil {
					return err
				}
			} else if !cli.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Header rewritten, backup at %s\n", res.BackupPath)
			}
			return nil
		},
	}

	flags.register(applyCmd)
	applyCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Rewrite without asking for confirmation")
	applyCmd.Flags().BoolVar(&openHeader, "open", false, "Open the rewritten header")
	applyCmd.Flags().StringVar(&openerName, "opener", opener.DefaultOpener, "Opener used by --open")

	return applyCmd
}
