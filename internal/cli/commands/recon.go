package commands

import (
	"fmt"

	"github.com/leapstack-labs/credsift/pkg/compile"
	"github.com/leapstack-labs/credsift/pkg/query"
	"github.com/spf13/cobra"
)

// NewReconCommand creates the recon command.
func NewReconCommand() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "recon <query>",
		Short: "Compile a search query into a recon condition",
		Long: `Compile a search query for recon contexts.

In domain mode terms are matched against a hostname extracted from the
URL column, with subdomain-aware semantics. In url mode terms are matched
against the raw URL text.`,
		Example: `  # Hostnames under a target apex
  credsift recon "target.com" --mode domain

  # URLs with interesting path fragments
  credsift recon "reset-password, /admin/" --mode url`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext()

			var reconMode compile.ReconMode
			switch mode {
			case "domain":
				reconMode = compile.ReconDomainOnly
			case "url":
				reconMode = compile.ReconFullURL
			default:
				return fmt.Errorf("unknown mode %q (want domain or url)", mode)
			}

			clause := cc.Compiler.ReconCondition(query.Parse(args[0]), reconMode)
			return renderClause(cmd.OutOrStdout(), clause, cc.Cfg.Format)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "domain", "Match surface: domain or url")
	return cmd
}
