package commands

import (
	"github.com/leapstack-labs/credsift/pkg/query"
	"github.com/spf13/cobra"
)

// NewCompileCommand creates the compile command.
func NewCompileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compile <query>",
		Short: "Compile a search query into a row-level SQL condition",
		Long: `Compile a search query into a parameterized WHERE condition over the
credentials table.

The search language supports OR (comma), AND (+), NOT (leading dash),
exact match (double quotes), wildcards (*), and field scoping
(field:value). Bare terms are routed to the configured default field.`,
		Example: `  # Find credentials for a domain or any of its subdomains
  credsift compile "example.com"

  # Users on either of two mail providers, excluding a noisy domain
  credsift compile "u:*@gmail.com, u:*@proton.me, -spam.dev"

  # Exact email, JSON output
  credsift compile '"admin@example.com"' --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext()

			parsed := query.Parse(args[0])
			cc.Logger.Debug("parsed query",
				"groups", len(parsed.Groups),
				"terms", len(parsed.Terms),
				"and_groups", parsed.HasAndGroups,
				"field_prefixes", parsed.HasFieldPrefixes,
			)

			clause := cc.Compiler.RowCondition(parsed, cc.defaultField())
			return renderClause(cmd.OutOrStdout(), clause, cc.Cfg.Format)
		},
	}
}
