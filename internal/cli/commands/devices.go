package commands

import (
	"github.com/leapstack-labs/credsift/pkg/query"
	"github.com/spf13/cobra"
)

// NewDevicesCommand creates the devices command.
func NewDevicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devices <query>",
		Short: "Compile a search query into a device-level subquery",
		Long: `Compile a search query into a SELECT body yielding the device ids whose
credential rows collectively satisfy the query.

Unlike the row-level condition, a +-group here means "the device has some
row matching each term", so the terms may be satisfied by different rows
of the same device. Queries without +-groups compile to a plain DISTINCT
filter instead of the grouped form.`,
		Example: `  # Devices that logged into both services
  credsift devices "corp-vpn.example.com + mail.example.com"

  # Devices with a gmail identity but no Chrome captures
  credsift devices "u:*@gmail.com, -b:chrome"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext()

			parsed := query.Parse(args[0])
			cc.Logger.Debug("parsed query",
				"groups", len(parsed.Groups),
				"strategy", strategyName(parsed),
			)

			clause := cc.Compiler.AggregateSubquery(parsed, cc.defaultField(), cc.Cfg.EntityColumn, cc.Cfg.Table)
			return renderClause(cmd.OutOrStdout(), clause, cc.Cfg.Format)
		},
	}
	return cmd
}

func strategyName(parsed query.ParsedQuery) string {
	if parsed.HasAndGroups {
		return "aggregate"
	}
	return "distinct"
}
