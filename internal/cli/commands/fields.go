package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/credsift/pkg/query"
	"github.com/spf13/cobra"
)

// NewFieldsCommand creates the fields command.
func NewFieldsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the recognized field aliases",
		Long:  `List every field: alias the search language recognizes, with the column each one targets.`,
		Run: func(cmd *cobra.Command, _ []string) {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"alias", "field", "column"})
			for _, alias := range query.Aliases() {
				kind, _ := query.ResolveField(alias)
				t.AppendRow(table.Row{alias, kind.String(), kind.Column()})
			}
			t.Render()
		},
	}
}
