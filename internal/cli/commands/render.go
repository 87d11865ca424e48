package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/credsift/pkg/compile"
)

// renderClause prints a compiled clause in the requested format. The
// table form shows the SQL first and the bindings underneath, sorted by
// key so output is stable.
func renderClause(w io.Writer, clause compile.Clause, format string) error {
	switch format {
	case "json":
		return renderClauseJSON(w, clause)
	case "table", "":
		renderClauseTable(w, clause)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want table or json)", format)
	}
}

func renderClauseJSON(w io.Writer, clause compile.Clause) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Condition string         `json:"condition"`
		Params    map[string]any `json:"params"`
	}{clause.Condition, clause.Params})
}

func renderClauseTable(w io.Writer, clause compile.Clause) {
	_, _ = fmt.Fprintln(w, clause.Condition)

	if len(clause.Params) == 0 {
		_, _ = fmt.Fprintln(w, "(no parameters)")
		return
	}

	keys := make([]string, 0, len(clause.Params))
	for k := range clause.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"param", "value"})
	for _, k := range keys {
		t.AppendRow(table.Row{k, clause.Params[k]})
	}
	t.Render()
}
