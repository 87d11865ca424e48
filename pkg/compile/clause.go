// Package compile turns a parsed search query into parameterized SQL.
//
// Three compilation targets share the term-condition builders: a row-level
// boolean condition for filtering the results table directly, an
// entity-level subquery selecting device ids whose rows collectively
// satisfy the query, and two recon variants matching against a derived
// hostname or the raw URL text. Every user-supplied literal travels
// through the Params map; only parameter names appear in SQL text.
package compile

import (
	"strconv"

	"github.com/leapstack-labs/credsift/pkg/dialect"
)

// Clause pairs a SQL fragment with the values to bind into it. Condition
// is never empty: an empty query compiles to the match-all "1=1".
type Clause struct {
	Condition string
	Params    map[string]any
}

// matchAll is the deliberate default-permissive clause for empty queries.
const matchAll = "1=1"

// paramSet allocates namespaced parameter keys in term order, so the same
// query always compiles to byte-identical SQL.
type paramSet struct {
	d      *dialect.Dialect
	params map[string]any
	n      int
}

func newParamSet(d *dialect.Dialect) *paramSet {
	return &paramSet{d: d, params: map[string]any{}}
}

// add binds a value under a fresh key and returns its placeholder.
func (p *paramSet) add(v string) string {
	name := "p" + strconv.Itoa(p.n)
	p.n++
	p.params[name] = v
	return p.d.Placeholder(name)
}

func (p *paramSet) clause(condition string) Clause {
	return Clause{Condition: condition, Params: p.params}
}
