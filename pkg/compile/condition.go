package compile

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/credsift/pkg/dialect"
	"github.com/leapstack-labs/credsift/pkg/query"
)

// Compiler compiles parsed queries against one SQL dialect. It holds no
// per-query state and is safe for concurrent use.
type Compiler struct {
	d *dialect.Dialect
}

// New returns a compiler for the given dialect. A nil dialect selects the
// registry default.
func New(d *dialect.Dialect) *Compiler {
	if d == nil {
		d = dialect.Default()
	}
	return &Compiler{d: d}
}

// Dialect returns the dialect the compiler targets.
func (c *Compiler) Dialect() *dialect.Dialect {
	return c.d
}

// termFunc renders one term into a boolean SQL expression, binding its
// literals through ps.
type termFunc func(ps *paramSet, t query.SearchTerm) string

// RowCondition compiles the query into a single boolean expression over
// one row, suitable for a WHERE clause on the results table. Unscoped
// terms are routed by defaultField (query.FieldIdentity for email-like
// searches, query.FieldDomain for domain-like ones).
//
// Terms inside a +-group are AND'd against the same row; use
// AggregateSubquery when "the same device has some row matching each
// term" is wanted instead.
func (c *Compiler) RowCondition(q query.ParsedQuery, defaultField query.FieldKind) Clause {
	ps := newParamSet(c.d)
	cond := c.assemble(ps, q, func(ps *paramSet, t query.SearchTerm) string {
		return c.termCondition(ps, t, defaultField)
	})
	return ps.clause(cond)
}

// assemble OR-joins include groups, AND-NOTs exclude groups, and falls
// back to match-all when the query is empty.
func (c *Compiler) assemble(ps *paramSet, q query.ParsedQuery, term termFunc) string {
	var includes []string
	var multi bool
	for _, g := range q.IncludeGroups {
		part := c.groupCondition(ps, g, term)
		if len(g.Terms) > 1 {
			part = "(" + part + ")"
			multi = true
		}
		includes = append(includes, part)
	}

	var excludes []string
	for _, g := range q.ExcludeGroups {
		excludes = append(excludes, "NOT ("+c.groupCondition(ps, g, term)+")")
	}

	switch {
	case len(includes) == 0 && len(excludes) == 0:
		return matchAll
	case len(excludes) == 0:
		if len(includes) == 1 {
			return includes[0]
		}
		return "(" + strings.Join(includes, " OR ") + ")"
	case len(includes) == 0:
		return strings.Join(excludes, " AND ")
	default:
		inc := strings.Join(includes, " OR ")
		if len(includes) > 1 || !multi {
			inc = "(" + inc + ")"
		}
		return inc + " AND " + strings.Join(excludes, " AND ")
	}
}

// groupCondition AND-joins the term conditions of one group. A group of
// one term stays unwrapped to keep the generated SQL minimal.
func (c *Compiler) groupCondition(ps *paramSet, g query.SearchGroup, term termFunc) string {
	parts := make([]string, 0, len(g.Terms))
	for _, t := range g.Terms {
		parts = append(parts, term(ps, t))
	}
	return strings.Join(parts, " AND ")
}

// termCondition routes a term to its column builder by field scope, or by
// the caller's default for bare terms.
func (c *Compiler) termCondition(ps *paramSet, t query.SearchTerm, defaultField query.FieldKind) string {
	kind := t.Field
	if kind == query.FieldNone {
		kind = defaultField
	}
	if kind == query.FieldDomain {
		return c.domainCondition(ps, t)
	}
	return c.columnCondition(ps, kind.Column(), t)
}

// columnCondition builds a single-column comparison for identity, url,
// browser, and secret terms.
func (c *Compiler) columnCondition(ps *paramSet, col string, t query.SearchTerm) string {
	switch t.Match {
	case query.MatchExact:
		return fmt.Sprintf("%s = %s", col, ps.add(t.Value))
	case query.MatchWildcard:
		return fmt.Sprintf("%s %s %s", col, c.d.Like(), ps.add(translateWildcards(t.Value)))
	default:
		return fmt.Sprintf("%s %s %s", col, c.d.Like(), ps.add("%"+t.Value+"%"))
	}
}

// domainCondition builds the domain-aware comparison. Contains mode ORs
// four shapes so a search for example.com finds rows that stored the bare
// apex domain, a subdomain, or only a full URL embedding either:
//
//	domain = 'example.com'
//	domain ends with '.example.com'
//	url contains '://example.com/' or '://example.com:'
//	url contains '://<sub>.example.com/' or '://<sub>.example.com:'
//
// Exact mode stays narrow: it compares the domain column alone. Wildcard
// patterns are checked against both columns, since a pattern may span a
// host the domain column never captured.
func (c *Compiler) domainCondition(ps *paramSet, t query.SearchTerm) string {
	domainCol := query.FieldDomain.Column()
	urlCol := query.FieldURL.Column()
	v := query.NormalizeDomain(t.Value)
	like := c.d.Like()

	switch t.Match {
	case query.MatchExact:
		return fmt.Sprintf("%s = %s", domainCol, ps.add(v))
	case query.MatchWildcard:
		pattern := translateWildcards(v)
		return fmt.Sprintf("(%s %s %s OR %s %s %s)",
			domainCol, like, ps.add(pattern),
			urlCol, like, ps.add("%"+pattern+"%"),
		)
	default:
		return fmt.Sprintf("(%s = %s OR %s %s %s OR %s %s %s OR %s %s %s OR %s %s %s OR %s %s %s)",
			domainCol, ps.add(v),
			domainCol, like, ps.add("%."+v),
			urlCol, like, ps.add("%://"+v+"/%"),
			urlCol, like, ps.add("%://"+v+":%"),
			urlCol, like, ps.add("%://%."+v+"/%"),
			urlCol, like, ps.add("%://%."+v+":%"),
		)
	}
}

// translateWildcards converts user * wildcards to the engine's
// multi-character pattern wildcard. No other character is altered.
func translateWildcards(v string) string {
	return strings.ReplaceAll(v, "*", "%")
}
