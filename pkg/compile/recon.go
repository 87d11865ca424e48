package compile

import (
	"fmt"

	"github.com/leapstack-labs/credsift/pkg/query"
)

// ReconMode selects which recon surface terms are matched against.
type ReconMode int

const (
	// ReconDomainOnly matches terms against a hostname derived from the
	// URL column, with subdomain-aware Contains semantics.
	ReconDomainOnly ReconMode = iota
	// ReconFullURL matches terms against the raw URL text.
	ReconFullURL
)

// String returns the string representation of ReconMode.
func (m ReconMode) String() string {
	if m == ReconFullURL {
		return "url"
	}
	return "domain"
}

// ReconCondition compiles the query into a row-level condition for recon
// contexts. Include/exclude assembly and exact/wildcard/contains handling
// are identical to RowCondition; only the matched expression differs.
func (c *Compiler) ReconCondition(q query.ParsedQuery, mode ReconMode) Clause {
	ps := newParamSet(c.d)
	term := c.reconURLTerm
	if mode == ReconDomainOnly {
		term = c.reconHostTerm
	}
	return ps.clause(c.assemble(ps, q, term))
}

// reconHostTerm matches against the extracted hostname. Contains mode
// accepts the host itself or any subdomain of it.
func (c *Compiler) reconHostTerm(ps *paramSet, t query.SearchTerm) string {
	host := c.d.HostExpr(query.FieldURL.Column())
	v := query.NormalizeDomain(t.Value)

	switch t.Match {
	case query.MatchExact:
		return fmt.Sprintf("%s = %s", host, ps.add(v))
	case query.MatchWildcard:
		return fmt.Sprintf("%s %s %s", host, c.d.Like(), ps.add(translateWildcards(v)))
	default:
		return fmt.Sprintf("(%s = %s OR %s %s %s)",
			host, ps.add(v),
			host, c.d.Like(), ps.add("%."+v),
		)
	}
}

// reconURLTerm matches against the raw URL column; values are taken as
// typed, without domain normalization.
func (c *Compiler) reconURLTerm(ps *paramSet, t query.SearchTerm) string {
	return c.columnCondition(ps, query.FieldURL.Column(), t)
}
