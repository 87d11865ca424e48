// Package query parses the compact credential-search language into a
// structured query model.
//
// The language is intentionally small: comma-separated segments are OR'd
// together, `+` joins terms that must match together (AND), a leading `-`
// negates a whole segment, double quotes force exact matching, `*` is a
// wildcard, and a recognized `field:` prefix scopes a term to one column.
// Parsing never fails; malformed input degrades to a smaller query.
package query

// Operator is the include/exclude polarity of a term or group.
type Operator int

const (
	// Include means matching rows are OR'd into the result.
	Include Operator = iota
	// Exclude means matching rows are AND-NOT'd out of the result.
	Exclude
)

// String returns the string representation of Operator.
func (o Operator) String() string {
	if o == Exclude {
		return "exclude"
	}
	return "include"
}

// MatchType classifies how a term's value is compared.
type MatchType int

const (
	// MatchContains is the default substring/pattern match.
	MatchContains MatchType = iota
	// MatchExact requires the stored value to equal the term exactly.
	// Produced only by quote-delimited tokens.
	MatchExact
	// MatchWildcard is a user pattern containing at least one `*`.
	MatchWildcard
)

// String returns the string representation of MatchType.
func (m MatchType) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchWildcard:
		return "wildcard"
	default:
		return "contains"
	}
}

// SearchTerm is one atomic search value with its match semantics and
// optional field scope. Value is never empty; empty tokens are dropped
// during parsing.
type SearchTerm struct {
	Value string
	Field FieldKind // FieldNone when the term is unscoped
	Op    Operator
	Match MatchType
}

// SearchGroup is a non-empty set of terms combined with AND, all sharing
// the group's polarity. Construction stamps Op onto every contained term,
// overriding any term-local exclude marker.
type SearchGroup struct {
	Terms []SearchTerm
	Op    Operator
}

// ParsedQuery is the canonical in-memory representation consumed by the
// compilers. The split and flattened views are derived from Groups at
// construction and must not be set independently.
type ParsedQuery struct {
	Groups []SearchGroup
	Terms  []SearchTerm

	IncludeGroups []SearchGroup
	ExcludeGroups []SearchGroup
	IncludeTerms  []SearchTerm
	ExcludeTerms  []SearchTerm

	// HasFieldPrefixes is true when at least one term carried a recognized
	// field: prefix.
	HasFieldPrefixes bool
	// HasAndGroups is true iff any include group has more than one term.
	// It selects the aggregate compilation strategy.
	HasAndGroups bool
}

// IsEmpty reports whether the query has no groups at all.
func (q ParsedQuery) IsEmpty() bool {
	return len(q.Groups) == 0
}

// newParsedQuery derives the split and flattened views from groups.
func newParsedQuery(groups []SearchGroup, hasFieldPrefixes bool) ParsedQuery {
	q := ParsedQuery{
		Groups:           groups,
		HasFieldPrefixes: hasFieldPrefixes,
	}
	for _, g := range groups {
		q.Terms = append(q.Terms, g.Terms...)
		if g.Op == Exclude {
			q.ExcludeGroups = append(q.ExcludeGroups, g)
			q.ExcludeTerms = append(q.ExcludeTerms, g.Terms...)
			continue
		}
		q.IncludeGroups = append(q.IncludeGroups, g)
		q.IncludeTerms = append(q.IncludeTerms, g.Terms...)
		if len(g.Terms) > 1 {
			q.HasAndGroups = true
		}
	}
	return q
}
