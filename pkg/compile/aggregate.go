package compile

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/credsift/pkg/query"
)

// AggregateSubquery compiles the query into a complete SELECT body that
// yields the entity ids (devices) whose rows collectively satisfy the
// query. entityCol and table come from the caller's schema, never from
// user input.
//
// Two strategies, selected once by ParsedQuery.HasAndGroups:
//
//   - No multi-term include group: no cross-row logic is needed, so a
//     plain SELECT DISTINCT over the row-level condition is emitted.
//   - Otherwise: a pre-filter WHERE ORs every individual term condition
//     (so the engine skips entities matching nothing), then GROUP BY
//     entity with a HAVING built from conditional counts — a +-group
//     holds when each of its terms matched some row of the entity, not
//     necessarily the same row.
//
// For queries without AND groups both strategies select the same entity
// set; the fallback is just the cheaper plan.
func (c *Compiler) AggregateSubquery(q query.ParsedQuery, defaultField query.FieldKind, entityCol, table string) Clause {
	if !q.HasAndGroups {
		row := c.RowCondition(q, defaultField)
		return Clause{
			Condition: fmt.Sprintf("SELECT DISTINCT %s FROM %s WHERE %s", entityCol, table, row.Condition),
			Params:    row.Params,
		}
	}

	ps := newParamSet(c.d)
	term := func(t query.SearchTerm) string {
		return c.termCondition(ps, t, defaultField)
	}

	// Each term condition is rendered once and reused verbatim in the
	// pre-filter and the HAVING, so both bind the same parameters.
	var prefilter []string
	var havingOr []string
	for _, g := range q.IncludeGroups {
		counts := make([]string, 0, len(g.Terms))
		for _, t := range g.Terms {
			cond := term(t)
			prefilter = append(prefilter, cond)
			counts = append(counts, c.d.CountIf(cond)+" > 0")
		}
		part := strings.Join(counts, " AND ")
		if len(counts) > 1 {
			part = "(" + part + ")"
		}
		havingOr = append(havingOr, part)
	}

	var havingNot []string
	for _, t := range q.ExcludeTerms {
		cond := term(t)
		prefilter = append(prefilter, cond)
		havingNot = append(havingNot, "NOT ("+c.d.CountIf(cond)+" > 0)")
	}

	having := strings.Join(havingOr, " OR ")
	if len(havingNot) > 0 {
		if len(havingOr) > 1 {
			having = "(" + having + ")"
		}
		having += " AND " + strings.Join(havingNot, " AND ")
	}

	return ps.clause(fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s GROUP BY %s HAVING %s",
		entityCol, table, strings.Join(prefilter, " OR "), entityCol, having,
	))
}
