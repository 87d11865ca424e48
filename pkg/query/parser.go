package query

import (
	"regexp"
	"strings"
)

// fieldPrefixRe matches a field:value token. The field name is resolved
// against the alias table; unknown names leave the colon inside the value.
var fieldPrefixRe = regexp.MustCompile(`^(\w+):(.*)$`)

// Parse converts a raw search string into a ParsedQuery. It never fails:
// empty segments and empty terms are dropped silently, unknown field
// prefixes stay part of the literal value, and an unbalanced quote is
// treated as an ordinary character.
func Parse(raw string) ParsedQuery {
	var groups []SearchGroup
	var hasFieldPrefixes bool

	for _, segment := range strings.Split(raw, ",") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		op := Include
		if strings.HasPrefix(segment, "-") && len(segment) > 1 {
			op = Exclude
			segment = segment[1:]
		}

		var terms []SearchTerm
		for _, part := range strings.Split(segment, "+") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			term, hadField, ok := parseTerm(part)
			if !ok {
				continue
			}
			// The group polarity always wins over a term-local marker.
			term.Op = op
			if hadField {
				hasFieldPrefixes = true
			}
			terms = append(terms, term)
		}
		if len(terms) == 0 {
			continue
		}
		groups = append(groups, SearchGroup{Terms: terms, Op: op})
	}

	return newParsedQuery(groups, hasFieldPrefixes)
}

// parseTerm converts one AND-part into a term. The second result reports
// whether a field prefix was recognized; the third is false when the
// token reduces to nothing and must be dropped.
func parseTerm(raw string) (SearchTerm, bool, bool) {
	term := SearchTerm{Op: Include}

	if strings.HasPrefix(raw, "-") {
		term.Op = Exclude
		raw = raw[1:]
	}

	var hadField bool
	if isQuoted(raw) {
		// Exact tokens commit to the literal string: field prefix
		// detection is skipped, so "domain:x" searches for domain:x.
		term.Match = MatchExact
		raw = raw[1 : len(raw)-1]
	} else {
		if m := fieldPrefixRe.FindStringSubmatch(raw); m != nil {
			if kind, ok := ResolveField(m[1]); ok {
				term.Field = kind
				hadField = true
				raw = m[2]
				// The scoped value may itself be quoted: domain:"exact.com".
				if isQuoted(raw) {
					term.Match = MatchExact
					raw = raw[1 : len(raw)-1]
				}
			}
		}
		if term.Match != MatchExact && strings.Contains(raw, "*") {
			term.Match = MatchWildcard
		}
	}

	if raw == "" {
		return SearchTerm{}, hadField, false
	}
	term.Value = raw
	return term, hadField, true
}

// isQuoted reports whether the token is wrapped in a pair of double quotes.
func isQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}
