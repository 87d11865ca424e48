package query_test

import (
	"testing"

	"github.com/leapstack-labs/credsift/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", ",", ", ,", "+", "-", `""`, "- , +"} {
		t.Run("input "+raw, func(t *testing.T) {
			q := query.Parse(raw)
			assert.True(t, q.IsEmpty())
			assert.Empty(t, q.Groups)
			assert.Empty(t, q.Terms)
			assert.False(t, q.HasAndGroups)
			assert.False(t, q.HasFieldPrefixes)
		})
	}
}

func TestParseOrSegments(t *testing.T) {
	q := query.Parse("a.com, b.com")

	require.Len(t, q.Groups, 2)
	require.Len(t, q.IncludeGroups, 2)
	assert.Empty(t, q.ExcludeGroups)
	assert.False(t, q.HasAndGroups)

	for i, want := range []string{"a.com", "b.com"} {
		g := q.Groups[i]
		require.Len(t, g.Terms, 1)
		assert.Equal(t, want, g.Terms[0].Value)
		assert.Equal(t, query.Include, g.Terms[0].Op)
		assert.Equal(t, query.MatchContains, g.Terms[0].Match)
	}
}

func TestParseAndGroup(t *testing.T) {
	q := query.Parse("a.com + b.com")

	require.Len(t, q.Groups, 1)
	require.Len(t, q.Groups[0].Terms, 2)
	assert.True(t, q.HasAndGroups)
	assert.Equal(t, "a.com", q.Groups[0].Terms[0].Value)
	assert.Equal(t, "b.com", q.Groups[0].Terms[1].Value)
}

func TestParseNotGroup(t *testing.T) {
	q := query.Parse("-spam.com")

	require.Len(t, q.Groups, 1)
	require.Len(t, q.ExcludeGroups, 1)
	assert.Empty(t, q.IncludeGroups)
	assert.False(t, q.HasAndGroups, "exclude groups never count as AND groups")

	g := q.ExcludeGroups[0]
	assert.Equal(t, query.Exclude, g.Op)
	require.Len(t, g.Terms, 1)
	assert.Equal(t, "spam.com", g.Terms[0].Value)
	assert.Equal(t, query.Exclude, g.Terms[0].Op)
}

func TestParseGroupOperatorStampsTerms(t *testing.T) {
	// A segment-level NOT overrides term-local markers: every term in the
	// group carries the group's polarity.
	q := query.Parse("-a.com + -b.com + c.com")

	require.Len(t, q.Groups, 1)
	g := q.Groups[0]
	assert.Equal(t, query.Exclude, g.Op)
	require.Len(t, g.Terms, 3)
	for _, term := range g.Terms {
		assert.Equal(t, query.Exclude, term.Op)
	}
	assert.Equal(t, []string{"a.com", "b.com", "c.com"},
		[]string{g.Terms[0].Value, g.Terms[1].Value, g.Terms[2].Value})
}

func TestParseTermLocalExcludeInsideIncludeGroup(t *testing.T) {
	// The include group stamps its polarity over the term-local dash.
	q := query.Parse("a.com + -b.com")

	require.Len(t, q.Groups, 1)
	assert.Equal(t, query.Include, q.Groups[0].Op)
	require.Len(t, q.Groups[0].Terms, 2)
	assert.Equal(t, "b.com", q.Groups[0].Terms[1].Value)
	assert.Equal(t, query.Include, q.Groups[0].Terms[1].Op)
}

func TestParseMatchTypes(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		value string
		match query.MatchType
	}{
		{"bare token is contains", "admin", "admin", query.MatchContains},
		{"quoted token is exact", `"admin@example.com"`, "admin@example.com", query.MatchExact},
		{"star makes wildcard", "admin*@gmail.com", "admin*@gmail.com", query.MatchWildcard},
		{"quoted star stays exact", `"admin*"`, "admin*", query.MatchExact},
		{"unbalanced quote is literal", `"admin`, `"admin`, query.MatchContains},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := query.Parse(tt.raw)
			require.Len(t, q.Terms, 1)
			assert.Equal(t, tt.value, q.Terms[0].Value)
			assert.Equal(t, tt.match, q.Terms[0].Match)
		})
	}
}

func TestParseFieldPrefixes(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		value     string
		field     query.FieldKind
		match     query.MatchType
		hasPrefix bool
	}{
		{"domain prefix", "domain:example.com", "example.com", query.FieldDomain, query.MatchContains, true},
		{"short alias", "d:example.com", "example.com", query.FieldDomain, query.MatchContains, true},
		{"case-insensitive alias", "DOMAIN:example.com", "example.com", query.FieldDomain, query.MatchContains, true},
		{"user alias", "u:bob", "bob", query.FieldIdentity, query.MatchContains, true},
		{"password alias", "pass:hunter2", "hunter2", query.FieldSecret, query.MatchContains, true},
		{"browser alias", "b:chrome", "chrome", query.FieldBrowser, query.MatchContains, true},
		{"url field keeps scheme value", "url:https://a.com/x", "https://a.com/x", query.FieldURL, query.MatchContains, true},
		{"quoted field value is exact", `domain:"exact.com"`, "exact.com", query.FieldDomain, query.MatchExact, true},
		{"wildcard field value", "domain:*.example.com", "*.example.com", query.FieldDomain, query.MatchWildcard, true},
		{"unknown prefix stays literal", "host:example.com", "host:example.com", query.FieldNone, query.MatchContains, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := query.Parse(tt.raw)
			require.Len(t, q.Terms, 1)
			term := q.Terms[0]
			assert.Equal(t, tt.value, term.Value)
			assert.Equal(t, tt.field, term.Field)
			assert.Equal(t, tt.match, term.Match)
			assert.Equal(t, tt.hasPrefix, q.HasFieldPrefixes)
		})
	}
}

func TestParseExactBypassesFieldDetection(t *testing.T) {
	// Quote-delimited tokens commit to the literal string, so the prefix
	// is part of the searched value rather than a scope.
	q := query.Parse(`"domain:example.com"`)

	require.Len(t, q.Terms, 1)
	assert.Equal(t, "domain:example.com", q.Terms[0].Value)
	assert.Equal(t, query.FieldNone, q.Terms[0].Field)
	assert.Equal(t, query.MatchExact, q.Terms[0].Match)
	assert.False(t, q.HasFieldPrefixes)
}

func TestParseDropsEmptyTerms(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty field value vanishes", "domain:, a.com", []string{"a.com"}},
		{"quoted empty vanishes", `"" , a.com`, []string{"a.com"}},
		{"dash part vanishes", "a.com + -", []string{"a.com"}},
		{"empty and-part vanishes", "a.com + + b.com", []string{"a.com", "b.com"}},
		{"fully empty group is dropped", "- , b.com", []string{"b.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := query.Parse(tt.raw)
			var got []string
			for _, term := range q.Terms {
				got = append(got, term.Value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDerivedViewsAreConsistent(t *testing.T) {
	q := query.Parse("a.com + b.com, u:carol, -spam.com, -x.com + y.com")

	assert.Len(t, q.Groups, 4)
	assert.Len(t, q.IncludeGroups, 2)
	assert.Len(t, q.ExcludeGroups, 2)
	assert.Len(t, q.Terms, 6)
	assert.Len(t, q.IncludeTerms, 3)
	assert.Len(t, q.ExcludeTerms, 3)
	assert.True(t, q.HasAndGroups)
	assert.True(t, q.HasFieldPrefixes)

	// Every term's operator equals its owning group's operator.
	for _, g := range q.Groups {
		for _, term := range g.Terms {
			assert.Equal(t, g.Op, term.Op)
		}
	}
}

func TestParseExcludeOnlyAndGroupDoesNotSetHasAndGroups(t *testing.T) {
	q := query.Parse("-a.com + b.com")

	require.Len(t, q.ExcludeGroups, 1)
	assert.Len(t, q.ExcludeGroups[0].Terms, 2)
	assert.False(t, q.HasAndGroups)
}
