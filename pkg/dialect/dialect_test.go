package dialect_test

import (
	"testing"

	"github.com/leapstack-labs/credsift/pkg/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryBuiltins(t *testing.T) {
	assert.Equal(t, []string{"clickhouse", "duckdb", "postgres", "sqlite", "standard"}, dialect.List())

	d, ok := dialect.Get("ClickHouse")
	require.True(t, ok, "lookup is case-insensitive")
	assert.Equal(t, "clickhouse", d.Name)

	_, ok = dialect.Get("oracle")
	assert.False(t, ok)

	require.NotNil(t, dialect.Default())
	assert.Equal(t, "clickhouse", dialect.Default().Name)
}

func TestPlaceholderStyles(t *testing.T) {
	tests := []struct {
		dialect string
		want    string
	}{
		{"clickhouse", "{p0:String}"},
		{"standard", ":p0"},
		{"sqlite", ":p0"},
		{"postgres", "@p0"},
		{"duckdb", "$p0"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			d, ok := dialect.Get(tt.dialect)
			require.True(t, ok)
			assert.Equal(t, tt.want, d.Placeholder("p0"))
		})
	}
}

func TestCountIf(t *testing.T) {
	ch, _ := dialect.Get("clickhouse")
	assert.Equal(t, "countIf(domain = {p0:String})", ch.CountIf("domain = {p0:String}"))

	std, _ := dialect.Get("standard")
	assert.Equal(t, "count(*) FILTER (WHERE domain = :p0)", std.CountIf("domain = :p0"))
}

func TestLikeOperator(t *testing.T) {
	ch, _ := dialect.Get("clickhouse")
	assert.Equal(t, "LIKE", ch.Like())

	pg, _ := dialect.Get("postgres")
	assert.Equal(t, "ILIKE", pg.Like())

	dd, _ := dialect.Get("duckdb")
	assert.Equal(t, "ILIKE", dd.Like())
}

func TestHostExpr(t *testing.T) {
	ch, _ := dialect.Get("clickhouse")
	assert.Equal(t,
		"if(domain(url) != '', domain(url), extract(url, '^(?:[a-z]+://)?([^/:]+)'))",
		ch.HostExpr("url"))

	pg, _ := dialect.Get("postgres")
	assert.Equal(t, "substring(url from '://([^/:]+)')", pg.HostExpr("url"))

	dd, _ := dialect.Get("duckdb")
	assert.Equal(t, "regexp_extract(url, '://([^/:]+)', 1)", dd.HostExpr("url"))

	// The portable fallback strips the scheme and cuts at the first slash.
	std, _ := dialect.Get("standard")
	expr := std.HostExpr("url")
	assert.Contains(t, expr, "replace(replace(url, 'https://', ''), 'http://', '')")
	assert.Contains(t, expr, "instr(")
}

func TestBuilderDefaults(t *testing.T) {
	d := dialect.New("custom").Build()
	assert.Equal(t, ":x", d.Placeholder("x"))
	assert.Equal(t, "count(*) FILTER (WHERE 1=1)", d.CountIf("1=1"))
	assert.Equal(t, "LIKE", d.Like())
}
