// Package dialect describes the SQL surface the compilers target.
//
// The search compiler needs three things from an engine: a named-parameter
// placeholder syntax, a pattern-match operator, and a conditional count
// aggregate for entity-level searches. The recon compiler additionally
// needs a hostname-extraction expression over a URL column. Builtin
// dialects cover ClickHouse (the production engine), ANSI-ish engines
// with FILTER support, Postgres, DuckDB, and SQLite.
package dialect

import "fmt"

// Dialect is an immutable description of one engine's SQL surface.
// Instances are built once, registered at init, and never mutated.
type Dialect struct {
	Name string

	placeholder func(name string) string
	countIf     func(cond string) string
	hostExpr    func(urlCol string) string
	like        string
}

// Placeholder renders the named-parameter placeholder for a bound value.
// Only the name is interpolated into SQL text; values always travel
// through the bind map.
func (d *Dialect) Placeholder(name string) string {
	return d.placeholder(name)
}

// CountIf renders a conditional count aggregate over cond.
func (d *Dialect) CountIf(cond string) string {
	return d.countIf(cond)
}

// HostExpr renders an expression extracting the hostname from a URL column.
func (d *Dialect) HostExpr(urlCol string) string {
	return d.hostExpr(urlCol)
}

// Like returns the engine's pattern-match operator.
func (d *Dialect) Like() string {
	return d.like
}

// Builder assembles a Dialect. Unset hooks fall back to ANSI-ish defaults.
type Builder struct {
	d Dialect
}

// New starts building a dialect with the given name.
func New(name string) *Builder {
	return &Builder{d: Dialect{Name: name, like: "LIKE"}}
}

// Placeholders sets the named-parameter renderer.
func (b *Builder) Placeholders(fn func(name string) string) *Builder {
	b.d.placeholder = fn
	return b
}

// CountIf sets the conditional count renderer.
func (b *Builder) CountIf(fn func(cond string) string) *Builder {
	b.d.countIf = fn
	return b
}

// HostExpr sets the hostname-extraction renderer.
func (b *Builder) HostExpr(fn func(urlCol string) string) *Builder {
	b.d.hostExpr = fn
	return b
}

// Like sets the pattern-match operator.
func (b *Builder) Like(op string) *Builder {
	b.d.like = op
	return b
}

// Build finalizes the dialect, filling in defaults for unset hooks.
func (b *Builder) Build() *Dialect {
	d := b.d
	if d.placeholder == nil {
		d.placeholder = func(name string) string { return ":" + name }
	}
	if d.countIf == nil {
		d.countIf = func(cond string) string {
			return fmt.Sprintf("count(*) FILTER (WHERE %s)", cond)
		}
	}
	if d.hostExpr == nil {
		d.hostExpr = stringHostExpr
	}
	return &d
}

// stringHostExpr extracts a hostname using only portable string functions:
// strip the scheme with replace(), then cut at the first slash. Port
// suffixes are left in place; engines with regex support override this.
func stringHostExpr(urlCol string) string {
	stripped := fmt.Sprintf("replace(replace(%s, 'https://', ''), 'http://', '')", urlCol)
	return fmt.Sprintf(
		"CASE WHEN instr(%s, '/') > 0 THEN substr(%s, 1, instr(%s, '/') - 1) ELSE %s END",
		stripped, stripped, stripped, stripped,
	)
}
