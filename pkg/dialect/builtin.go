package dialect

import "fmt"

// builtinClickHouse targets ClickHouse, the engine the production
// credential store runs on. countIf and domain() are native; the regex
// fallback covers URLs domain() rejects (missing scheme, stray ports).
var builtinClickHouse = New("clickhouse").
	Placeholders(func(name string) string { return fmt.Sprintf("{%s:String}", name) }).
	CountIf(func(cond string) string { return fmt.Sprintf("countIf(%s)", cond) }).
	HostExpr(func(urlCol string) string {
		return fmt.Sprintf(
			"if(domain(%s) != '', domain(%s), extract(%s, '^(?:[a-z]+://)?([^/:]+)'))",
			urlCol, urlCol, urlCol,
		)
	}).
	Build()

// builtinStandard is an ANSI-ish dialect for engines with FILTER support
// and :name binding. Also the most readable form for golden tests.
var builtinStandard = New("standard").Build()

var builtinSQLite = New("sqlite").Build()

var builtinPostgres = New("postgres").
	Placeholders(func(name string) string { return "@" + name }).
	Like("ILIKE").
	HostExpr(func(urlCol string) string {
		return fmt.Sprintf("substring(%s from '://([^/:]+)')", urlCol)
	}).
	Build()

var builtinDuckDB = New("duckdb").
	Placeholders(func(name string) string { return "$" + name }).
	Like("ILIKE").
	HostExpr(func(urlCol string) string {
		return fmt.Sprintf("regexp_extract(%s, '://([^/:]+)', 1)", urlCol)
	}).
	Build()

func init() {
	Register(builtinClickHouse)
	Register(builtinStandard)
	Register(builtinSQLite)
	Register(builtinPostgres)
	Register(builtinDuckDB)
	SetDefault(builtinClickHouse)
}
