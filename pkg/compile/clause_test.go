package compile_test

import (
	"database/sql/driver"
	"regexp"
	"sort"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/leapstack-labs/credsift/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClauseBindsAllParams drives a compiled clause through database/sql
// to prove the parameter contract: every placeholder in the SQL text has
// a binding, and nothing else is needed to execute it.
func TestClauseBindsAllParams(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	c := std(t)
	clause := c.RowCondition(query.Parse("a.com + u:bob, -spam.com"), query.FieldDomain)

	stmt := "SELECT device_id FROM credentials WHERE " + clause.Condition

	mock.ExpectQuery(regexp.QuoteMeta(stmt)).
		WithArgs(anyArgs(len(clause.Params))...).
		WillReturnRows(sqlmock.NewRows([]string{"device_id"}))

	rows, err := db.Query(stmt, namedArgs(clause)...)
	require.NoError(t, err)
	require.NoError(t, rows.Err())
	_ = rows.Close()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func anyArgs(n int) []driver.Value {
	args := make([]driver.Value, n)
	for i := range args {
		args[i] = sqlmock.AnyArg()
	}
	return args
}

// TestClauseParamKeysAreStable pins the deterministic p0..pN naming the
// idempotence law relies on.
func TestClauseParamKeysAreStable(t *testing.T) {
	c := std(t)
	clause := c.RowCondition(query.Parse("u:bob, p:hunter2"), query.FieldIdentity)

	keys := make([]string, 0, len(clause.Params))
	for k := range clause.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	assert.Equal(t, []string{"p0", "p1"}, keys)
}
