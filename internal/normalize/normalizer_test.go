package normalize_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/pgload/internal/dataset"
	"github.com/vvka-141/pgload/internal/normalize"
	"github.com/vvka-141/pgload/internal/schema"
	"github.com/vvka-141/pgload/pkg/pgload"
)

func mustSchema(t *testing.T, ddl string) *schema.Schema {
	t.Helper()
	sch, err := schema.Parse(ddl)
	require.NoError(t, err)
	return sch
}

func mustDataset(t *testing.T, csv string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.ReadString(csv)
	require.NoError(t, err)
	return ds
}

func TestNormalize_ProjectionAndOrder(t *testing.T) {
	sch := mustSchema(t, "CREATE TABLE emp (salary NUMERIC, name TEXT);")
	ds := mustDataset(t, "name,department,salary\nAlice,Eng,50000\n")

	result, err := normalize.Normalize(ds, sch)
	require.NoError(t, err)

	// Schema order, not csv order; extra csv columns dropped.
	assert.Equal(t, []string{"salary", "name"}, result.Columns)
	require.Equal(t, 1, result.Len())
	assert.Equal(t, []any{float64(50000), "Alice"}, result.Rows[0])
}

func TestNormalize_MissingColumnFails(t *testing.T) {
	sch := mustSchema(t, "CREATE TABLE emp (salary INTEGER);")
	ds := mustDataset(t, "name\nAlice\n")

	_, err := normalize.Normalize(ds, sch)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pgload.ErrMissingColumn), "expected ErrMissingColumn, got: %v", err)
	assert.Contains(t, err.Error(), "salary")
}

func TestNormalize_RowCountInvariance(t *testing.T) {
	sch := mustSchema(t, "CREATE TABLE emp (id INTEGER);")
	ds := mustDataset(t, "id\n1\nnot-a-number\n\n3\n")

	result, err := normalize.Normalize(ds, sch)
	require.NoError(t, err)
	assert.Equal(t, ds.Len(), result.Len())
}

func TestNormalize_SentinelToNull(t *testing.T) {
	sch := mustSchema(t, "CREATE TABLE emp (a TEXT, b INTEGER, c BOOLEAN, d DATE);")
	ds := mustDataset(t, "a,b,c,d\nNot Provided,Not Provided,,\n")

	result, err := normalize.Normalize(ds, sch)
	require.NoError(t, err)

	for c := range result.Columns {
		assert.Nil(t, result.Rows[0][c], "column %d should be NULL", c)
	}
}

func TestNormalize_NumericTolerance(t *testing.T) {
	sch := mustSchema(t, "CREATE TABLE emp (salary INTEGER, rate FLOAT);")
	ds := mustDataset(t, "salary,rate\nN/A,oops\n50000,1.25\n50000.0,NaN\n")

	result, err := normalize.Normalize(ds, sch)
	require.NoError(t, err)

	assert.Nil(t, result.Rows[0][0])
	assert.Nil(t, result.Rows[0][1])

	assert.Equal(t, int64(50000), result.Rows[1][0])
	assert.Equal(t, 1.25, result.Rows[1][1])

	// Whole numbers serialized with a decimal point still load as integers;
	// a parsed NaN is a missing value, not a float.
	assert.Equal(t, int64(50000), result.Rows[2][0])
	assert.Nil(t, result.Rows[2][1])
}

func TestNormalize_IntegerOverflowBecomesNull(t *testing.T) {
	sch := mustSchema(t, "CREATE TABLE emp (id BIGINT);")
	ds := mustDataset(t, "id\n100000000000000000000.0\n-100000000000000000000.0\nInf\n9223372036854775807\n")

	result, err := normalize.Normalize(ds, sch)
	require.NoError(t, err)

	// Whole-number floats outside int64 range are missing values, not
	// whatever int64(f) happens to produce.
	assert.Nil(t, result.Rows[0][0])
	assert.Nil(t, result.Rows[1][0])
	assert.Nil(t, result.Rows[2][0])
	assert.Equal(t, int64(math.MaxInt64), result.Rows[3][0])
}

func TestNormalize_InfinityBecomesNull(t *testing.T) {
	sch := mustSchema(t, "CREATE TABLE emp (rate NUMERIC);")
	ds := mustDataset(t, "rate\nInf\n-Infinity\n+Inf\n1.25\n")

	result, err := normalize.Normalize(ds, sch)
	require.NoError(t, err)

	assert.Nil(t, result.Rows[0][0])
	assert.Nil(t, result.Rows[1][0])
	assert.Nil(t, result.Rows[2][0])
	assert.Equal(t, 1.25, result.Rows[3][0])
}

func TestNormalize_BooleanLiterals(t *testing.T) {
	sch := mustSchema(t, "CREATE TABLE emp (active BOOLEAN);")
	ds := mustDataset(t, "active\ntrue\nTRUE\nt\nyes\n1\nfalse\nf\nno\n0\nmaybe\n")

	result, err := normalize.Normalize(ds, sch)
	require.NoError(t, err)

	want := []any{true, true, true, true, true, false, false, false, false, nil}
	for i, w := range want {
		assert.Equal(t, w, result.Rows[i][0], "row %d", i)
	}
}

func TestNormalize_Dates(t *testing.T) {
	sch := mustSchema(t, "CREATE TABLE emp (hired DATE);")
	ds := mustDataset(t, "hired\n2024-03-15\n2024-03-15 10:30:00\n03/15/2024\nnot a date\n")

	result, err := normalize.Normalize(ds, sch)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), result.Rows[0][0])
	assert.Equal(t, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), result.Rows[1][0])
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), result.Rows[2][0])
	assert.Nil(t, result.Rows[3][0])
}

func TestNormalize_PassthroughUnchanged(t *testing.T) {
	sch := mustSchema(t, "CREATE TABLE emp (tags VARCHAR(64));")
	ds := mustDataset(t, "tags\n\"{a,b}\"\n")

	result, err := normalize.Normalize(ds, sch)
	require.NoError(t, err)
	assert.Equal(t, "{a,b}", result.Rows[0][0])
}

// End-to-end shape of the documented example: the second row's salary is
// the missing-value sentinel and its active cell is empty; both load as NULL.
func TestNormalize_EndToEndExample(t *testing.T) {
	sch := mustSchema(t, "CREATE TABLE emp (id INTEGER, name TEXT, salary NUMERIC, active BOOLEAN);")
	ds := mustDataset(t, "id,name,salary,active\n1,Alice,50000,true\n2,Bob,Not Provided,\n")

	result, err := normalize.Normalize(ds, sch)
	require.NoError(t, err)
	require.Equal(t, 2, result.Len())

	assert.Equal(t, []any{int64(1), "Alice", float64(50000), true}, result.Rows[0])
	assert.Equal(t, []any{int64(2), "Bob", nil, nil}, result.Rows[1])
}

func TestResult_NullCount(t *testing.T) {
	sch := mustSchema(t, "CREATE TABLE emp (salary INTEGER);")
	ds := mustDataset(t, "salary\n100\nNot Provided\nbogus\n")

	result, err := normalize.Normalize(ds, sch)
	require.NoError(t, err)
	assert.Equal(t, 2, result.NullCount(0))
}
