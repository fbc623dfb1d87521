package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/pgload/internal/dataset"
)

func TestRead_HeaderAndRecords(t *testing.T) {
	ds, err := dataset.ReadString("id,name,salary\n1,Alice,50000\n2,Bob,60000\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "salary"}, ds.Header)
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, []string{"1", "Alice", "50000"}, ds.Records[0])
	assert.Equal(t, []string{"2", "Bob", "60000"}, ds.Records[1])
}

func TestRead_QuotedFields(t *testing.T) {
	ds, err := dataset.ReadString("id,name\n1,\"Doe, Jane\"\n2,\"He said \"\"hi\"\"\"\n")
	require.NoError(t, err)

	require.Equal(t, 2, ds.Len())
	assert.Equal(t, "Doe, Jane", ds.Records[0][1])
	assert.Equal(t, `He said "hi"`, ds.Records[1][1])
}

func TestRead_HeaderOnly(t *testing.T) {
	ds, err := dataset.ReadString("id,name\n")
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
}

func TestRead_Empty(t *testing.T) {
	_, err := dataset.ReadString("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestRead_RaggedRecord(t *testing.T) {
	_, err := dataset.ReadString("id,name\n1,Alice,extra\n")
	assert.Error(t, err)
}

func TestColumnIndex(t *testing.T) {
	ds, err := dataset.ReadString("id,name,salary\n")
	require.NoError(t, err)

	idx, ok := ds.ColumnIndex("salary")
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = ds.ColumnIndex("missing")
	assert.False(t, ok)
}

func TestColumnIndex_DuplicateHeaderFirstWins(t *testing.T) {
	ds, err := dataset.ReadString("id,id\n1,2\n")
	require.NoError(t, err)

	idx, ok := ds.ColumnIndex("id")
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}
