package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timberline-data/timber/pkg/dtype"
)

func sampleFrame(t *testing.T) *DataFrame {
	t.Helper()
	df, err := NewDataFrame(dtype.FamilyNative,
		NewColumn("id", dtype.Int64, []any{int64(1), int64(2), int64(3)}),
		NewColumn("name", dtype.Object, []any{"ann", "bob", "cay"}),
	)
	require.NoError(t, err)
	return df
}

func TestNewDataFrame_Validation(t *testing.T) {
	_, err := NewDataFrame(dtype.FamilyNative,
		NewColumn("id", dtype.Int64, []any{int64(1)}),
		NewColumn("id", dtype.Object, []any{"x"}),
	)
	assert.ErrorContains(t, err, "duplicate column name: id")

	_, err = NewDataFrame(dtype.FamilyNative,
		NewColumn("id", dtype.Int64, []any{int64(1), int64(2)}),
		NewColumn("name", dtype.Object, []any{"x"}),
	)
	assert.ErrorContains(t, err, "expected 2")
}

func TestDataFrame_Accessors(t *testing.T) {
	df := sampleFrame(t)

	assert.Equal(t, 2, df.NumCols())
	assert.Equal(t, 3, df.NumRows())
	assert.Equal(t, []string{"id", "name"}, df.ColumnNames())
	assert.Equal(t, dtype.FamilyNative, df.Family())

	col, ok := df.Column("name")
	require.True(t, ok)
	assert.Equal(t, "bob", col.At(1))

	_, ok = df.Column("missing")
	assert.False(t, ok)
}

func TestDataFrame_SetColumn(t *testing.T) {
	df := sampleFrame(t)

	err := df.SetColumn(NewColumn("id", dtype.Float64, []any{1.0, 2.0, 3.0}))
	require.NoError(t, err)
	col, _ := df.Column("id")
	assert.Equal(t, dtype.Float64, col.Dtype())

	err = df.SetColumn(NewColumn("missing", dtype.Int64, []any{int64(1), int64(2), int64(3)}))
	assert.ErrorContains(t, err, "not found")

	err = df.SetColumn(NewColumn("id", dtype.Int64, []any{int64(1)}))
	assert.ErrorContains(t, err, "expected 3")
}

func TestDataFrame_Index(t *testing.T) {
	df := sampleFrame(t)
	assert.Nil(t, df.UnderlyingIndex())

	require.NoError(t, df.SetIndex([]any{int64(1), int64(2), int64(3)}))
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, df.UnderlyingIndex())

	err := df.SetIndex([]any{int64(1)})
	assert.ErrorContains(t, err, "expected 3")
}

func TestDataFrame_Copy(t *testing.T) {
	df := sampleFrame(t)
	require.NoError(t, df.SetIndex([]any{int64(1), int64(2), int64(3)}))

	cp := df.Copy()
	require.NoError(t, cp.SetColumn(NewColumn("id", dtype.Float64, []any{1.0, 2.0, 3.0})))
	require.NoError(t, cp.SetIndex([]any{int64(9), int64(8), int64(7)}))

	// The original is unaffected.
	col, _ := df.Column("id")
	assert.Equal(t, dtype.Int64, col.Dtype())
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, df.UnderlyingIndex())
}

func TestDataFrame_CopyWithoutIndex(t *testing.T) {
	cp := sampleFrame(t).Copy()
	assert.Nil(t, cp.UnderlyingIndex())
}

func TestDataFrame_DropColumn(t *testing.T) {
	df := sampleFrame(t)

	out, err := df.DropColumn("name")
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, out.ColumnNames())
	assert.Equal(t, []string{"id", "name"}, df.ColumnNames())

	_, err = df.DropColumn("missing")
	assert.Error(t, err)
}

func TestDataFrame_RenameColumn(t *testing.T) {
	df := sampleFrame(t)

	out, err := df.RenameColumn("name", "full_name")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "full_name"}, out.ColumnNames())
	col, ok := out.Column("full_name")
	require.True(t, ok)
	assert.Equal(t, "ann", col.At(0))

	_, err = df.RenameColumn("missing", "x")
	assert.Error(t, err)
	_, err = df.RenameColumn("name", "id")
	assert.ErrorContains(t, err, "duplicate column name")
}

func TestColumn_NullCount(t *testing.T) {
	col := NewColumn("vals", dtype.Float64, []any{1.0, nil, 3.0, nil})
	assert.Equal(t, 2, col.NullCount())
}

func TestColumn_ValuesIsACopy(t *testing.T) {
	col := NewColumn("vals", dtype.Int64, []any{int64(1), int64(2)})
	vals := col.Values()
	vals[0] = int64(99)
	assert.Equal(t, int64(1), col.At(0))
}
