package frame

import (
	"testing"

	"github.com/arrowjoin/arrowjoin/internal/datatypes"
	"github.com/arrowjoin/arrowjoin/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDataFrameRejectsMismatchedLengths(t *testing.T) {
	_, err := NewDataFrame(
		series.NewSeries("a", []int64{1, 2}, datatypes.Int64{}),
		series.NewSeries("b", []int64{1, 2, 3}, datatypes.Int64{}),
	)
	assert.Error(t, err)
}

func TestSelectAndDrop(t *testing.T) {
	df, err := NewDataFrame(
		series.NewSeries("a", []int64{1, 2}, datatypes.Int64{}),
		series.NewSeries("b", []int64{3, 4}, datatypes.Int64{}),
		series.NewSeries("c", []int64{5, 6}, datatypes.Int64{}),
	)
	require.NoError(t, err)

	selected, err := df.Select("c", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, selected.Columns())

	dropped, err := df.Drop("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, dropped.Columns())
}

func TestTakeWithNegativeIndexProducesNullRow(t *testing.T) {
	df, err := NewDataFrame(series.NewSeries("a", []int64{10, 20}, datatypes.Int64{}))
	require.NoError(t, err)

	taken, err := df.Take([]int{1, -1, 0})
	require.NoError(t, err)
	require.Equal(t, 3, taken.Height())

	col, err := taken.Column("a")
	require.NoError(t, err)
	assert.True(t, col.IsNull(1))
	assert.False(t, col.IsNull(0))
	assert.False(t, col.IsNull(2))
}

func TestSliceBounds(t *testing.T) {
	df, err := NewDataFrame(series.NewSeries("a", []int64{1, 2, 3, 4}, datatypes.Int64{}))
	require.NoError(t, err)

	sliced, err := df.Slice(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, sliced.Height())

	_, err = df.Slice(0, 10)
	assert.Error(t, err)
}

func TestRenameColumn(t *testing.T) {
	df, err := NewDataFrame(series.NewSeries("a", []int64{1}, datatypes.Int64{}))
	require.NoError(t, err)

	renamed, err := df.RenameColumn("a", "b")
	require.NoError(t, err)
	assert.True(t, renamed.HasColumn("b"))
	assert.False(t, renamed.HasColumn("a"))

	_, err = df.RenameColumn("missing", "x")
	assert.Error(t, err)
}

func TestAddColumnRejectsHeightMismatch(t *testing.T) {
	df, err := NewDataFrame(series.NewSeries("a", []int64{1, 2}, datatypes.Int64{}))
	require.NoError(t, err)

	_, err = df.AddColumn(series.NewSeries("b", []int64{1}, datatypes.Int64{}))
	assert.Error(t, err)
}
