package series

import (
	"testing"

	"github.com/arrowjoin/arrowjoin/internal/datatypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeriesBasic(t *testing.T) {
	s := NewSeries("a", []int64{1, 2, 3}, datatypes.Int64{})
	assert.Equal(t, "a", s.Name())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, int64(2), s.Get(1))
	assert.False(t, s.IsNull(0))
}

func TestSeriesWithNulls(t *testing.T) {
	s := NewSeriesWithValidity("a", []int64{1, 0, 3}, []bool{true, false, true}, datatypes.Int64{})
	assert.True(t, s.IsNull(1))
	assert.Equal(t, 1, s.NullCount())
	assert.Nil(t, s.Get(1))
}

func TestArgSortAscendingNullsLast(t *testing.T) {
	s := NewSeriesWithValidity("a", []int64{3, 1, 0, 2}, []bool{true, true, false, true}, datatypes.Int64{})
	idx := s.ArgSort(SortConfig{Order: Ascending, NullsFirst: false, Stable: true})
	require.Equal(t, []int{1, 3, 0, 2}, idx)
}

func TestArgSortDescending(t *testing.T) {
	s := NewSeries("a", []int64{3, 1, 2}, datatypes.Int64{})
	idx := s.ArgSort(SortConfig{Order: Descending, Stable: true})
	require.Equal(t, []int{0, 2, 1}, idx)
}

func TestArgSortStableTiesKeepOriginalOrder(t *testing.T) {
	s := NewSeries("a", []int64{1, 1, 1}, datatypes.Int64{})
	idx := s.ArgSort(SortConfig{Order: Ascending, Stable: true})
	require.Equal(t, []int{0, 1, 2}, idx)
}

func TestCompareValuesFloatNaNSortsLast(t *testing.T) {
	nan := float64(0)
	nan = nan / nan
	assert.Equal(t, 1, CompareValues(nan, 1.0))
	assert.Equal(t, -1, CompareValues(1.0, nan))
	assert.Equal(t, 0, CompareValues(nan, nan))
}

func TestTakeFastRoundTrip(t *testing.T) {
	s := NewSeriesWithValidity("a", []int64{10, 20, 30}, []bool{true, false, true}, datatypes.Int64{})
	out, ok := TakeFast(s, []int{2, -1, 0})
	require.True(t, ok)
	require.Equal(t, 3, out.Len())
	assert.Equal(t, int64(30), out.Get(0))
	assert.True(t, out.IsNull(1))
	assert.Equal(t, int64(10), out.Get(2))
}

func TestCastInt64ToFloat64(t *testing.T) {
	s := NewSeries("a", []int64{1, 2, 3}, datatypes.Int64{})
	out, err := s.Cast(datatypes.Float64{})
	require.NoError(t, err)
	assert.Equal(t, float64(2), out.Get(1))
}

func TestConcatPreservesOrderAndNulls(t *testing.T) {
	left := NewSeries("x", []int32{1, 2}, datatypes.Int32{})
	right := NewSeriesWithValidity("x", []int32{0, 4}, []bool{false, true}, datatypes.Int32{})
	out, err := Concat("x", left, right)
	require.NoError(t, err)
	require.Equal(t, 4, out.Len())
	assert.Equal(t, int32(1), out.Get(0))
	assert.Equal(t, int32(2), out.Get(1))
	assert.True(t, out.IsNull(2))
	assert.Equal(t, int32(4), out.Get(3))
}

func TestSliceBounds(t *testing.T) {
	s := NewSeries("a", []int64{1, 2, 3, 4}, datatypes.Int64{})
	sliced, err := s.Slice(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, sliced.Len())
	assert.Equal(t, int64(2), sliced.Get(0))

	_, err = s.Slice(3, 1)
	assert.Error(t, err)
}
