package frame

import (
	"fmt"

	"github.com/arrowjoin/arrowjoin/internal/bitset"
	"github.com/arrowjoin/arrowjoin/internal/datatypes"
	"github.com/arrowjoin/arrowjoin/internal/parallel"
	"github.com/arrowjoin/arrowjoin/series"
)

const defaultJoinSuffix = "_right"

// IEJoin matches rows between left and right under the conjunction
// `left[selectedLeft[0]] op1 right[selectedRight[0]] AND
//  left[selectedLeft[1]] op2 right[selectedRight[1]]`
// using the algorithm of Khayyat et al. 2015, extended to handle duplicate
// values. selectedLeft and selectedRight must each name exactly two
// columns; suffix (default "_right") disambiguates right-side columns that
// collide with a left-side name; slice, if non-nil, limits the output the
// way a Rust slice does (a negative offset counts back from the end of the
// full match set).
func IEJoin(left, right *DataFrame, selectedLeft, selectedRight []string, options IEJoinOptions, suffix string, slice *SliceBound) (*DataFrame, error) {
	if len(selectedLeft) != 2 {
		return nil, fmt.Errorf("%w: IEJoin requires exactly two columns from the left DataFrame, got %d", ErrInvalidArity, len(selectedLeft))
	}
	if len(selectedRight) != 2 {
		return nil, fmt.Errorf("%w: IEJoin requires exactly two columns from the right DataFrame, got %d", ErrInvalidArity, len(selectedRight))
	}
	if suffix == "" {
		suffix = defaultJoinSuffix
	}

	leftX, err := left.Column(selectedLeft[0])
	if err != nil {
		return nil, err
	}
	leftY, err := left.Column(selectedLeft[1])
	if err != nil {
		return nil, err
	}
	rightX, err := right.Column(selectedRight[0])
	if err != nil {
		return nil, err
	}
	rightY, err := right.Column(selectedRight[1])
	if err != nil {
		return nil, err
	}

	target := commonNumericType(leftX.DataType(), leftY.DataType(), rightX.DataType(), rightY.DataType())
	if target == nil {
		return nil, fmt.Errorf("%w: IEJoin requires numeric, mutually coercible columns", ErrTypeMismatch)
	}

	leftX, err = leftX.Cast(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}
	leftY, err = leftY.Cast(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}
	rightX, err = rightX.Cast(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}
	rightY, err = rightY.Cast(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}

	x, err := series.Concat("x", leftX, rightX)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamSortFailure, err)
	}
	y, err := series.Concat("y", leftY, rightY)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamSortFailure, err)
	}

	nL := left.Height()

	var sliceEnd int
	hasSliceEnd := false
	if slice != nil && slice.Offset >= 0 {
		sliceEnd = int(slice.Offset) + slice.Len
		hasSliceEnd = true
	}

	leftIdx, rightIdx, err := dispatchKernel(target, x, y, nL, options, sliceEnd, hasSliceEnd)
	if err != nil {
		return nil, err
	}

	if slice != nil {
		leftIdx, rightIdx = applySlice(leftIdx, rightIdx, *slice)
	}

	var leftOut, rightOut *DataFrame
	joinErr := parallel.Join(
		func() error {
			var e error
			leftOut, e = left.Take(leftIdx)
			return e
		},
		func() error {
			var e error
			rightOut, e = right.Take(rightIdx)
			return e
		},
	)
	if joinErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrTakeFailure, joinErr)
	}

	return finishJoin(leftOut, rightOut, suffix)
}

// dispatchKernel monomorphizes the L1/L2 kernel over the chosen common
// numeric type and runs it against the concatenated, not-yet-sorted x/y
// axes.
func dispatchKernel(dt datatypes.DataType, x, y series.Series, nL int, options IEJoinOptions, sliceEnd int, hasSliceEnd bool) ([]int, []int, error) {
	switch dt.(type) {
	case datatypes.Int8:
		return runKernel[int8](x, y, nL, options, sliceEnd, hasSliceEnd)
	case datatypes.Int16:
		return runKernel[int16](x, y, nL, options, sliceEnd, hasSliceEnd)
	case datatypes.Int32:
		return runKernel[int32](x, y, nL, options, sliceEnd, hasSliceEnd)
	case datatypes.Int64:
		return runKernel[int64](x, y, nL, options, sliceEnd, hasSliceEnd)
	case datatypes.UInt8:
		return runKernel[uint8](x, y, nL, options, sliceEnd, hasSliceEnd)
	case datatypes.UInt16:
		return runKernel[uint16](x, y, nL, options, sliceEnd, hasSliceEnd)
	case datatypes.UInt32:
		return runKernel[uint32](x, y, nL, options, sliceEnd, hasSliceEnd)
	case datatypes.UInt64:
		return runKernel[uint64](x, y, nL, options, sliceEnd, hasSliceEnd)
	case datatypes.Float32:
		return runKernel[float32](x, y, nL, options, sliceEnd, hasSliceEnd)
	case datatypes.Float64:
		return runKernel[float64](x, y, nL, options, sliceEnd, hasSliceEnd)
	default:
		return nil, nil, fmt.Errorf("%w: unsupported join key type %s", ErrTypeMismatch, dt)
	}
}

// runKernel implements the sort-and-traverse sequence for a single
// monomorphized numeric type T: sort the x-axis (dropping nulls), build
// L1, permute and sort the y-axis into L2 (dropping nulls), then dispatch
// to the strict or non-strict L2 traversal.
func runKernel[T datatypes.Numeric](x, y series.Series, nL int, options IEJoinOptions, sliceEnd int, hasSliceEnd bool) ([]int, []int, error) {
	xValues, _, ok := series.ValuesWithValidity[T](x)
	if !ok {
		return nil, nil, fmt.Errorf("%w: x axis is not of the expected physical type", ErrTypeMismatch)
	}
	yValues, yValidity, ok := series.ValuesWithValidity[T](y)
	if !ok {
		return nil, nil, fmt.Errorf("%w: y axis is not of the expected physical type", ErrTypeMismatch)
	}

	l1Descending := options.Operator1 == OpGt || options.Operator1 == OpGe
	l2Descending := options.Operator2 == OpLt || options.Operator2 == OpLe

	l1Order := x.ArgSort(series.SortConfig{
		Order:      orderFor(l1Descending),
		NullsFirst: true,
		Stable:     true,
	})[x.NullCount():]
	if len(l1Order) == 0 {
		return nil, nil, nil
	}

	l1 := buildL1(xValues, l1Order, nL)

	yOrdered := make([]T, len(l1Order))
	yOrderedValidity := make([]bool, len(l1Order))
	for i, idx := range l1Order {
		yOrdered[i] = yValues[idx]
		yOrderedValidity[i] = yValidity[idx]
	}
	yOrderedSeries := series.NewSeriesWithValidity("y_ordered", yOrdered, yOrderedValidity, y.DataType())

	l2Order := yOrderedSeries.ArgSort(series.SortConfig{
		Order:      orderFor(l2Descending),
		NullsFirst: true,
		Stable:     true,
	})[yOrderedSeries.NullCount():]

	bits := bitset.FromLenZeroed(len(l1))

	var leftIdx, rightIdx []int
	if options.Operator2.IsStrict() {
		leftIdx, rightIdx = traverseL2Strict(l1, l2Order, bits, options.Operator1, sliceEnd, hasSliceEnd)
	} else {
		leftIdx, rightIdx = traverseL2NonStrict(l1, l2Order, yOrdered, bits, options.Operator1, sliceEnd, hasSliceEnd)
	}
	return leftIdx, rightIdx, nil
}

func orderFor(descending bool) series.SortOrder {
	if descending {
		return series.Descending
	}
	return series.Ascending
}

// commonNumericType picks the narrowest physical numeric representation
// that all four columns can be cast to, returning nil when any column is
// non-numeric.
func commonNumericType(dts ...datatypes.DataType) datatypes.DataType {
	best := 0
	var bestDT datatypes.DataType
	for _, dt := range dts {
		rank := datatypes.NumericRank(dt)
		if rank == 0 {
			return nil
		}
		if rank > best {
			best = rank
			bestDT = dt
		}
	}
	return bestDT
}

// applySlice applies Rust-slice semantics to the match lists: len entries
// starting at offset, with a negative offset counting back from the end.
func applySlice(leftIdx, rightIdx []int, slice SliceBound) ([]int, []int) {
	total := len(leftIdx)
	offset := slice.Offset
	if offset < 0 {
		offset += int64(total)
		if offset < 0 {
			offset = 0
		}
	}
	start := int(offset)
	if start > total {
		start = total
	}
	end := start + slice.Len
	if end > total {
		end = total
	}
	if start >= end {
		return nil, nil
	}
	return leftIdx[start:end], rightIdx[start:end]
}

// finishJoin concatenates the taken left and right frames horizontally,
// appending suffix to any right-side column name that collides with a
// left-side one.
func finishJoin(left, right *DataFrame, suffix string) (*DataFrame, error) {
	result := left.Clone()
	for _, name := range right.Columns() {
		col, err := right.Column(name)
		if err != nil {
			return nil, err
		}
		if result.HasColumn(name) {
			col = col.Rename(name + suffix)
		}
		result, err = result.AddColumn(col)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
