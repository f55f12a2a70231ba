package series

import "github.com/arrowjoin/arrowjoin/internal/datatypes"

// ValuesWithValidity returns a series' values and null mask as freshly
// copied Go slices when its concrete type matches T, without going through
// Series.Get. This is the seam the IEJoin kernel uses to pull raw join-key
// columns.
func ValuesWithValidity[T datatypes.ArrayValue](s Series) ([]T, []bool, bool) {
	ts, ok := s.(*TypedSeries[T])
	if !ok {
		return nil, nil, false
	}
	values, validity := ts.ValuesWithValidity()
	return values, validity, true
}

func takeFastTyped[T datatypes.ArrayValue](s Series, indices []int) (Series, bool) {
	srcValues, srcValidity, ok := ValuesWithValidity[T](s)
	if !ok {
		return nil, false
	}

	n := len(indices)
	dstValues := make([]T, n)
	dstValidity := make([]bool, n)
	for i, idx := range indices {
		if idx >= 0 {
			dstValues[i] = srcValues[idx]
			dstValidity[i] = srcValidity[idx]
		}
	}
	return NewSeriesWithValidity(s.Name(), dstValues, dstValidity, s.DataType()), true
}

// TakeFast gathers rows at indices using direct slice access instead of the
// generic per-element Get/Take path. An index of -1 produces a null row.
func TakeFast(s Series, indices []int) (Series, bool) {
	switch s.DataType().(type) {
	case datatypes.Boolean:
		return takeFastTyped[bool](s, indices)
	case datatypes.Int8:
		return takeFastTyped[int8](s, indices)
	case datatypes.Int16:
		return takeFastTyped[int16](s, indices)
	case datatypes.Int32:
		return takeFastTyped[int32](s, indices)
	case datatypes.Int64:
		return takeFastTyped[int64](s, indices)
	case datatypes.UInt8:
		return takeFastTyped[uint8](s, indices)
	case datatypes.UInt16:
		return takeFastTyped[uint16](s, indices)
	case datatypes.UInt32:
		return takeFastTyped[uint32](s, indices)
	case datatypes.UInt64:
		return takeFastTyped[uint64](s, indices)
	case datatypes.Float32:
		return takeFastTyped[float32](s, indices)
	case datatypes.Float64:
		return takeFastTyped[float64](s, indices)
	case datatypes.String:
		return takeFastTyped[string](s, indices)
	case datatypes.Binary:
		return takeFastTyped[[]byte](s, indices)
	default:
		return nil, false
	}
}
