package series

import (
	"fmt"

	"github.com/arrowjoin/arrowjoin/internal/datatypes"
)

// Concat appends one series after another into a single contiguous series.
// The IEJoin driver uses this to stack a predicate's left and right columns
// into one axis before sorting, mirroring how the kernel treats left/right
// row identifiers as one combined domain distinguished only by sign.
func Concat(name string, parts ...Series) (Series, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("arrowjoin: cannot concat zero series")
	}
	dt := parts[0].DataType()
	for _, p := range parts[1:] {
		if !p.DataType().Equals(dt) {
			return nil, fmt.Errorf("arrowjoin: concat type mismatch: %s vs %s", dt, p.DataType())
		}
	}

	switch dt.(type) {
	case datatypes.Boolean:
		return concatTyped[bool](name, dt, parts)
	case datatypes.Int8:
		return concatTyped[int8](name, dt, parts)
	case datatypes.Int16:
		return concatTyped[int16](name, dt, parts)
	case datatypes.Int32:
		return concatTyped[int32](name, dt, parts)
	case datatypes.Int64:
		return concatTyped[int64](name, dt, parts)
	case datatypes.UInt8:
		return concatTyped[uint8](name, dt, parts)
	case datatypes.UInt16:
		return concatTyped[uint16](name, dt, parts)
	case datatypes.UInt32:
		return concatTyped[uint32](name, dt, parts)
	case datatypes.UInt64:
		return concatTyped[uint64](name, dt, parts)
	case datatypes.Float32:
		return concatTyped[float32](name, dt, parts)
	case datatypes.Float64:
		return concatTyped[float64](name, dt, parts)
	case datatypes.String:
		return concatTyped[string](name, dt, parts)
	case datatypes.Binary:
		return concatTyped[[]byte](name, dt, parts)
	default:
		return nil, fmt.Errorf("arrowjoin: unsupported concat type %s", dt)
	}
}

func concatTyped[T datatypes.ArrayValue](name string, dt datatypes.DataType, parts []Series) (Series, error) {
	total := 0
	for _, p := range parts {
		total += p.Len()
	}
	values := make([]T, 0, total)
	validity := make([]bool, 0, total)

	for _, p := range parts {
		if typed, valid, ok := ValuesWithValidity[T](p); ok {
			values = append(values, typed...)
			validity = append(validity, valid...)
			continue
		}
		for i := 0; i < p.Len(); i++ {
			if p.IsNull(i) {
				var zero T
				values = append(values, zero)
				validity = append(validity, false)
				continue
			}
			v, ok := p.Get(i).(T)
			if !ok {
				return nil, fmt.Errorf("arrowjoin: concat value type mismatch at index %d", i)
			}
			values = append(values, v)
			validity = append(validity, true)
		}
	}

	return NewSeriesWithValidity(name, values, validity, dt), nil
}
