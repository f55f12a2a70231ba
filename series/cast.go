package series

import (
	"fmt"
	"strconv"

	"github.com/arrowjoin/arrowjoin/internal/datatypes"
)

func castSeries(s Series, target datatypes.DataType) (Series, error) {
	if s.DataType().Equals(target) {
		return s.Clone(), nil
	}

	n := s.Len()
	switch target.(type) {
	case datatypes.Int8:
		return castNumeric(s, target, n, func(v interface{}) (int8, bool) {
			i, ok := castToInt64(v)
			return int8(i), ok
		})
	case datatypes.Int16:
		return castNumeric(s, target, n, func(v interface{}) (int16, bool) {
			i, ok := castToInt64(v)
			return int16(i), ok
		})
	case datatypes.Int32:
		return castNumeric(s, target, n, castToInt32)
	case datatypes.Int64:
		return castNumeric(s, target, n, castToInt64)
	case datatypes.UInt8:
		return castNumeric(s, target, n, func(v interface{}) (uint8, bool) {
			i, ok := castToInt64(v)
			return uint8(i), ok
		})
	case datatypes.UInt16:
		return castNumeric(s, target, n, func(v interface{}) (uint16, bool) {
			i, ok := castToInt64(v)
			return uint16(i), ok
		})
	case datatypes.UInt32:
		return castNumeric(s, target, n, func(v interface{}) (uint32, bool) {
			i, ok := castToInt64(v)
			return uint32(i), ok
		})
	case datatypes.UInt64:
		return castNumeric(s, target, n, func(v interface{}) (uint64, bool) {
			i, ok := castToInt64(v)
			return uint64(i), ok
		})
	case datatypes.Float32:
		return castNumeric(s, target, n, castToFloat32)
	case datatypes.Float64:
		return castNumeric(s, target, n, castToFloat64)
	case datatypes.String:
		values := make([]string, n)
		validity := make([]bool, n)
		for i := 0; i < n; i++ {
			if s.IsNull(i) {
				continue
			}
			values[i] = fmt.Sprintf("%v", s.Get(i))
			validity[i] = true
		}
		return NewSeriesWithValidity(s.Name(), values, validity, target), nil

	default:
		return nil, fmt.Errorf("arrowjoin: unsupported cast from %s to %s", s.DataType().String(), target.String())
	}
}

func castNumeric[T datatypes.ArrayValue](s Series, target datatypes.DataType, n int, convert func(interface{}) (T, bool)) (Series, error) {
	values := make([]T, n)
	validity := make([]bool, n)
	for i := 0; i < n; i++ {
		if s.IsNull(i) {
			continue
		}
		v, ok := convert(s.Get(i))
		if !ok {
			return nil, fmt.Errorf("arrowjoin: cannot cast value at index %d to %s", i, target.String())
		}
		values[i] = v
		validity[i] = true
	}
	return NewSeriesWithValidity(s.Name(), values, validity, target), nil
}

func castToInt64(v interface{}) (int64, bool) {
	switch val := v.(type) {
	case int8:
		return int64(val), true
	case int16:
		return int64(val), true
	case int32:
		return int64(val), true
	case int64:
		return val, true
	case uint8:
		return int64(val), true
	case uint16:
		return int64(val), true
	case uint32:
		return int64(val), true
	case uint64:
		return int64(val), true
	case float32:
		return int64(val), true
	case float64:
		return int64(val), true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	case string:
		i, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func castToInt32(v interface{}) (int32, bool) {
	i64, ok := castToInt64(v)
	if !ok {
		return 0, false
	}
	return int32(i64), true
}

func castToFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case float32:
		return float64(val), true
	case float64:
		return val, true
	case bool:
		if val {
			return 1.0, true
		}
		return 0.0, true
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func castToFloat32(v interface{}) (float32, bool) {
	f64, ok := castToFloat64(v)
	if !ok {
		return 0, false
	}
	return float32(f64), true
}
