package series

import (
	"math"
	"sort"
	"strings"

	"github.com/arrowjoin/arrowjoin/internal/chunked"
	"github.com/arrowjoin/arrowjoin/internal/datatypes"
)

// SortOrder represents the direction of a sort.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// SortConfig controls ArgSort/SortWithConfig behavior. IEJoin's arg_sort
// calls always set Stable=true and NullsFirst=true, so the nulls form a
// leading prefix that the L1/L2 construction slices off.
type SortConfig struct {
	Order      SortOrder
	NullsFirst bool
	Stable     bool
}

// Sort returns a new series ordered ascending or descending, nulls last,
// with ties broken by original position.
func (s *TypedSeries[T]) Sort(ascending bool) Series {
	config := SortConfig{
		Order:      ifThenElse(ascending, Ascending, Descending),
		NullsFirst: false,
		Stable:     true,
	}
	return s.SortWithConfig(config)
}

// SortWithConfig sorts the series under an explicit configuration.
func (s *TypedSeries[T]) SortWithConfig(config SortConfig) Series {
	return s.Take(s.ArgSort(config))
}

// ArgSort returns the permutation of [0, Len()) that sorts the series per
// config, always nulls-partitioned to one end and never disturbed within
// a run of equal values when config.Stable is set.
func (s *TypedSeries[T]) ArgSort(config SortConfig) []int {
	n := s.Len()
	indices := make([]int, n)
	for i := 0; i < n; i++ {
		indices[i] = i
	}

	less := s.makeComparator(config)
	if config.Stable {
		sort.SliceStable(indices, func(i, j int) bool { return less(indices[i], indices[j]) })
	} else {
		sort.Slice(indices, func(i, j int) bool { return less(indices[i], indices[j]) })
	}
	return indices
}

func (s *TypedSeries[T]) makeComparator(config SortConfig) func(i, j int) bool {
	return func(i, j int) bool {
		iNull := s.IsNull(i)
		jNull := s.IsNull(j)

		if iNull && jNull {
			return false
		}
		if iNull {
			return config.NullsFirst
		}
		if jNull {
			return !config.NullsFirst
		}

		iVal, _ := s.chunkedArray.Get(int64(i))
		jVal, _ := s.chunkedArray.Get(int64(j))

		cmp := CompareValues(iVal, jVal)
		if config.Order == Ascending {
			return cmp < 0
		}
		return cmp > 0
	}
}

// CompareValues is the total-order comparator shared by ArgSort and the
// IEJoin kernel's equality-run detection (NaN sorts to the end, like any
// other "largest" value, so every comparison is total).
func CompareValues[T datatypes.ArrayValue](a, b T) int {
	switch v1 := any(a).(type) {
	case bool:
		v2 := any(b).(bool)
		if !v1 && v2 {
			return -1
		}
		if v1 && !v2 {
			return 1
		}
		return 0
	case int8:
		return compareOrdered(v1, any(b).(int8))
	case int16:
		return compareOrdered(v1, any(b).(int16))
	case int32:
		return compareOrdered(v1, any(b).(int32))
	case int64:
		return compareOrdered(v1, any(b).(int64))
	case uint8:
		return compareOrdered(v1, any(b).(uint8))
	case uint16:
		return compareOrdered(v1, any(b).(uint16))
	case uint32:
		return compareOrdered(v1, any(b).(uint32))
	case uint64:
		return compareOrdered(v1, any(b).(uint64))
	case float32:
		v2 := any(b).(float32)
		switch {
		case v1 != v1 && v2 != v2:
			return 0
		case v1 != v1:
			return 1
		case v2 != v2:
			return -1
		default:
			return compareOrdered(v1, v2)
		}
	case float64:
		v2 := any(b).(float64)
		switch {
		case math.IsNaN(v1) && math.IsNaN(v2):
			return 0
		case math.IsNaN(v1):
			return 1
		case math.IsNaN(v2):
			return -1
		default:
			return compareOrdered(v1, v2)
		}
	case string:
		return strings.Compare(v1, any(b).(string))
	case []byte:
		return strings.Compare(string(v1), string(any(b).([]byte)))
	default:
		return 0
	}
}

func compareOrdered[T int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Take gathers values at indices into a new series, preserving nulls.
func (s *TypedSeries[T]) Take(indices []int) Series {
	builder := chunked.NewChunkedBuilder[T](s.chunkedArray.DataType())
	builder.Reserve(len(indices))

	n := s.Len()
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			continue
		}
		if s.IsValid(idx) {
			val, _ := s.chunkedArray.Get(int64(idx))
			builder.Append(val)
		} else {
			builder.AppendNull()
		}
	}

	return &TypedSeries[T]{chunkedArray: builder.WithName(s.name).Finish(), name: s.name}
}

func ifThenElse[T any](cond bool, ifTrue, ifFalse T) T {
	if cond {
		return ifTrue
	}
	return ifFalse
}
