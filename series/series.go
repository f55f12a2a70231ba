// Package series implements the typed columnar values that DataFrames are
// built from. Series is a type-erased interface over a generic
// ChunkedArray[T]; callers pattern-match back to a concrete *TypedSeries[T]
// (see fastpath.go) when they need to operate on the native Go slice
// directly, as the IEJoin kernel does.
package series

import (
	"fmt"

	"github.com/arrowjoin/arrowjoin/internal/chunked"
	"github.com/arrowjoin/arrowjoin/internal/datatypes"
)

// Series is a named column with a data type.
type Series interface {
	Name() string
	Rename(name string) Series
	DataType() datatypes.DataType
	Len() int

	IsNull(i int) bool
	IsValid(i int) bool
	NullCount() int

	Slice(start, end int) (Series, error)
	Cast(dt datatypes.DataType) (Series, error)
	Clone() Series

	Get(i int) interface{}
	ToSlice() interface{}
	String() string

	Sort(ascending bool) Series
	ArgSort(config SortConfig) []int
	Take(indices []int) Series
}

// TypedSeries is the concrete, generic implementation of Series.
type TypedSeries[T datatypes.ArrayValue] struct {
	chunkedArray *chunked.ChunkedArray[T]
	name         string
}

// NewSeries builds a series with no explicit nulls.
func NewSeries[T datatypes.ArrayValue](name string, values []T, dt datatypes.DataType) Series {
	ca := chunked.NewChunkedArray[T](name, dt)
	if len(values) > 0 {
		_ = ca.AppendSlice(values, nil)
	}
	return &TypedSeries[T]{chunkedArray: ca, name: name}
}

// NewSeriesWithValidity builds a series with an explicit null mask.
func NewSeriesWithValidity[T datatypes.ArrayValue](name string, values []T, validity []bool, dt datatypes.DataType) Series {
	ca := chunked.NewChunkedArray[T](name, dt)
	_ = ca.AppendSlice(values, validity)
	return &TypedSeries[T]{chunkedArray: ca, name: name}
}

func (s *TypedSeries[T]) Name() string { return s.name }

func (s *TypedSeries[T]) Rename(name string) Series {
	return &TypedSeries[T]{chunkedArray: s.chunkedArray, name: name}
}

func (s *TypedSeries[T]) DataType() datatypes.DataType { return s.chunkedArray.DataType() }
func (s *TypedSeries[T]) Len() int                     { return int(s.chunkedArray.Len()) }

func (s *TypedSeries[T]) IsNull(i int) bool  { return !s.chunkedArray.IsValid(int64(i)) }
func (s *TypedSeries[T]) IsValid(i int) bool { return s.chunkedArray.IsValid(int64(i)) }
func (s *TypedSeries[T]) NullCount() int     { return int(s.chunkedArray.NullCount()) }

func (s *TypedSeries[T]) Slice(start, end int) (Series, error) {
	ca, err := s.chunkedArray.Slice(int64(start), int64(end))
	if err != nil {
		return nil, err
	}
	return &TypedSeries[T]{chunkedArray: ca, name: s.name}, nil
}

func (s *TypedSeries[T]) Cast(dt datatypes.DataType) (Series, error) {
	return castSeries(s, dt)
}

func (s *TypedSeries[T]) Clone() Series {
	values, validity := s.chunkedArray.ToSlice()
	cloned := make([]T, len(values))
	copy(cloned, values)
	return NewSeriesWithValidity(s.name, cloned, validity, s.chunkedArray.DataType())
}

func (s *TypedSeries[T]) Get(i int) interface{} {
	v, ok := s.chunkedArray.Get(int64(i))
	if !ok {
		return nil
	}
	return v
}

func (s *TypedSeries[T]) ToSlice() interface{} {
	values, _ := s.chunkedArray.ToSlice()
	return values
}

func (s *TypedSeries[T]) String() string {
	return fmt.Sprintf("Series[%s: %s, len=%d]", s.name, s.DataType(), s.Len())
}

// ValuesWithValidity returns the series' values and null mask, copied out
// of the Arrow chunks into fresh Go slices. IEJoin, Concat and TakeFast
// read columns through it; ArgSort does not.
func (s *TypedSeries[T]) ValuesWithValidity() ([]T, []bool) {
	return s.chunkedArray.ToSlice()
}
