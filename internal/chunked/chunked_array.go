// Package chunked implements Arrow-backed columnar storage shared by every
// typed series in arrowjoin. A ChunkedArray owns zero or more immutable
// Arrow arrays ("chunks") and presents them as one logical column.
package chunked

import (
	"fmt"
	"sync"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/arrowjoin/arrowjoin/internal/datatypes"
)

// ChunkedArray is a generic columnar buffer composed of one or more Arrow
// arrays sharing a single logical type T.
type ChunkedArray[T datatypes.ArrayValue] struct {
	field     arrow.Field
	chunks    []arrow.Array
	length    int64
	nullCount int64
	dataType  datatypes.DataType
	physical  datatypes.PhysicalType
	mu        sync.RWMutex
}

// NewChunkedArray creates an empty ChunkedArray with the given name and type.
func NewChunkedArray[T datatypes.ArrayValue](name string, dt datatypes.DataType) *ChunkedArray[T] {
	physical := datatypes.GetPhysicalType(dt)
	return &ChunkedArray[T]{
		field: arrow.Field{
			Name:     name,
			Type:     physical.ArrowType(),
			Nullable: true,
		},
		chunks:   make([]arrow.Array, 0),
		dataType: dt,
		physical: physical,
	}
}

func (ca *ChunkedArray[T]) Name() string             { ca.mu.RLock(); defer ca.mu.RUnlock(); return ca.field.Name }
func (ca *ChunkedArray[T]) DataType() datatypes.DataType { return ca.dataType }
func (ca *ChunkedArray[T]) Len() int64                { ca.mu.RLock(); defer ca.mu.RUnlock(); return ca.length }
func (ca *ChunkedArray[T]) NullCount() int64          { ca.mu.RLock(); defer ca.mu.RUnlock(); return ca.nullCount }
func (ca *ChunkedArray[T]) NumChunks() int            { ca.mu.RLock(); defer ca.mu.RUnlock(); return len(ca.chunks) }

// Chunks returns a defensive copy of the underlying Arrow arrays.
func (ca *ChunkedArray[T]) Chunks() []arrow.Array {
	ca.mu.RLock()
	defer ca.mu.RUnlock()
	result := make([]arrow.Array, len(ca.chunks))
	copy(result, ca.chunks)
	return result
}

// AppendArray adopts an Arrow array as an additional chunk.
func (ca *ChunkedArray[T]) AppendArray(arr arrow.Array) error {
	ca.mu.Lock()
	defer ca.mu.Unlock()

	if !arrow.TypeEqual(arr.DataType(), ca.physical.ArrowType()) {
		return fmt.Errorf("incompatible array type: expected %s, got %s", ca.physical.ArrowType(), arr.DataType())
	}

	arr.Retain()
	ca.chunks = append(ca.chunks, arr)
	ca.length += int64(arr.Len())
	ca.nullCount += int64(arr.NullN())
	return nil
}

// AppendSlice builds one chunk from values/validity and appends it.
func (ca *ChunkedArray[T]) AppendSlice(values []T, validity []bool) error {
	mem := memory.NewGoAllocator()
	builder := ca.physical.NewBuilder(mem)
	defer builder.Release()

	switch b := builder.(type) {
	case *array.BooleanBuilder:
		v, ok := any(values).([]bool)
		if !ok {
			return fmt.Errorf("arrowjoin: value/type mismatch for boolean builder")
		}
		b.AppendValues(v, validity)
	case *array.Int8Builder:
		v, ok := any(values).([]int8)
		if !ok {
			return fmt.Errorf("arrowjoin: value/type mismatch for int8 builder")
		}
		b.AppendValues(v, validity)
	case *array.Int16Builder:
		v, ok := any(values).([]int16)
		if !ok {
			return fmt.Errorf("arrowjoin: value/type mismatch for int16 builder")
		}
		b.AppendValues(v, validity)
	case *array.Int32Builder:
		v, ok := any(values).([]int32)
		if !ok {
			return fmt.Errorf("arrowjoin: value/type mismatch for int32 builder")
		}
		b.AppendValues(v, validity)
	case *array.Int64Builder:
		v, ok := any(values).([]int64)
		if !ok {
			return fmt.Errorf("arrowjoin: value/type mismatch for int64 builder")
		}
		b.AppendValues(v, validity)
	case *array.Uint8Builder:
		v, ok := any(values).([]uint8)
		if !ok {
			return fmt.Errorf("arrowjoin: value/type mismatch for uint8 builder")
		}
		b.AppendValues(v, validity)
	case *array.Uint16Builder:
		v, ok := any(values).([]uint16)
		if !ok {
			return fmt.Errorf("arrowjoin: value/type mismatch for uint16 builder")
		}
		b.AppendValues(v, validity)
	case *array.Uint32Builder:
		v, ok := any(values).([]uint32)
		if !ok {
			return fmt.Errorf("arrowjoin: value/type mismatch for uint32 builder")
		}
		b.AppendValues(v, validity)
	case *array.Uint64Builder:
		v, ok := any(values).([]uint64)
		if !ok {
			return fmt.Errorf("arrowjoin: value/type mismatch for uint64 builder")
		}
		b.AppendValues(v, validity)
	case *array.Float32Builder:
		v, ok := any(values).([]float32)
		if !ok {
			return fmt.Errorf("arrowjoin: value/type mismatch for float32 builder")
		}
		b.AppendValues(v, validity)
	case *array.Float64Builder:
		v, ok := any(values).([]float64)
		if !ok {
			return fmt.Errorf("arrowjoin: value/type mismatch for float64 builder")
		}
		b.AppendValues(v, validity)
	case *array.StringBuilder:
		v, ok := any(values).([]string)
		if !ok {
			return fmt.Errorf("arrowjoin: value/type mismatch for string builder")
		}
		b.AppendValues(v, validity)
	case *array.BinaryBuilder:
		v, ok := any(values).([][]byte)
		if !ok {
			return fmt.Errorf("arrowjoin: value/type mismatch for binary builder")
		}
		for i, val := range v {
			if validity == nil || validity[i] {
				b.Append(val)
			} else {
				b.AppendNull()
			}
		}
	default:
		return fmt.Errorf("arrowjoin: unsupported builder type %T", builder)
	}

	arr := builder.NewArray()
	defer arr.Release()
	return ca.AppendArray(arr)
}

// Get returns the logical index's value, or the zero value and false if null
// or out of range.
func (ca *ChunkedArray[T]) Get(i int64) (T, bool) {
	ca.mu.RLock()
	defer ca.mu.RUnlock()

	var zero T
	if i < 0 || i >= ca.length {
		return zero, false
	}

	offset := int64(0)
	for _, chunk := range ca.chunks {
		if i < offset+int64(chunk.Len()) {
			localIdx := int(i - offset)
			if chunk.IsNull(localIdx) {
				return zero, false
			}
			return ca.getValue(chunk, localIdx), true
		}
		offset += int64(chunk.Len())
	}
	return zero, false
}

func (ca *ChunkedArray[T]) getValue(chunk arrow.Array, idx int) T {
	var zero T
	switch arr := chunk.(type) {
	case *array.Boolean:
		if _, ok := any(zero).(bool); ok {
			return any(arr.Value(idx)).(T)
		}
	case *array.Int8:
		if _, ok := any(zero).(int8); ok {
			return any(arr.Value(idx)).(T)
		}
	case *array.Int16:
		if _, ok := any(zero).(int16); ok {
			return any(arr.Value(idx)).(T)
		}
	case *array.Int32:
		if _, ok := any(zero).(int32); ok {
			return any(arr.Value(idx)).(T)
		}
	case *array.Int64:
		if _, ok := any(zero).(int64); ok {
			return any(arr.Value(idx)).(T)
		}
	case *array.Uint8:
		if _, ok := any(zero).(uint8); ok {
			return any(arr.Value(idx)).(T)
		}
	case *array.Uint16:
		if _, ok := any(zero).(uint16); ok {
			return any(arr.Value(idx)).(T)
		}
	case *array.Uint32:
		if _, ok := any(zero).(uint32); ok {
			return any(arr.Value(idx)).(T)
		}
	case *array.Uint64:
		if _, ok := any(zero).(uint64); ok {
			return any(arr.Value(idx)).(T)
		}
	case *array.Float32:
		if _, ok := any(zero).(float32); ok {
			return any(arr.Value(idx)).(T)
		}
	case *array.Float64:
		if _, ok := any(zero).(float64); ok {
			return any(arr.Value(idx)).(T)
		}
	case *array.String:
		if _, ok := any(zero).(string); ok {
			return any(arr.Value(idx)).(T)
		}
	case *array.Binary:
		if _, ok := any(zero).([]byte); ok {
			return any(arr.Value(idx)).(T)
		}
	}
	return zero
}

// Slice returns a new ChunkedArray over [start, end).
func (ca *ChunkedArray[T]) Slice(start, end int64) (*ChunkedArray[T], error) {
	ca.mu.RLock()
	defer ca.mu.RUnlock()

	if start < 0 || end > ca.length || start > end {
		return nil, fmt.Errorf("invalid slice bounds: [%d:%d] for array of length %d", start, end, ca.length)
	}

	result := NewChunkedArray[T](ca.field.Name, ca.dataType)
	if start == end {
		return result, nil
	}

	offset := int64(0)
	for _, chunk := range ca.chunks {
		chunkEnd := offset + int64(chunk.Len())
		if chunkEnd <= start {
			offset = chunkEnd
			continue
		}
		if offset >= end {
			break
		}

		localStart := max64(0, start-offset)
		localEnd := min64(int64(chunk.Len()), end-offset)
		if localStart < localEnd {
			slicedChunk := array.NewSlice(chunk, localStart, localEnd)
			if err := result.AppendArray(slicedChunk); err != nil {
				slicedChunk.Release()
				return nil, err
			}
			slicedChunk.Release()
		}
		offset = chunkEnd
	}
	return result, nil
}

// ToSlice materializes the whole column as a Go slice plus validity mask.
func (ca *ChunkedArray[T]) ToSlice() ([]T, []bool) {
	ca.mu.RLock()
	defer ca.mu.RUnlock()

	values := make([]T, ca.length)
	validity := make([]bool, ca.length)

	offset := 0
	for _, chunk := range ca.chunks {
		ca.copyChunkToSlice(chunk, values[offset:], validity[offset:])
		offset += chunk.Len()
	}
	return values, validity
}

func (ca *ChunkedArray[T]) copyChunkToSlice(chunk arrow.Array, values []T, validity []bool) {
	for i := 0; i < chunk.Len(); i++ {
		validity[i] = !chunk.IsNull(i)
		if validity[i] {
			values[i] = ca.getValue(chunk, i)
		}
	}
}

// IsValid reports whether the logical index holds a non-null value.
func (ca *ChunkedArray[T]) IsValid(i int64) bool {
	ca.mu.RLock()
	defer ca.mu.RUnlock()

	if i < 0 || i >= ca.length {
		return false
	}
	offset := int64(0)
	for _, chunk := range ca.chunks {
		if i < offset+int64(chunk.Len()) {
			return !chunk.IsNull(int(i - offset))
		}
		offset += int64(chunk.Len())
	}
	return false
}

// Release drops references to every underlying Arrow chunk.
func (ca *ChunkedArray[T]) Release() {
	ca.mu.Lock()
	defer ca.mu.Unlock()

	for _, chunk := range ca.chunks {
		chunk.Release()
	}
	ca.chunks = nil
	ca.length = 0
	ca.nullCount = 0
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
