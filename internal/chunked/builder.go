package chunked

import "github.com/arrowjoin/arrowjoin/internal/datatypes"

// Builder accumulates values of type T and produces a ChunkedArray.
// Mirrors the incremental-build pattern used by Arrow's own array builders.
type Builder[T datatypes.ArrayValue] struct {
	name     string
	dataType datatypes.DataType
	values   []T
	validity []bool
}

// NewChunkedBuilder creates a builder for the given logical data type.
func NewChunkedBuilder[T datatypes.ArrayValue](dt datatypes.DataType) *Builder[T] {
	return &Builder[T]{dataType: dt}
}

// Append adds a non-null value.
func (b *Builder[T]) Append(v T) {
	b.values = append(b.values, v)
	b.validity = append(b.validity, true)
}

// AppendNull adds a null entry.
func (b *Builder[T]) AppendNull() {
	var zero T
	b.values = append(b.values, zero)
	b.validity = append(b.validity, false)
}

// Reserve pre-allocates capacity for n additional values.
func (b *Builder[T]) Reserve(n int) {
	if cap(b.values)-len(b.values) >= n {
		return
	}
	values := make([]T, len(b.values), len(b.values)+n)
	copy(values, b.values)
	b.values = values

	validity := make([]bool, len(b.validity), len(b.validity)+n)
	copy(validity, b.validity)
	b.validity = validity
}

// Finish builds the ChunkedArray and resets the builder.
func (b *Builder[T]) Finish() *ChunkedArray[T] {
	ca := NewChunkedArray[T](b.name, b.dataType)
	if len(b.values) > 0 {
		_ = ca.AppendSlice(b.values, b.validity)
	}
	b.values = nil
	b.validity = nil
	return ca
}

// WithName sets the name the finished ChunkedArray will carry.
func (b *Builder[T]) WithName(name string) *Builder[T] {
	b.name = name
	return b
}
