// Package datatypes describes the logical and physical types that flow
// through arrowjoin's columnar structures.
package datatypes

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// DataType represents a logical column type.
type DataType interface {
	String() string
	Equals(other DataType) bool
	IsNumeric() bool
	IsFloat() bool
	IsInteger() bool
	IsSigned() bool
}

type (
	Boolean struct{}
	Int8    struct{}
	Int16   struct{}
	Int32   struct{}
	Int64   struct{}
	UInt8   struct{}
	UInt16  struct{}
	UInt32  struct{}
	UInt64  struct{}
	Float32 struct{}
	Float64 struct{}
	String  struct{}
	Binary  struct{}
	Unknown struct{}
)

func (Boolean) String() string { return "Boolean" }
func (Int8) String() string    { return "Int8" }
func (Int16) String() string   { return "Int16" }
func (Int32) String() string   { return "Int32" }
func (Int64) String() string   { return "Int64" }
func (UInt8) String() string   { return "UInt8" }
func (UInt16) String() string  { return "UInt16" }
func (UInt32) String() string  { return "UInt32" }
func (UInt64) String() string  { return "UInt64" }
func (Float32) String() string { return "Float32" }
func (Float64) String() string { return "Float64" }
func (String) String() string  { return "String" }
func (Binary) String() string  { return "Binary" }
func (Unknown) String() string { return "Unknown" }

func (a Boolean) Equals(b DataType) bool { _, ok := b.(Boolean); return ok }
func (a Int8) Equals(b DataType) bool    { _, ok := b.(Int8); return ok }
func (a Int16) Equals(b DataType) bool   { _, ok := b.(Int16); return ok }
func (a Int32) Equals(b DataType) bool   { _, ok := b.(Int32); return ok }
func (a Int64) Equals(b DataType) bool   { _, ok := b.(Int64); return ok }
func (a UInt8) Equals(b DataType) bool   { _, ok := b.(UInt8); return ok }
func (a UInt16) Equals(b DataType) bool  { _, ok := b.(UInt16); return ok }
func (a UInt32) Equals(b DataType) bool  { _, ok := b.(UInt32); return ok }
func (a UInt64) Equals(b DataType) bool  { _, ok := b.(UInt64); return ok }
func (a Float32) Equals(b DataType) bool { _, ok := b.(Float32); return ok }
func (a Float64) Equals(b DataType) bool { _, ok := b.(Float64); return ok }
func (a String) Equals(b DataType) bool  { _, ok := b.(String); return ok }
func (a Binary) Equals(b DataType) bool  { _, ok := b.(Binary); return ok }
func (a Unknown) Equals(b DataType) bool { _, ok := b.(Unknown); return ok }

func (Boolean) IsNumeric() bool { return false }
func (Int8) IsNumeric() bool    { return true }
func (Int16) IsNumeric() bool   { return true }
func (Int32) IsNumeric() bool   { return true }
func (Int64) IsNumeric() bool   { return true }
func (UInt8) IsNumeric() bool   { return true }
func (UInt16) IsNumeric() bool  { return true }
func (UInt32) IsNumeric() bool  { return true }
func (UInt64) IsNumeric() bool  { return true }
func (Float32) IsNumeric() bool { return true }
func (Float64) IsNumeric() bool { return true }
func (String) IsNumeric() bool  { return false }
func (Binary) IsNumeric() bool  { return false }
func (Unknown) IsNumeric() bool { return false }

func (Boolean) IsFloat() bool { return false }
func (Int8) IsFloat() bool    { return false }
func (Int16) IsFloat() bool   { return false }
func (Int32) IsFloat() bool   { return false }
func (Int64) IsFloat() bool   { return false }
func (UInt8) IsFloat() bool   { return false }
func (UInt16) IsFloat() bool  { return false }
func (UInt32) IsFloat() bool  { return false }
func (UInt64) IsFloat() bool  { return false }
func (Float32) IsFloat() bool { return true }
func (Float64) IsFloat() bool { return true }
func (String) IsFloat() bool  { return false }
func (Binary) IsFloat() bool  { return false }
func (Unknown) IsFloat() bool { return false }

func (Boolean) IsInteger() bool { return false }
func (Int8) IsInteger() bool    { return true }
func (Int16) IsInteger() bool   { return true }
func (Int32) IsInteger() bool   { return true }
func (Int64) IsInteger() bool   { return true }
func (UInt8) IsInteger() bool   { return true }
func (UInt16) IsInteger() bool  { return true }
func (UInt32) IsInteger() bool  { return true }
func (UInt64) IsInteger() bool  { return true }
func (Float32) IsInteger() bool { return false }
func (Float64) IsInteger() bool { return false }
func (String) IsInteger() bool  { return false }
func (Binary) IsInteger() bool  { return false }
func (Unknown) IsInteger() bool { return false }

func (Boolean) IsSigned() bool { return false }
func (Int8) IsSigned() bool    { return true }
func (Int16) IsSigned() bool   { return true }
func (Int32) IsSigned() bool   { return true }
func (Int64) IsSigned() bool   { return true }
func (UInt8) IsSigned() bool   { return false }
func (UInt16) IsSigned() bool  { return false }
func (UInt32) IsSigned() bool  { return false }
func (UInt64) IsSigned() bool  { return false }
func (Float32) IsSigned() bool { return true }
func (Float64) IsSigned() bool { return true }
func (String) IsSigned() bool  { return false }
func (Binary) IsSigned() bool  { return false }
func (Unknown) IsSigned() bool { return false }

// ArrayValue constrains the Go types that can back a ChunkedArray column.
type ArrayValue interface {
	bool | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | string | []byte
}

// Numeric constrains the physical element types eligible for the IEJoin
// kernel's monomorphized dispatch.
type Numeric interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// PhysicalType ties a Go type to its DataType and Arrow builder.
type PhysicalType interface {
	DataType() DataType
	ArrowType() arrow.DataType
	NewBuilder(mem memory.Allocator) array.Builder
}

type (
	BooleanType struct{}
	Int8Type    struct{}
	Int16Type   struct{}
	Int32Type   struct{}
	Int64Type   struct{}
	UInt8Type   struct{}
	UInt16Type  struct{}
	UInt32Type  struct{}
	UInt64Type  struct{}
	Float32Type struct{}
	Float64Type struct{}
	StringType  struct{}
	BinaryType  struct{}
)

func (BooleanType) DataType() DataType                            { return Boolean{} }
func (BooleanType) ArrowType() arrow.DataType                     { return arrow.FixedWidthTypes.Boolean }
func (BooleanType) NewBuilder(mem memory.Allocator) array.Builder { return array.NewBooleanBuilder(mem) }

func (Int8Type) DataType() DataType                            { return Int8{} }
func (Int8Type) ArrowType() arrow.DataType                     { return arrow.PrimitiveTypes.Int8 }
func (Int8Type) NewBuilder(mem memory.Allocator) array.Builder { return array.NewInt8Builder(mem) }

func (Int16Type) DataType() DataType                            { return Int16{} }
func (Int16Type) ArrowType() arrow.DataType                     { return arrow.PrimitiveTypes.Int16 }
func (Int16Type) NewBuilder(mem memory.Allocator) array.Builder { return array.NewInt16Builder(mem) }

func (Int32Type) DataType() DataType                            { return Int32{} }
func (Int32Type) ArrowType() arrow.DataType                     { return arrow.PrimitiveTypes.Int32 }
func (Int32Type) NewBuilder(mem memory.Allocator) array.Builder { return array.NewInt32Builder(mem) }

func (Int64Type) DataType() DataType                            { return Int64{} }
func (Int64Type) ArrowType() arrow.DataType                     { return arrow.PrimitiveTypes.Int64 }
func (Int64Type) NewBuilder(mem memory.Allocator) array.Builder { return array.NewInt64Builder(mem) }

func (UInt8Type) DataType() DataType                            { return UInt8{} }
func (UInt8Type) ArrowType() arrow.DataType                     { return arrow.PrimitiveTypes.Uint8 }
func (UInt8Type) NewBuilder(mem memory.Allocator) array.Builder { return array.NewUint8Builder(mem) }

func (UInt16Type) DataType() DataType                            { return UInt16{} }
func (UInt16Type) ArrowType() arrow.DataType                     { return arrow.PrimitiveTypes.Uint16 }
func (UInt16Type) NewBuilder(mem memory.Allocator) array.Builder { return array.NewUint16Builder(mem) }

func (UInt32Type) DataType() DataType                            { return UInt32{} }
func (UInt32Type) ArrowType() arrow.DataType                     { return arrow.PrimitiveTypes.Uint32 }
func (UInt32Type) NewBuilder(mem memory.Allocator) array.Builder { return array.NewUint32Builder(mem) }

func (UInt64Type) DataType() DataType                            { return UInt64{} }
func (UInt64Type) ArrowType() arrow.DataType                     { return arrow.PrimitiveTypes.Uint64 }
func (UInt64Type) NewBuilder(mem memory.Allocator) array.Builder { return array.NewUint64Builder(mem) }

func (Float32Type) DataType() DataType        { return Float32{} }
func (Float32Type) ArrowType() arrow.DataType { return arrow.PrimitiveTypes.Float32 }
func (Float32Type) NewBuilder(mem memory.Allocator) array.Builder {
	return array.NewFloat32Builder(mem)
}

func (Float64Type) DataType() DataType        { return Float64{} }
func (Float64Type) ArrowType() arrow.DataType { return arrow.PrimitiveTypes.Float64 }
func (Float64Type) NewBuilder(mem memory.Allocator) array.Builder {
	return array.NewFloat64Builder(mem)
}

func (StringType) DataType() DataType                            { return String{} }
func (StringType) ArrowType() arrow.DataType                     { return arrow.BinaryTypes.String }
func (StringType) NewBuilder(mem memory.Allocator) array.Builder { return array.NewStringBuilder(mem) }

func (BinaryType) DataType() DataType        { return Binary{} }
func (BinaryType) ArrowType() arrow.DataType { return arrow.BinaryTypes.Binary }
func (BinaryType) NewBuilder(mem memory.Allocator) array.Builder {
	return array.NewBinaryBuilder(mem, arrow.BinaryTypes.Binary)
}

// GetPhysicalType maps a DataType to its PhysicalType implementation.
func GetPhysicalType(dt DataType) PhysicalType {
	switch dt.(type) {
	case Boolean:
		return BooleanType{}
	case Int8:
		return Int8Type{}
	case Int16:
		return Int16Type{}
	case Int32:
		return Int32Type{}
	case Int64:
		return Int64Type{}
	case UInt8:
		return UInt8Type{}
	case UInt16:
		return UInt16Type{}
	case UInt32:
		return UInt32Type{}
	case UInt64:
		return UInt64Type{}
	case Float32:
		return Float32Type{}
	case Float64:
		return Float64Type{}
	case String:
		return StringType{}
	case Binary:
		return BinaryType{}
	default:
		panic(fmt.Sprintf("arrowjoin: unsupported data type %v", dt))
	}
}

// FromArrowType converts an Arrow physical type into a DataType.
func FromArrowType(dt arrow.DataType) DataType {
	switch dt.ID() {
	case arrow.BOOL:
		return Boolean{}
	case arrow.INT8:
		return Int8{}
	case arrow.INT16:
		return Int16{}
	case arrow.INT32:
		return Int32{}
	case arrow.INT64:
		return Int64{}
	case arrow.UINT8:
		return UInt8{}
	case arrow.UINT16:
		return UInt16{}
	case arrow.UINT32:
		return UInt32{}
	case arrow.UINT64:
		return UInt64{}
	case arrow.FLOAT32:
		return Float32{}
	case arrow.FLOAT64:
		return Float64{}
	case arrow.STRING:
		return String{}
	case arrow.BINARY:
		return Binary{}
	default:
		return Unknown{}
	}
}

// NumericRank orders numeric DataTypes by width so a common physical
// representation can be chosen for join keys coming from mixed columns.
// Floats outrank integers of any width; within a category wider wins.
func NumericRank(dt DataType) int {
	switch dt.(type) {
	case Int8, UInt8:
		return 1
	case Int16, UInt16:
		return 2
	case Int32, UInt32:
		return 3
	case Int64, UInt64:
		return 4
	case Float32:
		return 5
	case Float64:
		return 6
	default:
		return 0
	}
}
