// Package expr implements the small expression tree used to describe join
// predicates and other column expressions without evaluating them eagerly.
package expr

import (
	"fmt"

	"github.com/arrowjoin/arrowjoin/internal/datatypes"
)

// Expr is a node in an unevaluated expression tree.
type Expr interface {
	String() string
	DataType() datatypes.DataType
	Alias(name string) Expr
	IsColumn() bool
	Name() string
}

// ColumnExpr references a column by name.
type ColumnExpr struct {
	name string
}

// LiteralExpr holds a constant value.
type LiteralExpr struct {
	value    interface{}
	dataType datatypes.DataType
}

// Value returns the literal's underlying value.
func (e *LiteralExpr) Value() interface{} { return e.value }

// AliasExpr renames the result of another expression.
type AliasExpr struct {
	expr  Expr
	alias string
}

// Inner returns the aliased expression.
func (e *AliasExpr) Inner() Expr { return e.expr }

// BinaryExpr is a two-operand operation, the shape a join predicate takes.
type BinaryExpr struct {
	left  Expr
	right Expr
	op    BinaryOp
}

func (e *BinaryExpr) Left() Expr    { return e.left }
func (e *BinaryExpr) Right() Expr   { return e.right }
func (e *BinaryExpr) Op() BinaryOp  { return e.op }

// UnaryExpr is a single-operand operation.
type UnaryExpr struct {
	expr Expr
	op   UnaryOp
}

func (e *UnaryExpr) Expr() Expr  { return e.expr }
func (e *UnaryExpr) Op() UnaryOp { return e.op }

// BinaryOp enumerates supported binary operations.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
	OpEqual
	OpEqualMissing
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpAnd
	OpOr
)

// UnaryOp enumerates supported unary operations.
type UnaryOp int

const (
	OpNot UnaryOp = iota
	OpNegate
	OpIsNull
	OpIsNotNull
)

// Col creates a column reference.
func Col(name string) *ColumnExpr {
	return &ColumnExpr{name: name}
}

// Lit creates a literal expression, inferring its data type from the Go
// value's concrete type.
func Lit(value interface{}) Expr {
	var dt datatypes.DataType
	switch v := value.(type) {
	case bool:
		dt = datatypes.Boolean{}
	case int:
		dt = datatypes.Int64{}
		value = int64(v)
	case int8:
		dt = datatypes.Int8{}
	case int16:
		dt = datatypes.Int16{}
	case int32:
		dt = datatypes.Int32{}
	case int64:
		dt = datatypes.Int64{}
	case uint8:
		dt = datatypes.UInt8{}
	case uint16:
		dt = datatypes.UInt16{}
	case uint32:
		dt = datatypes.UInt32{}
	case uint64:
		dt = datatypes.UInt64{}
	case float32:
		dt = datatypes.Float32{}
	case float64:
		dt = datatypes.Float64{}
	case string:
		dt = datatypes.String{}
	case []byte:
		dt = datatypes.Binary{}
	default:
		dt = datatypes.Unknown{}
	}
	return &LiteralExpr{value: value, dataType: dt}
}

// toExpr wraps any non-Expr value in a LiteralExpr so builder methods can
// accept either an Expr or a plain Go value for the right-hand side.
func toExpr(v interface{}) Expr {
	if e, ok := v.(Expr); ok {
		return e
	}
	return Lit(v)
}

func (e *ColumnExpr) String() string             { return fmt.Sprintf("col(%s)", e.name) }
func (e *ColumnExpr) DataType() datatypes.DataType { return datatypes.Unknown{} }
func (e *ColumnExpr) Alias(name string) Expr      { return &AliasExpr{expr: e, alias: name} }
func (e *ColumnExpr) IsColumn() bool              { return true }
func (e *ColumnExpr) Name() string                { return e.name }

func (e *LiteralExpr) String() string {
	if e.value == nil {
		return "null"
	}
	return fmt.Sprintf("lit(%v)", e.value)
}
func (e *LiteralExpr) DataType() datatypes.DataType { return e.dataType }
func (e *LiteralExpr) Alias(name string) Expr       { return &AliasExpr{expr: e, alias: name} }
func (e *LiteralExpr) IsColumn() bool               { return false }
func (e *LiteralExpr) Name() string                 { return "" }

func (e *AliasExpr) String() string             { return fmt.Sprintf("%s.alias(%s)", e.expr.String(), e.alias) }
func (e *AliasExpr) DataType() datatypes.DataType { return e.expr.DataType() }
func (e *AliasExpr) Alias(name string) Expr       { return &AliasExpr{expr: e.expr, alias: name} }
func (e *AliasExpr) IsColumn() bool               { return false }
func (e *AliasExpr) Name() string                 { return e.alias }

func (e *BinaryExpr) String() string {
	op := ""
	switch e.op {
	case OpAdd:
		op = "+"
	case OpSubtract:
		op = "-"
	case OpMultiply:
		op = "*"
	case OpDivide:
		op = "/"
	case OpModulo:
		op = "%"
	case OpEqual:
		op = "=="
	case OpEqualMissing:
		op = "==(missing-eq)"
	case OpNotEqual:
		op = "!="
	case OpLess:
		op = "<"
	case OpLessEqual:
		op = "<="
	case OpGreater:
		op = ">"
	case OpGreaterEqual:
		op = ">="
	case OpAnd:
		op = "&"
	case OpOr:
		op = "|"
	}
	return fmt.Sprintf("(%s %s %s)", e.left.String(), op, e.right.String())
}

func (e *BinaryExpr) DataType() datatypes.DataType {
	switch e.op {
	case OpEqual, OpEqualMissing, OpNotEqual, OpLess, OpLessEqual, OpGreater, OpGreaterEqual, OpAnd, OpOr:
		return datatypes.Boolean{}
	default:
		return e.left.DataType()
	}
}
func (e *BinaryExpr) Alias(name string) Expr { return &AliasExpr{expr: e, alias: name} }
func (e *BinaryExpr) IsColumn() bool         { return false }
func (e *BinaryExpr) Name() string           { return "" }

func (e *UnaryExpr) String() string {
	switch e.op {
	case OpNot:
		return fmt.Sprintf("!%s", e.expr.String())
	case OpNegate:
		return fmt.Sprintf("-%s", e.expr.String())
	case OpIsNull:
		return fmt.Sprintf("%s.is_null()", e.expr.String())
	case OpIsNotNull:
		return fmt.Sprintf("%s.is_not_null()", e.expr.String())
	default:
		return fmt.Sprintf("unary(%s)", e.expr.String())
	}
}

func (e *UnaryExpr) DataType() datatypes.DataType {
	switch e.op {
	case OpNot, OpIsNull, OpIsNotNull:
		return datatypes.Boolean{}
	case OpNegate:
		return e.expr.DataType()
	default:
		return datatypes.Unknown{}
	}
}
func (e *UnaryExpr) Alias(name string) Expr { return &AliasExpr{expr: e, alias: name} }
func (e *UnaryExpr) IsColumn() bool         { return false }
func (e *UnaryExpr) Name() string           { return "" }
