package expr

import (
	"testing"

	"github.com/arrowjoin/arrowjoin/internal/datatypes"
	"github.com/stretchr/testify/assert"
)

func TestColumnExpr(t *testing.T) {
	col := Col("a")

	assert.Equal(t, "col(a)", col.String())
	assert.True(t, col.IsColumn())
	assert.Equal(t, "a", col.Name())
	assert.Equal(t, datatypes.Unknown{}, col.DataType())

	aliased := col.Alias("renamed")
	assert.Equal(t, "col(a).alias(renamed)", aliased.String())
	assert.Equal(t, "renamed", aliased.Name())
}

func TestLiteralExpr(t *testing.T) {
	tests := []struct {
		value    interface{}
		expected string
		dataType datatypes.DataType
	}{
		{42, "lit(42)", datatypes.Int64{}},
		{int32(42), "lit(42)", datatypes.Int32{}},
		{3.14, "lit(3.14)", datatypes.Float64{}},
		{"hello", "lit(hello)", datatypes.String{}},
		{true, "lit(true)", datatypes.Boolean{}},
	}

	for _, test := range tests {
		lit := Lit(test.value)
		assert.Equal(t, test.expected, lit.String())
		assert.False(t, lit.IsColumn())
		assert.Equal(t, test.dataType, lit.DataType())
	}
}

func TestInequalityPredicateShape(t *testing.T) {
	pred := Col("a").Lt(Col("c"))
	assert.Equal(t, "(col(a) < col(c))", pred.String())
	assert.Equal(t, datatypes.Boolean{}, pred.DataType())
	assert.Equal(t, OpLess, pred.Op())
	assert.True(t, pred.Left().IsColumn())
	assert.True(t, pred.Right().IsColumn())
}

func TestChainedPredicateWithAnd(t *testing.T) {
	combined := Col("a").Lt(Col("c")).And(Col("b").Gt(Col("d")))
	assert.Equal(t, OpAnd, combined.Op())
	left, ok := combined.Left().(*BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, OpLess, left.Op())
}

func TestUnaryExpr(t *testing.T) {
	col := Col("a")
	notNull := col.IsNotNull()
	assert.Equal(t, "col(a).is_not_null()", notNull.String())
	assert.Equal(t, datatypes.Boolean{}, notNull.DataType())
}

func TestBetweenAndIsIn(t *testing.T) {
	between := Col("a").Between(1, 10)
	assert.Equal(t, "col(a).between(lit(1), lit(10))", between.String())
	assert.Equal(t, datatypes.Boolean{}, between.DataType())

	isIn := Col("a").IsIn([]int64{1, 2, 3})
	assert.Len(t, isIn.Values(), 3)
}

func TestCastExpr(t *testing.T) {
	cast := Col("a").Cast(datatypes.Float64{})
	assert.Equal(t, datatypes.Float64{}, cast.DataType())
}
