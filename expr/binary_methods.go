package expr

// These let a comparison or arithmetic result be chained into a further
// expression, e.g. (a.Add(b)).Gt(c).

func (b *BinaryExpr) Gt(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: b, right: toExpr(other), op: OpGreater}
}

func (b *BinaryExpr) Lt(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: b, right: toExpr(other), op: OpLess}
}

func (b *BinaryExpr) Gte(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: b, right: toExpr(other), op: OpGreaterEqual}
}

func (b *BinaryExpr) Lte(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: b, right: toExpr(other), op: OpLessEqual}
}

func (b *BinaryExpr) Ge(other interface{}) *BinaryExpr { return b.Gte(other) }
func (b *BinaryExpr) Le(other interface{}) *BinaryExpr { return b.Lte(other) }

func (b *BinaryExpr) Eq(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: b, right: toExpr(other), op: OpEqual}
}

func (b *BinaryExpr) Ne(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: b, right: toExpr(other), op: OpNotEqual}
}

func (b *BinaryExpr) And(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: b, right: toExpr(other), op: OpAnd}
}

func (b *BinaryExpr) Or(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: b, right: toExpr(other), op: OpOr}
}

func (b *BinaryExpr) Not() *UnaryExpr {
	return &UnaryExpr{expr: b, op: OpNot}
}

func (b *BinaryExpr) Add(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: b, right: toExpr(other), op: OpAdd}
}

func (b *BinaryExpr) Sub(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: b, right: toExpr(other), op: OpSubtract}
}

func (b *BinaryExpr) Mul(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: b, right: toExpr(other), op: OpMultiply}
}

func (b *BinaryExpr) Div(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: b, right: toExpr(other), op: OpDivide}
}

func (b *BinaryExpr) Cast(dtype interface{}) *CastExpr {
	return &CastExpr{expr: b, dataType: toDataType(dtype)}
}

func (b *BinaryExpr) IsNull() *UnaryExpr {
	return &UnaryExpr{expr: b, op: OpIsNull}
}

func (b *BinaryExpr) IsNotNull() *UnaryExpr {
	return &UnaryExpr{expr: b, op: OpIsNotNull}
}
