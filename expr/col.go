package expr

// Comparison methods for ColumnExpr. These are how a caller builds an
// inequality join predicate for frame.JoinWhere:
// expr.Col("a").Lt(expr.Col("a")).And(expr.Col("b").Gt(expr.Col("b")))

func (c *ColumnExpr) Gt(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: c, right: toExpr(other), op: OpGreater}
}

func (c *ColumnExpr) Lt(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: c, right: toExpr(other), op: OpLess}
}

func (c *ColumnExpr) Gte(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: c, right: toExpr(other), op: OpGreaterEqual}
}

func (c *ColumnExpr) Lte(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: c, right: toExpr(other), op: OpLessEqual}
}

func (c *ColumnExpr) Eq(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: c, right: toExpr(other), op: OpEqual}
}

// EqMissing is an equality comparison where null == null is true.
func (c *ColumnExpr) EqMissing(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: c, right: toExpr(other), op: OpEqualMissing}
}

func (c *ColumnExpr) Ne(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: c, right: toExpr(other), op: OpNotEqual}
}

// Ge is an alias for Gte.
func (c *ColumnExpr) Ge(other interface{}) *BinaryExpr { return c.Gte(other) }

// Le is an alias for Lte.
func (c *ColumnExpr) Le(other interface{}) *BinaryExpr { return c.Lte(other) }

func (c *ColumnExpr) And(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: c, right: toExpr(other), op: OpAnd}
}

func (c *ColumnExpr) Or(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: c, right: toExpr(other), op: OpOr}
}

func (c *ColumnExpr) Not() *UnaryExpr {
	return &UnaryExpr{expr: c, op: OpNot}
}

func (c *ColumnExpr) Add(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: c, right: toExpr(other), op: OpAdd}
}

func (c *ColumnExpr) Sub(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: c, right: toExpr(other), op: OpSubtract}
}

func (c *ColumnExpr) Mul(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: c, right: toExpr(other), op: OpMultiply}
}

func (c *ColumnExpr) Div(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: c, right: toExpr(other), op: OpDivide}
}

func (c *ColumnExpr) Mod(other interface{}) *BinaryExpr {
	return &BinaryExpr{left: c, right: toExpr(other), op: OpModulo}
}

func (c *ColumnExpr) IsNull() *UnaryExpr {
	return &UnaryExpr{expr: c, op: OpIsNull}
}

func (c *ColumnExpr) IsNotNull() *UnaryExpr {
	return &UnaryExpr{expr: c, op: OpIsNotNull}
}

// Cast wraps the column in a type cast.
func (c *ColumnExpr) Cast(dtype interface{}) *CastExpr {
	return &CastExpr{expr: c, dataType: toDataType(dtype)}
}

// Between checks whether values fall within [lower, upper].
func (c *ColumnExpr) Between(lower, upper interface{}) *BetweenExpr {
	return &BetweenExpr{expr: c, lower: toExpr(lower), upper: toExpr(upper)}
}

// IsIn checks membership in a fixed value list.
func (c *ColumnExpr) IsIn(values interface{}) *IsInExpr {
	return &IsInExpr{expr: c, values: toExprList(values)}
}
