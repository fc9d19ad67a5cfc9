// Package tensor provides lazily evaluated multidimensional arrays with
// NumPy-style broadcasting.
//
// Dense owns storage; View, Indirect and the lazy nodes borrow it. Every kind
// satisfies Expr, so element-wise functions, reductions and views compose
// freely and nothing is computed until an expression is read, iterated or
// materialized with Eval or Assign.
package tensor

import "golang.org/x/exp/constraints"

// Number is a constraint for element types with arithmetic operators.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Real is a constraint for ordered numeric element types.
type Real interface {
	constraints.Integer | constraints.Float
}

// Ordered is a constraint for element types with comparison operators.
type Ordered interface {
	constraints.Ordered
}
