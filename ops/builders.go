// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"golang.org/x/exp/constraints"

	"github.com/born-ml/ndarray/internal/ops"
	"github.com/born-ml/ndarray/tensor"
)

// Lazy element-wise builders. Binary builders broadcast their operands and
// fail with tensor.ErrShapeMismatch when the shapes are incompatible.

// Plus returns the lazy sum a + b.
func Plus[T tensor.Number](a, b tensor.Expr[T]) (*tensor.Binary[T, T, T], error) { return ops.Plus(a, b) }

// Minus returns the lazy difference a - b.
func Minus[T tensor.Number](a, b tensor.Expr[T]) (*tensor.Binary[T, T, T], error) {
	return ops.Minus(a, b)
}

// Times returns the lazy product a * b.
func Times[T tensor.Number](a, b tensor.Expr[T]) (*tensor.Binary[T, T, T], error) {
	return ops.Times(a, b)
}

// Divide returns the lazy quotient a / b.
func Divide[T tensor.Number](a, b tensor.Expr[T]) (*tensor.Binary[T, T, T], error) {
	return ops.Divide(a, b)
}

// Maximum returns the lazy element-wise maximum.
func Maximum[T tensor.Ordered](a, b tensor.Expr[T]) (*tensor.Binary[T, T, T], error) {
	return ops.Maximum(a, b)
}

// Minimum returns the lazy element-wise minimum.
func Minimum[T tensor.Ordered](a, b tensor.Expr[T]) (*tensor.Binary[T, T, T], error) {
	return ops.Minimum(a, b)
}

// Negate returns the lazy negation of a.
func Negate[T tensor.Number](a tensor.Expr[T]) *tensor.Unary[T, T] { return ops.Negate(a) }

// Gt returns the lazy mask a > b.
func Gt[T tensor.Ordered](a, b tensor.Expr[T]) (*tensor.Binary[T, T, bool], error) { return ops.Gt(a, b) }

// Lt returns the lazy mask a < b.
func Lt[T tensor.Ordered](a, b tensor.Expr[T]) (*tensor.Binary[T, T, bool], error) { return ops.Lt(a, b) }

// Ge returns the lazy mask a >= b.
func Ge[T tensor.Ordered](a, b tensor.Expr[T]) (*tensor.Binary[T, T, bool], error) { return ops.Ge(a, b) }

// Le returns the lazy mask a <= b.
func Le[T tensor.Ordered](a, b tensor.Expr[T]) (*tensor.Binary[T, T, bool], error) { return ops.Le(a, b) }

// Eq returns the lazy mask a == b.
func Eq[T comparable](a, b tensor.Expr[T]) (*tensor.Binary[T, T, bool], error) { return ops.Eq(a, b) }

// Ne returns the lazy mask a != b.
func Ne[T comparable](a, b tensor.Expr[T]) (*tensor.Binary[T, T, bool], error) { return ops.Ne(a, b) }

// Scale returns the lazy product a * k.
func Scale[T tensor.Number](a tensor.Expr[T], k T) *tensor.Binary[T, T, T] { return ops.Scale(a, k) }

// Shift returns the lazy sum a + k.
func Shift[T tensor.Number](a tensor.Expr[T], k T) *tensor.Binary[T, T, T] { return ops.Shift(a, k) }

// Cast converts every element of a to U.
func Cast[T, U tensor.Real](a tensor.Expr[T]) *tensor.Unary[T, U] { return ops.Cast[T, U](a) }

// Sqrt returns the lazy square root of a.
func Sqrt[T constraints.Float](a tensor.Expr[T]) *tensor.Unary[T, T] { return ops.Sqrt(a) }

// Exp returns the lazy exponential of a.
func Exp[T constraints.Float](a tensor.Expr[T]) *tensor.Unary[T, T] { return ops.Exp(a) }

// Log returns the lazy natural logarithm of a.
func Log[T constraints.Float](a tensor.Expr[T]) *tensor.Unary[T, T] { return ops.Log(a) }
