// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"golang.org/x/exp/constraints"

	"github.com/born-ml/ndarray/internal/ops"
	"github.com/born-ml/ndarray/tensor"
)

// Reductions accept the same options as tensor.Reduce. Sum, Prod, All and
// Any are seeded with their identity, so they succeed on empty input.

// Sum adds all elements.
func Sum[T tensor.Number](a tensor.Expr[T], opts ...tensor.ReduceOption) (T, error) {
	return ops.Sum(a, opts...)
}

// Prod multiplies all elements.
func Prod[T tensor.Number](a tensor.Expr[T], opts ...tensor.ReduceOption) (T, error) {
	return ops.Prod(a, opts...)
}

// Amax returns the largest element.
func Amax[T tensor.Ordered](a tensor.Expr[T], opts ...tensor.ReduceOption) (T, error) {
	return ops.Amax(a, opts...)
}

// Amin returns the smallest element.
func Amin[T tensor.Ordered](a tensor.Expr[T], opts ...tensor.ReduceOption) (T, error) {
	return ops.Amin(a, opts...)
}

// All reports whether every element is true.
func All(a tensor.Expr[bool], opts ...tensor.ReduceOption) (bool, error) { return ops.All(a, opts...) }

// Any reports whether some element is true.
func Any(a tensor.Expr[bool], opts ...tensor.ReduceOption) (bool, error) { return ops.Any(a, opts...) }

// CountNonzero counts the non-zero elements.
func CountNonzero[T tensor.Number](a tensor.Expr[T], opts ...tensor.ReduceOption) (int, error) {
	return ops.CountNonzero(a, opts...)
}

// SumAxes adds along axes.
func SumAxes[T tensor.Number](a tensor.Expr[T], axes []int, opts ...tensor.ReduceOption) (*tensor.Dense[T], error) {
	return ops.SumAxes(a, axes, opts...)
}

// MaxAxes takes the maximum along axes.
func MaxAxes[T tensor.Ordered](a tensor.Expr[T], axes []int, opts ...tensor.ReduceOption) (*tensor.Dense[T], error) {
	return ops.MaxAxes(a, axes, opts...)
}

// MinAxes takes the minimum along axes.
func MinAxes[T tensor.Ordered](a tensor.Expr[T], axes []int, opts ...tensor.ReduceOption) (*tensor.Dense[T], error) {
	return ops.MinAxes(a, axes, opts...)
}

// Mean returns the arithmetic mean. Init is not accepted.
func Mean[T constraints.Float](a tensor.Expr[T], opts ...tensor.ReduceOption) (T, error) {
	return ops.Mean(a, opts...)
}

// MeanAxes returns the arithmetic mean along axes.
func MeanAxes[T constraints.Float](a tensor.Expr[T], axes []int, opts ...tensor.ReduceOption) (*tensor.Dense[T], error) {
	return ops.MeanAxes(a, axes, opts...)
}

// Cumsum returns the running sum along axis.
func Cumsum[T tensor.Number](a tensor.Expr[T], axis int) (*tensor.Dense[T], error) {
	return ops.Cumsum(a, axis)
}

// Cumprod returns the running product along axis.
func Cumprod[T tensor.Number](a tensor.Expr[T], axis int) (*tensor.Dense[T], error) {
	return ops.Cumprod(a, axis)
}

// ArgMax returns the row-major flat position of the first largest element.
func ArgMax[T tensor.Ordered](a tensor.Expr[T]) (int, error) { return ops.ArgMax(a) }

// ArgMin returns the row-major flat position of the first smallest element.
func ArgMin[T tensor.Ordered](a tensor.Expr[T]) (int, error) { return ops.ArgMin(a) }
