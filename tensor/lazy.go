// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// Lazy nodes

// Constant returns a lazy node of the given shape filled with value.
func Constant[T any](value T, shape Shape) (*Const[T], error) { return tensor.Constant(value, shape) }

// BroadcastTo returns a lazy node presenting x with the given shape.
func BroadcastTo[T any](x Expr[T], shape Shape) (*Broadcast[T], error) {
	return tensor.BroadcastTo(x, shape)
}

// Where selects elements from x where cond is true and from y elsewhere,
// broadcasting all three.
//
// Example:
//
//	cond, _ := tensor.FromSlice([]bool{true, false, true}, tensor.Shape{3})
//	x := tensor.Full(tensor.Shape{3}, 1.0)
//	y := tensor.Full(tensor.Shape{3}, 0.0)
//	result, _ := tensor.Where[float64](cond, x, y) // [1 0 1]
func Where[T any](cond Expr[bool], x, y Expr[T]) (*Select[T], error) { return tensor.Where(cond, x, y) }

// Apply returns a lazy node applying f to every element of a.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{1, 4, 9}, tensor.Shape{3})
//	roots := tensor.Apply(math.Sqrt, x) // lazily [1 2 3]
func Apply[A, T any](f func(A) T, a Expr[A]) *Unary[A, T] { return tensor.Apply(f, a) }

// ApplyInto evaluates f over a eagerly into out, which must have a's shape.
func ApplyInto[A, T any](out Assignable[T], f func(A) T, a Expr[A]) error {
	return tensor.ApplyInto(out, f, a)
}

// Apply2 returns a lazy node applying f to a and b broadcast together.
func Apply2[A, B, T any](f func(A, B) T, a Expr[A], b Expr[B]) (*Binary[A, B, T], error) {
	return tensor.Apply2(f, a, b)
}

// ApplyLeft applies f with a scalar left operand.
func ApplyLeft[A, B, T any](f func(A, B) T, scalar A, b Expr[B]) *Binary[A, B, T] {
	return tensor.ApplyLeft(f, scalar, b)
}

// ApplyRight applies f with a scalar right operand.
func ApplyRight[A, B, T any](f func(A, B) T, a Expr[A], scalar B) *Binary[A, B, T] {
	return tensor.ApplyRight(f, a, scalar)
}

// Apply2Into evaluates f over a and b eagerly into out, whose shape must be
// the broadcast shape.
func Apply2Into[A, B, T any](out Assignable[T], f func(A, B) T, a Expr[A], b Expr[B]) error {
	return tensor.Apply2Into(out, f, a, b)
}

// Reductions

// KeepDims keeps reduced axes with extent 1.
func KeepDims() ReduceOption { return tensor.KeepDims() }

// DropDims removes reduced axes. This is the default.
func DropDims() ReduceOption { return tensor.DropDims() }

// Init seeds every fold with value, which must have the element type.
func Init[T any](value T) ReduceOption { return tensor.Init(value) }

// WhereMask restricts a reduction to the elements where mask is true.
func WhereMask(mask Expr[bool]) ReduceOption { return tensor.WhereMask(mask) }

// Reduce folds all elements of a with f in row-major order.
//
// Example:
//
//	x, _ := tensor.FromSlice([]int{7, -4, 3, -5, 5}, tensor.Shape{5})
//	pos := tensor.Apply(func(v int) bool { return v > 0 }, x)
//	sum, _ := tensor.Reduce(add, x, tensor.Init(0), tensor.WhereMask(pos)) // 15
func Reduce[T any](f func(T, T) T, a Expr[T], opts ...ReduceOption) (T, error) {
	return tensor.Reduce(f, a, opts...)
}

// ReduceAxes folds a with f along axes into a new array.
func ReduceAxes[T any](f func(T, T) T, a Expr[T], axes []int, opts ...ReduceOption) (*Dense[T], error) {
	return tensor.ReduceAxes(f, a, axes, opts...)
}

// ReduceLazy returns a lazy node folding a with f along axes.
func ReduceLazy[T any](f func(T, T) T, a Expr[T], axes []int, opts ...ReduceOption) (*Reduction[T], error) {
	return tensor.ReduceLazy(f, a, axes, opts...)
}

// Accumulate computes an inclusive scan of a with f along axis.
func Accumulate[T any](f func(T, T) T, a Expr[T], axis int) (*Dense[T], error) {
	return tensor.Accumulate(f, a, axis)
}
