// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// View and gather constructors

// NewView creates a strided view over data. Every element the view can
// reach must lie inside data.
func NewView[T any](data []T, shape Shape, offset int, strides Strides, layout Layout) (*View[T], error) {
	return tensor.NewView(data, shape, offset, strides, layout)
}

// ViewOf returns a view covering all of s.
func ViewOf[T any](s Strided[T]) *View[T] { return tensor.ViewOf(s) }

// NewIndirect creates an index-gather view over data.
func NewIndirect[T any](data []T, shape Shape, indptr []int, layout Layout) (*Indirect[T], error) {
	return tensor.NewIndirect(data, shape, indptr, layout)
}

// Take gathers the elements of s at the given coordinates into a 1D view.
func Take[T any](s Strided[T], positions ...Index) (*Indirect[T], error) {
	return tensor.Take(s, positions...)
}

// Compress selects the elements of s where mask is true, in row-major order.
func Compress[T any](s Strided[T], mask Expr[bool]) (*Indirect[T], error) {
	return tensor.Compress(s, mask)
}

// Manipulation functions

// All keeps a whole axis.
func All() Slice { return tensor.All() }

// Reverse keeps a whole axis in reverse order.
func Reverse() Slice { return tensor.Reverse() }

// Range keeps [start, stop) of an axis.
func Range(start, stop int) Slice { return tensor.Range(start, stop) }

// RangeStep keeps start, start+step, ... up to (not including) stop.
func RangeStep(start, stop, step int) Slice { return tensor.RangeStep(start, stop, step) }

// Point keeps a single position and drops the axis.
func Point(i int) Slice { return tensor.Point(i) }

// SliceView selects a sub-array without copying.
//
// Example:
//
//	x := tensor.Zeros[int](tensor.Shape{4, 6})
//	odd, _ := tensor.SliceView[int](x, tensor.All(), tensor.RangeStep(1, 6, 2)) // Shape: (4, 3)
func SliceView[T any](s Strided[T], slices ...Slice) (*View[T], error) {
	return tensor.SliceView(s, slices...)
}

// Transpose returns a view with permuted axes; with no axes the order is reversed.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3, 4})
//	y, _ := tensor.Transpose[float32](x, 2, 0, 1) // Shape: (4, 2, 3)
func Transpose[T any](s Strided[T], axes ...int) (*View[T], error) {
	return tensor.Transpose(s, axes...)
}

// Flip reverses the order of elements along an axis.
func Flip[T any](s Strided[T], axis int) (*View[T], error) { return tensor.Flip(s, axis) }

// ExpandDims inserts an axis of extent 1.
func ExpandDims[T any](s Strided[T], axis int) (*View[T], error) { return tensor.ExpandDims(s, axis) }

// Squeeze removes axes of extent 1.
func Squeeze[T any](s Strided[T], axes ...int) (*View[T], error) { return tensor.Squeeze(s, axes...) }

// Reshape returns a view with a new shape over a contiguous source.
// One extent may be -1 and is inferred.
func Reshape[T any](s Strided[T], shape Shape) (*View[T], error) { return tensor.Reshape(s, shape) }

// BroadcastView returns a view of s stretched to shape using zero strides.
func BroadcastView[T any](s Strided[T], shape Shape) (*View[T], error) {
	return tensor.BroadcastView(s, shape)
}

// Diagonal returns the main diagonal of a 2D array as a view.
func Diagonal[T any](s Strided[T]) (*View[T], error) { return tensor.Diagonal(s) }

// Ravel flattens any expression into a new 1D array in layout order.
func Ravel[T any](e Expr[T], layout Layout) *Dense[T] { return tensor.Ravel(e, layout) }

// Concatenate joins expressions along an existing axis into a new array.
//
// Example:
//
//	a := tensor.Ones[float32](tensor.Shape{2, 3})
//	b := tensor.Zeros[float32](tensor.Shape{2, 3})
//	c, _ := tensor.Concatenate[float32](0, a, b) // Shape: (4, 3)
func Concatenate[T any](axis int, exprs ...Expr[T]) (*Dense[T], error) {
	return tensor.Concatenate(axis, exprs...)
}
