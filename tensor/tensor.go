// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/born-ml/ndarray/internal/tensor"
)

// Type aliases for public API

// Shape represents the per-axis extents of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = tensor.Shape

// Index is a coordinate with one entry per axis.
type Index = tensor.Index

// Strides holds per-axis memory steps in elements.
type Strides = tensor.Strides

// Layout is a linearization order: RowMajor or ColumnMajor.
type Layout = tensor.Layout

// Layout constants.
const (
	RowMajor    Layout = tensor.RowMajor
	ColumnMajor Layout = tensor.ColumnMajor
)

// Number is a constraint for element types with arithmetic operators.
type Number = tensor.Number

// Real is a constraint for ordered numeric element types.
type Real = tensor.Real

// Ordered is a constraint for element types with comparison operators.
type Ordered = tensor.Ordered

// Expr is the read-only contract shared by every array-like value.
type Expr[T any] = tensor.Expr[T]

// Assignable is an expression backed by writable storage.
type Assignable[T any] = tensor.Assignable[T]

// Strided is an assignable expression that exposes its backing slice.
type Strided[T any] = tensor.Strided[T]

// Dense is an owning array with canonical strides.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	x.At(1, 2) // 6
type Dense[T any] = tensor.Dense[T]

// View is a non-owning strided reference into another array's storage.
type View[T any] = tensor.View[T]

// Indirect selects elements of a backing slice through a pointer array.
type Indirect[T any] = tensor.Indirect[T]

// Const is a lazy node yielding one value everywhere.
type Const[T any] = tensor.Const[T]

// Broadcast is a lazy node stretching an operand to a larger shape.
type Broadcast[T any] = tensor.Broadcast[T]

// Unary is a lazy element-wise function of one operand.
type Unary[A, T any] = tensor.Unary[A, T]

// Binary is a lazy element-wise function of two broadcast operands.
type Binary[A, B, T any] = tensor.Binary[A, B, T]

// Select is a lazy ternary choice between two operands.
type Select[T any] = tensor.Select[T]

// Reduction is a lazy fold along a set of axes.
type Reduction[T any] = tensor.Reduction[T]

// Iterator is a random-access cursor over any expression.
type Iterator[T any] = tensor.Iterator[T]

// Slice selects part of one axis in SliceView.
type Slice = tensor.Slice

// ReduceOption configures Reduce, ReduceAxes and ReduceLazy.
type ReduceOption = tensor.ReduceOption

// Errors. Test for them with errors.Is.
var (
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrOutOfRange    = tensor.ErrOutOfRange
	ErrAxis          = tensor.ErrAxis
	ErrEmptyReduce   = tensor.ErrEmptyReduce
	ErrReadOnly      = tensor.ErrReadOnly
	ErrIncomparable  = tensor.ErrIncomparable
)

// Shape utilities

// MakeShape creates a shape from extents.
func MakeShape(dims ...int) Shape { return tensor.MakeShape(dims...) }

// MakeIndex creates an index from coordinates.
func MakeIndex(coords ...int) Index { return tensor.MakeIndex(coords...) }

// MakeStrides returns the canonical strides of a dense block of the given shape.
func MakeStrides(shape Shape, layout Layout) Strides { return tensor.MakeStrides(shape, layout) }

// ParseLayout parses "row", "c", "col", "f" and their long forms.
func ParseLayout(s string) (Layout, error) { return tensor.ParseLayout(s) }

// RavelIndex converts an index into a flat position in layout order.
func RavelIndex(index Index, shape Shape, layout Layout) (int, error) {
	return tensor.RavelIndex(index, shape, layout)
}

// UnravelIndex converts a flat position in layout order into an index.
func UnravelIndex(flat int, shape Shape, layout Layout) (Index, error) {
	return tensor.UnravelIndex(flat, shape, layout)
}

// BroadcastShapes computes the NumPy broadcast of any number of shapes.
//
// Example:
//
//	s, _ := tensor.BroadcastShapes(tensor.Shape{5}, tensor.Shape{3, 1}, tensor.Shape{1, 1})
//	// s = (3, 5)
func BroadcastShapes(shapes ...Shape) (Shape, error) { return tensor.BroadcastShapes(shapes...) }

// NormalizeAxis maps a possibly negative axis into [0, rank).
func NormalizeAxis(axis, rank int) (int, error) { return tensor.NormalizeAxis(axis, rank) }

// NormalizeAxes normalizes and sorts axes, rejecting repeats.
func NormalizeAxes(axes []int, rank int) ([]int, error) { return tensor.NormalizeAxes(axes, rank) }

// ShapeCat concatenates shapes.
func ShapeCat(shapes ...Shape) Shape { return tensor.ShapeCat(shapes...) }

// Creation functions

// New creates a zero-filled array stored in layout.
func New[T any](shape Shape, layout Layout) (*Dense[T], error) { return tensor.New[T](shape, layout) }

// Zeros creates a row-major array filled with zero values.
// Panics if shape has a negative extent.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3})
func Zeros[T any](shape Shape) *Dense[T] { return tensor.Zeros[T](shape) }

// Ones creates a row-major array filled with ones.
func Ones[T Number](shape Shape) *Dense[T] { return tensor.Ones[T](shape) }

// Full creates a row-major array filled with value.
func Full[T any](shape Shape, value T) *Dense[T] { return tensor.Full(shape, value) }

// Scalar creates a rank-0 array holding value.
func Scalar[T any](value T) *Dense[T] { return tensor.Scalar(value) }

// FromSlice copies data into a new row-major array.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice[T any](data []T, shape Shape) (*Dense[T], error) { return tensor.FromSlice(data, shape) }

// FromSliceLayout copies data, ordered by layout, into a new array stored in layout.
func FromSliceLayout[T any](data []T, shape Shape, layout Layout) (*Dense[T], error) {
	return tensor.FromSliceLayout(data, shape, layout)
}

// ZerosLike creates a zero array with the shape of e.
func ZerosLike[T, U any](e Expr[U]) *Dense[T] { return tensor.ZerosLike[T, U](e) }

// FullLike creates an array with the shape of e filled with value.
func FullLike[T, U any](e Expr[U], value T) *Dense[T] { return tensor.FullLike[T, U](e, value) }

// Arange creates a 1D array with values start, start+step, ... up to (not including) stop.
//
// Example:
//
//	x, _ := tensor.Arange(0, 10, 1) // [0 1 2 ... 9]
func Arange[T Real](start, stop, step T) (*Dense[T], error) { return tensor.Arange(start, stop, step) }

// Linspace creates n evenly spaced values over [start, stop].
func Linspace[T constraints.Float](start, stop T, n int) (*Dense[T], error) {
	return tensor.Linspace(start, stop, n)
}

// Eye creates an n×n identity matrix.
func Eye[T Number](n int) *Dense[T] { return tensor.Eye[T](n) }

// Evaluation

// Eval materializes an expression into a new row-major array.
func Eval[T any](e Expr[T]) *Dense[T] { return tensor.Eval(e) }

// EvalLayout materializes an expression into a new array stored in layout.
func EvalLayout[T any](e Expr[T], layout Layout) *Dense[T] { return tensor.EvalLayout(e, layout) }

// Assign writes src into dst, broadcasting src to dst's shape.
func Assign[T any](dst Assignable[T], src Expr[T]) error { return tensor.Assign(dst, src) }

// Iteration

// Begin returns an iterator at the first element of e in layout order.
func Begin[T any](e Expr[T], layout Layout) *Iterator[T] { return tensor.Begin(e, layout) }

// End returns an iterator one past the last element of e in layout order.
func End[T any](e Expr[T], layout Layout) *Iterator[T] { return tensor.End(e, layout) }

// CBegin returns an iterator at the first element that refuses writes.
func CBegin[T any](e Expr[T], layout Layout) *Iterator[T] { return tensor.CBegin(e, layout) }

// CEnd returns a read-only iterator one past the last element.
func CEnd[T any](e Expr[T], layout Layout) *Iterator[T] { return tensor.CEnd(e, layout) }

// ToSlice collects the elements of e in layout order.
func ToSlice[T any](e Expr[T], layout Layout) []T { return tensor.ToSlice(e, layout) }

// Enumerate yields every index of e with its element in layout order.
// The yielded index is reused between iterations and must not be retained.
//
// Example:
//
//	for idx, v := range tensor.Enumerate[float64](x, tensor.RowMajor) {
//	    fmt.Println(idx, v)
//	}
func Enumerate[T any](e Expr[T], layout Layout) iter.Seq2[Index, T] { return tensor.Enumerate(e, layout) }

// Values yields every element of e in layout order.
func Values[T any](e Expr[T], layout Layout) iter.Seq[T] { return tensor.Values(e, layout) }
