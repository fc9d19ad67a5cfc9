// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides lazy, NumPy-style n-dimensional arrays.
//
// # Overview
//
// Every array-like value implements Expr[T]: it has a shape and can be read
// at any index. This package provides:
//   - Dense arrays that own their storage (row- or column-major)
//   - Views (slicing, transpose, reshape, broadcast) that share storage
//   - Lazy element-wise nodes built with Apply, Apply2 and Where
//   - Reductions and scans along any set of axes
//   - Random-access iterators and range-over-func adapters
//
// # Basic Usage
//
//	import "github.com/born-ml/ndarray/tensor"
//
//	func main() {
//	    x, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	    y, _ := tensor.FromSlice([]float64{10, 20, 30}, tensor.Shape{3})
//
//	    // Nothing is computed yet.
//	    sum, _ := tensor.Apply2(func(a, b float64) float64 { return a + b }, x, y)
//
//	    // Materialize.
//	    z := tensor.Eval[float64](sum)
//	    fmt.Println(tensor.Sprint[float64](z))
//	}
//
// # Laziness
//
// Expression nodes hold their operands by reference and recompute on every
// read; no result is cached. Writing into an operand is visible through
// every node built on it. Call Eval to take a snapshot.
//
// Nodes keep per-node scratch space for broadcasting, so a single node must
// not be read from several goroutines at once. Independent nodes may be
// used concurrently.
//
// # Broadcasting
//
// Shapes are aligned on their trailing axes. Two extents are compatible if
// they are equal or one of them is 1. Example:
//
//	(3, 1, 5) and (4, 5) broadcast to (3, 4, 5)
//
// # Errors
//
// Constructors return errors wrapping one of the sentinel values
// (ErrShapeMismatch, ErrOutOfRange, ErrAxis, ...). Use errors.Is to test
// for them. Element accessors such as At and Set panic on a bad index, like
// slice indexing does.
//
// # Operators
//
// Ready-made arithmetic, comparison and reduction builders live in the
// companion package github.com/born-ml/ndarray/ops.
package tensor
