// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ndarray/internal/matx"
)

// Matrix presents a rank-2 float64 expression as a gonum mat.Matrix
// without copying.
type Matrix = matx.Matrix

// AsMatrix wraps a rank-2 expression for use with gonum.
func AsMatrix(e Expr[float64]) (*Matrix, error) { return matx.NewMatrix(e) }

// ToGonum copies a rank-2 expression into a new mat.Dense.
// Arrays with a zero extent are rejected because gonum has no empty matrices.
func ToGonum(e Expr[float64]) (*mat.Dense, error) { return matx.ToDense(e) }

// FromGonum copies any gonum matrix into a new row-major array.
func FromGonum(m mat.Matrix) *Dense[float64] { return matx.FromMatrix(m) }

// MatMul returns the matrix product a·b, computed by gonum.
//
// Example:
//
//	a := tensor.Ones[float64](tensor.Shape{2, 3})
//	b := tensor.Ones[float64](tensor.Shape{3, 4})
//	c, _ := tensor.MatMul(a, b) // Shape: (2, 4)
func MatMul(a, b Expr[float64]) (*Dense[float64], error) { return matx.Mul(a, b) }
