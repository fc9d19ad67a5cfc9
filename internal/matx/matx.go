// Package matx bridges rank-2 float64 expressions and gonum matrices.
//
// Matrix presents any rank-2 expression (dense, view, lazy node) as a
// mat.Matrix without copying, so gonum routines can consume it directly.
// ToDense and FromMatrix copy in each direction.
package matx

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"

	"github.com/born-ml/ndarray/internal/tensor"
)

// Matrix adapts a rank-2 expression to mat.Matrix. Elements are read from
// the expression on every At call.
type Matrix struct {
	e          tensor.Expr[float64]
	rows, cols int
}

var _ mat.Matrix = (*Matrix)(nil)

// NewMatrix wraps e, which must have rank 2.
func NewMatrix(e tensor.Expr[float64]) (*Matrix, error) {
	shape := e.Shape()
	if len(shape) != 2 {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch, "matrix requires a 2-d array, got shape %v", shape)
	}
	return &Matrix{e: e, rows: shape[0], cols: shape[1]}, nil
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (r, c int) { return m.rows, m.cols }

// At returns the element at row i and column j.
// Panics if indices are out of bounds.
func (m *Matrix) At(i, j int) float64 { return m.e.At(i, j) }

// T returns the transpose without copying.
func (m *Matrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// Expr returns the wrapped expression.
func (m *Matrix) Expr() tensor.Expr[float64] { return m.e }

// ToDense copies a rank-2 expression into a new gonum dense matrix.
// gonum has no empty matrices, so both extents must be positive.
func ToDense(e tensor.Expr[float64]) (*mat.Dense, error) {
	m, err := NewMatrix(e)
	if err != nil {
		return nil, err
	}
	if m.rows == 0 || m.cols == 0 {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch, "cannot convert empty array of shape %v", e.Shape())
	}
	return mat.NewDense(m.rows, m.cols, tensor.ToSlice(e, tensor.RowMajor)), nil
}

// FromMatrix copies any gonum matrix into a new row-major tensor.
func FromMatrix(m mat.Matrix) *tensor.Dense[float64] {
	r, c := m.Dims()
	out := tensor.Zeros[float64](tensor.Shape{r, c})
	if raw, ok := m.(mat.RawMatrixer); ok {
		g := raw.RawMatrix()
		for i := 0; i < r; i++ {
			copy(out.Data()[i*c:(i+1)*c], g.Data[i*g.Stride:i*g.Stride+c])
		}
		return out
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Data()[i*c+j] = m.At(i, j)
		}
	}
	return out
}

// Mul returns the matrix product a·b as a new row-major tensor.
//
// Example:
//
//	a := tensor.Ones[float64](tensor.Shape{2, 3})
//	b := tensor.Ones[float64](tensor.Shape{3, 4})
//	c, _ := matx.Mul(a, b) // Shape: (2, 4), every element 3
func Mul(a, b tensor.Expr[float64]) (*tensor.Dense[float64], error) {
	ma, err := NewMatrix(a)
	if err != nil {
		return nil, errors.WithMessage(err, "left operand")
	}
	mb, err := NewMatrix(b)
	if err != nil {
		return nil, errors.WithMessage(err, "right operand")
	}
	if ma.cols != mb.rows {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch,
			"matmul: inner dimensions differ: %v @ %v", a.Shape(), b.Shape())
	}
	if ma.rows == 0 || mb.cols == 0 || ma.cols == 0 {
		return tensor.Zeros[float64](tensor.Shape{ma.rows, mb.cols}), nil
	}
	if klog.V(4).Enabled() {
		klog.Infof("matmul %v @ %v", a.Shape(), b.Shape())
	}
	da, err := ToDense(a)
	if err != nil {
		return nil, err
	}
	db, err := ToDense(b)
	if err != nil {
		return nil, err
	}
	var c mat.Dense
	c.Mul(da, db)
	return FromMatrix(&c), nil
}
