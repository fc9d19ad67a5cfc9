package tensor

import (
	"github.com/pkg/errors"
)

// Apply returns a lazy node whose element at every coordinate is f applied to
// the element of a at that coordinate. Nothing is computed until the node is
// read.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{1, 4, 9}, tensor.Shape{3})
//	roots := tensor.Apply(math.Sqrt, x) // lazily [1 2 3]
func Apply[A, T any](f func(A) T, a Expr[A]) *Unary[A, T] {
	return &Unary[A, T]{
		base: base{shape: a.Shape(), layout: a.Layout()},
		x:    a,
		f:    f,
	}
}

// ApplyInto evaluates f over a eagerly, writing into out. out must have the
// same shape as a; the check happens before anything is written.
func ApplyInto[A, T any](out Assignable[T], f func(A) T, a Expr[A]) error {
	if !out.Shape().Equal(a.Shape()) {
		return errors.Wrapf(ErrShapeMismatch, "output shape %v does not match input shape %v", out.Shape(), a.Shape())
	}
	return Assign[T](out, Apply(f, a))
}

// Apply2 returns a lazy node applying f to the elements of a and b broadcast
// to a common shape. Axes of extent 1 in an operand are repeated along the
// result, and missing leading axes are added.
//
// Example:
//
//	col, _ := tensor.FromSlice([]int{1, 2, 3}, tensor.Shape{3, 1})
//	row, _ := tensor.FromSlice([]int{10, 20}, tensor.Shape{2})
//	sum, _ := tensor.Apply2(func(x, y int) int { return x + y }, col, row) // Shape: (3, 2)
func Apply2[A, B, T any](f func(A, B) T, a Expr[A], b Expr[B]) (*Binary[A, B, T], error) {
	shape, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return nil, err
	}
	return &Binary[A, B, T]{
		base: base{shape: shape, layout: commonLayout(a.Layout(), b.Layout())},
		x:    a,
		y:    b,
		f:    f,
		bx:   newBroadcaster(a.Shape(), shape),
		by:   newBroadcaster(b.Shape(), shape),
	}, nil
}

// ApplyLeft applies f with a scalar left operand to every element of b.
func ApplyLeft[A, B, T any](f func(A, B) T, scalar A, b Expr[B]) *Binary[A, B, T] {
	n, err := Apply2[A, B, T](f, scalarNode(scalar), b)
	if err != nil {
		// A rank-0 operand broadcasts against every shape.
		panic(err)
	}
	return n
}

// ApplyRight applies f with a scalar right operand to every element of a.
func ApplyRight[A, B, T any](f func(A, B) T, a Expr[A], scalar B) *Binary[A, B, T] {
	n, err := Apply2[A, B, T](f, a, scalarNode(scalar))
	if err != nil {
		panic(err)
	}
	return n
}

// Apply2Into evaluates f over a and b eagerly, writing into out. The operands
// must broadcast together and their broadcast shape must equal out's shape;
// both checks happen before anything is written.
func Apply2Into[A, B, T any](out Assignable[T], f func(A, B) T, a Expr[A], b Expr[B]) error {
	n, err := Apply2(f, a, b)
	if err != nil {
		return err
	}
	if !out.Shape().Equal(n.Shape()) {
		return errors.Wrapf(ErrShapeMismatch, "output shape %v does not match broadcast shape %v", out.Shape(), n.Shape())
	}
	return Assign[T](out, n)
}
