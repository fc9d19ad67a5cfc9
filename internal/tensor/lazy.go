package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Lazy nodes describe a computation without performing it. Each element is
// computed on demand when the node is indexed, iterated, or materialized with
// Eval/Assign, by pulling elements from its operands recursively.
//
// Nodes never cache: reading the same element twice computes it twice.
// Node functions must be free of side effects. Operands are referenced, not
// copied, so mutating an operand's storage changes what the node yields.
//
// Every node owns small scratch buffers for broadcast coordinates, which keeps
// per-element evaluation allocation free but makes a node unsafe for use
// from several goroutines at once.

// Const is a lazy node that yields one value at every coordinate.
type Const[T any] struct {
	base
	value T
}

// Constant returns a lazy node of the given shape filled with value. With an
// empty shape it is a rank-0 scalar that broadcasts against anything.
func Constant[T any](value T, shape Shape) (*Const[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid shape")
	}
	return &Const[T]{base: base{shape: shape.Clone()}, value: value}, nil
}

func scalarNode[T any](value T) *Const[T] {
	return &Const[T]{base: base{shape: Shape{}}, value: value}
}

// Value returns the constant.
func (c *Const[T]) Value() T { return c.value }

// IsContiguous is always false for a lazy node.
func (c *Const[T]) IsContiguous() bool { return false }

func (c *Const[T]) at(Index) T { return c.value }

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (c *Const[T]) At(indices ...int) T { return mustGet[T](c, indices) }

// Get returns the element at index or an ErrOutOfRange error.
func (c *Const[T]) Get(index Index) (T, error) { return get[T](c, index) }

// Begin returns an iterator at the first element of a traversal.
func (c *Const[T]) Begin(layout Layout) *Iterator[T] { return Begin[T](c, layout) }

// End returns an iterator one past the last element of a traversal.
func (c *Const[T]) End(layout Layout) *Iterator[T] { return End[T](c, layout) }

// Broadcast is a lazy node that stretches an operand to a larger shape.
type Broadcast[T any] struct {
	base
	x  Expr[T]
	bx broadcaster
}

// BroadcastTo returns a lazy node presenting x with the given shape.
func BroadcastTo[T any](x Expr[T], shape Shape) (*Broadcast[T], error) {
	if !canBroadcastTo(x.Shape(), shape) {
		return nil, errors.Wrapf(ErrShapeMismatch, "cannot broadcast shape %v to %v", x.Shape(), shape)
	}
	s := shape.Clone()
	return &Broadcast[T]{
		base: base{shape: s, layout: x.Layout()},
		x:    x,
		bx:   newBroadcaster(x.Shape(), s),
	}, nil
}

// IsContiguous is always false for a lazy node.
func (b *Broadcast[T]) IsContiguous() bool { return false }

func (b *Broadcast[T]) at(index Index) T { return b.x.at(b.bx.adjust(index)) }

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (b *Broadcast[T]) At(indices ...int) T { return mustGet[T](b, indices) }

// Get returns the element at index or an ErrOutOfRange error.
func (b *Broadcast[T]) Get(index Index) (T, error) { return get[T](b, index) }

// Begin returns an iterator at the first element of a traversal.
func (b *Broadcast[T]) Begin(layout Layout) *Iterator[T] { return Begin[T](b, layout) }

// End returns an iterator one past the last element of a traversal.
func (b *Broadcast[T]) End(layout Layout) *Iterator[T] { return End[T](b, layout) }

// Unary is a lazy node applying f to every element of one operand.
type Unary[A, T any] struct {
	base
	x Expr[A]
	f func(A) T
}

// IsContiguous is always false for a lazy node.
func (u *Unary[A, T]) IsContiguous() bool { return false }

func (u *Unary[A, T]) at(index Index) T { return u.f(u.x.at(index)) }

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (u *Unary[A, T]) At(indices ...int) T { return mustGet[T](u, indices) }

// Get returns the element at index or an ErrOutOfRange error.
func (u *Unary[A, T]) Get(index Index) (T, error) { return get[T](u, index) }

// Begin returns an iterator at the first element of a traversal.
func (u *Unary[A, T]) Begin(layout Layout) *Iterator[T] { return Begin[T](u, layout) }

// End returns an iterator one past the last element of a traversal.
func (u *Unary[A, T]) End(layout Layout) *Iterator[T] { return End[T](u, layout) }

// String returns a short description of the node.
func (u *Unary[A, T]) String() string {
	return fmt.Sprintf("Unary%v(%v)", u.shape, u.x)
}

// Binary is a lazy node applying f to the broadcast elements of two operands.
type Binary[A, B, T any] struct {
	base
	x  Expr[A]
	y  Expr[B]
	f  func(A, B) T
	bx broadcaster
	by broadcaster
}

// IsContiguous is always false for a lazy node.
func (n *Binary[A, B, T]) IsContiguous() bool { return false }

func (n *Binary[A, B, T]) at(index Index) T {
	a := n.x.at(n.bx.adjust(index))
	b := n.y.at(n.by.adjust(index))
	return n.f(a, b)
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (n *Binary[A, B, T]) At(indices ...int) T { return mustGet[T](n, indices) }

// Get returns the element at index or an ErrOutOfRange error.
func (n *Binary[A, B, T]) Get(index Index) (T, error) { return get[T](n, index) }

// Begin returns an iterator at the first element of a traversal.
func (n *Binary[A, B, T]) Begin(layout Layout) *Iterator[T] { return Begin[T](n, layout) }

// End returns an iterator one past the last element of a traversal.
func (n *Binary[A, B, T]) End(layout Layout) *Iterator[T] { return End[T](n, layout) }

// String returns a short description of the node.
func (n *Binary[A, B, T]) String() string {
	return fmt.Sprintf("Binary%v(%v, %v)", n.shape, n.x, n.y)
}

// Select is a lazy node choosing between two operands by a boolean condition,
// with all three broadcast to a common shape.
type Select[T any] struct {
	base
	cond Expr[bool]
	x, y Expr[T]
	bc   broadcaster
	bx   broadcaster
	by   broadcaster
}

// Where returns a lazy node yielding x where cond is true and y elsewhere.
//
// Example:
//
//	cond, _ := tensor.FromSlice([]bool{true, false, true}, tensor.Shape{3})
//	x := tensor.Full(tensor.Shape{3}, 1.0)
//	y := tensor.Full(tensor.Shape{3}, 0.0)
//	result, _ := tensor.Where[float64](cond, x, y) // [1 0 1]
func Where[T any](cond Expr[bool], x, y Expr[T]) (*Select[T], error) {
	shape, err := BroadcastShapes(cond.Shape(), x.Shape(), y.Shape())
	if err != nil {
		return nil, err
	}
	return &Select[T]{
		base: base{shape: shape, layout: commonLayout(x.Layout(), y.Layout())},
		cond: cond,
		x:    x,
		y:    y,
		bc:   newBroadcaster(cond.Shape(), shape),
		bx:   newBroadcaster(x.Shape(), shape),
		by:   newBroadcaster(y.Shape(), shape),
	}, nil
}

// IsContiguous is always false for a lazy node.
func (s *Select[T]) IsContiguous() bool { return false }

func (s *Select[T]) at(index Index) T {
	if s.cond.at(s.bc.adjust(index)) {
		return s.x.at(s.bx.adjust(index))
	}
	return s.y.at(s.by.adjust(index))
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (s *Select[T]) At(indices ...int) T { return mustGet[T](s, indices) }

// Get returns the element at index or an ErrOutOfRange error.
func (s *Select[T]) Get(index Index) (T, error) { return get[T](s, index) }

// Begin returns an iterator at the first element of a traversal.
func (s *Select[T]) Begin(layout Layout) *Iterator[T] { return Begin[T](s, layout) }

// End returns an iterator one past the last element of a traversal.
func (s *Select[T]) End(layout Layout) *Iterator[T] { return End[T](s, layout) }

func commonLayout(a, b Layout) Layout {
	if a == b {
		return a
	}
	return RowMajor
}
