package tensor

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Expr is the contract shared by every array-like value in the package:
// owning dense tensors, strided views, index-gather views and lazy
// computation nodes.
//
// The set of implementations is closed (the evaluator method is unexported),
// so an Expr behaves like a tagged variant over Dense, View, Indirect, Const,
// Broadcast, Unary, Binary, Select and Reduction.
//
// The slice returned by Shape is owned by the expression and must not be modified.
type Expr[T any] interface {
	// Shape returns the per-axis extents.
	Shape() Shape
	// Dim returns the extent of one axis, bounds-checked.
	Dim(axis int) (int, error)
	// Rank returns the number of axes.
	Rank() int
	// Size returns the number of elements.
	Size() int
	// Layout returns the default traversal order.
	Layout() Layout
	// IsContiguous reports whether the elements occupy one dense block in
	// canonical order. Only Dense and View can return true.
	IsContiguous() bool

	// At returns the element at the given coordinates.
	// Panics with an ErrOutOfRange error if the coordinates are invalid.
	At(indices ...int) T
	// Get returns the element at index or an ErrOutOfRange error.
	Get(index Index) (T, error)

	// Begin returns an iterator at the first element of a traversal.
	Begin(layout Layout) *Iterator[T]
	// End returns an iterator one past the last element of a traversal.
	End(layout Layout) *Iterator[T]

	// at evaluates the element at an index known to be valid.
	at(index Index) T
}

// Assignable is an expression backed by storage that can be written.
type Assignable[T any] interface {
	Expr[T]

	// Set stores value at the given coordinates.
	// Panics with an ErrOutOfRange error if the coordinates are invalid.
	Set(value T, indices ...int)
	// Put stores value at index or returns an ErrOutOfRange error.
	Put(index Index, value T) error

	set(index Index, value T)
}

// Strided is an assignable expression that exposes its backing slice.
// Element index maps to Data()[Offset() + Σ index[k]*Strides()[k]].
//
// Only Dense and View are strided; lazy nodes have no element address.
type Strided[T any] interface {
	Assignable[T]

	Data() []T
	Offset() int
	Strides() Strides
}

// base carries the shape bookkeeping shared by every expression kind.
type base struct {
	shape  Shape
	layout Layout
}

// Shape returns the per-axis extents.
func (b *base) Shape() Shape { return b.shape }

// Dim returns the extent of an axis. Negative axes count from the end.
func (b *base) Dim(axis int) (int, error) { return b.shape.Dim(axis) }

// Rank returns the number of axes.
func (b *base) Rank() int { return len(b.shape) }

// Size returns the number of elements.
func (b *base) Size() int { return b.shape.NumElements() }

// Layout returns the default traversal order.
func (b *base) Layout() Layout { return b.layout }

// fallible is implemented by nodes whose elements can fail to evaluate after
// construction because their operands changed.
type fallible[T any] interface {
	tryAt(index Index) (T, error)
}

func get[T any](e Expr[T], index Index) (T, error) {
	if err := checkIndex(e.Shape(), index); err != nil {
		var zero T
		return zero, err
	}
	if f, ok := e.(fallible[T]); ok {
		return f.tryAt(index)
	}
	return e.at(index), nil
}

func mustGet[T any](e Expr[T], indices []int) T {
	v, err := get(e, Index(indices))
	if err != nil {
		panic(err)
	}
	return v
}

func put[T any](a Assignable[T], index Index, value T) error {
	if err := checkIndex(a.Shape(), index); err != nil {
		return err
	}
	a.set(index, value)
	return nil
}

func mustPut[T any](a Assignable[T], value T, indices []int) {
	if err := put(a, Index(indices), value); err != nil {
		panic(err)
	}
}

// Eval materializes an expression into a new row-major dense tensor.
func Eval[T any](e Expr[T]) *Dense[T] {
	return EvalLayout(e, RowMajor)
}

// EvalLayout materializes an expression into a new dense tensor stored in layout.
func EvalLayout[T any](e Expr[T], layout Layout) *Dense[T] {
	out := newDense[T](e.Shape().Clone(), layout)
	if klog.V(4).Enabled() {
		klog.Infof("materializing %T of shape %v (%s)", e, out.shape, layout)
	}
	fill(out, e, layout)
	return out
}

// fill writes src into a dense tensor of the same shape, visiting
// coordinates in the tensor's storage order so writes are sequential.
func fill[T any](out *Dense[T], src Expr[T], layout Layout) {
	if out.Size() == 0 {
		return
	}
	idx := make(Index, out.Rank())
	for k := range out.data {
		out.data[k] = src.at(idx)
		increment(idx, out.shape, layout)
	}
}

// Assign writes src into dst, broadcasting src to dst's shape.
//
// Shapes are validated before any element is written. dst and src must not
// overlap in memory unless they are the same elements visited in the same
// order; the package does not detect aliasing.
func Assign[T any](dst Assignable[T], src Expr[T]) error {
	if !canBroadcastTo(src.Shape(), dst.Shape()) {
		return errors.Wrapf(ErrShapeMismatch,
			"could not broadcast input array from shape %v into shape %v", src.Shape(), dst.Shape())
	}
	if dst.Size() == 0 {
		return nil
	}
	bc := newBroadcaster(src.Shape(), dst.Shape())
	if d, ok := dst.(*Dense[T]); ok {
		idx := make(Index, d.Rank())
		for k := range d.data {
			d.data[k] = src.at(bc.adjust(idx))
			increment(idx, d.shape, d.layout)
		}
		return nil
	}
	idx := make(Index, dst.Rank())
	for ok := true; ok; ok = increment(idx, dst.Shape(), RowMajor) {
		dst.set(idx, src.at(bc.adjust(idx)))
	}
	return nil
}

// broadcaster maps coordinates of a broadcast result onto one operand:
// leading padded axes are dropped and axes of extent 1 are pinned to zero.
type broadcaster struct {
	shape    Shape
	pad      int
	identity bool
	scratch  Index
}

func newBroadcaster(operand, result Shape) broadcaster {
	return broadcaster{
		shape:    operand,
		pad:      len(result) - len(operand),
		identity: operand.Equal(result),
		scratch:  make(Index, len(operand)),
	}
}

func (b *broadcaster) adjust(idx Index) Index {
	if b.identity {
		return idx
	}
	for k, dim := range b.shape {
		if dim == 1 {
			b.scratch[k] = 0
		} else {
			b.scratch[k] = idx[b.pad+k]
		}
	}
	return b.scratch
}
