package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Dense is an owning tensor backed by one contiguous slice.
//
// Its strides are always the canonical strides of its shape and layout.
// Clone produces an independent copy; Move transfers the storage to a new
// Dense and leaves the source empty.
//
// Example:
//
//	t := tensor.Zeros[float64](tensor.Shape{3, 4})
//	t.Set(1.5, 1, 2) // Row 1, column 2
type Dense[T any] struct {
	base
	data    []T
	strides Strides
}

func newDense[T any](shape Shape, layout Layout) *Dense[T] {
	return &Dense[T]{
		base:    base{shape: shape, layout: layout},
		data:    make([]T, shape.NumElements()),
		strides: MakeStrides(shape, layout),
	}
}

// New allocates a zero-filled tensor of the given shape stored in layout.
func New[T any](shape Shape, layout Layout) (*Dense[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid shape")
	}
	return newDense[T](shape.Clone(), layout), nil
}

// Zeros creates a row-major tensor filled with the zero value of T.
// Panics if the shape has a negative extent.
func Zeros[T any](shape Shape) *Dense[T] {
	t, err := New[T](shape, RowMajor)
	if err != nil {
		panic(err)
	}
	return t
}

// Full creates a row-major tensor filled with value.
//
// Example:
//
//	t := tensor.Full(tensor.Shape{3, 3}, 3.14)
func Full[T any](shape Shape, value T) *Dense[T] {
	t := Zeros[T](shape)
	t.Fill(value)
	return t
}

// Scalar creates a rank-0 tensor holding value.
func Scalar[T any](value T) *Dense[T] {
	return Full(Shape{}, value)
}

// FromSlice creates a row-major tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T any](data []T, shape Shape) (*Dense[T], error) {
	return FromSliceLayout(data, shape, RowMajor)
}

// FromSliceLayout creates a tensor from a Go slice whose elements are stored
// in layout order. The slice is copied.
func FromSliceLayout[T any](data []T, shape Shape, layout Layout) (*Dense[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid shape")
	}
	if shape.NumElements() != len(data) {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	t := newDense[T](shape.Clone(), layout)
	copy(t.data, data)
	return t, nil
}

// Data returns the backing slice (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Dense[T]) Data() []T { return t.data }

// Offset is always zero for an owning tensor.
func (t *Dense[T]) Offset() int { return 0 }

// Strides returns the canonical strides of the tensor's shape and layout.
func (t *Dense[T]) Strides() Strides { return t.strides }

// IsContiguous is always true for an owning tensor.
func (t *Dense[T]) IsContiguous() bool { return true }

func (t *Dense[T]) offsetOf(index Index) int {
	off := 0
	for k, c := range index {
		off += c * t.strides[k]
	}
	return off
}

func (t *Dense[T]) at(index Index) T { return t.data[t.offsetOf(index)] }

func (t *Dense[T]) set(index Index, value T) { t.data[t.offsetOf(index)] = value }

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	t := tensor.Zeros[float32](tensor.Shape{3, 4})
//	value := t.At(1, 2) // Row 1, column 2
func (t *Dense[T]) At(indices ...int) T { return mustGet[T](t, indices) }

// Get returns the element at index or an ErrOutOfRange error.
func (t *Dense[T]) Get(index Index) (T, error) { return get[T](t, index) }

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Dense[T]) Set(value T, indices ...int) { mustPut[T](t, value, indices) }

// Put stores value at index or returns an ErrOutOfRange error.
func (t *Dense[T]) Put(index Index, value T) error { return put[T](t, index, value) }

// Begin returns an iterator at the first element of a traversal.
func (t *Dense[T]) Begin(layout Layout) *Iterator[T] { return Begin[T](t, layout) }

// End returns an iterator one past the last element of a traversal.
func (t *Dense[T]) End(layout Layout) *Iterator[T] { return End[T](t, layout) }

// Item returns the value of a single-element tensor.
// Panics if the tensor does not hold exactly one element.
func (t *Dense[T]) Item() T {
	if len(t.data) != 1 {
		panic(errors.Wrapf(ErrShapeMismatch, "Item() requires exactly one element, got shape %v", t.shape))
	}
	return t.data[0]
}

// Fill sets every element to value.
func (t *Dense[T]) Fill(value T) {
	for i := range t.data {
		t.data[i] = value
	}
}

// Clone creates a deep copy of the tensor with its own storage.
func (t *Dense[T]) Clone() *Dense[T] {
	c := newDense[T](t.shape.Clone(), t.layout)
	copy(c.data, t.data)
	return c
}

// Resize gives the tensor a new shape. Storage is reallocated (and zeroed)
// only when the shape changes; views of the old storage keep the old data.
func (t *Dense[T]) Resize(shape Shape) error {
	if err := shape.Validate(); err != nil {
		return errors.WithMessage(err, "invalid shape")
	}
	if shape.Equal(t.shape) {
		return nil
	}
	t.shape = shape.Clone()
	t.strides = MakeStrides(t.shape, t.layout)
	t.data = make([]T, t.shape.NumElements())
	return nil
}

// Reset releases the storage, leaving an empty tensor of the same rank with
// a leading extent of 0. A rank-0 tensor becomes the rank-1 shape (0,).
func (t *Dense[T]) Reset() {
	shape := t.shape.Clone()
	if len(shape) == 0 {
		shape = Shape{0}
	}
	shape[0] = 0
	t.shape = shape
	t.strides = MakeStrides(shape, t.layout)
	t.data = nil
}

// Move transfers the storage to a new tensor and resets t.
func (t *Dense[T]) Move() *Dense[T] {
	moved := &Dense[T]{base: t.base, data: t.data, strides: t.strides}
	t.Reset()
	return moved
}

// String returns a short description of the tensor. Use the format package
// to render the elements.
func (t *Dense[T]) String() string {
	var zero T
	return fmt.Sprintf("Dense[%T]%v %s", zero, t.shape, t.layout)
}
