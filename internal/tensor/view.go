package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// View is a non-owning strided reference into another tensor's storage.
//
// Element index maps to data[offset + Σ index[k]*strides[k]]. Strides may be
// negative (reversed axes), zero (broadcast axes) or in any order (transposed
// axes). Writes through a view are visible in the owner and vice versa.
//
// A view keeps the backing slice reachable, so it stays valid even if the
// owning Dense is resized or reset; it then refers to the old storage.
type View[T any] struct {
	base
	data    []T
	offset  int
	strides Strides
}

// NewView creates a view over data. Every element the view can reach must
// lie inside data.
func NewView[T any](data []T, shape Shape, offset int, strides Strides, layout Layout) (*View[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid shape")
	}
	if len(strides) != len(shape) {
		return nil, errors.Wrapf(ErrShapeMismatch, "%d strides for shape %v", len(strides), shape)
	}
	if shape.NumElements() > 0 {
		lo, hi := offsetRange(shape, offset, strides)
		if lo < 0 || hi >= len(data) {
			return nil, errors.Wrapf(ErrOutOfRange,
				"view of shape %v with offset %d and strides %v spans [%d, %d] outside storage of %d elements",
				shape, offset, strides, lo, hi, len(data))
		}
	}
	return &View[T]{
		base:    base{shape: shape.Clone(), layout: layout},
		data:    data,
		offset:  offset,
		strides: strides.Clone(),
	}, nil
}

// ViewOf returns a view covering all of s.
func ViewOf[T any](s Strided[T]) *View[T] {
	return &View[T]{
		base:    base{shape: s.Shape().Clone(), layout: s.Layout()},
		data:    s.Data(),
		offset:  s.Offset(),
		strides: s.Strides().Clone(),
	}
}

// offsetRange returns the lowest and highest memory offsets a non-empty view reaches.
func offsetRange(shape Shape, offset int, strides Strides) (lo, hi int) {
	lo, hi = offset, offset
	for k, dim := range shape {
		span := (dim - 1) * strides[k]
		if span < 0 {
			lo += span
		} else {
			hi += span
		}
	}
	return lo, hi
}

// Data returns the whole backing slice; use Offset and Strides to address it.
func (v *View[T]) Data() []T { return v.data }

// Offset returns the memory offset of the element at the origin.
func (v *View[T]) Offset() int { return v.offset }

// Strides returns the per-axis memory steps.
func (v *View[T]) Strides() Strides { return v.strides }

// IsContiguous reports whether the strides are the canonical strides of the
// view's shape in its layout. Axes of extent 1 never affect contiguity.
func (v *View[T]) IsContiguous() bool {
	return isCanonical(v.shape, v.strides, v.layout)
}

func isCanonical(shape Shape, strides Strides, layout Layout) bool {
	canonical := MakeStrides(shape, layout)
	for k, dim := range shape {
		if dim > 1 && strides[k] != canonical[k] {
			return false
		}
	}
	return true
}

func (v *View[T]) offsetOf(index Index) int {
	off := v.offset
	for k, c := range index {
		off += c * v.strides[k]
	}
	return off
}

func (v *View[T]) at(index Index) T { return v.data[v.offsetOf(index)] }

func (v *View[T]) set(index Index, value T) { v.data[v.offsetOf(index)] = value }

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (v *View[T]) At(indices ...int) T { return mustGet[T](v, indices) }

// Get returns the element at index or an ErrOutOfRange error.
func (v *View[T]) Get(index Index) (T, error) { return get[T](v, index) }

// Set writes through the view into the backing storage.
// Panics if indices are out of bounds.
func (v *View[T]) Set(value T, indices ...int) { mustPut[T](v, value, indices) }

// Put writes through the view or returns an ErrOutOfRange error.
func (v *View[T]) Put(index Index, value T) error { return put[T](v, index, value) }

// Begin returns an iterator at the first element of a traversal.
func (v *View[T]) Begin(layout Layout) *Iterator[T] { return Begin[T](v, layout) }

// End returns an iterator one past the last element of a traversal.
func (v *View[T]) End(layout Layout) *Iterator[T] { return End[T](v, layout) }

// String returns a short description of the view.
func (v *View[T]) String() string {
	var zero T
	return fmt.Sprintf("View[%T]%v offset=%d strides=%v", zero, v.shape, v.offset, v.strides)
}
