package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Indirect selects elements of a backing slice through an explicit pointer
// array: element index maps to data[indptr[RavelIndex(index, shape, layout)]].
//
// Pointers may repeat and follow no stride pattern, so an Indirect is never
// contiguous. Writes go through to the backing slice.
type Indirect[T any] struct {
	base
	data   []T
	indptr []int
}

// NewIndirect creates an index-gather view. indptr must hold one in-range
// pointer per element of shape, ordered by layout.
func NewIndirect[T any](data []T, shape Shape, indptr []int, layout Layout) (*Indirect[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid shape")
	}
	if len(indptr) != shape.NumElements() {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"shape %v requires %d pointers, but got %d", shape, shape.NumElements(), len(indptr))
	}
	for i, p := range indptr {
		if p < 0 || p >= len(data) {
			return nil, errors.Wrapf(ErrOutOfRange, "pointer %d at position %d outside storage of %d elements", p, i, len(data))
		}
	}
	ptrs := make([]int, len(indptr))
	copy(ptrs, indptr)
	return &Indirect[T]{
		base:   base{shape: shape.Clone(), layout: layout},
		data:   data,
		indptr: ptrs,
	}, nil
}

// Take gathers the elements of s at the given coordinates into a rank-1
// indirect view. Coordinates may repeat.
//
// Example:
//
//	x, _ := tensor.FromSlice([]int{1, 2, 3, 4}, tensor.Shape{2, 2})
//	d, _ := tensor.Take[int](x, tensor.Index{0, 0}, tensor.Index{1, 1}) // [1 4]
func Take[T any](s Strided[T], positions ...Index) (*Indirect[T], error) {
	ptrs := make([]int, len(positions))
	for i, pos := range positions {
		if err := checkIndex(s.Shape(), pos); err != nil {
			return nil, errors.WithMessagef(err, "position %d", i)
		}
		ptrs[i] = memOffset(s, pos)
	}
	return &Indirect[T]{
		base:   base{shape: Shape{len(ptrs)}, layout: RowMajor},
		data:   s.Data(),
		indptr: ptrs,
	}, nil
}

// Compress selects the elements of s where mask is true, in row-major order,
// as a rank-1 indirect view. The mask must broadcast to the shape of s.
func Compress[T any](s Strided[T], mask Expr[bool]) (*Indirect[T], error) {
	shape := s.Shape()
	if !canBroadcastTo(mask.Shape(), shape) {
		return nil, errors.Wrapf(ErrShapeMismatch, "mask of shape %v does not match array of shape %v", mask.Shape(), shape)
	}
	var ptrs []int
	if shape.NumElements() > 0 {
		bc := newBroadcaster(mask.Shape(), shape)
		idx := make(Index, len(shape))
		for ok := true; ok; ok = increment(idx, shape, RowMajor) {
			if mask.at(bc.adjust(idx)) {
				ptrs = append(ptrs, memOffset(s, idx))
			}
		}
	}
	return &Indirect[T]{
		base:   base{shape: Shape{len(ptrs)}, layout: RowMajor},
		data:   s.Data(),
		indptr: ptrs,
	}, nil
}

func memOffset[T any](s Strided[T], index Index) int {
	off := s.Offset()
	for k, c := range index {
		off += c * s.Strides()[k]
	}
	return off
}

// Pointers returns the pointer array (zero-copy).
func (d *Indirect[T]) Pointers() []int { return d.indptr }

// IsContiguous is always false for an indirect view.
func (d *Indirect[T]) IsContiguous() bool { return false }

func (d *Indirect[T]) at(index Index) T {
	return d.data[d.indptr[ravel(index, d.shape, d.layout)]]
}

func (d *Indirect[T]) set(index Index, value T) {
	d.data[d.indptr[ravel(index, d.shape, d.layout)]] = value
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (d *Indirect[T]) At(indices ...int) T { return mustGet[T](d, indices) }

// Get returns the element at index or an ErrOutOfRange error.
func (d *Indirect[T]) Get(index Index) (T, error) { return get[T](d, index) }

// Set writes through to the backing slice.
// Panics if indices are out of bounds.
func (d *Indirect[T]) Set(value T, indices ...int) { mustPut[T](d, value, indices) }

// Put writes through to the backing slice or returns an ErrOutOfRange error.
func (d *Indirect[T]) Put(index Index, value T) error { return put[T](d, index, value) }

// Begin returns an iterator at the first element of a traversal.
func (d *Indirect[T]) Begin(layout Layout) *Iterator[T] { return Begin[T](d, layout) }

// End returns an iterator one past the last element of a traversal.
func (d *Indirect[T]) End(layout Layout) *Iterator[T] { return End[T](d, layout) }

// String returns a short description of the indirect view.
func (d *Indirect[T]) String() string {
	var zero T
	return fmt.Sprintf("Indirect[%T]%v", zero, d.shape)
}
