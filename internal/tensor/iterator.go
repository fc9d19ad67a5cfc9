package tensor

import (
	"iter"

	"github.com/pkg/errors"
)

// Iterator is a random-access cursor over any expression.
//
// It tracks both the flat position in its traversal order and the per-axis
// coordinates of that position. The traversal order is chosen when the
// iterator is created and is independent of how the expression stores (or
// computes) its elements: a row-major walk over a column-major tensor still
// visits coordinates in row-major lexicographic order.
//
// Dereferencing an iterator outside [Begin, End) is not checked.
type Iterator[T any] struct {
	expr   Expr[T]
	shape  Shape
	layout Layout
	size   int
	pos    int
	coords Index
	peek   Index

	readOnly bool
}

// Begin returns an iterator positioned at the first element of e in layout order.
func Begin[T any](e Expr[T], layout Layout) *Iterator[T] {
	shape := e.Shape()
	return &Iterator[T]{
		expr:   e,
		shape:  shape,
		layout: layout,
		size:   shape.NumElements(),
		coords: make(Index, len(shape)),
		peek:   make(Index, len(shape)),
	}
}

// End returns an iterator positioned one past the last element of e in layout order.
func End[T any](e Expr[T], layout Layout) *Iterator[T] {
	it := Begin(e, layout)
	it.pos = it.size
	endIndex(it.shape, layout, it.coords)
	return it
}

// CBegin is Begin for an iterator that refuses writes even when e is
// assignable. It compares equal to a writable iterator at the same position.
func CBegin[T any](e Expr[T], layout Layout) *Iterator[T] {
	it := Begin(e, layout)
	it.readOnly = true
	return it
}

// CEnd is the read-only counterpart of End.
func CEnd[T any](e Expr[T], layout Layout) *Iterator[T] {
	it := End(e, layout)
	it.readOnly = true
	return it
}

// Value returns the element under the cursor.
func (it *Iterator[T]) Value() T {
	return it.expr.at(it.coords)
}

// Set writes the element under the cursor. Lazy expressions have no storage
// and report ErrReadOnly, as do iterators from CBegin and CEnd.
func (it *Iterator[T]) Set(value T) error {
	if it.readOnly {
		return errors.Wrap(ErrReadOnly, "cannot write through a read-only iterator")
	}
	a, ok := it.expr.(Assignable[T])
	if !ok {
		return errors.Wrapf(ErrReadOnly, "cannot write through %T", it.expr)
	}
	a.set(it.coords, value)
	return nil
}

// Index returns the flat position in traversal order.
func (it *Iterator[T]) Index() int { return it.pos }

// Coords returns a copy of the per-axis position.
func (it *Iterator[T]) Coords() Index { return it.coords.Clone() }

// Layout returns the traversal order.
func (it *Iterator[T]) Layout() Layout { return it.layout }

// Done reports whether the cursor reached the end of the traversal.
func (it *Iterator[T]) Done() bool { return it.pos >= it.size }

// Next moves the cursor one element forward.
func (it *Iterator[T]) Next() *Iterator[T] {
	it.pos++
	switch {
	case it.pos > 0 && it.pos <= it.size:
		increment(it.coords, it.shape, it.layout)
	default:
		it.sync()
	}
	return it
}

// Prev moves the cursor one element backward.
func (it *Iterator[T]) Prev() *Iterator[T] {
	it.pos--
	switch {
	case it.pos >= 0 && it.pos < it.size:
		decrement(it.coords, it.shape, it.layout)
	default:
		it.sync()
	}
	return it
}

// Advance moves the cursor by n elements; n may be negative.
func (it *Iterator[T]) Advance(n int) *Iterator[T] {
	it.pos += n
	it.sync()
	return it
}

// Peek returns the element n positions away without moving the cursor.
func (it *Iterator[T]) Peek(n int) T {
	unravelInto(it.pos+n, it.shape, it.layout, it.peek)
	return it.expr.at(it.peek)
}

// Clone returns an independent cursor at the same position.
func (it *Iterator[T]) Clone() *Iterator[T] {
	c := *it
	c.coords = it.coords.Clone()
	c.peek = make(Index, len(it.shape))
	return &c
}

// Equal reports whether two iterators over the same traversal are at the same position.
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	return it.comparable(other) && it.pos == other.pos
}

// Less reports whether it precedes other in the same traversal.
func (it *Iterator[T]) Less(other *Iterator[T]) bool {
	return it.comparable(other) && it.pos < other.pos
}

// Distance returns the number of steps from other to it.
func (it *Iterator[T]) Distance(other *Iterator[T]) (int, error) {
	if !it.comparable(other) {
		return 0, errors.Wrapf(ErrIncomparable, "%T (%s) vs %T (%s)", it.expr, it.layout, other.expr, other.layout)
	}
	return it.pos - other.pos, nil
}

func (it *Iterator[T]) comparable(other *Iterator[T]) bool {
	return other != nil && it.expr == other.expr && it.layout == other.layout
}

// sync recomputes coordinates from the flat position.
func (it *Iterator[T]) sync() {
	switch {
	case it.pos >= 0 && it.pos < it.size:
		unravelInto(it.pos, it.shape, it.layout, it.coords)
	case it.pos == it.size:
		endIndex(it.shape, it.layout, it.coords)
	}
}

// Enumerate yields every index of e with its element in layout order.
// The yielded index is reused between iterations and must not be retained.
func Enumerate[T any](e Expr[T], layout Layout) iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		shape := e.Shape()
		if shape.NumElements() == 0 {
			return
		}
		idx := make(Index, len(shape))
		for ok := true; ok; ok = increment(idx, shape, layout) {
			if !yield(idx, e.at(idx)) {
				return
			}
		}
	}
}

// Values yields every element of e in layout order.
func Values[T any](e Expr[T], layout Layout) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range Enumerate(e, layout) {
			if !yield(v) {
				return
			}
		}
	}
}

// ToSlice collects the elements of e in layout order.
func ToSlice[T any](e Expr[T], layout Layout) []T {
	out := make([]T, 0, e.Size())
	for v := range Values(e, layout) {
		out = append(out, v)
	}
	return out
}
