package tensor

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorTraversalOrder(t *testing.T) {
	// [[1 2 3] [4 5 6]] stored column-major.
	d, err := FromSliceLayout([]int{1, 4, 2, 5, 3, 6}, Shape{2, 3}, ColumnMajor)
	require.NoError(t, err)

	var got []int
	for it := d.Begin(RowMajor); !it.Done(); it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, got, "row-major walk ignores storage order")

	got = got[:0]
	for it := d.Begin(ColumnMajor); !it.Done(); it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{1, 4, 2, 5, 3, 6}, got)
}

func TestIteratorEndPosition(t *testing.T) {
	d := Zeros[int](Shape{2, 3})

	end := d.End(RowMajor)
	assert.Equal(t, 6, end.Index())
	assert.Equal(t, Index{2, 0}, end.Coords())
	assert.True(t, end.Done())

	end = d.End(ColumnMajor)
	assert.Equal(t, Index{0, 3}, end.Coords())

	it := d.Begin(RowMajor)
	for i := 0; i < 6; i++ {
		it.Next()
	}
	assert.True(t, it.Equal(d.End(RowMajor)))
	assert.Equal(t, Index{2, 0}, it.Coords())
}

func TestIteratorPrevFromEnd(t *testing.T) {
	d, err := FromSlice([]int{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	for _, layout := range []Layout{RowMajor, ColumnMajor} {
		var got []int
		begin := d.Begin(layout)
		for it := d.End(layout); !it.Equal(begin); {
			got = append(got, it.Prev().Value())
		}
		assert.Equal(t, reverse(ToSlice[int](d, layout)), got, "layout %s", layout)
	}
}

func TestIteratorAdvanceAndPeek(t *testing.T) {
	d, err := FromSlice([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, Shape{3, 4})
	require.NoError(t, err)

	it := d.Begin(RowMajor)
	it.Advance(5)
	assert.Equal(t, 5, it.Value())
	assert.Equal(t, Index{1, 1}, it.Coords())
	assert.Equal(t, 7, it.Peek(2))
	assert.Equal(t, 4, it.Peek(-1))
	assert.Equal(t, 5, it.Index(), "peek does not move")

	it.Advance(-3)
	assert.Equal(t, 2, it.Value())

	it.Advance(10)
	assert.True(t, it.Done())
	assert.Equal(t, Index{3, 0}, it.Coords())

	cm := d.Begin(ColumnMajor).Advance(4)
	assert.Equal(t, Index{1, 1}, cm.Coords())
	assert.Equal(t, 5, cm.Value())
}

func TestIteratorComparison(t *testing.T) {
	d := Zeros[float64](Shape{4, 2})

	a := d.Begin(RowMajor)
	b := a.Clone().Advance(3)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))

	n, err := b.Distance(a)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	a.Next().Next().Next()
	assert.True(t, a.Equal(b))

	_, err = a.Distance(d.Begin(ColumnMajor))
	assert.True(t, errors.Is(err, ErrIncomparable))

	other := Zeros[float64](Shape{4, 2})
	_, err = a.Distance(other.Begin(RowMajor))
	assert.True(t, errors.Is(err, ErrIncomparable))
	assert.False(t, a.Equal(other.Begin(RowMajor)))
}

func TestIteratorCloneIsIndependent(t *testing.T) {
	d, err := FromSlice([]int{1, 2, 3}, Shape{3})
	require.NoError(t, err)

	a := d.Begin(RowMajor)
	c := a.Clone()
	c.Next()
	assert.Equal(t, 1, a.Value())
	assert.Equal(t, 2, c.Value())
}

func TestIteratorSet(t *testing.T) {
	d := Zeros[int](Shape{2, 2})
	for it := d.Begin(ColumnMajor); !it.Done(); it.Next() {
		require.NoError(t, it.Set(it.Index()))
	}
	assert.Equal(t, []int{0, 2, 1, 3}, d.Data())

	lazy := Apply(func(v int) int { return v * 2 }, d)
	err := lazy.Begin(RowMajor).Set(1)
	assert.True(t, errors.Is(err, ErrReadOnly))
}

func TestReadOnlyIterator(t *testing.T) {
	d := Full(Shape{2, 3}, 7)
	it := CBegin[int](d, RowMajor)
	err := it.Set(1)
	assert.True(t, errors.Is(err, ErrReadOnly))
	assert.Equal(t, 7, d.At(0, 0))

	// Read-only and writable iterators over the same traversal compare.
	assert.True(t, it.Equal(Begin[int](d, RowMajor)))
	n, err := CEnd[int](d, RowMajor).Distance(it)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestIteratorRankZero(t *testing.T) {
	s := Scalar(42)
	it := s.Begin(RowMajor)
	assert.False(t, it.Done())
	assert.Equal(t, 42, it.Value())
	it.Next()
	assert.True(t, it.Done())
	assert.True(t, it.Equal(s.End(RowMajor)))
	assert.Equal(t, []int{42}, ToSlice[int](s, RowMajor))
}

func TestIteratorEmpty(t *testing.T) {
	d := Zeros[int](Shape{3, 0})
	assert.True(t, d.Begin(RowMajor).Done())
	assert.True(t, d.Begin(RowMajor).Equal(d.End(RowMajor)))
	assert.Empty(t, ToSlice[int](d, RowMajor))
}

func TestEnumerate(t *testing.T) {
	d, err := FromSlice([]int{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)

	var coords []Index
	var values []int
	for idx, v := range Enumerate[int](d, ColumnMajor) {
		coords = append(coords, idx.Clone())
		values = append(values, v)
	}
	assert.Equal(t, []Index{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, coords)
	assert.Equal(t, []int{1, 3, 2, 4}, values)

	// Early exit.
	n := 0
	for range Values[int](d, RowMajor) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func reverse[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
