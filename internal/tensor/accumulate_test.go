package tensor

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulate(t *testing.T) {
	x, err := FromSlice([]int{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	c, err := Accumulate(add, x, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 6, 4, 9, 15}, c.Data())

	c, err = Accumulate(add, x, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 5, 7, 9}, c.Data())

	c, err = Accumulate(maxInt, x, -1)
	require.NoError(t, err)
	assert.Equal(t, ToSlice[int](x, RowMajor), c.Data())

	_, err = Accumulate(add, x, 2)
	assert.True(t, errors.Is(err, ErrAxis))
}

func TestAccumulatePrefixMatchesReduce(t *testing.T) {
	x := sampleMatrix(t)

	for axis := 0; axis < x.Rank(); axis++ {
		c, err := Accumulate(add, x, axis)
		require.NoError(t, err)
		assert.Equal(t, x.Shape(), c.Shape())

		// The last position along axis holds the full reduction.
		last, err := SliceView[int](c, axisRange(2, axis, x.Shape()[axis]-1, x.Shape()[axis])...)
		require.NoError(t, err)
		want, err := ReduceAxes(add, x, []int{axis}, KeepDims())
		require.NoError(t, err)
		assert.Equal(t, want.Data(), ToSlice[int](last, RowMajor), "axis %d", axis)

		// Each position extends the previous one by a single element.
		for n := 1; n < x.Shape()[axis]; n++ {
			idx := Index{0, 0}
			idx[axis] = n
			prev := idx.Clone()
			prev[axis] = n - 1
			cur, err := c.Get(idx)
			require.NoError(t, err)
			before, err := c.Get(prev)
			require.NoError(t, err)
			elem, err := x.Get(idx)
			require.NoError(t, err)
			assert.Equal(t, before+elem, cur)
		}
	}
}

func TestAccumulateColumnMajorInput(t *testing.T) {
	x, err := FromSliceLayout([]int{1, 4, 2, 5, 3, 6}, Shape{2, 3}, ColumnMajor)
	require.NoError(t, err)

	c, err := Accumulate(add, x, 1)
	require.NoError(t, err)
	assert.Equal(t, RowMajor, c.Layout())
	assert.Equal(t, []int{1, 3, 6, 4, 9, 15}, c.Data())
}

func TestAccumulateEmpty(t *testing.T) {
	c, err := Accumulate(add, Zeros[int](Shape{0, 3}), 1)
	require.NoError(t, err)
	assert.Equal(t, Shape{0, 3}, c.Shape())

	c, err = Accumulate(add, Zeros[int](Shape{2, 0}), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Size())
}
