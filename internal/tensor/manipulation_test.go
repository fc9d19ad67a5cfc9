package tensor

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arange(t *testing.T, shape Shape) *Dense[int] {
	t.Helper()
	r, err := Arange(0, shape.NumElements(), 1)
	require.NoError(t, err)
	d, err := FromSlice(r.Data(), shape)
	require.NoError(t, err)
	return d
}

func TestTranspose(t *testing.T) {
	x := arange(t, Shape{2, 3, 4})

	y, err := Transpose[int](x)
	require.NoError(t, err)
	assert.Equal(t, Shape{4, 3, 2}, y.Shape())
	assert.Equal(t, x.At(1, 2, 3), y.At(3, 2, 1))

	z, err := Transpose[int](x, 0, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 4, 3}, z.Shape())
	assert.Equal(t, x.At(1, 0, 2), z.At(1, 2, 0))

	_, err = Transpose[int](x, 0, 0, 1)
	assert.True(t, errors.Is(err, ErrAxis))
	_, err = Transpose[int](x, 0, 1)
	assert.True(t, errors.Is(err, ErrAxis))
	_, err = Transpose[int](x, 0, 1, 3)
	assert.True(t, errors.Is(err, ErrAxis))
}

func TestTransposeMatrix(t *testing.T) {
	x := arange(t, Shape{2, 3})
	y, err := Transpose[int](x)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 1, 4, 2, 5}, ToSlice[int](y, RowMajor))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, ToSlice[int](y, ColumnMajor))
}

func TestSliceView(t *testing.T) {
	x := arange(t, Shape{4, 6})

	tests := []struct {
		name     string
		slices   []Slice
		shape    Shape
		expected []int
	}{
		{"row", []Slice{Point(1)}, Shape{6}, []int{6, 7, 8, 9, 10, 11}},
		{"last row", []Slice{Point(-1)}, Shape{6}, []int{18, 19, 20, 21, 22, 23}},
		{"column", []Slice{All(), Point(2)}, Shape{4}, []int{2, 8, 14, 20}},
		{"block", []Slice{Range(1, 3), Range(4, 6)}, Shape{2, 2}, []int{10, 11, 16, 17}},
		{"stepped", []Slice{RangeStep(0, 4, 3), RangeStep(1, 6, 2)}, Shape{2, 3}, []int{1, 3, 5, 19, 21, 23}},
		{"negative bounds", []Slice{Range(-1, 4), Range(-2, 100)}, Shape{1, 2}, []int{22, 23}},
		{"backwards", []Slice{Point(0), RangeStep(4, 0, -2)}, Shape{2}, []int{4, 2}},
		{"backwards to start", []Slice{Point(0), RangeStep(-1, -100, -1)}, Shape{6}, []int{5, 4, 3, 2, 1, 0}},
		{"empty", []Slice{Range(3, 1)}, Shape{0, 6}, []int{}},
		{"scalar", []Slice{Point(2), Point(3)}, Shape{}, []int{15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := SliceView[int](x, tt.slices...)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, v.Shape())
			assert.Equal(t, tt.expected, ToSlice[int](v, RowMajor))
		})
	}
}

func TestSliceViewErrors(t *testing.T) {
	x := Zeros[int](Shape{4, 6})

	_, err := SliceView[int](x, Point(4))
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = SliceView[int](x, All(), Point(-7))
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = SliceView[int](x, RangeStep(0, 4, 0))
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = SliceView[int](x, All(), All(), All())
	assert.True(t, errors.Is(err, ErrAxis))
}

func TestFlip(t *testing.T) {
	x := arange(t, Shape{2, 3})

	f, err := Flip[int](x, -1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0, 5, 4, 3}, ToSlice[int](f, RowMajor))

	f, err = Flip[int](x, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5, 0, 1, 2}, ToSlice[int](f, RowMajor))

	_, err = Flip[int](x, 2)
	assert.True(t, errors.Is(err, ErrAxis))
}

func TestExpandDimsAndSqueeze(t *testing.T) {
	x := arange(t, Shape{2, 3})

	e, err := ExpandDims[int](x, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{1, 2, 3}, e.Shape())

	e, err = ExpandDims[int](x, -1)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3, 1}, e.Shape())
	assert.Equal(t, 4, e.At(1, 1, 0))

	_, err = ExpandDims[int](x, 4)
	assert.True(t, errors.Is(err, ErrAxis))

	s, err := Squeeze[int](e)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, s.Shape())
	assert.Equal(t, ToSlice[int](x, RowMajor), ToSlice[int](s, RowMajor))

	y := Zeros[int](Shape{1, 3, 1})
	s, err = Squeeze[int](y, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 1}, s.Shape())

	_, err = Squeeze[int](y, 1)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestReshape(t *testing.T) {
	x := arange(t, Shape{2, 6})

	r, err := Reshape[int](x, Shape{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 7, r.At(1, 3))

	r, err = Reshape[int](x, Shape{-1, 3})
	require.NoError(t, err)
	assert.Equal(t, Shape{4, 3}, r.Shape())

	r.Set(100, 0, 0)
	assert.Equal(t, 100, x.At(0, 0), "reshape is a view")

	_, err = Reshape[int](x, Shape{5, -1})
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	_, err = Reshape[int](x, Shape{-1, -1})
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	_, err = Reshape[int](x, Shape{13})
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	tr, err := Transpose[int](x)
	require.NoError(t, err)
	_, err = Reshape[int](tr, Shape{12})
	assert.True(t, errors.Is(err, ErrShapeMismatch), "transposed data needs a copy")

	flat, err := Reshape[int](Eval[int](tr), Shape{12})
	require.NoError(t, err)
	assert.Equal(t, 6, flat.At(1))
}

func TestReshapeOfRowView(t *testing.T) {
	x := arange(t, Shape{2, 3})
	row, err := SliceView[int](x, Point(1))
	require.NoError(t, err)

	r, err := Reshape[int](row, Shape{3, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, ToSlice[int](r, RowMajor))
}

func TestBroadcastView(t *testing.T) {
	x := arange(t, Shape{3, 1})

	b, err := BroadcastView[int](x, Shape{2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, Strides{0, 1, 0}, b.Strides())
	assert.Equal(t, 2, b.At(1, 2, 3))

	// Writes alias the repeated element.
	b.Set(9, 0, 0, 0)
	assert.Equal(t, 9, b.At(1, 0, 3))

	_, err = BroadcastView[int](x, Shape{3, 4, 2})
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	_, err = BroadcastView[int](x, Shape{3})
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestDiagonal(t *testing.T) {
	x := arange(t, Shape{3, 4})
	d, err := Diagonal[int](x)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 5, 10}, ToSlice[int](d, RowMajor))

	_, err = Diagonal[int](arange(t, Shape{2, 2, 2}))
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestRavel(t *testing.T) {
	x := arange(t, Shape{2, 3})
	assert.Equal(t, []int{0, 3, 1, 4, 2, 5}, Ravel[int](x, ColumnMajor).Data())
	assert.Equal(t, Shape{6}, Ravel[int](x, RowMajor).Shape())
}

func TestConcatenate(t *testing.T) {
	a := arange(t, Shape{2, 2})
	b, err := FromSlice([]int{10, 11}, Shape{1, 2})
	require.NoError(t, err)

	c, err := Concatenate[int](0, a, b)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, c.Shape())
	assert.Equal(t, []int{0, 1, 2, 3, 10, 11}, c.Data())

	tr, err := Transpose[int](a)
	require.NoError(t, err)
	c, err = Concatenate[int](-1, a, tr)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0, 2, 2, 3, 1, 3}, c.Data())

	_, err = Concatenate[int](1, a, b)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	_, err = Concatenate[int](0)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	_, err = Concatenate[int](2, a, b)
	assert.True(t, errors.Is(err, ErrAxis))
}
