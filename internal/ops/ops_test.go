package ops

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/tensor"
)

func matrix(t *testing.T) *tensor.Dense[int] {
	t.Helper()
	x, err := tensor.FromSlice([]int{
		8, 3, 9, 5, 3, 6,
		7, 2, 5, 7, 3, 9,
		3, 1, 2, 5, 7, 7,
		2, 9, 5, 6, 5, 10,
	}, tensor.Shape{4, 6})
	require.NoError(t, err)
	return x
}

func TestFunctors(t *testing.T) {
	assert.Equal(t, 5, Add(2, 3))
	assert.Equal(t, -1, Sub(2, 3))
	assert.Equal(t, 6, Mul(2, 3))
	assert.Equal(t, 2.5, Div(5.0, 2.0))
	assert.Equal(t, 3, Max(2, 3))
	assert.Equal(t, "a", Min("b", "a"))
	assert.Equal(t, -4, Neg(4))
	assert.Equal(t, 4.5, Abs(-4.5))
	assert.Equal(t, 9, Square(-3))
	assert.True(t, Greater(3, 2))
	assert.False(t, Less(3, 2))
	assert.True(t, GreaterEqual(2, 2))
	assert.True(t, LessEqual(1, 2))
	assert.True(t, Equal("x", "x"))
	assert.True(t, NotEqual(1, 2))
	assert.False(t, And(true, false))
	assert.True(t, Or(true, false))
	assert.True(t, Not(false))
	assert.False(t, Positive(0))
	assert.True(t, NonZero(complex(0, 1)))
}

func TestArithmeticBuilders(t *testing.T) {
	col, err := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2, 1})
	require.NoError(t, err)
	row, err := tensor.FromSlice([]float64{4, 8}, tensor.Shape{2})
	require.NoError(t, err)

	tests := []struct {
		name     string
		build    func(a, b tensor.Expr[float64]) (*tensor.Binary[float64, float64, float64], error)
		expected []float64
	}{
		{"plus", Plus[float64], []float64{5, 9, 6, 10}},
		{"minus", Minus[float64], []float64{-3, -7, -2, -6}},
		{"times", Times[float64], []float64{4, 8, 8, 16}},
		{"divide", Divide[float64], []float64{0.25, 0.125, 0.5, 0.25}},
		{"maximum", Maximum[float64], []float64{4, 8, 4, 8}},
		{"minimum", Minimum[float64], []float64{1, 1, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tt.build(col, row)
			require.NoError(t, err)
			assert.Equal(t, tensor.Shape{2, 2}, n.Shape())
			assert.Equal(t, tt.expected, tensor.ToSlice[float64](n, tensor.RowMajor))
		})
	}

	_, err = Plus[float64](col, tensor.Zeros[float64](tensor.Shape{3}))
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))
}

func TestComparisonBuilders(t *testing.T) {
	a, err := tensor.FromSlice([]int{1, 2, 3}, tensor.Shape{3})
	require.NoError(t, err)
	two := tensor.Scalar(2)

	tests := []struct {
		name     string
		build    func(a, b tensor.Expr[int]) (*tensor.Binary[int, int, bool], error)
		expected []bool
	}{
		{"gt", Gt[int], []bool{false, false, true}},
		{"lt", Lt[int], []bool{true, false, false}},
		{"ge", Ge[int], []bool{false, true, true}},
		{"le", Le[int], []bool{true, true, false}},
		{"eq", Eq[int], []bool{false, true, false}},
		{"ne", Ne[int], []bool{true, false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tt.build(a, two)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tensor.ToSlice[bool](n, tensor.RowMajor))
		})
	}
}

func TestUnaryBuilders(t *testing.T) {
	x, err := tensor.FromSlice([]float64{1, 4, 9}, tensor.Shape{3})
	require.NoError(t, err)

	assert.Equal(t, []float64{-1, -4, -9}, tensor.ToSlice[float64](Negate[float64](x), tensor.RowMajor))
	assert.Equal(t, []float64{2.5, 10, 22.5}, tensor.ToSlice[float64](Scale[float64](x, 2.5), tensor.RowMajor))
	assert.Equal(t, []float64{0, 3, 8}, tensor.ToSlice[float64](Shift[float64](x, -1), tensor.RowMajor))
	assert.Equal(t, []float64{1, 2, 3}, tensor.ToSlice[float64](Sqrt[float64](x), tensor.RowMajor))

	e := Exp[float64](x)
	assert.InDelta(t, math.E, e.At(0), 1e-12)
	l := Log[float64](x)
	assert.InDelta(t, math.Log(9), l.At(2), 1e-12)

	y, err := tensor.FromSlice([]float64{1.7, -2.2}, tensor.Shape{2})
	require.NoError(t, err)
	assert.Equal(t, []int32{1, -2}, tensor.ToSlice[int32](Cast[float64, int32](y), tensor.RowMajor))
}

func TestSumAndProd(t *testing.T) {
	x := matrix(t)

	s, err := Sum[int](x)
	require.NoError(t, err)
	assert.Equal(t, 129, s)

	empty := tensor.Zeros[int](tensor.Shape{0})
	s, err = Sum[int](empty)
	require.NoError(t, err)
	assert.Equal(t, 0, s)

	p, err := Prod[int](empty)
	require.NoError(t, err)
	assert.Equal(t, 1, p)

	small, err := tensor.FromSlice([]int{1, 2, 3, 4}, tensor.Shape{4})
	require.NoError(t, err)
	p, err = Prod[int](small)
	require.NoError(t, err)
	assert.Equal(t, 24, p)

	// A caller's Init overrides the default seed.
	s, err = Sum[int](small, tensor.Init(100))
	require.NoError(t, err)
	assert.Equal(t, 110, s)
}

func TestMaskedSum(t *testing.T) {
	for _, tt := range []struct {
		data     []int
		expected int
	}{
		{[]int{4, 3, 8, 1, 15, 3, 5, 1, 2, 2}, 44},
		{[]int{7, -4, 3, -5, 5, 6, 8, 0, 4, -2}, 33},
	} {
		x, err := tensor.FromSlice(tt.data, tensor.Shape{len(tt.data)})
		require.NoError(t, err)
		s, err := Sum[int](x, tensor.WhereMask(tensor.Apply(Positive[int], x)))
		require.NoError(t, err)
		assert.Equal(t, tt.expected, s)
	}
}

func TestAmaxAmin(t *testing.T) {
	x := matrix(t)

	m, err := Amax[int](x)
	require.NoError(t, err)
	assert.Equal(t, 10, m)

	m, err = Amin[int](x)
	require.NoError(t, err)
	assert.Equal(t, 1, m)

	_, err = Amax[int](tensor.Zeros[int](tensor.Shape{0}))
	assert.True(t, errors.Is(err, tensor.ErrEmptyReduce))
}

func TestMaxMinAxes(t *testing.T) {
	x := matrix(t)

	m, err := MaxAxes[int](x, []int{0})
	require.NoError(t, err)
	assert.Equal(t, []int{8, 9, 9, 7, 7, 10}, m.Data())

	k, err := MaxAxes[int](x, []int{0}, tensor.KeepDims())
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 6}, k.Shape())
	assert.Equal(t, []int{8, 9, 9, 7, 7, 10}, k.Data())

	m, err = MinAxes[int](x, []int{1})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1, 2}, m.Data())

	s, err := SumAxes[int](x, []int{1})
	require.NoError(t, err)
	assert.Equal(t, []int{34, 33, 25, 37}, s.Data())
}

func TestAllAny(t *testing.T) {
	b, err := tensor.FromSlice([]bool{true, false, true}, tensor.Shape{3})
	require.NoError(t, err)

	all, err := All(b)
	require.NoError(t, err)
	assert.False(t, all)

	some, err := Any(b)
	require.NoError(t, err)
	assert.True(t, some)

	empty := tensor.Zeros[bool](tensor.Shape{0})
	all, err = All(empty)
	require.NoError(t, err)
	assert.True(t, all)
	some, err = Any(empty)
	require.NoError(t, err)
	assert.False(t, some)

	// Only the masked-in elements take part.
	all, err = All(b, tensor.WhereMask(b))
	require.NoError(t, err)
	assert.True(t, all)
}

func TestCountNonzero(t *testing.T) {
	x, err := tensor.FromSlice([]float64{0, 1.5, 0, -2}, tensor.Shape{2, 2})
	require.NoError(t, err)
	n, err := CountNonzero[float64](x)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMean(t *testing.T) {
	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)

	m, err := Mean[float64](x)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, m, 1e-12)

	rows, err := MeanAxes[float64](x, []int{1})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5}, rows.Data())

	cols, err := MeanAxes[float64](x, []int{0}, tensor.KeepDims())
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 3}, cols.Shape())
	assert.Equal(t, []float64{2.5, 3.5, 4.5}, cols.Data())

	big, err := Gt[float64](x, tensor.Scalar(2.0))
	require.NoError(t, err)
	m, err = Mean[float64](x, tensor.WhereMask(big))
	require.NoError(t, err)
	assert.InDelta(t, 4.5, m, 1e-12)

	_, err = Mean[float64](tensor.Zeros[float64](tensor.Shape{0}))
	assert.True(t, errors.Is(err, tensor.ErrEmptyReduce))
}

func TestCumsumCumprod(t *testing.T) {
	x, err := tensor.FromSlice([]int{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)

	c, err := Cumsum[int](x, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 6, 4, 9, 15}, c.Data())

	p, err := Cumprod[int](x, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 10, 18}, p.Data())

	_, err = Cumsum[int](x, 5)
	assert.True(t, errors.Is(err, tensor.ErrAxis))
}

func TestArgMaxArgMin(t *testing.T) {
	x := matrix(t)

	i, err := ArgMax[int](x)
	require.NoError(t, err)
	assert.Equal(t, 23, i)

	i, err = ArgMin[int](x)
	require.NoError(t, err)
	assert.Equal(t, 13, i)

	// First occurrence wins.
	tied, err := tensor.FromSlice([]int{1, 5, 5, 0, 0}, tensor.Shape{5})
	require.NoError(t, err)
	i, err = ArgMax[int](tied)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	i, err = ArgMin[int](tied)
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	_, err = ArgMax[int](tensor.Zeros[int](tensor.Shape{2, 0}))
	assert.True(t, errors.Is(err, tensor.ErrEmptyReduce))
}
