package ops

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/born-ml/ndarray/internal/tensor"
)

// seeded puts init in front of opts so that a caller's own Init still wins.
func seeded[T any](init T, opts []tensor.ReduceOption) []tensor.ReduceOption {
	return append([]tensor.ReduceOption{tensor.Init(init)}, opts...)
}

// Sum adds all elements of a. The sum of nothing is zero.
//
// Example:
//
//	x, _ := tensor.FromSlice([]int{4, 3, 8, 1, -2}, tensor.Shape{5})
//	pos := tensor.Apply(ops.Positive[int], x)
//	s, _ := ops.Sum[int](x, tensor.WhereMask(pos)) // 16
func Sum[T tensor.Number](a tensor.Expr[T], opts ...tensor.ReduceOption) (T, error) {
	return tensor.Reduce(Add[T], a, seeded(T(0), opts)...)
}

// Prod multiplies all elements of a. The product of nothing is one.
func Prod[T tensor.Number](a tensor.Expr[T], opts ...tensor.ReduceOption) (T, error) {
	return tensor.Reduce(Mul[T], a, seeded(T(1), opts)...)
}

// Amax returns the largest element of a. Empty input is an error unless an
// Init option supplies a lower bound.
func Amax[T tensor.Ordered](a tensor.Expr[T], opts ...tensor.ReduceOption) (T, error) {
	return tensor.Reduce(Max[T], a, opts...)
}

// Amin returns the smallest element of a.
func Amin[T tensor.Ordered](a tensor.Expr[T], opts ...tensor.ReduceOption) (T, error) {
	return tensor.Reduce(Min[T], a, opts...)
}

// All reports whether every participating element of a is true.
func All(a tensor.Expr[bool], opts ...tensor.ReduceOption) (bool, error) {
	return tensor.Reduce(And, a, seeded(true, opts)...)
}

// Any reports whether some participating element of a is true.
func Any(a tensor.Expr[bool], opts ...tensor.ReduceOption) (bool, error) {
	return tensor.Reduce(Or, a, seeded(false, opts)...)
}

// CountNonzero counts the non-zero elements of a.
func CountNonzero[T tensor.Number](a tensor.Expr[T], opts ...tensor.ReduceOption) (int, error) {
	ones := tensor.Apply(func(v T) int {
		if v != 0 {
			return 1
		}
		return 0
	}, a)
	return tensor.Reduce(Add[int], ones, seeded(0, opts)...)
}

// SumAxes adds the elements of a along axes.
func SumAxes[T tensor.Number](a tensor.Expr[T], axes []int, opts ...tensor.ReduceOption) (*tensor.Dense[T], error) {
	return tensor.ReduceAxes(Add[T], a, axes, seeded(T(0), opts)...)
}

// MaxAxes returns the largest elements of a along axes.
//
// Example:
//
//	// x has shape (4, 6)
//	m, _ := ops.MaxAxes[int](x, []int{0})                   // Shape: (6,)
//	k, _ := ops.MaxAxes[int](x, []int{0}, tensor.KeepDims()) // Shape: (1, 6)
func MaxAxes[T tensor.Ordered](a tensor.Expr[T], axes []int, opts ...tensor.ReduceOption) (*tensor.Dense[T], error) {
	return tensor.ReduceAxes(Max[T], a, axes, opts...)
}

// MinAxes returns the smallest elements of a along axes.
func MinAxes[T tensor.Ordered](a tensor.Expr[T], axes []int, opts ...tensor.ReduceOption) (*tensor.Dense[T], error) {
	return tensor.ReduceAxes(Min[T], a, axes, opts...)
}

// moment is a running sum with the number of elements folded into it.
type moment[T any] struct {
	sum T
	n   int
}

func addMoments[T constraints.Float](a, b moment[T]) moment[T] {
	return moment[T]{sum: a.sum + b.sum, n: a.n + b.n}
}

func moments[T constraints.Float](a tensor.Expr[T]) *tensor.Unary[T, moment[T]] {
	return tensor.Apply(func(v T) moment[T] { return moment[T]{sum: v, n: 1} }, a)
}

// Mean returns the arithmetic mean of the participating elements of a.
// Init is not accepted; empty or fully masked input is an ErrEmptyReduce error.
func Mean[T constraints.Float](a tensor.Expr[T], opts ...tensor.ReduceOption) (T, error) {
	m, err := tensor.Reduce(addMoments[T], moments(a), opts...)
	if err != nil {
		return 0, err
	}
	return m.sum / T(m.n), nil
}

// MeanAxes returns the mean of the participating elements of a along axes.
func MeanAxes[T constraints.Float](a tensor.Expr[T], axes []int, opts ...tensor.ReduceOption) (*tensor.Dense[T], error) {
	m, err := tensor.ReduceLazy(addMoments[T], moments(a), axes, opts...)
	if err != nil {
		return nil, err
	}
	return tensor.Eval[T](tensor.Apply(func(m moment[T]) T { return m.sum / T(m.n) }, m)), nil
}

// Cumsum returns the running sum of a along axis.
func Cumsum[T tensor.Number](a tensor.Expr[T], axis int) (*tensor.Dense[T], error) {
	return tensor.Accumulate(Add[T], a, axis)
}

// Cumprod returns the running product of a along axis.
func Cumprod[T tensor.Number](a tensor.Expr[T], axis int) (*tensor.Dense[T], error) {
	return tensor.Accumulate(Mul[T], a, axis)
}

// ArgMax returns the flat row-major position of the first largest element of a.
func ArgMax[T tensor.Ordered](a tensor.Expr[T]) (int, error) {
	return argBest(a, Greater[T], "argmax")
}

// ArgMin returns the flat row-major position of the first smallest element of a.
func ArgMin[T tensor.Ordered](a tensor.Expr[T]) (int, error) {
	return argBest(a, Less[T], "argmin")
}

func argBest[T any](a tensor.Expr[T], better func(T, T) bool, name string) (int, error) {
	var best T
	pos, k := -1, 0
	for v := range tensor.Values(a, tensor.RowMajor) {
		if pos < 0 || better(v, best) {
			best, pos = v, k
		}
		k++
	}
	if pos < 0 {
		return 0, errors.Wrapf(tensor.ErrEmptyReduce, "%s of an empty array of shape %v", name, a.Shape())
	}
	return pos, nil
}
