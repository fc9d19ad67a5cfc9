package ops

import (
	"math"

	"github.com/born-ml/ndarray/internal/tensor"
	"golang.org/x/exp/constraints"
)

// Plus returns the lazy broadcast sum a + b.
//
// Example:
//
//	a, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3, 1})
//	b := tensor.Ones[float32](tensor.Shape{3, 5})
//	c, _ := ops.Plus[float32](a, b) // Shape: (3, 5)
func Plus[T tensor.Number](a, b tensor.Expr[T]) (*tensor.Binary[T, T, T], error) {
	return tensor.Apply2(Add[T], a, b)
}

// Minus returns the lazy broadcast difference a - b.
func Minus[T tensor.Number](a, b tensor.Expr[T]) (*tensor.Binary[T, T, T], error) {
	return tensor.Apply2(Sub[T], a, b)
}

// Times returns the lazy broadcast product a * b.
func Times[T tensor.Number](a, b tensor.Expr[T]) (*tensor.Binary[T, T, T], error) {
	return tensor.Apply2(Mul[T], a, b)
}

// Divide returns the lazy broadcast quotient a / b.
func Divide[T tensor.Number](a, b tensor.Expr[T]) (*tensor.Binary[T, T, T], error) {
	return tensor.Apply2(Div[T], a, b)
}

// Maximum returns the lazy element-wise maximum of a and b.
func Maximum[T tensor.Ordered](a, b tensor.Expr[T]) (*tensor.Binary[T, T, T], error) {
	return tensor.Apply2(Max[T], a, b)
}

// Minimum returns the lazy element-wise minimum of a and b.
func Minimum[T tensor.Ordered](a, b tensor.Expr[T]) (*tensor.Binary[T, T, T], error) {
	return tensor.Apply2(Min[T], a, b)
}

// Negate returns the lazy negation of a.
func Negate[T tensor.Number](a tensor.Expr[T]) *tensor.Unary[T, T] {
	return tensor.Apply(Neg[T], a)
}

// Gt returns a lazy boolean mask of a > b.
func Gt[T tensor.Ordered](a, b tensor.Expr[T]) (*tensor.Binary[T, T, bool], error) {
	return tensor.Apply2(Greater[T], a, b)
}

// Lt returns a lazy boolean mask of a < b.
func Lt[T tensor.Ordered](a, b tensor.Expr[T]) (*tensor.Binary[T, T, bool], error) {
	return tensor.Apply2(Less[T], a, b)
}

// Ge returns a lazy boolean mask of a >= b.
func Ge[T tensor.Ordered](a, b tensor.Expr[T]) (*tensor.Binary[T, T, bool], error) {
	return tensor.Apply2(GreaterEqual[T], a, b)
}

// Le returns a lazy boolean mask of a <= b.
func Le[T tensor.Ordered](a, b tensor.Expr[T]) (*tensor.Binary[T, T, bool], error) {
	return tensor.Apply2(LessEqual[T], a, b)
}

// Eq returns a lazy boolean mask of a == b.
func Eq[T comparable](a, b tensor.Expr[T]) (*tensor.Binary[T, T, bool], error) {
	return tensor.Apply2(Equal[T], a, b)
}

// Ne returns a lazy boolean mask of a != b.
func Ne[T comparable](a, b tensor.Expr[T]) (*tensor.Binary[T, T, bool], error) {
	return tensor.Apply2(NotEqual[T], a, b)
}

// Scale multiplies every element of a by k.
//
// Example:
//
//	x := tensor.Ones[float64](tensor.Shape{2, 2})
//	y := ops.Scale[float64](x, 2.5) // lazily [[2.5 2.5] [2.5 2.5]]
func Scale[T tensor.Number](a tensor.Expr[T], k T) *tensor.Binary[T, T, T] {
	return tensor.ApplyRight(Mul[T], a, k)
}

// Shift adds k to every element of a.
func Shift[T tensor.Number](a tensor.Expr[T], k T) *tensor.Binary[T, T, T] {
	return tensor.ApplyRight(Add[T], a, k)
}

// Cast converts every element of a to another real type with Go's
// conversion rules (float to integer truncates toward zero).
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{1.7, -2.2}, tensor.Shape{2})
//	y := ops.Cast[float64, int32](x) // lazily [1 -2]
func Cast[T, U tensor.Real](a tensor.Expr[T]) *tensor.Unary[T, U] {
	return tensor.Apply(func(v T) U { return U(v) }, a)
}

// Sqrt returns the lazy element-wise square root of a.
func Sqrt[T constraints.Float](a tensor.Expr[T]) *tensor.Unary[T, T] {
	return tensor.Apply(func(v T) T { return T(math.Sqrt(float64(v))) }, a)
}

// Exp returns the lazy element-wise exponential of a.
func Exp[T constraints.Float](a tensor.Expr[T]) *tensor.Unary[T, T] {
	return tensor.Apply(func(v T) T { return T(math.Exp(float64(v))) }, a)
}

// Log returns the lazy element-wise natural logarithm of a.
func Log[T constraints.Float](a tensor.Expr[T]) *tensor.Unary[T, T] {
	return tensor.Apply(func(v T) T { return T(math.Log(float64(v))) }, a)
}
