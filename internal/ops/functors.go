// Package ops provides element functors and expression builders on top of
// the tensor package.
//
// Functors are plain generic functions (Add, Max, Greater, ...) suitable for
// tensor.Apply, tensor.Apply2, tensor.Reduce and tensor.Accumulate. Builders
// (Plus, Maximum, Gt, ...) wire those functors into lazy expression nodes, and
// the named reductions (Sum, Amax, Mean, ...) fold with them.
package ops

import "github.com/born-ml/ndarray/internal/tensor"

// Add returns a + b.
func Add[T tensor.Number](a, b T) T { return a + b }

// Sub returns a - b.
func Sub[T tensor.Number](a, b T) T { return a - b }

// Mul returns a * b.
func Mul[T tensor.Number](a, b T) T { return a * b }

// Div returns a / b. Integer division by zero panics as usual in Go.
func Div[T tensor.Number](a, b T) T { return a / b }

// Max returns the larger of a and b.
func Max[T tensor.Ordered](a, b T) T { return max(a, b) }

// Min returns the smaller of a and b.
func Min[T tensor.Ordered](a, b T) T { return min(a, b) }

// Neg returns -v.
func Neg[T tensor.Number](v T) T { return -v }

// Abs returns the absolute value of v.
func Abs[T tensor.Real](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Square returns v * v.
func Square[T tensor.Number](v T) T { return v * v }

// Greater reports a > b.
func Greater[T tensor.Ordered](a, b T) bool { return a > b }

// Less reports a < b.
func Less[T tensor.Ordered](a, b T) bool { return a < b }

// GreaterEqual reports a >= b.
func GreaterEqual[T tensor.Ordered](a, b T) bool { return a >= b }

// LessEqual reports a <= b.
func LessEqual[T tensor.Ordered](a, b T) bool { return a <= b }

// Equal reports a == b.
func Equal[T comparable](a, b T) bool { return a == b }

// NotEqual reports a != b.
func NotEqual[T comparable](a, b T) bool { return a != b }

// And returns a && b.
func And(a, b bool) bool { return a && b }

// Or returns a || b.
func Or(a, b bool) bool { return a || b }

// Not returns !v.
func Not(v bool) bool { return !v }

// Positive reports v > 0.
func Positive[T tensor.Real](v T) bool { return v > 0 }

// NonZero reports v != 0.
func NonZero[T tensor.Number](v T) bool { return v != 0 }
