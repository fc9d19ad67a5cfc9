// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/born-ml/ndarray/internal/ops"
	"github.com/born-ml/ndarray/tensor"
)

// Element functors

// Add returns a + b.
func Add[T tensor.Number](a, b T) T { return ops.Add(a, b) }

// Sub returns a - b.
func Sub[T tensor.Number](a, b T) T { return ops.Sub(a, b) }

// Mul returns a * b.
func Mul[T tensor.Number](a, b T) T { return ops.Mul(a, b) }

// Div returns a / b. Integer division by zero panics.
func Div[T tensor.Number](a, b T) T { return ops.Div(a, b) }

// Max returns the larger of a and b.
func Max[T tensor.Ordered](a, b T) T { return ops.Max(a, b) }

// Min returns the smaller of a and b.
func Min[T tensor.Ordered](a, b T) T { return ops.Min(a, b) }

// Neg returns -v.
func Neg[T tensor.Number](v T) T { return ops.Neg(v) }

// Abs returns |v|.
func Abs[T tensor.Real](v T) T { return ops.Abs(v) }

// Square returns v * v.
func Square[T tensor.Number](v T) T { return ops.Square(v) }

// Greater reports a > b.
func Greater[T tensor.Ordered](a, b T) bool { return ops.Greater(a, b) }

// Less reports a < b.
func Less[T tensor.Ordered](a, b T) bool { return ops.Less(a, b) }

// GreaterEqual reports a >= b.
func GreaterEqual[T tensor.Ordered](a, b T) bool { return ops.GreaterEqual(a, b) }

// LessEqual reports a <= b.
func LessEqual[T tensor.Ordered](a, b T) bool { return ops.LessEqual(a, b) }

// Equal reports a == b.
func Equal[T comparable](a, b T) bool { return ops.Equal(a, b) }

// NotEqual reports a != b.
func NotEqual[T comparable](a, b T) bool { return ops.NotEqual(a, b) }

// And returns a && b.
func And(a, b bool) bool { return ops.And(a, b) }

// Or returns a || b.
func Or(a, b bool) bool { return ops.Or(a, b) }

// Not returns !v.
func Not(v bool) bool { return ops.Not(v) }

// Positive reports v > 0.
func Positive[T tensor.Real](v T) bool { return ops.Positive(v) }

// NonZero reports v != 0.
func NonZero[T tensor.Number](v T) bool { return ops.NonZero(v) }
