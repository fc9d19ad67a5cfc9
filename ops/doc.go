// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides arithmetic, comparison and reduction operators for
// the arrays of package tensor.
//
// The lowercase-verb functions (Add, Max, Greater, ...) are plain element
// functors that can be passed to tensor.Apply2, tensor.Reduce and friends.
// The builders (Plus, Maximum, Gt, ...) wrap them into lazy expression
// nodes. Reductions (Sum, Mean, ArgMax, ...) evaluate immediately.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	y, _ := ops.Times[float64](x, x)
//	total, _ := ops.Sum[float64](y) // 30
package ops
