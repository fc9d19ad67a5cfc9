// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndarray/internal/format"
)

// PrintOptions controls how Sprint renders arrays.
type PrintOptions = format.PrintOptions

// DefaultPrintOptions returns precision 8, threshold 1000, 3 edge items,
// line width 75 and a single space separator.
func DefaultPrintOptions() PrintOptions { return format.DefaultPrintOptions() }

// Sprint renders e in nested-bracket notation with the default options.
//
// Example:
//
//	x, _ := tensor.FromSlice([]int{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	fmt.Println(tensor.Sprint[int](x))
//	// [[1 2 3]
//	//  [4 5 6]]
func Sprint[T any](e Expr[T]) string { return format.String(e) }

// SprintOptions renders e with the given options.
func SprintOptions[T any](e Expr[T], opts PrintOptions) string { return format.Sprint(e, opts) }
