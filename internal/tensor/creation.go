package tensor

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Ones creates a row-major tensor filled with ones.
//
// Example:
//
//	t := tensor.Ones[float64](tensor.Shape{2, 3})
func Ones[T Number](shape Shape) *Dense[T] {
	return Full(shape, T(1))
}

// ZerosLike creates a row-major zero tensor with the shape of e.
func ZerosLike[T, U any](e Expr[U]) *Dense[T] {
	return Zeros[T](e.Shape())
}

// FullLike creates a row-major tensor with the shape of e filled with value.
func FullLike[T, U any](e Expr[U], value T) *Dense[T] {
	return Full(e.Shape(), value)
}

// Arange creates a 1D tensor with values start, start+step, ... up to (not
// including) stop.
//
// Example:
//
//	t, _ := tensor.Arange(0, 10, 1) // [0, 1, 2, ..., 9]
func Arange[T Real](start, stop, step T) (*Dense[T], error) {
	if step == 0 {
		return nil, errors.Wrap(ErrOutOfRange, "arange step cannot be zero")
	}
	n, err := arangeLen(start, stop, step)
	if err != nil {
		return nil, err
	}
	t := newDense[T](Shape{n}, RowMajor)
	if isFloat[T]() {
		for i := range t.data {
			t.data[i] = T(float64(start) + float64(i)*float64(step))
		}
		return t, nil
	}
	// Integer products may wrap in T, but the wrapped sum is exact because
	// every element lies between start and stop.
	for i := range t.data {
		t.data[i] = start + T(i)*step
	}
	return t, nil
}

// arangeLen counts the values of an arange without stepping through them,
// so it cannot loop forever when T overflows or loses precision.
func arangeLen[T Real](start, stop, step T) (int, error) {
	if (step > 0 && start >= stop) || (step < 0 && start <= stop) {
		return 0, nil
	}
	if isFloat[T]() {
		f := math.Ceil((float64(stop) - float64(start)) / float64(step))
		if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt {
			return 0, errors.Wrapf(ErrOutOfRange, "arange(%v, %v, %v) has no finite length", start, stop, step)
		}
		return int(f), nil
	}
	// Differences are taken modulo 2^64, which is exact for any integer T.
	var span, mag uint64
	if step > 0 {
		span, mag = bits64(stop)-bits64(start), bits64(step)
	} else {
		span, mag = bits64(start)-bits64(stop), -bits64(step)
	}
	n := span / mag
	if span%mag != 0 {
		n++
	}
	if n > math.MaxInt {
		return 0, errors.Wrapf(ErrOutOfRange, "arange(%v, %v, %v) is too long", start, stop, step)
	}
	return int(n), nil
}

func bits64[T Real](v T) uint64 { return uint64(int64(v)) }

func isFloat[T Real]() bool {
	one := T(1)
	return one/2 != 0
}

// Linspace creates n evenly spaced values over [start, stop].
func Linspace[T constraints.Float](start, stop T, n int) (*Dense[T], error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrShapeMismatch, "number of samples %d must be non-negative", n)
	}
	t := newDense[T](Shape{n}, RowMajor)
	if n == 1 {
		t.data[0] = start
		return t, nil
	}
	step := (stop - start) / T(n-1)
	for i := range t.data {
		t.data[i] = start + T(i)*step
	}
	if n > 1 {
		t.data[n-1] = stop
	}
	return t, nil
}

// Eye creates an n×n identity matrix.
//
// Example:
//
//	t := tensor.Eye[float32](3) // 3x3 identity matrix
func Eye[T Number](n int) *Dense[T] {
	t := Zeros[T](Shape{n, n})
	for i := 0; i < n; i++ {
		t.data[i*n+i] = 1
	}
	return t
}
