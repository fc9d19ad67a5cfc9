package tensor

import (
	"github.com/pkg/errors"
)

// Transpose returns a view with permuted axes. With no axes the order is
// reversed. This is a view operation (no data copy).
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3, 4})
//	y, _ := tensor.Transpose[float32](x)          // Shape: (4, 3, 2)
//	z, _ := tensor.Transpose[float32](x, 0, 2, 1) // Shape: (2, 4, 3)
func Transpose[T any](s Strided[T], axes ...int) (*View[T], error) {
	rank := s.Rank()
	if len(axes) == 0 {
		axes = make([]int, rank)
		for i := range axes {
			axes[i] = rank - 1 - i
		}
	}
	if len(axes) != rank {
		return nil, errors.Wrapf(ErrAxis, "axes %v don't match array of dimension %d", axes, rank)
	}
	perm := make([]int, rank)
	seen := make([]bool, rank)
	for i, axis := range axes {
		a, err := NormalizeAxis(axis, rank)
		if err != nil {
			return nil, err
		}
		if seen[a] {
			return nil, errors.Wrapf(ErrAxis, "repeated axis %d in transpose %v", a, axes)
		}
		seen[a] = true
		perm[i] = a
	}
	v := ViewOf(s)
	for i, a := range perm {
		v.shape[i] = s.Shape()[a]
		v.strides[i] = s.Strides()[a]
	}
	return v, nil
}

// Slice selects part of one axis. Build it with All, Range, RangeStep,
// Reverse or Point.
type Slice struct {
	kind        sliceKind
	start, stop int
	step        int
}

type sliceKind int

const (
	sliceAll sliceKind = iota
	sliceRange
	slicePoint
)

// All keeps the whole axis.
func All() Slice { return Slice{kind: sliceAll, step: 1} }

// Reverse keeps the whole axis in reverse order.
func Reverse() Slice { return Slice{kind: sliceAll, step: -1} }

// Range keeps [start, stop) with unit step. Negative bounds count from the end.
func Range(start, stop int) Slice { return RangeStep(start, stop, 1) }

// RangeStep keeps start, start+step, ... up to (not including) stop, with
// NumPy's clamping rules. Negative bounds count from the end.
func RangeStep(start, stop, step int) Slice {
	return Slice{kind: sliceRange, start: start, stop: stop, step: step}
}

// Point keeps a single position and drops the axis.
func Point(i int) Slice { return Slice{kind: slicePoint, start: i} }

// resolve returns the first position, the step and the resulting extent.
func (sl Slice) resolve(dim int) (first, step, n int, err error) {
	switch sl.kind {
	case slicePoint:
		i := sl.start
		if i < 0 {
			i += dim
		}
		if i < 0 || i >= dim {
			return 0, 0, 0, errors.Wrapf(ErrOutOfRange, "index %d is out of bounds for axis with size %d", sl.start, dim)
		}
		return i, 0, 1, nil
	case sliceAll:
		if sl.step < 0 {
			return dim - 1, -1, dim, nil
		}
		return 0, 1, dim, nil
	}
	if sl.step == 0 {
		return 0, 0, 0, errors.Wrap(ErrOutOfRange, "slice step cannot be zero")
	}
	start, stop := sl.start, sl.stop
	if start < 0 {
		start += dim
	}
	if stop < 0 {
		stop += dim
	}
	if sl.step > 0 {
		start = clamp(start, 0, dim)
		stop = clamp(stop, 0, dim)
		if stop > start {
			n = (stop - start + sl.step - 1) / sl.step
		}
		return start, sl.step, n, nil
	}
	start = clamp(start, -1, dim-1)
	stop = clamp(stop, -1, dim-1)
	if start > stop {
		n = (start - stop - sl.step - 1) / -sl.step
	}
	return start, sl.step, n, nil
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// SliceView selects a sub-array. Missing trailing slices keep whole axes;
// Point slices drop their axis. This is a view operation (no data copy).
//
// Example:
//
//	x := tensor.Zeros[int](tensor.Shape{4, 6})
//	row, _ := tensor.SliceView[int](x, tensor.Point(1))                          // Shape: (6,)
//	odd, _ := tensor.SliceView[int](x, tensor.All(), tensor.RangeStep(1, 6, 2))  // Shape: (4, 3)
func SliceView[T any](s Strided[T], slices ...Slice) (*View[T], error) {
	shape, strides := s.Shape(), s.Strides()
	if len(slices) > len(shape) {
		return nil, errors.Wrapf(ErrAxis, "too many slices (%d) for array of dimension %d", len(slices), len(shape))
	}
	offset := s.Offset()
	outShape := make(Shape, 0, len(shape))
	outStrides := make(Strides, 0, len(shape))
	for k, dim := range shape {
		sl := All()
		if k < len(slices) {
			sl = slices[k]
		}
		first, step, n, err := sl.resolve(dim)
		if err != nil {
			return nil, errors.WithMessagef(err, "axis %d", k)
		}
		if n > 0 {
			offset += first * strides[k]
		}
		if sl.kind == slicePoint {
			continue
		}
		outShape = append(outShape, n)
		outStrides = append(outStrides, step*strides[k])
	}
	return &View[T]{
		base:    base{shape: outShape, layout: s.Layout()},
		data:    s.Data(),
		offset:  offset,
		strides: outStrides,
	}, nil
}

// Flip reverses the order of elements along an axis.
func Flip[T any](s Strided[T], axis int) (*View[T], error) {
	a, err := NormalizeAxis(axis, s.Rank())
	if err != nil {
		return nil, err
	}
	slices := make([]Slice, s.Rank())
	for k := range slices {
		slices[k] = All()
	}
	slices[a] = Reverse()
	return SliceView(s, slices...)
}

// ExpandDims inserts an axis of extent 1 at the given position.
// Supports negative axis indexing (-1 appends).
func ExpandDims[T any](s Strided[T], axis int) (*View[T], error) {
	a, err := NormalizeAxis(axis, s.Rank()+1)
	if err != nil {
		return nil, err
	}
	v := ViewOf(s)
	v.shape = ShapeCat(v.shape[:a], Shape{1}, v.shape[a:])
	v.strides = append(append(append(Strides{}, v.strides[:a]...), 0), v.strides[a:]...)
	return v, nil
}

// Squeeze removes axes of extent 1. With no axes every extent-1 axis is removed.
func Squeeze[T any](s Strided[T], axes ...int) (*View[T], error) {
	shape := s.Shape()
	drop := make([]bool, len(shape))
	if len(axes) == 0 {
		for k, dim := range shape {
			drop[k] = dim == 1
		}
	} else {
		norm, err := NormalizeAxes(axes, len(shape))
		if err != nil {
			return nil, err
		}
		for _, a := range norm {
			if shape[a] != 1 {
				return nil, errors.Wrapf(ErrShapeMismatch, "cannot squeeze axis %d of shape %v", a, shape)
			}
			drop[a] = true
		}
	}
	v := ViewOf(s)
	v.shape, v.strides = v.shape[:0], v.strides[:0]
	for k, dim := range shape {
		if !drop[k] {
			v.shape = append(v.shape, dim)
			v.strides = append(v.strides, s.Strides()[k])
		}
	}
	return v, nil
}

// Reshape returns a view with a new shape over the same elements. One extent
// may be -1 and is inferred. Only contiguous sources can be reshaped without
// a copy; materialize others with Eval first.
func Reshape[T any](s Strided[T], shape Shape) (*View[T], error) {
	newShape, err := inferShape(shape, s.Size())
	if err != nil {
		return nil, err
	}
	if !s.IsContiguous() {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"cannot reshape non-contiguous array of shape %v without a copy", s.Shape())
	}
	offset := s.Offset()
	if s.Size() > 0 {
		offset, _ = offsetRange(s.Shape(), s.Offset(), s.Strides())
	}
	return &View[T]{
		base:    base{shape: newShape, layout: s.Layout()},
		data:    s.Data(),
		offset:  offset,
		strides: MakeStrides(newShape, s.Layout()),
	}, nil
}

func inferShape(shape Shape, size int) (Shape, error) {
	out := shape.Clone()
	infer := -1
	known := 1
	for k, dim := range out {
		switch {
		case dim == -1 && infer < 0:
			infer = k
		case dim < 0:
			return nil, errors.Wrapf(ErrShapeMismatch, "invalid target shape %v", shape)
		default:
			known *= dim
		}
	}
	if infer >= 0 {
		if known == 0 || size%known != 0 {
			return nil, errors.Wrapf(ErrShapeMismatch, "cannot reshape array of size %d into shape %v", size, shape)
		}
		out[infer] = size / known
	}
	if out.NumElements() != size {
		return nil, errors.Wrapf(ErrShapeMismatch, "cannot reshape array of size %d into shape %v", size, shape)
	}
	return out, nil
}

// BroadcastView returns a view of s stretched to shape using zero strides.
// Writes through the result alias repeated elements.
func BroadcastView[T any](s Strided[T], shape Shape) (*View[T], error) {
	src := s.Shape()
	if !canBroadcastTo(src, shape) {
		return nil, errors.Wrapf(ErrShapeMismatch, "cannot broadcast shape %v to %v", src, shape)
	}
	pad := len(shape) - len(src)
	strides := make(Strides, len(shape))
	for k := range src {
		if src[k] != 1 {
			strides[pad+k] = s.Strides()[k]
		}
	}
	return &View[T]{
		base:    base{shape: shape.Clone(), layout: s.Layout()},
		data:    s.Data(),
		offset:  s.Offset(),
		strides: strides,
	}, nil
}

// Diagonal returns the main diagonal of a rank-2 array as a rank-1 view.
func Diagonal[T any](s Strided[T]) (*View[T], error) {
	shape := s.Shape()
	if len(shape) != 2 {
		return nil, errors.Wrapf(ErrShapeMismatch, "diagonal requires a 2-d array, got shape %v", shape)
	}
	st := s.Strides()
	return &View[T]{
		base:    base{shape: Shape{min(shape[0], shape[1])}, layout: s.Layout()},
		data:    s.Data(),
		offset:  s.Offset(),
		strides: Strides{st[0] + st[1]},
	}, nil
}

// Ravel flattens any expression into a new rank-1 tensor in layout order.
func Ravel[T any](e Expr[T], layout Layout) *Dense[T] {
	out := newDense[T](Shape{e.Size()}, RowMajor)
	k := 0
	for v := range Values(e, layout) {
		out.data[k] = v
		k++
	}
	return out
}

// Concatenate joins expressions along an existing axis into a new tensor.
// All inputs must have the same shape except along axis.
func Concatenate[T any](axis int, exprs ...Expr[T]) (*Dense[T], error) {
	if len(exprs) == 0 {
		return nil, errors.Wrap(ErrShapeMismatch, "need at least one array to concatenate")
	}
	first := exprs[0].Shape()
	a, err := NormalizeAxis(axis, len(first))
	if err != nil {
		return nil, err
	}
	outShape := first.Clone()
	outShape[a] = 0
	for _, e := range exprs {
		s := e.Shape()
		if len(s) != len(first) {
			return nil, errors.Wrapf(ErrShapeMismatch, "cannot concatenate shapes %v and %v", first, s)
		}
		for k := range s {
			if k != a && s[k] != first[k] {
				return nil, errors.Wrapf(ErrShapeMismatch, "cannot concatenate shapes %v and %v along axis %d", first, s, a)
			}
		}
		outShape[a] += s[a]
	}
	out := newDense[T](outShape, RowMajor)
	start := 0
	for _, e := range exprs {
		n := e.Shape()[a]
		dst, err := SliceView[T](out, axisRange(len(outShape), a, start, start+n)...)
		if err != nil {
			return nil, err
		}
		if err := Assign[T](dst, e); err != nil {
			return nil, err
		}
		start += n
	}
	return out, nil
}

func axisRange(rank, axis, start, stop int) []Slice {
	slices := make([]Slice, rank)
	for k := range slices {
		slices[k] = All()
	}
	slices[axis] = Range(start, stop)
	return slices
}
