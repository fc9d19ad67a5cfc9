package tensor

import (
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Shape represents the per-axis extents of a tensor.
type Shape []int

// Index represents a position inside a tensor, one coordinate per axis.
// It shares its representation with Shape but is never used as an extent.
type Index []int

// Strides holds the signed per-axis memory step of a strided tensor.
type Strides []int

// MakeShape builds a shape from its extents; the rank is the number of arguments.
func MakeShape(dims ...int) Shape {
	s := make(Shape, len(dims))
	copy(s, dims)
	return s
}

// MakeIndex builds an index from its coordinates; the rank is the number of arguments.
func MakeIndex(coords ...int) Index {
	idx := make(Index, len(coords))
	copy(idx, coords)
	return idx
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements in the tensor.
// A rank-0 shape describes a scalar and has one element; any zero extent
// makes the whole tensor empty.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Dim returns the extent of an axis. Negative axes count from the end.
func (s Shape) Dim(axis int) (int, error) {
	a, err := checkAxisAccess(axis, len(s))
	if err != nil {
		return 0, err
	}
	return s[a], nil
}

// SetDim replaces the extent of an axis. Negative axes count from the end.
func (s Shape) SetDim(axis, size int) error {
	a, err := checkAxisAccess(axis, len(s))
	if err != nil {
		return err
	}
	if size < 0 {
		return errors.Errorf("invalid dimension %d for axis %d (must be >= 0)", size, a)
	}
	s[a] = size
	return nil
}

// Validate checks that no extent is negative. Zero extents are legal and
// describe empty tensors.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return errors.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes have the same rank and extents.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	return MakeShape(s...)
}

// ComputeStrides calculates row-major strides for the shape.
func (s Shape) ComputeStrides() Strides {
	return MakeStrides(s, RowMajor)
}

// String formats the shape the way NumPy does: (3, 4), (5,) or ().
func (s Shape) String() string {
	return formatTuple(s, "(", ")", len(s) == 1)
}

// Rank returns the number of axes.
func (idx Index) Rank() int {
	return len(idx)
}

// Coord returns the coordinate along an axis. Negative axes count from the end.
func (idx Index) Coord(axis int) (int, error) {
	a, err := checkAxisAccess(axis, len(idx))
	if err != nil {
		return 0, err
	}
	return idx[a], nil
}

// SetCoord replaces the coordinate along an axis. Negative axes count from the end.
func (idx Index) SetCoord(axis, coord int) error {
	a, err := checkAxisAccess(axis, len(idx))
	if err != nil {
		return err
	}
	idx[a] = coord
	return nil
}

// Equal checks if two indices are identical.
func (idx Index) Equal(other Index) bool {
	return slices.Equal(idx, other)
}

// Clone returns a copy of the index.
func (idx Index) Clone() Index {
	return MakeIndex(idx...)
}

// String formats the index as [i, j, k].
func (idx Index) String() string {
	return formatTuple(idx, "[", "]", false)
}

// Equal checks if two stride tuples are identical.
func (s Strides) Equal(other Strides) bool {
	return slices.Equal(s, other)
}

// Clone returns a copy of the strides.
func (s Strides) Clone() Strides {
	c := make(Strides, len(s))
	copy(c, s)
	return c
}

func formatTuple(vals []int, open, closing string, trailingComma bool) string {
	var sb strings.Builder
	sb.WriteString(open)
	for i, v := range vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	if trailingComma {
		sb.WriteString(",")
	}
	sb.WriteString(closing)
	return sb.String()
}

func checkAxisAccess(axis, rank int) (int, error) {
	a := axis
	if a < 0 {
		a += rank
	}
	if a < 0 || a >= rank {
		return 0, errors.Wrapf(ErrOutOfRange, "axis %d for rank %d", axis, rank)
	}
	return a, nil
}

// NormalizeAxis maps a possibly negative axis into [0, rank).
func NormalizeAxis(axis, rank int) (int, error) {
	a := axis
	if a < 0 {
		a += rank
	}
	if a < 0 || a >= rank {
		return 0, errors.Wrapf(ErrAxis, "axis %d is out of bounds for array of dimension %d", axis, rank)
	}
	return a, nil
}

// NormalizeAxes normalizes every axis of an axis set and returns them in
// ascending order. Repeated axes are rejected.
func NormalizeAxes(axes []int, rank int) ([]int, error) {
	out := make([]int, len(axes))
	for i, axis := range axes {
		a, err := NormalizeAxis(axis, rank)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	slices.Sort(out)
	for i := 1; i < len(out); i++ {
		if out[i] == out[i-1] {
			return nil, errors.Wrapf(ErrAxis, "repeated axis %d in %v", out[i], axes)
		}
	}
	return out, nil
}

// MakeStrides returns the canonical strides of a dense block of the given shape.
//
//	MakeStrides(Shape{2, 3, 4}, RowMajor)    → [12 4 1]
//	MakeStrides(Shape{2, 3, 4}, ColumnMajor) → [1 2 6]
func MakeStrides(shape Shape, layout Layout) Strides {
	strides := make(Strides, len(shape))
	acc := 1
	if layout == ColumnMajor {
		for i := range shape {
			strides[i] = acc
			acc *= shape[i]
		}
		return strides
	}
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}
	return strides
}

// RavelIndex converts an index to its flat position in a dense block of the
// given shape and layout.
func RavelIndex(index Index, shape Shape, layout Layout) (int, error) {
	if err := checkIndex(shape, index); err != nil {
		return 0, err
	}
	return ravel(index, shape, layout), nil
}

// UnravelIndex converts a flat position back into an index. It is the exact
// inverse of RavelIndex for a fixed shape and layout.
func UnravelIndex(flat int, shape Shape, layout Layout) (Index, error) {
	if n := shape.NumElements(); flat < 0 || flat >= n {
		return nil, errors.Wrapf(ErrOutOfRange, "flat index %d for shape %v with %d elements", flat, shape, n)
	}
	idx := make(Index, len(shape))
	unravelInto(flat, shape, layout, idx)
	return idx, nil
}

// ravel is RavelIndex without bounds checks.
func ravel(index Index, shape Shape, layout Layout) int {
	flat := 0
	if layout == ColumnMajor {
		for i := len(shape) - 1; i >= 0; i-- {
			flat = flat*shape[i] + index[i]
		}
		return flat
	}
	for i := range shape {
		flat = flat*shape[i] + index[i]
	}
	return flat
}

// unravelInto is UnravelIndex without bounds checks, writing into dst.
func unravelInto(flat int, shape Shape, layout Layout, dst Index) {
	if layout == ColumnMajor {
		for i := range shape {
			dst[i] = flat % shape[i]
			flat /= shape[i]
		}
		return
	}
	for i := len(shape) - 1; i >= 0; i-- {
		dst[i] = flat % shape[i]
		flat /= shape[i]
	}
}

// checkIndex verifies that index addresses an element of shape.
func checkIndex(shape Shape, index Index) error {
	if len(index) != len(shape) {
		return errors.Wrapf(ErrOutOfRange, "expected %d indices, got %d", len(shape), len(index))
	}
	for i, c := range index {
		if c < 0 || c >= shape[i] {
			return errors.Wrapf(ErrOutOfRange, "index %d is out of bounds for axis %d with size %d", c, i, shape[i])
		}
	}
	return nil
}

// BroadcastShapes implements NumPy-style broadcasting over any number of shapes.
//
// Rules:
//  1. Compare shapes element-wise from right to left
//  2. Dimensions are compatible if they are equal or one of them is 1
//  3. Missing leading dimensions are treated as 1
//
// Shapes are folded left to right. When a pair conflicts, the error names the
// two input shapes responsible, never an intermediate result.
//
// Examples:
//
//	(3, 1) + (3, 5)         → (3, 5)
//	(5,) + (3, 1) + (1, 1)  → (3, 5)
//	(3, 4) + (2, 4)         → ErrShapeMismatch
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	if len(shapes) == 0 {
		return Shape{}, nil
	}
	result := shapes[0].Clone()
	for k := 1; k < len(shapes); k++ {
		next, axis, ok := broadcastPair(result, shapes[k])
		if !ok {
			culprit := shapes[0]
			want := dimFromRight(result, axis)
			for _, s := range shapes[:k] {
				if dimFromRight(s, axis) == want {
					culprit = s
					break
				}
			}
			return nil, errors.Wrapf(ErrShapeMismatch,
				"operands could not be broadcast together with shapes %v %v", culprit, shapes[k])
		}
		result = next
	}
	return result, nil
}

// broadcastPair broadcasts two shapes. On conflict it reports the offending
// axis counted from the right (0 is the last axis).
func broadcastPair(a, b Shape) (Shape, int, bool) {
	n := max(len(a), len(b))
	out := make(Shape, n)
	for r := 0; r < n; r++ {
		ad, bd := dimFromRight(a, r), dimFromRight(b, r)
		switch {
		case ad == bd:
			out[n-1-r] = ad
		case ad == 1:
			out[n-1-r] = bd
		case bd == 1:
			out[n-1-r] = ad
		default:
			return nil, r, false
		}
	}
	return out, 0, true
}

func dimFromRight(s Shape, r int) int {
	if i := len(s) - 1 - r; i >= 0 {
		return s[i]
	}
	return 1
}

// canBroadcastTo reports whether from broadcasts to exactly to.
func canBroadcastTo(from, to Shape) bool {
	if len(from) > len(to) {
		return false
	}
	out, _, ok := broadcastPair(from, to)
	return ok && out.Equal(to)
}

// ShapeCat concatenates shapes: ShapeCat((2, 3), (4,)) is (2, 3, 4).
func ShapeCat(shapes ...Shape) Shape {
	n := 0
	for _, s := range shapes {
		n += len(s)
	}
	out := make(Shape, 0, n)
	for _, s := range shapes {
		out = append(out, s...)
	}
	return out
}

// increment advances index to the next coordinate in layout order and
// reports whether one exists. Past the end the slowest axis holds its extent
// and every other axis is zero.
func increment(index Index, shape Shape, layout Layout) bool {
	n := len(shape)
	if n == 0 {
		return false
	}
	if layout == ColumnMajor {
		for i := 0; i < n-1; i++ {
			index[i]++
			if index[i] < shape[i] {
				return true
			}
			index[i] = 0
		}
		index[n-1]++
		return index[n-1] < shape[n-1]
	}
	for i := n - 1; i > 0; i-- {
		index[i]++
		if index[i] < shape[i] {
			return true
		}
		index[i] = 0
	}
	index[0]++
	return index[0] < shape[0]
}

// decrement moves index to the previous coordinate in layout order. It is the
// inverse of increment, including from the past-the-end position.
func decrement(index Index, shape Shape, layout Layout) {
	n := len(shape)
	if layout == ColumnMajor {
		for i := 0; i < n; i++ {
			if index[i] > 0 {
				index[i]--
				return
			}
			index[i] = shape[i] - 1
		}
		return
	}
	for i := n - 1; i >= 0; i-- {
		if index[i] > 0 {
			index[i]--
			return
		}
		index[i] = shape[i] - 1
	}
}

// endIndex writes the past-the-end position for a traversal into dst.
func endIndex(shape Shape, layout Layout, dst Index) {
	clear(dst)
	if len(shape) == 0 {
		return
	}
	if layout == ColumnMajor {
		dst[len(shape)-1] = shape[len(shape)-1]
		return
	}
	dst[0] = shape[0]
}
