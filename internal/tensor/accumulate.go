package tensor

import "k8s.io/klog/v2"

// Accumulate computes an inclusive scan of a with f along axis into a new
// row-major tensor of the same shape.
//
// Position i along axis holds f folded over positions 0..i, each line along
// axis being scanned independently. Position 0 is copied unchanged.
//
// Example:
//
//	x, _ := tensor.FromSlice([]int{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	c, _ := tensor.Accumulate(add, x, 1) // [[1 3 6] [4 9 15]]
func Accumulate[T any](f func(T, T) T, a Expr[T], axis int) (*Dense[T], error) {
	shape := a.Shape()
	ax, err := NormalizeAxis(axis, len(shape))
	if err != nil {
		return nil, err
	}
	out := newDense[T](shape.Clone(), RowMajor)
	if klog.V(4).Enabled() {
		klog.Infof("accumulating %v along axis %d", shape, ax)
	}
	if out.Size() == 0 {
		return out, nil
	}

	lines := shape.Clone()
	lines[ax] = 1
	n := shape[ax]
	idx := make(Index, len(shape))
	for ok := true; ok; ok = increment(idx, lines, RowMajor) {
		acc := a.at(idx)
		out.set(idx, acc)
		for i := 1; i < n; i++ {
			idx[ax] = i
			acc = f(acc, a.at(idx))
			out.set(idx, acc)
		}
		idx[ax] = 0
	}
	return out, nil
}
