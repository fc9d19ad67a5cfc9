package tensor

import (
	"fmt"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ReduceOption configures Reduce, ReduceAxes and ReduceLazy.
type ReduceOption func(*reduceConfig)

type reduceConfig struct {
	keepDims bool
	init     any
	hasInit  bool
	where    Expr[bool]
}

// defaultReduceConfig drops reduced axes, has no seed and no mask.
func defaultReduceConfig() reduceConfig {
	return reduceConfig{}
}

// KeepDims keeps reduced axes in the result with extent 1.
func KeepDims() ReduceOption {
	return func(c *reduceConfig) { c.keepDims = true }
}

// DropDims removes reduced axes from the result. This is the default.
func DropDims() ReduceOption {
	return func(c *reduceConfig) { c.keepDims = false }
}

// Init seeds every fold with value. Its type must be the element type of the
// reduced expression: Init(0.0) for float64 data, Init(0) for int data.
func Init[T any](value T) ReduceOption {
	return func(c *reduceConfig) {
		c.init = value
		c.hasInit = true
	}
}

// WhereMask restricts a reduction to the elements where mask is true.
// Masked-out elements are skipped, not replaced by an identity. The mask must
// broadcast to the shape of the reduced expression.
func WhereMask(mask Expr[bool]) ReduceOption {
	return func(c *reduceConfig) { c.where = mask }
}

// Reduction is a lazy node folding an operand along a set of axes.
type Reduction[T any] struct {
	base
	x        Expr[T]
	f        func(T, T) T
	init     T
	hasInit  bool
	mask     Expr[bool]
	bm       broadcaster
	axes     []int // reduced axes of x, ascending
	kept     []int // surviving axes of x, ascending
	keepDims bool
	inner    Shape // extents of the reduced axes
	src      Index // scratch coordinate into x
	pos      Index // scratch position over the reduced axes
}

// ReduceLazy returns a lazy node folding a with f along axes.
//
// The result drops the reduced axes unless KeepDims is given. For every
// surviving coordinate the fold visits the reduced axes in ascending
// lexicographic order, seeded by Init if given and by the first participating
// element otherwise. Problems that could make evaluation fail (unknown or
// repeated axes, a bad mask, folds with nothing to seed them) are detected
// here against the operands as they are now. The node reads its operands
// lazily, so if the mask is later changed to leave an output coordinate with
// nothing to fold (and no Init), Get reports ErrEmptyReduce for it and At or
// Eval panic with that error.
func ReduceLazy[T any](f func(T, T) T, a Expr[T], axes []int, opts ...ReduceOption) (*Reduction[T], error) {
	cfg := defaultReduceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	shape := a.Shape()
	norm, err := NormalizeAxes(axes, len(shape))
	if err != nil {
		return nil, err
	}
	r := &Reduction[T]{
		x:        a,
		f:        f,
		axes:     norm,
		keepDims: cfg.keepDims,
		src:      make(Index, len(shape)),
		pos:      make(Index, len(norm)),
		inner:    make(Shape, len(norm)),
	}
	if cfg.hasInit {
		v, ok := cfg.init.(T)
		if !ok {
			var zero T
			return nil, errors.Errorf("initial value of type %T does not match element type %T", cfg.init, zero)
		}
		r.init, r.hasInit = v, true
	}
	if cfg.where != nil {
		if !canBroadcastTo(cfg.where.Shape(), shape) {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"where mask of shape %v does not broadcast to %v", cfg.where.Shape(), shape)
		}
		r.mask = cfg.where
		r.bm = newBroadcaster(cfg.where.Shape(), shape)
	}

	reduced := make([]bool, len(shape))
	for i, ax := range norm {
		reduced[ax] = true
		r.inner[i] = shape[ax]
	}
	var out Shape
	for k, dim := range shape {
		switch {
		case !reduced[k]:
			r.kept = append(r.kept, k)
			out = append(out, dim)
		case cfg.keepDims:
			out = append(out, 1)
		}
	}
	if out == nil {
		out = Shape{}
	}
	r.base = base{shape: out, layout: a.Layout()}

	if !r.hasInit && out.NumElements() > 0 {
		if r.inner.NumElements() == 0 {
			return nil, errors.Wrapf(ErrEmptyReduce, "zero-size reduction over axes %v of shape %v", norm, shape)
		}
		if r.mask != nil {
			if err := r.checkMaskCoverage(); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

// checkMaskCoverage verifies every output element has at least one unmasked
// input. Only the mask is read.
func (r *Reduction[T]) checkMaskCoverage() error {
	idx := make(Index, len(r.shape))
	for ok := true; ok; ok = increment(idx, r.shape, RowMajor) {
		if !r.covered(idx) {
			return errors.Wrapf(ErrEmptyReduce, "every element masked out at output index %v", idx)
		}
	}
	return nil
}

// covered reports whether the mask lets through any input of one output coordinate.
func (r *Reduction[T]) covered(index Index) bool {
	r.locate(index)
	if r.inner.NumElements() == 0 {
		return false
	}
	clear(r.pos)
	for ok := true; ok; ok = increment(r.pos, r.inner, RowMajor) {
		for i, ax := range r.axes {
			r.src[ax] = r.pos[i]
		}
		if r.mask.at(r.bm.adjust(r.src)) {
			return true
		}
	}
	return false
}

// Reduce folds all elements of a with f in row-major order.
//
// Without Init the first participating element seeds the fold, and an empty
// or fully masked input yields ErrEmptyReduce. With Init and nothing
// participating the result is the initial value.
//
// Example:
//
//	x, _ := tensor.FromSlice([]int{7, -4, 3, -5, 5}, tensor.Shape{5})
//	pos := tensor.Apply(func(v int) bool { return v > 0 }, x)
//	sum, _ := tensor.Reduce(add, x, tensor.Init(0), tensor.WhereMask(pos)) // 15
func Reduce[T any](f func(T, T) T, a Expr[T], opts ...ReduceOption) (T, error) {
	axes := make([]int, a.Rank())
	for i := range axes {
		axes[i] = i
	}
	opts = append(opts[:len(opts):len(opts)], DropDims())
	r, err := ReduceLazy(f, a, axes, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return r.tryAt(Index{})
}

// ReduceAxes folds a with f along axes into a new tensor. See ReduceLazy for
// the options and ordering guarantees.
//
// Example:
//
//	// x has shape (4, 6)
//	m, _ := tensor.ReduceAxes(maxFn, x, []int{0})              // Shape: (6,)
//	k, _ := tensor.ReduceAxes(maxFn, x, []int{0}, tensor.KeepDims()) // Shape: (1, 6)
func ReduceAxes[T any](f func(T, T) T, a Expr[T], axes []int, opts ...ReduceOption) (*Dense[T], error) {
	r, err := ReduceLazy(f, a, axes, opts...)
	if err != nil {
		return nil, err
	}
	if klog.V(4).Enabled() {
		klog.Infof("reducing %v over axes %v into %v", a.Shape(), r.axes, r.shape)
	}
	return Eval[T](r), nil
}

// Axes returns the reduced axes in ascending order.
func (r *Reduction[T]) Axes() []int { return r.axes }

// IsContiguous is always false for a lazy node.
func (r *Reduction[T]) IsContiguous() bool { return false }

func (r *Reduction[T]) at(index Index) T {
	v, err := r.tryAt(index)
	if err != nil {
		panic(err)
	}
	return v
}

func (r *Reduction[T]) tryAt(index Index) (T, error) {
	v, found := r.fold(index)
	if !found {
		return v, errors.Wrapf(ErrEmptyReduce, "every element masked out at output index %v", index)
	}
	return v, nil
}

// locate copies the surviving coordinates of an output index into src.
func (r *Reduction[T]) locate(index Index) {
	for i, k := range r.kept {
		if r.keepDims {
			r.src[k] = index[k]
		} else {
			r.src[k] = index[i]
		}
	}
}

// fold reduces the input positions mapping to one output coordinate.
func (r *Reduction[T]) fold(index Index) (T, bool) {
	r.locate(index)
	acc, found := r.init, r.hasInit
	if r.inner.NumElements() == 0 {
		return acc, found
	}
	clear(r.pos)
	for ok := true; ok; ok = increment(r.pos, r.inner, RowMajor) {
		for i, ax := range r.axes {
			r.src[ax] = r.pos[i]
		}
		if r.mask != nil && !r.mask.at(r.bm.adjust(r.src)) {
			continue
		}
		v := r.x.at(r.src)
		if found {
			acc = r.f(acc, v)
		} else {
			acc, found = v, true
		}
	}
	return acc, found
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (r *Reduction[T]) At(indices ...int) T { return mustGet[T](r, indices) }

// Get returns the element at index or an ErrOutOfRange error.
func (r *Reduction[T]) Get(index Index) (T, error) { return get[T](r, index) }

// Begin returns an iterator at the first element of a traversal.
func (r *Reduction[T]) Begin(layout Layout) *Iterator[T] { return Begin[T](r, layout) }

// End returns an iterator one past the last element of a traversal.
func (r *Reduction[T]) End(layout Layout) *Iterator[T] { return End[T](r, layout) }

// String returns a short description of the node.
func (r *Reduction[T]) String() string {
	return fmt.Sprintf("Reduction%v(%v over %v)", r.shape, r.x, r.axes)
}
