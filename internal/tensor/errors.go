package tensor

import "github.com/pkg/errors"

// Error kinds reported by the package.
//
// Call sites wrap a kind with context (the offending shapes, axis or index),
// so callers should test with errors.Is rather than comparing messages:
//
//	if _, err := tensor.Apply2(f, a, b); errors.Is(err, tensor.ErrShapeMismatch) {
//	    ...
//	}
var (
	// ErrShapeMismatch reports shapes that cannot be broadcast together, or an
	// explicit output whose shape disagrees with the computed result.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrOutOfRange reports a bounds-checked element or per-axis access outside the shape.
	ErrOutOfRange = errors.New("index out of range")

	// ErrAxis reports an axis argument outside [-rank, rank) or repeated in an axis set.
	ErrAxis = errors.New("axis out of range")

	// ErrEmptyReduce reports a reduction without an initial value over no elements.
	ErrEmptyReduce = errors.New("reduction of empty input with no initial value")

	// ErrReadOnly reports a write through an expression that has no storage.
	ErrReadOnly = errors.New("expression is not assignable")

	// ErrIncomparable reports iterators over different expressions or traversal orders.
	ErrIncomparable = errors.New("iterators are not comparable")
)
