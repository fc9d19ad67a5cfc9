package tensor

import (
	"strings"

	"github.com/pkg/errors"
)

// Layout selects which axis varies fastest.
//
// It governs both how dense storage maps coordinates to memory and the
// default order in which an Iterator visits coordinates. The two uses are
// independent: a column-major array can be walked in row-major order.
type Layout int

// Supported layouts.
const (
	// RowMajor makes the last axis contiguous (C order).
	RowMajor Layout = iota
	// ColumnMajor makes the first axis contiguous (Fortran order).
	ColumnMajor
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return "unknown"
	}
}

// ParseLayout parses "row", "c", "row-major", "col", "f" or "column-major".
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "row", "c", "row-major", "rowmajor":
		return RowMajor, nil
	case "col", "column", "f", "column-major", "columnmajor":
		return ColumnMajor, nil
	default:
		return RowMajor, errors.Errorf("unknown layout %q", s)
	}
}
