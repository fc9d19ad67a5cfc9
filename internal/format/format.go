// Package format renders tensor expressions as nested bracketed text.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/born-ml/ndarray/internal/tensor"
)

// PrintOptions controls how Sprint renders an expression.
type PrintOptions struct {
	Precision int    // Digits after the decimal point for floats; negative for shortest.
	Threshold int    // Summarize arrays with more elements than this; negative never summarizes.
	EdgeItems int    // Items kept at each end of a summarized axis.
	LineWidth int    // Wrap the innermost axis past this many characters; 0 never wraps.
	Separator string // Written between items of the innermost axis.
}

// DefaultPrintOptions returns the options used by String.
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{
		Precision: 8,
		Threshold: 1000,
		EdgeItems: 3,
		LineWidth: 75,
		Separator: " ",
	}
}

// String renders e with DefaultPrintOptions.
func String[T any](e tensor.Expr[T]) string {
	return Sprint(e, DefaultPrintOptions())
}

// Sprint renders e in row-major order, one innermost axis per line:
//
//	[[1 2 3]
//	 [4 5 6]]
//
// Cells are right-aligned to a common width. When e has more than
// opts.Threshold elements, axes longer than 2*opts.EdgeItems show only their
// edges around "...". A rank-0 expression renders as its single element.
func Sprint[T any](e tensor.Expr[T], opts PrintOptions) string {
	shape := e.Shape()
	if e.Size() == 0 {
		return "[]"
	}
	p := &printer[T]{
		expr:      e,
		opts:      opts,
		shape:     shape,
		idx:       make(tensor.Index, len(shape)),
		summarize: opts.Threshold >= 0 && e.Size() > opts.Threshold && opts.EdgeItems > 0,
	}
	if len(shape) == 0 {
		return p.cell()
	}
	p.measure(0)
	p.block(0)
	return p.b.String()
}

type printer[T any] struct {
	expr      tensor.Expr[T]
	opts      PrintOptions
	shape     tensor.Shape
	idx       tensor.Index
	summarize bool
	width     int
	col       int
	b         strings.Builder
}

// positions lists the coordinates printed along axis; -1 marks the ellipsis.
func (p *printer[T]) positions(axis int) []int {
	n := p.shape[axis]
	edge := p.opts.EdgeItems
	if !p.summarize || n <= 2*edge {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	out := make([]int, 0, 2*edge+1)
	for i := 0; i < edge; i++ {
		out = append(out, i)
	}
	out = append(out, -1)
	for i := n - edge; i < n; i++ {
		out = append(out, i)
	}
	return out
}

func (p *printer[T]) cell() string {
	return formatValue(p.expr.At(p.idx...), p.opts.Precision)
}

// measure finds the widest printed cell.
func (p *printer[T]) measure(axis int) {
	if axis == len(p.shape) {
		p.width = max(p.width, len(p.cell()))
		return
	}
	for _, k := range p.positions(axis) {
		if k < 0 {
			continue
		}
		p.idx[axis] = k
		p.measure(axis + 1)
	}
}

func (p *printer[T]) write(s string) {
	p.b.WriteString(s)
	p.col += len(s)
}

func (p *printer[T]) newline(lines, indent int) {
	p.b.WriteString(strings.TrimRight(p.opts.Separator, " "))
	p.b.WriteString(strings.Repeat("\n", lines))
	p.b.WriteString(strings.Repeat(" ", indent))
	p.col = indent
}

func (p *printer[T]) block(axis int) {
	p.write("[")
	last := axis == len(p.shape)-1
	for i, k := range p.positions(axis) {
		item := "..."
		if last && k >= 0 {
			p.idx[axis] = k
			item = fmt.Sprintf("%*s", p.width, p.cell())
		}
		switch {
		case i == 0:
		case !last:
			p.newline(len(p.shape)-axis-1, axis+1)
		case p.opts.LineWidth > 0 && p.col+len(p.opts.Separator)+len(item) > p.opts.LineWidth:
			p.newline(1, axis+1)
		default:
			p.write(p.opts.Separator)
		}
		if last || k < 0 {
			p.write(item)
			continue
		}
		p.idx[axis] = k
		p.block(axis + 1)
	}
	p.write("]")
}

func formatValue(v any, precision int) string {
	switch x := v.(type) {
	case float64:
		return formatFloat(x, precision, 64)
	case float32:
		return formatFloat(float64(x), precision, 32)
	case complex128:
		return formatComplex(real(x), imag(x), precision, 64)
	case complex64:
		return formatComplex(float64(real(x)), float64(imag(x)), precision, 32)
	}
	return fmt.Sprint(v)
}

// formatFloat prints f with at most precision decimals, trimming trailing
// zeros but keeping the point so floats stay distinguishable from integers.
func formatFloat(f float64, precision, bits int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'f', precision, bits)
	if !strings.Contains(s, ".") {
		return s + "."
	}
	return strings.TrimRight(s, "0")
}

func formatComplex(re, im float64, precision, bits int) string {
	sign := "+"
	if im < 0 || (im == 0 && math.Signbit(im)) {
		sign = "-"
		im = -im
	}
	return formatFloat(re, precision, bits) + sign + formatFloat(im, precision, bits) + "j"
}
