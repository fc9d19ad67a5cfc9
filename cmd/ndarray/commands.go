package main

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/ndarray/ops"
	"github.com/born-ml/ndarray/tensor"
)

type reducer func(a tensor.Expr[float64], axes []int, opts ...tensor.ReduceOption) (*tensor.Dense[float64], error)

var reducers = map[string]reducer{
	"sum":  ops.SumAxes[float64],
	"prod": prodAxes,
	"max":  ops.MaxAxes[float64],
	"min":  ops.MinAxes[float64],
	"mean": ops.MeanAxes[float64],
}

var folds = map[string]func(a, b float64) float64{
	"sum":  ops.Add[float64],
	"prod": ops.Mul[float64],
	"max":  ops.Max[float64],
	"min":  ops.Min[float64],
}

func prodAxes(a tensor.Expr[float64], axes []int, opts ...tensor.ReduceOption) (*tensor.Dense[float64], error) {
	opts = append([]tensor.ReduceOption{tensor.Init(1.0)}, opts...)
	return tensor.ReduceAxes(ops.Mul[float64], a, axes, opts...)
}

// inputFlags are shared by every command that reads an array.
type inputFlags struct {
	op        string
	shape     string
	layout    string
	precision int
}

func (in *inputFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&in.op, "op", "sum", "operation")
	fs.StringVar(&in.shape, "shape", "", "comma-separated extents; defaults to the number of values")
	fs.StringVar(&in.layout, "layout", "row", "order of the input values: row or col")
	fs.IntVar(&in.precision, "precision", 8, "digits printed after the decimal point")
}

// array builds the input array from the positional values.
func (in *inputFlags) array(values []string) (*tensor.Dense[float64], error) {
	data, err := parseFloats(values)
	if err != nil {
		return nil, err
	}
	shape := tensor.Shape{len(data)}
	if in.shape != "" {
		dims, err := parseInts(in.shape)
		if err != nil {
			return nil, errors.WithMessage(err, "-shape")
		}
		shape = tensor.MakeShape(dims...)
	}
	layout, err := tensor.ParseLayout(in.layout)
	if err != nil {
		return nil, err
	}
	return tensor.FromSliceLayout(data, shape, layout)
}

func (in *inputFlags) print(w io.Writer, e tensor.Expr[float64]) {
	opts := tensor.DefaultPrintOptions()
	opts.Precision = in.precision
	fmt.Fprintln(w, tensor.SprintOptions(e, opts))
}

func runReduce(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("reduce", flag.ContinueOnError)
	var in inputFlags
	in.register(fs)
	axesFlag := fs.String("axes", "", "comma-separated axes to reduce; defaults to all")
	keepDims := fs.Bool("keepdims", false, "keep reduced axes with extent 1")
	if err := fs.Parse(args); err != nil {
		return err
	}

	reduce, ok := reducers[in.op]
	if !ok {
		return errors.Errorf("unknown reduction %q (want one of %s)", in.op, names(reducers))
	}
	x, err := in.array(fs.Args())
	if err != nil {
		return err
	}

	var axes []int
	if *axesFlag == "" {
		for axis := range x.Rank() {
			axes = append(axes, axis)
		}
	} else if axes, err = parseInts(*axesFlag); err != nil {
		return errors.WithMessage(err, "-axes")
	}

	var opts []tensor.ReduceOption
	if *keepDims {
		opts = append(opts, tensor.KeepDims())
	}
	klog.V(2).InfoS("reduce", "op", in.op, "shape", x.Shape(), "axes", axes)
	out, err := reduce(x, axes, opts...)
	if err != nil {
		return err
	}
	in.print(stdout, out)
	return nil
}

func runScan(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	var in inputFlags
	in.register(fs)
	axis := fs.Int("axis", -1, "axis to scan along")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fold, ok := folds[in.op]
	if !ok {
		return errors.Errorf("unknown scan %q (want one of %s)", in.op, names(folds))
	}
	x, err := in.array(fs.Args())
	if err != nil {
		return err
	}

	klog.V(2).InfoS("scan", "op", in.op, "shape", x.Shape(), "axis", *axis)
	out, err := tensor.Accumulate(fold, tensor.Expr[float64](x), *axis)
	if err != nil {
		return err
	}
	in.print(stdout, out)
	return nil
}

// parseInts parses a comma-separated list such as "4,6" or "-1".
func parseInts(s string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid integer %q", field)
		}
		out = append(out, v)
	}
	return out, nil
}

// parseFloats accepts values as separate arguments, comma-separated, or both.
func parseFloats(args []string) ([]float64, error) {
	var out []float64
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid value %q", field)
			}
			out = append(out, v)
		}
	}
	return out, nil
}

func names[V any](m map[string]V) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
