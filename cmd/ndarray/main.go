// Package main provides the ndarray command line tool.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const version = "v0.0.1-dev"

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	err := run(flag.Args(), os.Stdout)
	klog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "ndarray %s\n", version)
		return nil
	case "reduce":
		return runReduce(args[1:], stdout)
	case "scan":
		return runScan(args[1:], stdout)
	case "help", "-h", "--help":
		usage(stdout)
		return nil
	default:
		return errors.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "ndarray - lazy n-dimensional arrays for Go")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  reduce     Fold values along axes: reduce -op sum -shape 2,3 [-axes 0] 1 2 3 4 5 6")
	fmt.Fprintln(w, "  scan       Running fold along one axis: scan -op sum -shape 2,3 -axis 1 1 2 3 4 5 6")
}
