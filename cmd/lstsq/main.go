// Command lstsq fits an ordinary least-squares model to a CSV file and prints
// a summary of the fit.
//
// Usage:
//
//	lstsq -data housing.csv -target MEDV [-solver qr|lu] [-plot fit.png] [-no-intercept]
//
// The first CSV record must be a header. The -target column becomes y; every
// other column becomes a feature, and a constant intercept column is prepended
// unless -no-intercept is given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/lstsq/csvio"
	"github.com/katalvlaran/lstsq/regression"
	"github.com/katalvlaran/lstsq/report"
)

var errUsage = errors.New("lstsq: -data and -target are required")

func main() {
	log.SetFlags(0)
	log.SetPrefix("lstsq: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// run parses args, fits the model and writes the report to stdout.
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("lstsq", flag.ContinueOnError)
	fs.SetOutput(stdout)
	var (
		data        = fs.String("data", "", "path to the CSV input (header required)")
		target      = fs.String("target", "", "name of the target column")
		solverName  = fs.String("solver", "qr", "least-squares solver: qr or lu")
		plotPath    = fs.String("plot", "", "optional path of a predicted-vs-actual plot (.png, .svg, .pdf)")
		noIntercept = fs.Bool("no-intercept", false, "do not prepend a constant column")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *data == "" || *target == "" {
		fs.Usage()
		return errUsage
	}

	solver, err := regression.ParseSolver(*solverName)
	if err != nil {
		return err
	}

	ds, err := csvio.ReadMatrixWithTarget(*data, *target, csvio.WithIntercept(!*noIntercept))
	if err != nil {
		return err
	}

	lr := regression.New(regression.WithSolver(solver))
	if err = lr.Fit(ds.X, ds.Y); err != nil {
		return fmt.Errorf("fit %s: %w", *data, err)
	}

	s, err := report.NewSummary(lr, ds.Target, ds.Features, ds.X, ds.Y)
	if err != nil {
		return err
	}
	if err = report.Render(stdout, s); err != nil {
		return err
	}

	if *plotPath != "" {
		var yhat []float64
		if yhat, err = lr.Predict(ds.X); err != nil {
			return err
		}
		if err = report.WritePlot(*plotPath, "predicted vs actual: "+ds.Target, ds.Y, yhat); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "plot written to %s\n", *plotPath)
	}

	return nil
}
