// Package main provides the dimvar command line tool.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/dimvar/dimvar/plot"
	"github.com/dimvar/dimvar/smooth"
	"github.com/dimvar/dimvar/variable"
)

const version = "v0.1.0-dev"

func init() {
	color.NoColor = !isatty.IsTerminal(os.Stderr.Fd())
}

var errTag = color.New(color.FgRed).Add(color.Bold).SprintfFunc()

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("dimvar %s\n", version)
			return
		case "smooth":
			if err := runSmooth(os.Args[2:]); err != nil {
				fmt.Fprintln(os.Stderr, errTag("error:"), err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("dimvar - labeled arrays with moving-average smoothing")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  smooth     Smooth a CSV column with a moving average")
	fmt.Println("  version    Show version")
}

func runSmooth(args []string) error {
	fs := flag.NewFlagSet("smooth", flag.ExitOnError)
	var (
		in         = fs.String("in", "", "input CSV file (default stdin)")
		out        = fs.String("out", "", "output CSV file (default stdout)")
		col        = fs.Int("col", 0, "zero-based column holding the series")
		npoints    = fs.Int("points", 3, "window size in points")
		dim        = fs.String("dim", "row", "dimension name for the series")
		plotPath   = fs.String("plot", "", "also write a PNG chart to this file")
		skipHeader = fs.Bool("skip-header", false, "skip the first CSV record")
	)
	fs.Parse(args)

	values, err := readColumn(*in, *col, *skipHeader)
	if err != nil {
		return err
	}

	d := variable.Dim(*dim)
	v, err := variable.New([]variable.Dim{d}, variable.Shape{len(values)}, values)
	if err != nil {
		return err
	}
	smoothed, err := smooth.Data(v, d, *npoints)
	if err != nil {
		return err
	}

	if err := writeColumns(*out, values, smoothed.Values()); err != nil {
		return err
	}
	if *plotPath != "" {
		if err := plot.Line(*plotPath, d, v, smoothed); err != nil {
			return err
		}
	}
	return nil
}

// readColumn reads one numeric column out of a CSV file, or stdin when
// path is empty.
func readColumn(path string, col int, skipHeader bool) ([]float64, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer file.Close()
		r = file
	}

	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if skipHeader && len(records) > 0 {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no data records in input")
	}

	values := make([]float64, len(records))
	for i, record := range records {
		if col >= len(record) {
			return nil, fmt.Errorf("row %d has %d columns, want column %d", i+1, len(record), col)
		}
		v, err := strconv.ParseFloat(record[col], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d column %d: %w", i+1, col, err)
		}
		values[i] = v
	}
	return values, nil
}

// writeColumns writes raw and smoothed side by side as CSV, to stdout
// when path is empty.
func writeColumns(path string, raw, smoothed []float64) error {
	var out io.Writer = os.Stdout
	if path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer file.Close()
		out = file
	}

	w := csv.NewWriter(out)
	if err := w.Write([]string{"raw", "smoothed"}); err != nil {
		return err
	}
	for i := range raw {
		record := []string{
			strconv.FormatFloat(raw[i], 'g', -1, 64),
			strconv.FormatFloat(smoothed[i], 'g', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
