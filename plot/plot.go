// Copyright 2026 The dimvar Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package plot renders 1-D variables as PNG line charts.
//
// The charts are deliberately simple: one line per variable, and a
// shaded band of one standard deviation for variables that carry
// variances. They exist to eyeball smoothing results, not to replace a
// real plotting tool.
//
// Example:
//
//	smoothed, _ := smooth.Data(v, "tof", 5)
//	err := plot.Line("smoothed.png", "tof", v, smoothed)
package plot

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/dimvar/dimvar/variable"
)

// Common errors.
var (
	ErrNoSeries  = errors.New("no variables to plot")
	ErrBadSeries = errors.New("variable cannot be plotted")
)

const (
	width  = 800
	height = 500
	margin = 40.0
)

// palette cycles per series, first line blue, second orange.
var palette = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
}

// Line renders vars as line series along d and writes a PNG to path.
// Every variable must be 1-D over d with at least two points. A
// variable with variances is drawn with a shaded ±1σ band behind its
// line.
func Line(path string, d variable.Dim, vars ...*variable.Variable) error {
	if len(vars) == 0 {
		return ErrNoSeries
	}
	for i, v := range vars {
		if v.NDim() != 1 {
			return fmt.Errorf("%w: variable %d has %d dimensions, want 1", ErrBadSeries, i, v.NDim())
		}
		n, err := v.Len(d)
		if err != nil {
			return fmt.Errorf("%w: variable %d has dims %v, want [%s]", ErrBadSeries, i, v.Dims(), d)
		}
		if n < 2 {
			return fmt.Errorf("%w: variable %d has %d points, want at least 2", ErrBadSeries, i, n)
		}
	}

	lo, hi := dataRange(vars)

	xAt := func(i, n int) float64 {
		return margin + float64(i)/float64(n-1)*(width-2*margin)
	}
	yAt := func(val float64) float64 {
		frac := (val - lo) / (hi - lo)
		return height - margin - frac*(height-2*margin)
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	// Axes frame.
	dc.SetColor(color.RGBA{R: 90, G: 90, B: 90, A: 255})
	dc.SetLineWidth(1)
	dc.DrawLine(margin, margin, margin, height-margin)
	dc.DrawLine(margin, height-margin, width-margin, height-margin)
	dc.Stroke()

	for s, v := range vars {
		c := palette[s%len(palette)]
		vals := v.Values()
		n := len(vals)

		if v.HasVariances() {
			variances := v.Variances()
			dc.ClearPath()
			for i := 0; i < n; i++ {
				dc.LineTo(xAt(i, n), yAt(vals[i]+math.Sqrt(variances[i])))
			}
			for i := n - 1; i >= 0; i-- {
				dc.LineTo(xAt(i, n), yAt(vals[i]-math.Sqrt(variances[i])))
			}
			dc.SetColor(lighten(c))
			dc.Fill()
		}

		dc.ClearPath()
		for i := 0; i < n; i++ {
			dc.LineTo(xAt(i, n), yAt(vals[i]))
		}
		dc.SetColor(c)
		dc.SetLineWidth(2)
		dc.Stroke()
	}

	return dc.SavePNG(path)
}

// dataRange returns the vertical extent covered by all series,
// including their ±1σ bands. A flat range is widened so constant data
// still draws mid-plot.
func dataRange(vars []*variable.Variable) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vars {
		vals := v.Values()
		var variances []float64
		if v.HasVariances() {
			variances = v.Variances()
		}
		for i, val := range vals {
			s := 0.0
			if variances != nil {
				s = math.Sqrt(variances[i])
			}
			lo = math.Min(lo, val-s)
			hi = math.Max(hi, val+s)
		}
	}
	if hi == lo {
		lo, hi = lo-1, hi+1
	}
	return lo, hi
}

// lighten mixes c toward white for the band fill.
func lighten(c color.RGBA) color.RGBA {
	mix := func(v uint8) uint8 { return uint8((int(v) + 3*255) / 4) }
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: 255}
}
