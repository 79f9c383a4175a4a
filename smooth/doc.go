// Copyright 2026 The dimvar Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package smooth implements moving-average smoothing of a Variable
// along a named dimension.
//
// # Overview
//
// Data replaces every element along the chosen dimension with the mean
// of a window of npoints neighboring elements centered on it. Within
// half a window of either end the window is truncated to what is
// available on the short side, so the first and last elements average
// over roughly half a window. The input is never modified; variances,
// when present, are propagated through each window mean.
//
// # Basic Usage
//
//	import (
//	    "github.com/dimvar/dimvar/smooth"
//	    "github.com/dimvar/dimvar/variable"
//	)
//
//	func main() {
//	    v, _ := variable.New([]variable.Dim{"tof"}, variable.Shape{5},
//	        []float64{1, 2, 3, 4, 5})
//	    out, _ := smooth.Data(v, "tof", 3)
//	    // out values: [1.5, 2, 3, 4, 4.5]
//	}
//
// # Window Sizes
//
// npoints must be at least 3. Every window bound is derived from the
// half-range npoints/2 (integer division), so an even npoints behaves
// exactly like the next odd value.
package smooth
