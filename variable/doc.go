// Copyright 2026 The dimvar Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package variable provides labeled multi-dimensional arrays for the
// dimvar data-reduction toolkit.
//
// # Overview
//
// A Variable is a float64 array whose axes carry names (Dim), so
// operations address axes by name instead of position. A Variable can
// carry per-element variances (squared uncertainties) alongside its
// values, and a free-form unit label. This package provides:
//   - Validating constructors (New, Zeros, Full, Linspace)
//   - Name-based access: Len, Slice, SetAt
//   - Reductions with uncertainty propagation: Sum, Mean
//   - Interop with gorgonia dense tensors
//
// # Basic Usage
//
//	import "github.com/dimvar/dimvar/variable"
//
//	func main() {
//	    v, _ := variable.New([]variable.Dim{"tof"}, variable.Shape{5},
//	        []float64{10, 20, 30, 40, 50})
//	    v.SetUnit("counts")
//
//	    window, _ := v.Slice("tof", 1, 4) // view of elements 1..3
//	    m, _ := variable.Mean(window, "tof")
//	    value, _ := m.Value() // 30
//	}
//
// # Variances
//
// When a Variable carries variances, reductions propagate them assuming
// independent values: Sum adds variances, Mean additionally divides by
// the squared element count. Mixing variables that disagree on the
// presence of variances is an error.
//
// # Views and Copies
//
// Slice returns a view: it shares the backing buffers of its parent, so
// writes are visible both ways and slicing is O(1). Copy returns a
// deep, contiguous duplicate that shares nothing; use it before
// mutating data that others may still read.
//
// # Interop
//
// ToDense and FromDense convert between Variables and float64
// gorgonia.org/tensor dense tensors, copying the data. Dimension names,
// variances and the unit stay behind; the caller re-attaches them.
package variable
