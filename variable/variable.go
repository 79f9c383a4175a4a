// Copyright 2026 The dimvar Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package variable provides the public API for labeled arrays in dimvar.
package variable

import (
	"gorgonia.org/tensor"

	"github.com/dimvar/dimvar/internal/variable"
)

// Type aliases for public API

// Variable is a labeled multi-dimensional array of float64 values,
// optionally carrying per-element variances and a unit label.
type Variable = variable.Variable

// Dim names an axis of a Variable, e.g. Dim("tof") or Dim("x").
type Dim = variable.Dim

// Unit is a free-form physical unit label. Empty means dimensionless.
type Unit = variable.Unit

// Shape holds the extent of each dimension of a Variable.
type Shape = variable.Shape

// Common errors.
var (
	ErrBadDims           = variable.ErrBadDims
	ErrDimNotFound       = variable.ErrDimNotFound
	ErrShapeMismatch     = variable.ErrShapeMismatch
	ErrBadSliceBounds    = variable.ErrBadSliceBounds
	ErrIndexOutOfRange   = variable.ErrIndexOutOfRange
	ErrNotScalar         = variable.ErrNotScalar
	ErrVariancesMismatch = variable.ErrVariancesMismatch
)

// Creation functions

// New creates a Variable from dims, shape and values.
// The values slice is copied in.
//
// Example:
//
//	v, err := variable.New([]variable.Dim{"x", "y"}, variable.Shape{2, 3},
//	    []float64{1, 2, 3, 4, 5, 6})
func New(dims []Dim, shape Shape, values []float64) (*Variable, error) {
	return variable.New(dims, shape, values)
}

// Zeros creates a Variable filled with zeros.
//
// Example:
//
//	v, err := variable.Zeros([]variable.Dim{"x"}, variable.Shape{5})
func Zeros(dims []Dim, shape Shape) (*Variable, error) {
	return variable.Zeros(dims, shape)
}

// Full creates a Variable filled with a specific value.
//
// Example:
//
//	v, err := variable.Full([]variable.Dim{"x"}, variable.Shape{5}, 3.14)
func Full(dims []Dim, shape Shape, value float64) (*Variable, error) {
	return variable.Full(dims, shape, value)
}

// Linspace creates a 1-D Variable with num values spaced evenly from
// start to stop, both inclusive.
//
// Example:
//
//	x, err := variable.Linspace("x", 0, 10, 101)
func Linspace(d Dim, start, stop float64, num int) (*Variable, error) {
	return variable.Linspace(d, start, stop, num)
}

// Reductions

// Sum reduces the named dimension by summation. Variances, when
// present, are summed as well. The unit is kept.
func Sum(v *Variable, d Dim) (*Variable, error) {
	return variable.Sum(v, d)
}

// Mean reduces the named dimension to the arithmetic mean of its
// elements, propagating variances as for a mean of independent values.
//
// Example:
//
//	m, err := variable.Mean(v, "tof")
func Mean(v *Variable, d Dim) (*Variable, error) {
	return variable.Mean(v, d)
}

// Interop

// FromDense creates a Variable from a float64 gorgonia dense tensor,
// naming its axes with dims in order. The data is copied.
func FromDense(dims []Dim, d *tensor.Dense) (*Variable, error) {
	return variable.FromDense(dims, d)
}
