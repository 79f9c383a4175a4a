// Copyright 2026 The dimvar Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package smooth

import (
	"fmt"

	"github.com/dimvar/dimvar/variable"
)

// Data smooths v along the named dimension with a moving average of
// npoints elements, returning a new variable of the same shape. For
// indices within half a window of either end the window is truncated to
// the elements available on the short side while the full half-range is
// kept on the long side. v itself is never modified.
//
// npoints must be at least 3. Every window bound is derived from the
// half-range npoints/2, so an even npoints behaves exactly like the
// next odd value.
//
// Variances, when v carries them, are propagated through each window
// mean. Errors from the variable layer, such as an unknown dimension,
// are returned unmodified.
func Data(v *variable.Variable, dim variable.Dim, npoints int) (*variable.Variable, error) {
	if dim == "" {
		return nil, ErrMissingDim
	}
	if npoints < 3 {
		return nil, fmt.Errorf("%w: need npoints of 3 or higher, got %d", ErrWindowTooSmall, npoints)
	}

	n, err := v.Len(dim)
	if err != nil {
		return nil, err
	}
	h := npoints / 2 // half range rounded down

	out := v.Copy()

	// Three passes in order: start, main, end. For short dimensions the
	// ranges overlap and a later pass overwrites an earlier one; the
	// ordering is part of the contract.
	for i := 0; i < h; i++ { // start: not enough neighbors on the left
		if err := setMean(out, v, dim, i, 0, i+h+1, n); err != nil {
			return nil, err
		}
	}
	for i := h; i < n-h; i++ { // main: the full window fits
		if err := setMean(out, v, dim, i, i-h, i+h+1, n); err != nil {
			return nil, err
		}
	}
	for i := n - h; i < n; i++ { // end: not enough neighbors on the right
		if err := setMean(out, v, dim, i, i-h, n, n); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// setMean writes the mean of v over the window [lo, hi) along dim at
// position i of out. The window bounds are normalized the way numpy
// slice bounds are: a negative lo counts back from the end of the
// dimension and hi is clamped to its length. The write index is not
// normalized, so an out-of-range i fails.
func setMean(out, v *variable.Variable, dim variable.Dim, i, lo, hi, n int) error {
	lo, hi = clampWindow(lo, hi, n)
	w, err := v.Slice(dim, lo, hi)
	if err != nil {
		return err
	}
	m, err := variable.Mean(w, dim)
	if err != nil {
		return err
	}
	return out.SetAt(dim, i, m)
}

// clampWindow normalizes the window [lo, hi) against a dimension of
// length n.
func clampWindow(lo, hi, n int) (int, int) {
	if lo < 0 {
		lo += n
		if lo < 0 {
			lo = 0
		}
	}
	if hi > n {
		hi = n
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}
