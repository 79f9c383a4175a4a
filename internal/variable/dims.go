package variable

import "fmt"

// Dim names an axis of a variable, e.g. Dim("tof") or Dim("x").
// Operations address axes by name rather than by position.
type Dim string

// Unit is a free-form physical unit label, e.g. "counts" or "us".
// The empty string means dimensionless.
type Unit string

// dimIndex returns the position of d in dims, or -1 if absent.
func dimIndex(dims []Dim, d Dim) int {
	for i, have := range dims {
		if have == d {
			return i
		}
	}
	return -1
}

// cloneDims returns a copy of dims.
func cloneDims(dims []Dim) []Dim {
	clone := make([]Dim, len(dims))
	copy(clone, dims)
	return clone
}

// dimsEqual checks if two dim lists are equal, order included.
func dimsEqual(a, b []Dim) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// dimsWithout returns dims with the entry at index i removed.
func dimsWithout(dims []Dim, i int) []Dim {
	out := make([]Dim, 0, len(dims)-1)
	for k, d := range dims {
		if k != i {
			out = append(out, d)
		}
	}
	return out
}

// validateDims checks that dims and shape agree and that every dim name
// is non-empty and unique.
func validateDims(dims []Dim, shape Shape) error {
	if len(dims) != len(shape) {
		return fmt.Errorf("%w: %d dims for shape %v", ErrBadDims, len(dims), shape)
	}
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrBadDims, err)
	}
	for i, d := range dims {
		if d == "" {
			return fmt.Errorf("%w: empty dimension name at index %d", ErrBadDims, i)
		}
		for j := 0; j < i; j++ {
			if dims[j] == d {
				return fmt.Errorf("%w: duplicate dimension %q", ErrBadDims, d)
			}
		}
	}
	return nil
}
