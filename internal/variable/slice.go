package variable

import "fmt"

// Slice returns a view of the elements [start, end) along the named
// dimension. The view shares the backing buffers; no data is copied.
// Writes through the view are visible in the parent and vice versa.
func (v *Variable) Slice(d Dim, start, end int) (*Variable, error) {
	i := dimIndex(v.dims, d)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrDimNotFound, d, v.dims)
	}
	if start < 0 || end < start || end > v.shape[i] {
		return nil, fmt.Errorf("%w: [%d:%d] of dimension %q (size %d)",
			ErrBadSliceBounds, start, end, d, v.shape[i])
	}
	shape := v.shape.Clone()
	shape[i] = end - start
	return &Variable{
		dims:      cloneDims(v.dims),
		shape:     shape,
		stride:    append([]int(nil), v.stride...),
		offset:    v.offset + start*v.stride[i],
		values:    v.values,
		variances: v.variances,
		unit:      v.unit,
	}, nil
}

// SetAt writes src into the hyperplane at position index along the
// named dimension. src must carry the remaining dims of v in the same
// order with matching extents, and must agree with v on the presence of
// variances. For a 1-D v, src is a 0-D variable.
func (v *Variable) SetAt(d Dim, index int, src *Variable) error {
	i := dimIndex(v.dims, d)
	if i < 0 {
		return fmt.Errorf("%w: %q (have %v)", ErrDimNotFound, d, v.dims)
	}
	if index < 0 || index >= v.shape[i] {
		return fmt.Errorf("%w: index %d of dimension %q (size %d)",
			ErrIndexOutOfRange, index, d, v.shape[i])
	}
	rest := dimsWithout(v.dims, i)
	if !dimsEqual(src.dims, rest) {
		return fmt.Errorf("%w: source dims %v, want %v", ErrShapeMismatch, src.dims, rest)
	}
	for k := range src.shape {
		vk := k
		if vk >= i {
			vk++
		}
		if src.shape[k] != v.shape[vk] {
			return fmt.Errorf("%w: source extent %d along %q, want %d",
				ErrShapeMismatch, src.shape[k], src.dims[k], v.shape[vk])
		}
	}
	if src.HasVariances() != v.HasVariances() {
		return fmt.Errorf("%w: source and destination disagree on variances", ErrVariancesMismatch)
	}

	base := v.offset + index*v.stride[i]
	n := src.shape.NumElements()
	canonical := src.shape.ComputeStrides()
	for j := 0; j < n; j++ {
		srcIdx := src.offset
		dstIdx := base
		temp := j
		for k := 0; k < len(src.shape); k++ {
			coord := temp / canonical[k]
			temp %= canonical[k]
			srcIdx += coord * src.stride[k]
			vk := k
			if vk >= i {
				vk++
			}
			dstIdx += coord * v.stride[vk]
		}
		v.values[dstIdx] = src.values[srcIdx]
		if v.variances != nil {
			v.variances[dstIdx] = src.variances[srcIdx]
		}
	}
	return nil
}
