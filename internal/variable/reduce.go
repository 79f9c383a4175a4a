package variable

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/dimvar/dimvar/internal/parallel"
)

// Sum reduces the named dimension by summation, returning a variable
// without that dimension. A 1-D input yields a 0-D result. Variances,
// when present, are summed as well: the variance of a sum of
// independent values is the sum of their variances. The unit is kept.
func Sum(v *Variable, d Dim) (*Variable, error) {
	return reduce(v, d, false)
}

// Mean reduces the named dimension to the arithmetic mean of its
// elements. Variances, when present, are propagated as for a mean of
// independent values: summed, then divided by the squared count.
// The unit is kept.
func Mean(v *Variable, d Dim) (*Variable, error) {
	return reduce(v, d, true)
}

func reduce(v *Variable, d Dim, mean bool) (*Variable, error) {
	i := dimIndex(v.dims, d)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrDimNotFound, d, v.dims)
	}

	outShape := v.shape.without(i)
	out := &Variable{
		dims:   dimsWithout(v.dims, i),
		shape:  outShape,
		stride: outShape.ComputeStrides(),
		values: make([]float64, outShape.NumElements()),
		unit:   v.unit,
	}
	if v.variances != nil {
		out.variances = make([]float64, outShape.NumElements())
	}

	n := v.shape[i]
	dimStride := v.stride[i]
	numGroups := outShape.NumElements()

	// One group per output element. Groups touch disjoint output slots
	// and only read the input, so they can run concurrently; the
	// accumulation inside a group stays sequential to keep results
	// deterministic.
	parallel.For(numGroups, func(g int) {
		baseIdx := v.offset
		temp := g
		for k := 0; k < len(outShape); k++ {
			coord := temp / out.stride[k]
			temp %= out.stride[k]
			vk := k
			if vk >= i {
				vk++
			}
			baseIdx += coord * v.stride[vk]
		}
		out.values[g] = groupSum(v.values, baseIdx, n, dimStride)
		if out.variances != nil {
			out.variances[g] = groupSum(v.variances, baseIdx, n, dimStride)
		}
	}, parallel.DefaultConfig())

	if mean {
		nf := float64(n)
		for j := range out.values {
			out.values[j] /= nf
		}
		if out.variances != nil {
			nn := nf * nf
			for j := range out.variances {
				out.variances[j] /= nn
			}
		}
	}
	return out, nil
}

// groupSum sums n elements of data starting at base with the given
// stride between them.
func groupSum(data []float64, base, n, stride int) float64 {
	if stride == 1 {
		return floats.Sum(data[base : base+n])
	}
	var sum float64
	for k := 0; k < n; k++ {
		sum += data[base+k*stride]
	}
	return sum
}
