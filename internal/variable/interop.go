package variable

import (
	"fmt"

	"gorgonia.org/tensor"
)

// ToDense converts the variable to a gorgonia dense tensor, copying the
// values. Dimension names, variances and the unit are not carried over;
// they have no representation on the dense side.
func (v *Variable) ToDense() *tensor.Dense {
	vals := make([]float64, v.shape.NumElements())
	v.gather(v.values, vals)
	if len(v.shape) == 0 {
		return tensor.New(tensor.FromScalar(vals[0]))
	}
	return tensor.NewDense(tensor.Float64, tensor.Shape(v.shape), tensor.WithBacking(vals))
}

// FromDense creates a variable from a float64 dense tensor, naming its
// axes with dims in order. The data is copied.
func FromDense(dims []Dim, d *tensor.Dense) (*Variable, error) {
	var data []float64
	switch raw := d.Data().(type) {
	case []float64:
		data = raw
	case float64:
		data = []float64{raw}
	default:
		return nil, fmt.Errorf("%w: dense tensor holds %T, want float64", ErrShapeMismatch, d.Data())
	}
	return New(dims, Shape(d.Shape()), data)
}
