package variable

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Variable is a labeled multi-dimensional array of float64 values.
//
// Each axis carries a name (Dim), so operations address axes by name
// instead of position. A variable may carry per-element variances
// (squared uncertainties) alongside its values, plus a unit label.
//
// A variable produced by Slice is a view: it shares the backing buffers
// of its parent through an offset and strides. Copy materializes any
// view into a fresh contiguous variable.
type Variable struct {
	dims      []Dim
	shape     Shape
	stride    []int // Memory strides (row-major)
	offset    int   // Start of this view in the backing buffers
	values    []float64
	variances []float64 // nil when the variable carries no uncertainties
	unit      Unit
}

// New creates a variable from dims, shape and values.
// The values slice is copied. Variances are absent until SetVariances.
func New(dims []Dim, shape Shape, values []float64) (*Variable, error) {
	if err := validateDims(dims, shape); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(values) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(values))
	}
	v := &Variable{
		dims:   cloneDims(dims),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		values: make([]float64, len(values)),
	}
	copy(v.values, values)
	return v, nil
}

// Zeros creates a variable filled with zeros.
func Zeros(dims []Dim, shape Shape) (*Variable, error) {
	if err := validateDims(dims, shape); err != nil {
		return nil, err
	}
	return &Variable{
		dims:   cloneDims(dims),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		values: make([]float64, shape.NumElements()),
	}, nil
}

// Full creates a variable filled with value.
func Full(dims []Dim, shape Shape, value float64) (*Variable, error) {
	v, err := Zeros(dims, shape)
	if err != nil {
		return nil, err
	}
	for i := range v.values {
		v.values[i] = value
	}
	return v, nil
}

// Linspace creates a 1-D variable with num values spaced evenly from
// start to stop, both inclusive.
func Linspace(d Dim, start, stop float64, num int) (*Variable, error) {
	if num < 2 {
		return nil, fmt.Errorf("%w: linspace needs at least 2 points, got %d", ErrBadDims, num)
	}
	v, err := Zeros([]Dim{d}, Shape{num})
	if err != nil {
		return nil, err
	}
	floats.Span(v.values, start, stop)
	return v, nil
}

// Dims returns the dimension names in layout order.
func (v *Variable) Dims() []Dim {
	return v.dims
}

// Shape returns the variable's shape.
func (v *Variable) Shape() Shape {
	return v.shape
}

// NDim returns the number of dimensions.
func (v *Variable) NDim() int {
	return len(v.shape)
}

// NumElements returns the total number of elements.
func (v *Variable) NumElements() int {
	return v.shape.NumElements()
}

// Len returns the number of elements along the named dimension.
func (v *Variable) Len(d Dim) (int, error) {
	i := dimIndex(v.dims, d)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q (have %v)", ErrDimNotFound, d, v.dims)
	}
	return v.shape[i], nil
}

// Unit returns the unit label.
func (v *Variable) Unit() Unit {
	return v.unit
}

// SetUnit sets the unit label.
func (v *Variable) SetUnit(u Unit) {
	v.unit = u
}

// HasVariances reports whether the variable carries variances.
func (v *Variable) HasVariances() bool {
	return v.variances != nil
}

// SetVariances attaches per-element variances, copying the slice in.
// Passing nil removes them. Variances cannot be attached to or removed
// from a view; materialize with Copy first.
func (v *Variable) SetVariances(variances []float64) error {
	if !v.ownsBuffers() {
		return fmt.Errorf("%w: cannot change variances of a view", ErrVariancesMismatch)
	}
	if variances == nil {
		v.variances = nil
		return nil
	}
	if len(variances) != v.shape.NumElements() {
		return fmt.Errorf("%w: %d variances for %d elements",
			ErrVariancesMismatch, len(variances), v.shape.NumElements())
	}
	v.variances = make([]float64, len(variances))
	copy(v.variances, variances)
	return nil
}

// Values returns the variable's values in row-major order.
// For contiguous variables this is a direct window into the backing
// buffer and writes to it modify the variable; non-contiguous views are
// materialized into a fresh slice.
func (v *Variable) Values() []float64 {
	if v.isContiguous() {
		return v.values[v.offset : v.offset+v.shape.NumElements()]
	}
	out := make([]float64, v.shape.NumElements())
	v.gather(v.values, out)
	return out
}

// Variances returns the variable's variances in row-major order, or nil
// if it carries none. The aliasing rules of Values apply.
func (v *Variable) Variances() []float64 {
	if v.variances == nil {
		return nil
	}
	if v.isContiguous() {
		return v.variances[v.offset : v.offset+v.shape.NumElements()]
	}
	out := make([]float64, v.shape.NumElements())
	v.gather(v.variances, out)
	return out
}

// At returns the value at the given indices, one per dimension.
// Panics if the index count or any index is out of range.
func (v *Variable) At(indices ...int) float64 {
	return v.values[v.flatIndex(indices)]
}

// Set writes value at the given indices, one per dimension.
// Panics if the index count or any index is out of range.
func (v *Variable) Set(value float64, indices ...int) {
	v.values[v.flatIndex(indices)] = value
}

// VarianceAt returns the variance at the given indices.
// Panics if the variable carries no variances or an index is out of range.
func (v *Variable) VarianceAt(indices ...int) float64 {
	if v.variances == nil {
		panic("variable carries no variances")
	}
	return v.variances[v.flatIndex(indices)]
}

// Value returns the single value of a 0-D variable.
func (v *Variable) Value() (float64, error) {
	if len(v.shape) != 0 {
		return 0, fmt.Errorf("%w: shape %v", ErrNotScalar, v.shape)
	}
	return v.values[v.offset], nil
}

// Variance returns the single variance of a 0-D variable.
func (v *Variable) Variance() (float64, error) {
	if len(v.shape) != 0 {
		return 0, fmt.Errorf("%w: shape %v", ErrNotScalar, v.shape)
	}
	if v.variances == nil {
		return 0, fmt.Errorf("%w: variable carries no variances", ErrVariancesMismatch)
	}
	return v.variances[v.offset], nil
}

// Copy returns a deep, contiguous copy of the variable.
// Views are materialized; the copy shares no memory with the original.
func (v *Variable) Copy() *Variable {
	n := v.shape.NumElements()
	out := &Variable{
		dims:   cloneDims(v.dims),
		shape:  v.shape.Clone(),
		stride: v.shape.ComputeStrides(),
		values: make([]float64, n),
		unit:   v.unit,
	}
	v.gather(v.values, out.values)
	if v.variances != nil {
		out.variances = make([]float64, n)
		v.gather(v.variances, out.variances)
	}
	return out
}

// Equal reports whether two variables have the same dims, shape, unit,
// values and variances.
func (v *Variable) Equal(other *Variable) bool {
	if !dimsEqual(v.dims, other.dims) || !v.shape.Equal(other.shape) || v.unit != other.unit {
		return false
	}
	if v.HasVariances() != other.HasVariances() {
		return false
	}
	if !floats.Equal(v.Values(), other.Values()) {
		return false
	}
	if v.HasVariances() && !floats.Equal(v.Variances(), other.Variances()) {
		return false
	}
	return true
}

// String returns a short human-readable description.
func (v *Variable) String() string {
	var b strings.Builder
	b.WriteString("Variable[")
	for i, d := range v.dims {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s:%d", d, v.shape[i])
	}
	b.WriteString("]")
	if v.unit != "" {
		fmt.Fprintf(&b, " unit=%s", v.unit)
	}
	if v.variances != nil {
		b.WriteString(" with variances")
	}
	return b.String()
}

// flatIndex maps a full index list to a position in the backing buffers.
func (v *Variable) flatIndex(indices []int) int {
	if len(indices) != len(v.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(v.shape), len(indices)))
	}
	idx := v.offset
	for i, ix := range indices {
		if ix < 0 || ix >= v.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %q (size %d)", ix, v.dims[i], v.shape[i]))
		}
		idx += ix * v.stride[i]
	}
	return idx
}

// isContiguous reports whether the variable's elements occupy one
// uninterrupted run of the backing buffers starting at offset.
func (v *Variable) isContiguous() bool {
	want := v.shape.ComputeStrides()
	for i := range want {
		if v.stride[i] != want[i] {
			return false
		}
	}
	return true
}

// ownsBuffers reports whether the variable spans its backing buffers
// exactly, i.e. it is not a view into a larger variable.
func (v *Variable) ownsBuffers() bool {
	return v.offset == 0 && v.isContiguous() && len(v.values) == v.shape.NumElements()
}

// gather copies this variable's elements out of src into dst in
// row-major order. src must be one of the variable's backing buffers.
func (v *Variable) gather(src, dst []float64) {
	if v.isContiguous() {
		copy(dst, src[v.offset:v.offset+len(dst)])
		return
	}
	// Decompose each destination index into coordinates, then map them
	// through the view's strides.
	canonical := v.shape.ComputeStrides()
	for i := range dst {
		srcIdx := v.offset
		temp := i
		for d := 0; d < len(v.shape); d++ {
			coord := temp / canonical[d]
			temp %= canonical[d]
			srcIdx += coord * v.stride[d]
		}
		dst[i] = src[srcIdx]
	}
}
