package variable

import (
	"errors"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Reduction Tests

func TestSum1D(t *testing.T) {
	v := mustNew(t, []Dim{"x"}, Shape{4}, []float64{1, 2, 3, 4})

	s, err := Sum(v, "x")
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}

	if s.NDim() != 0 {
		t.Fatalf("Sum of 1-D should be 0-D, got shape %v", s.Shape())
	}
	got, err := s.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	assertEqualFloat64(t, 10, got, "Sum value")
}

func TestMean1D(t *testing.T) {
	v := mustNew(t, []Dim{"x"}, Shape{5}, []float64{10, 20, 30, 40, 50})

	m, err := Mean(v, "x")
	if err != nil {
		t.Fatalf("Mean failed: %v", err)
	}

	got, err := m.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	assertEqualFloat64(t, 30, got, "Mean value")
}

func TestMean2D(t *testing.T) {
	// [[1 2 3], [4 5 6]]
	v := mustNew(t, []Dim{"x", "y"}, Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})

	overY, err := Mean(v, "y")
	if err != nil {
		t.Fatalf("Mean over y failed: %v", err)
	}
	if got := overY.Dims(); len(got) != 1 || got[0] != "x" {
		t.Errorf("Mean over y dims = %v, want [x]", got)
	}
	assertEqualValues(t, []float64{2, 5}, overY.Values(), "mean over y")

	overX, err := Mean(v, "x")
	if err != nil {
		t.Fatalf("Mean over x failed: %v", err)
	}
	if got := overX.Dims(); len(got) != 1 || got[0] != "y" {
		t.Errorf("Mean over x dims = %v, want [y]", got)
	}
	assertEqualValues(t, []float64{2.5, 3.5, 4.5}, overX.Values(), "mean over x")
}

func TestMean3DMatchesOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	data := make([]float64, 2*3*4)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	v := mustNew(t, []Dim{"a", "b", "c"}, Shape{2, 3, 4}, data)

	m, err := Mean(v, "b")
	if err != nil {
		t.Fatalf("Mean failed: %v", err)
	}
	assertEqualShape(t, Shape{2, 4}, m.Shape(), "reduced shape")

	// Cross-check every output slot against gonum's stat.Mean.
	for ia := 0; ia < 2; ia++ {
		for ic := 0; ic < 4; ic++ {
			group := make([]float64, 3)
			for ib := 0; ib < 3; ib++ {
				group[ib] = v.At(ia, ib, ic)
			}
			want := stat.Mean(group, nil)
			assertEqualFloat64(t, want, m.At(ia, ic), "mean group")
		}
	}
}

func TestSumMatchesOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	data := make([]float64, 6)
	for i := range data {
		data[i] = rng.Float64() * 100
	}
	v := mustNew(t, []Dim{"x"}, Shape{6}, data)

	s, err := Sum(v, "x")
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	got, err := s.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	assertEqualFloat64(t, floats.Sum(data), got, "Sum against floats.Sum")
}

func TestMeanOfView(t *testing.T) {
	v := mustNew(t, []Dim{"x"}, Shape{5}, []float64{10, 20, 30, 40, 50})

	s, err := v.Slice("x", 1, 4)
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	m, err := Mean(s, "x")
	if err != nil {
		t.Fatalf("Mean failed: %v", err)
	}
	got, err := m.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	assertEqualFloat64(t, 30, got, "mean of slice [20 30 40]")
}

func TestMeanOfInnerDimView(t *testing.T) {
	// Strided access: slice the inner dim, reduce the outer one.
	v := mustNew(t, []Dim{"x", "y"}, Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})

	s, err := v.Slice("y", 1, 3)
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	m, err := Mean(s, "x")
	if err != nil {
		t.Fatalf("Mean failed: %v", err)
	}
	// Columns [2 3] and [5 6]: means (2+5)/2 and (3+6)/2.
	assertEqualValues(t, []float64{3.5, 4.5}, m.Values(), "mean over x of inner view")
}

func TestMeanPropagatesVariances(t *testing.T) {
	v := mustNew(t, []Dim{"x"}, Shape{3}, []float64{1, 2, 3})
	if err := v.SetVariances([]float64{0.09, 0.16, 0.25}); err != nil {
		t.Fatalf("SetVariances failed: %v", err)
	}

	m, err := Mean(v, "x")
	if err != nil {
		t.Fatalf("Mean failed: %v", err)
	}

	got, err := m.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	assertEqualFloat64(t, 2, got, "mean value")

	// Variance of a mean of independent values: sum of variances over n².
	gotVar, err := m.Variance()
	if err != nil {
		t.Fatalf("Variance failed: %v", err)
	}
	assertEqualFloat64(t, (0.09+0.16+0.25)/9, gotVar, "mean variance")
}

func TestSumPropagatesVariances(t *testing.T) {
	v := mustNew(t, []Dim{"x"}, Shape{3}, []float64{1, 2, 3})
	if err := v.SetVariances([]float64{0.1, 0.2, 0.3}); err != nil {
		t.Fatalf("SetVariances failed: %v", err)
	}

	s, err := Sum(v, "x")
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	gotVar, err := s.Variance()
	if err != nil {
		t.Fatalf("Variance failed: %v", err)
	}
	assertEqualFloat64(t, 0.6, gotVar, "sum variance")
}

func TestReduceKeepsUnit(t *testing.T) {
	v := mustNew(t, []Dim{"x"}, Shape{2}, []float64{1, 3})
	v.SetUnit("counts")

	m, err := Mean(v, "x")
	if err != nil {
		t.Fatalf("Mean failed: %v", err)
	}
	if m.Unit() != "counts" {
		t.Errorf("mean unit = %q, want counts", m.Unit())
	}
}

func TestReduceUnknownDim(t *testing.T) {
	v := mustNew(t, []Dim{"x"}, Shape{2}, []float64{1, 2})

	if _, err := Mean(v, "tof"); !errors.Is(err, ErrDimNotFound) {
		t.Errorf("Mean over unknown dim error = %v, want ErrDimNotFound", err)
	}
	if _, err := Sum(v, "tof"); !errors.Is(err, ErrDimNotFound) {
		t.Errorf("Sum over unknown dim error = %v, want ErrDimNotFound", err)
	}
}

func TestReduceLargeParallel(t *testing.T) {
	// Enough groups to cross the parallel threshold.
	const rows, cols = 300, 7
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = float64(i % 13)
	}
	v := mustNew(t, []Dim{"row", "col"}, Shape{rows, cols}, data)

	m, err := Mean(v, "col")
	if err != nil {
		t.Fatalf("Mean failed: %v", err)
	}

	for r := 0; r < rows; r++ {
		row := make([]float64, cols)
		for c := 0; c < cols; c++ {
			row[c] = v.At(r, c)
		}
		assertEqualFloat64(t, stat.Mean(row, nil), m.At(r), "parallel row mean")
	}
}
