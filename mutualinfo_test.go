package edastats

import (
	"math"
	"math/rand"
	"testing"
)

// miTestMatrix builds a 100-row matrix with an increasing column, a noisy
// copy of it, and an independent uniform column.
func miTestMatrix(t *testing.T) *FeatureMatrix {
	t.Helper()
	rng := rand.New(rand.NewSource(41))
	rows := make([][]float64, 100)
	for i := range rows {
		x := float64(i)
		rows[i] = []float64{x, x + 0.1*rng.NormFloat64(), rng.Float64()}
	}
	m, err := NewFeatureMatrix([]string{"x", "noisy_x", "u"}, rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func TestMutualInformationSymmetricNonNegative(t *testing.T) {
	m := miTestMatrix(t)
	mi, err := MutualInformation(m, DefaultMIConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range mi.Values {
		for j := range mi.Values {
			if mi.Values[i][j] < 0 {
				t.Errorf("MI[%d][%d] negative: %v", i, j, mi.Values[i][j])
			}
			if math.Abs(mi.Values[i][j]-mi.Values[j][i]) > 1e-9 {
				t.Errorf("asymmetric at (%d, %d): %v vs %v", i, j, mi.Values[i][j], mi.Values[j][i])
			}
		}
	}
}

func TestMutualInformationDiagonalIsEntropy(t *testing.T) {
	// 100 evenly spread values in 10 bins: 10 per bin, entropy ln(10).
	rows := make([][]float64, 100)
	for i := range rows {
		rows[i] = []float64{float64(i)}
	}
	m, _ := NewFeatureMatrix([]string{"x"}, rows)

	mi, err := MutualInformation(m, MIConfig{Bins: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := mi.Values[0][0], math.Log(10); math.Abs(got-want) > 1e-9 {
		t.Errorf("diagonal: got %v, want ln(10) = %v", got, want)
	}
}

func TestMutualInformationIndependentColumns(t *testing.T) {
	// A 10x10 grid: the row index and column index of a cell are exactly
	// independent, so MI must be 0.
	rows := make([][]float64, 100)
	for i := range rows {
		rows[i] = []float64{float64(i % 10), float64(i / 10)}
	}
	m, _ := NewFeatureMatrix([]string{"a", "b"}, rows)

	mi, err := MutualInformation(m, MIConfig{Bins: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := mi.At("a", "b"); math.Abs(got) > 1e-9 {
		t.Errorf("MI of independent columns: got %v, want 0", got)
	}
}

func TestMutualInformationPerfectDependence(t *testing.T) {
	// y is a strictly decreasing function of x, so bin(y) determines
	// bin(x) and MI(x, y) equals the shared entropy ln(10).
	rows := make([][]float64, 100)
	for i := range rows {
		rows[i] = []float64{float64(i), float64(99 - i)}
	}
	m, _ := NewFeatureMatrix([]string{"x", "y"}, rows)

	mi, err := MutualInformation(m, MIConfig{Bins: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := mi.Values[0][1], math.Log(10); math.Abs(got-want) > 1e-9 {
		t.Errorf("MI(x, y): got %v, want %v", got, want)
	}
}

func TestMutualInformationConstantColumn(t *testing.T) {
	rows := make([][]float64, 50)
	for i := range rows {
		rows[i] = []float64{float64(i), 5}
	}
	m, _ := NewFeatureMatrix([]string{"x", "const"}, rows)

	mi, err := MutualInformation(m, DefaultMIConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A single-bin column has zero entropy and zero MI with anything.
	if got := mi.Values[1][1]; got != 0 {
		t.Errorf("entropy of constant column: got %v, want 0", got)
	}
	if got := mi.Values[0][1]; got != 0 {
		t.Errorf("MI with constant column: got %v, want 0", got)
	}
}

func TestMutualInformationDefaultBins(t *testing.T) {
	m := miTestMatrix(t)
	// Zero-valued Bins falls back to the default rather than erroring.
	if _, err := MutualInformation(m, MIConfig{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := MutualInformation(m, MIConfig{Bins: -1}); err == nil {
		t.Error("expected error for negative Bins")
	}
}

func TestMIMatrixAt(t *testing.T) {
	m := miTestMatrix(t)
	mi, err := MutualInformation(m, DefaultMIConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := mi.At("x", "noisy_x"); !ok {
		t.Error("expected lookup of existing pair to succeed")
	}
	if _, ok := mi.At("x", "missing"); ok {
		t.Error("expected lookup of missing column to fail")
	}
}
