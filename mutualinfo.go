package edastats

import (
	"fmt"
	"math"
)

// MIConfig controls mutual-information estimation.
type MIConfig struct {
	// Bins is the number of equal-width bins each column is discretized
	// into before estimation. Must be >= 1. Default: 10.
	Bins int
}

// DefaultMIConfig returns an MIConfig with reasonable defaults.
func DefaultMIConfig() MIConfig {
	return MIConfig{Bins: 10}
}

// MIMatrix is a symmetric matrix of pairwise mutual-information estimates
// in nats, indexed by column name. The diagonal holds each column's
// discretized entropy (MI of a column with itself).
type MIMatrix struct {
	Columns []string
	Values  [][]float64
}

// At looks up the MI estimate for a pair of column names.
func (m *MIMatrix) At(x, y string) (float64, bool) {
	xi, yi := -1, -1
	for j, c := range m.Columns {
		if c == x {
			xi = j
		}
		if c == y {
			yi = j
		}
	}
	if xi < 0 || yi < 0 {
		return 0, false
	}
	return m.Values[xi][yi], true
}

// MutualInformation estimates pairwise mutual information between every
// pair of columns. Each column is discretized independently into
// cfg.Bins equal-width bins (a constant column occupies a single bin), the
// joint empirical distribution over bin pairs is tabulated, and the usual
// discrete MI sum is taken over observed cells only, so zero-probability
// cells contribute zero rather than NaN. Each unordered pair is computed
// once and mirrored, making the result symmetric by construction.
func MutualInformation(m *FeatureMatrix, cfg MIConfig) (*MIMatrix, error) {
	if cfg.Bins == 0 {
		cfg.Bins = DefaultMIConfig().Bins
	}
	if cfg.Bins < 1 {
		return nil, fmt.Errorf("edastats: Bins must be >= 1, got %d", cfg.Bins)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	rows, cols := m.Dims()
	if rows == 0 {
		return nil, fmt.Errorf("edastats: mutual information requires at least one row")
	}

	binned := make([][]int, cols)
	for j := 0; j < cols; j++ {
		binned[j] = binColumn(m.columnAt(j), cfg.Bins)
	}

	values := make([][]float64, cols)
	for i := range values {
		values[i] = make([]float64, cols)
	}
	for i := 0; i < cols; i++ {
		for j := i; j < cols; j++ {
			mi := discreteMI(binned[i], binned[j], cfg.Bins)
			values[i][j] = mi
			values[j][i] = mi
		}
	}

	return &MIMatrix{
		Columns: append([]string(nil), m.Columns...),
		Values:  values,
	}, nil
}

// discreteMI computes MI between two already-binned columns of equal
// length: sum over observed cells of p(x,y) * log(p(x,y) / (p(x) p(y))).
func discreteMI(x, y []int, bins int) float64 {
	n := float64(len(x))
	joint := make([]float64, bins*bins)
	px := make([]float64, bins)
	py := make([]float64, bins)
	for i := range x {
		joint[x[i]*bins+y[i]]++
		px[x[i]]++
		py[y[i]]++
	}

	var mi float64
	for a := 0; a < bins; a++ {
		for b := 0; b < bins; b++ {
			c := joint[a*bins+b]
			if c == 0 {
				continue
			}
			// p(x,y)/(p(x)p(y)) = c*n / (count(x)*count(y))
			mi += (c / n) * math.Log(c*n/(px[a]*py[b]))
		}
	}
	if mi < 0 {
		// MI is non-negative; tiny negatives are floating-point residue
		mi = 0
	}
	return mi
}
