package edastats

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Standardize returns a new matrix where every column has been z-scored:
// the sample mean subtracted and the result divided by the sample standard
// deviation (denominator n-1). Constant columns become all zeros, since a
// zero-variance dimension contributes no discriminative signal to the
// distance-based algorithms downstream. The input is not modified.
func Standardize(m *FeatureMatrix) (*FeatureMatrix, error) {
	return standardize(m, false)
}

// StrictStandardize is Standardize except that a constant column is an
// error: it returns a *DegenerateColumnError naming the first offending
// column instead of zeroing it.
func StrictStandardize(m *FeatureMatrix) (*FeatureMatrix, error) {
	return standardize(m, true)
}

func standardize(m *FeatureMatrix, strict bool) (*FeatureMatrix, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	rows, cols := m.Dims()
	if rows < 2 {
		return nil, fmt.Errorf("edastats: standardization requires at least two rows, got %d", rows)
	}

	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
	}

	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		for i, row := range m.Rows {
			col[i] = row[j]
		}
		mean := stat.Mean(col, nil)
		sd := stat.StdDev(col, nil)
		if sd == 0 {
			if strict {
				return nil, &DegenerateColumnError{Column: m.Columns[j]}
			}
			// leave the column as zeros
			continue
		}
		for i, v := range col {
			out[i][j] = (v - mean) / sd
		}
	}

	return &FeatureMatrix{
		Columns: append([]string(nil), m.Columns...),
		Rows:    out,
	}, nil
}
