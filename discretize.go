package edastats

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Discretize maps each value of a continuous column to an equal-width bin
// index in [0, bins) over the column's observed [min, max] range. The
// maximum value lands in the last bin. Returns a *DegenerateColumnError
// when the column is constant (zero range).
func Discretize(column []float64, bins int) ([]int, error) {
	if bins < 1 {
		return nil, fmt.Errorf("edastats: bins must be >= 1, got %d", bins)
	}
	if len(column) == 0 {
		return nil, fmt.Errorf("edastats: cannot discretize an empty column")
	}
	if floats.Min(column) == floats.Max(column) {
		return nil, &DegenerateColumnError{}
	}
	return binColumn(column, bins), nil
}

// binColumn is the lenient form used by the mutual-information pipeline:
// a constant column maps every value to bin 0 (a single occupied bin, zero
// entropy) instead of failing.
func binColumn(column []float64, bins int) []int {
	idx := make([]int, len(column))
	lo, hi := floats.Min(column), floats.Max(column)
	if hi == lo {
		return idx
	}
	width := (hi - lo) / float64(bins)
	for i, v := range column {
		b := int((v - lo) / width)
		if b >= bins {
			b = bins - 1
		}
		idx[i] = b
	}
	return idx
}
