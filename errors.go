package edastats

import "fmt"

// InvalidKError reports a requested cluster count outside the valid range
// [1, n] for an input of n points.
type InvalidKError struct {
	K int
	N int
}

func (e *InvalidKError) Error() string {
	return fmt.Sprintf("edastats: k must be in [1, %d], got %d", e.N, e.K)
}

// DegenerateColumnError reports a constant column: zero variance for
// standardization, zero range for discretization.
type DegenerateColumnError struct {
	// Column is the column name, or empty when the input had no name
	// (e.g. a bare slice passed to Discretize).
	Column string
}

func (e *DegenerateColumnError) Error() string {
	if e.Column == "" {
		return "edastats: column is constant"
	}
	return fmt.Sprintf("edastats: column %q is constant", e.Column)
}

// InsufficientDimensionsError reports a PCA component count that exceeds
// the number of input columns.
type InsufficientDimensionsError struct {
	Components int
	Dims       int
}

func (e *InsufficientDimensionsError) Error() string {
	return fmt.Sprintf("edastats: %d components requested but input has only %d columns", e.Components, e.Dims)
}

// DimensionMismatchError reports inputs with inconsistent shapes: ragged
// rows, points of differing dimensionality, or an assignment whose length
// does not match the number of records.
type DimensionMismatchError struct {
	What string
	Want int
	Got  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("edastats: %s: want %d, got %d", e.What, e.Want, e.Got)
}
