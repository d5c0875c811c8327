package edastats

import "fmt"

// FeatureMatrix is an ordered set of records over a fixed set of named
// numeric columns. Every row must have exactly one value per column and no
// missing values; imputation happens upstream.
type FeatureMatrix struct {
	Columns []string
	Rows    [][]float64
}

// NewFeatureMatrix builds a FeatureMatrix and validates its shape.
// Returns a *DimensionMismatchError when any row width differs from the
// column count.
func NewFeatureMatrix(columns []string, rows [][]float64) (*FeatureMatrix, error) {
	m := &FeatureMatrix{Columns: columns, Rows: rows}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *FeatureMatrix) validate() error {
	if m == nil || len(m.Columns) == 0 {
		return fmt.Errorf("edastats: matrix has no columns")
	}
	for i, row := range m.Rows {
		if len(row) != len(m.Columns) {
			return &DimensionMismatchError{
				What: fmt.Sprintf("row %d width", i),
				Want: len(m.Columns),
				Got:  len(row),
			}
		}
	}
	return nil
}

// Dims returns the number of rows and columns.
func (m *FeatureMatrix) Dims() (rows, cols int) {
	return len(m.Rows), len(m.Columns)
}

// Points returns the rows as a point slice suitable for KMeans and PCA.
// The slice shares backing storage with the matrix; callers must not
// mutate it during a pipeline run.
func (m *FeatureMatrix) Points() [][]float64 {
	return m.Rows
}

// Column returns a copy of the named column, or false if no such column
// exists.
func (m *FeatureMatrix) Column(name string) ([]float64, bool) {
	for j, c := range m.Columns {
		if c == name {
			return m.columnAt(j), true
		}
	}
	return nil, false
}

// columnAt copies column j out of the row-major storage.
func (m *FeatureMatrix) columnAt(j int) []float64 {
	col := make([]float64, len(m.Rows))
	for i, row := range m.Rows {
		col[i] = row[j]
	}
	return col
}

// checkPoints verifies that all points share one dimensionality >= 1.
func checkPoints(points [][]float64) error {
	if len(points) == 0 {
		return nil
	}
	dims := len(points[0])
	if dims == 0 {
		return fmt.Errorf("edastats: points must have at least one dimension")
	}
	for i, p := range points {
		if len(p) != dims {
			return &DimensionMismatchError{
				What: fmt.Sprintf("point %d dimensionality", i),
				Want: dims,
				Got:  len(p),
			}
		}
	}
	return nil
}
