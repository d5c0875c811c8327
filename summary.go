package edastats

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Table is a FeatureMatrix extended with parallel categorical columns, so
// cluster summaries can report a mode for non-numeric attributes. CatRows
// may be nil when the dataset has no categorical columns.
type Table struct {
	Numeric    *FeatureMatrix
	CatColumns []string
	CatRows    [][]string
}

// NumericSummary holds the descriptive statistics of one numeric column
// within one cluster. StdDev uses the sample formula (n-1) and is 0 for a
// single-member cluster.
type NumericSummary struct {
	Mean   float64
	Median float64
	Min    float64
	Max    float64
	StdDev float64
}

// ClusterSummary aggregates one cluster's records.
type ClusterSummary struct {
	Cluster int
	Size    int

	// Numeric maps each numeric column name to its statistics.
	Numeric map[string]NumericSummary

	// Modes maps each categorical column name to its most frequent value,
	// ties broken by first-encountered value in row order.
	Modes map[string]string
}

// Summarize groups the table's records by cluster ID and computes
// per-cluster statistics: mean, median, min, max and standard deviation for
// every numeric column, and the mode for every categorical column. Entries
// are returned in ascending cluster ID order, one per non-empty cluster.
// Returns a *DimensionMismatchError when the assignment length does not
// match the number of records.
func Summarize(t *Table, assignment []int) ([]ClusterSummary, error) {
	if err := t.Numeric.validate(); err != nil {
		return nil, err
	}
	rows, _ := t.Numeric.Dims()
	if len(assignment) != rows {
		return nil, &DimensionMismatchError{What: "assignment length", Want: rows, Got: len(assignment)}
	}
	if t.CatRows != nil {
		if len(t.CatRows) != rows {
			return nil, &DimensionMismatchError{What: "categorical row count", Want: rows, Got: len(t.CatRows)}
		}
		for i, row := range t.CatRows {
			if len(row) != len(t.CatColumns) {
				return nil, &DimensionMismatchError{
					What: fmt.Sprintf("categorical row %d width", i),
					Want: len(t.CatColumns),
					Got:  len(row),
				}
			}
		}
	}

	k := 0
	for i, id := range assignment {
		if id < 0 {
			return nil, fmt.Errorf("edastats: assignment[%d] is negative: %d", i, id)
		}
		if id+1 > k {
			k = id + 1
		}
	}

	members := make([][]int, k)
	for i, id := range assignment {
		members[id] = append(members[id], i)
	}

	summaries := make([]ClusterSummary, 0, k)
	for c := 0; c < k; c++ {
		if len(members[c]) == 0 {
			continue
		}
		s := ClusterSummary{
			Cluster: c,
			Size:    len(members[c]),
			Numeric: make(map[string]NumericSummary, len(t.Numeric.Columns)),
			Modes:   make(map[string]string, len(t.CatColumns)),
		}
		for j, name := range t.Numeric.Columns {
			s.Numeric[name] = summarizeColumn(t.Numeric, j, members[c])
		}
		for j, name := range t.CatColumns {
			s.Modes[name] = mode(t.CatRows, j, members[c])
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

func summarizeColumn(m *FeatureMatrix, j int, members []int) NumericSummary {
	vals := make([]float64, len(members))
	for i, row := range members {
		vals[i] = m.Rows[row][j]
	}
	sort.Float64s(vals)

	sd := 0.0
	if len(vals) > 1 {
		sd = stat.StdDev(vals, nil)
	}
	return NumericSummary{
		Mean:   stat.Mean(vals, nil),
		Median: median(vals),
		Min:    vals[0],
		Max:    vals[len(vals)-1],
		StdDev: sd,
	}
}

// median of a sorted, non-empty slice: middle element, or the average of
// the two middle elements for even length.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// mode returns the most frequent value of categorical column j among the
// given rows, ties broken by first encounter in row order.
func mode(catRows [][]string, j int, members []int) string {
	counts := make(map[string]int)
	var order []string
	for _, row := range members {
		v := catRows[row][j]
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	best, bestCount := "", -1
	for _, v := range order {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best
}
