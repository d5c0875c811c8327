package edastats

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// PCAResult is the output of a PCA projection.
type PCAResult struct {
	// Scores holds one row per input point with nComponents coordinates
	// along the principal axes, ordered by descending eigenvalue.
	Scores [][]float64

	// ExplainedVarianceRatio is each retained component's eigenvalue
	// divided by the sum of all eigenvalues. Summing over a full-rank
	// projection gives 1.
	ExplainedVarianceRatio []float64
}

// PCA projects points onto their top nComponents principal axes. It
// computes the sample covariance matrix of the input (typically already
// standardized), its symmetric eigendecomposition, and the coordinates of
// each mean-centered point along the eigenvectors with the largest
// eigenvalues.
//
// The sign of each axis is arbitrary: an eigenvector and its negation span
// the same direction, so callers must not depend on score signs. Equal
// eigenvalues make the corresponding axis order ambiguous as well.
//
// Returns an *InsufficientDimensionsError when nComponents exceeds the
// number of columns.
func PCA(points [][]float64, nComponents int) (*PCAResult, error) {
	if err := checkPoints(points); err != nil {
		return nil, err
	}
	n := len(points)
	if n < 2 {
		return nil, fmt.Errorf("edastats: PCA requires at least two points, got %d", n)
	}
	dims := len(points[0])
	if nComponents < 1 {
		return nil, fmt.Errorf("edastats: nComponents must be >= 1, got %d", nComponents)
	}
	if nComponents > dims {
		return nil, &InsufficientDimensionsError{Components: nComponents, Dims: dims}
	}

	x := mat.NewDense(n, dims, nil)
	for i, row := range points {
		x.SetRow(i, row)
	}

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, x, nil)

	var eig mat.EigenSym
	if !eig.Factorize(&cov, true) {
		return nil, fmt.Errorf("edastats: eigendecomposition of covariance matrix failed")
	}

	// EigenSym returns eigenvalues in ascending order; the top components
	// are read from the end.
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	var total float64
	for _, v := range vals {
		if v > 0 {
			total += v
		}
	}

	ratios := make([]float64, nComponents)
	for c := 0; c < nComponents; c++ {
		v := vals[dims-1-c]
		if v < 0 {
			// numerically-zero eigenvalues can come out slightly negative
			v = 0
		}
		if total > 0 {
			ratios[c] = v / total
		}
	}

	means := make([]float64, dims)
	for j := 0; j < dims; j++ {
		means[j] = stat.Mean(mat.Col(nil, j, x), nil)
	}

	scores := make([][]float64, n)
	for i, p := range points {
		scores[i] = make([]float64, nComponents)
		for c := 0; c < nComponents; c++ {
			col := dims - 1 - c
			var s float64
			for j := 0; j < dims; j++ {
				s += (p[j] - means[j]) * vecs.At(j, col)
			}
			scores[i][c] = s
		}
	}

	return &PCAResult{Scores: scores, ExplainedVarianceRatio: ratios}, nil
}
