// Package edastats implements the numerical core of an exploratory
// clustering workflow over tabular data: per-column z-score standardization,
// k-means clustering with elbow-method sweeps, PCA projection for 2D
// visualization, and a pairwise mutual-information matrix over discretized
// columns.
//
// The package is a pure computation library: it takes in-memory matrices,
// returns new immutable result values, and performs no I/O. Loading data,
// imputing missing values, and rendering plots are the caller's job.
//
// Basic usage:
//
//	std, err := edastats.Standardize(m)
//	curve, err := edastats.ElbowSweep(std.Points(), 1, 10, edastats.DefaultKMeansConfig())
//	// inspect the elbow curve, choose k, then:
//	cfg := edastats.DefaultKMeansConfig()
//	cfg.K = 3
//	result, err := edastats.KMeans(std.Points(), cfg)
//	// result.Assignment[i] is the cluster ID for record i
//	// result.Inertia is the within-cluster sum of squares
//
// For 2D scatter plots of the clustering:
//
//	proj, err := edastats.PCA(std.Points(), 2)
//	// plot proj.Scores colored by result.Assignment
//
// All randomized steps (k-means initialization, restarts) are driven by an
// explicit seed, so every result is reproducible even when restarts run
// concurrently.
package edastats
