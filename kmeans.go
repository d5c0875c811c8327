package edastats

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"

	"gonum.org/v1/gonum/floats"
)

// Init selects the centroid seeding strategy.
type Init string

const (
	// InitRandom seeds each restart with k distinct points sampled
	// uniformly from the input.
	InitRandom Init = "random"

	// InitPlusPlus seeds with the k-means++ scheme: each subsequent
	// centroid is sampled with probability proportional to its squared
	// distance from the nearest centroid chosen so far.
	InitPlusPlus Init = "kmeans++"
)

// KMeansConfig controls k-means clustering behavior.
// Start with [DefaultKMeansConfig], set K, and override the fields you need.
type KMeansConfig struct {
	// K is the number of clusters. Must be in [1, number of points].
	// No default; the caller chooses it, typically after inspecting an
	// elbow curve from ElbowSweep.
	K int

	// Restarts is the number of independent runs with different random
	// initializations; the run with minimum inertia wins. Must be >= 1.
	// Default: 10.
	Restarts int

	// MaxIterations caps Lloyd's algorithm within a single restart, in
	// case assignments oscillate before converging. Must be >= 1.
	// Default: 300.
	MaxIterations int

	// Seed drives all randomness. Restart r uses Seed+r, so results are
	// identical whether restarts run sequentially or concurrently.
	// Default: 0.
	Seed int64

	// Init is the centroid seeding strategy. Default: InitRandom.
	Init Init

	// Workers controls the number of goroutines restarts are spread
	// across. 0 means runtime.NumCPU(); <= 1 runs sequentially.
	Workers int
}

// KMeansResult is the output of a k-means run, frozen at convergence.
type KMeansResult struct {
	// Centroids holds one point per cluster ID, in standardized feature
	// space.
	Centroids [][]float64

	// Assignment maps each input point index to a cluster ID in [0, K).
	Assignment []int

	// Inertia is the sum of squared Euclidean distances from each point
	// to its assigned centroid; the k-means objective.
	Inertia float64
}

// DefaultKMeansConfig returns a KMeansConfig with reasonable defaults.
// K is left zero and must be set by the caller.
func DefaultKMeansConfig() KMeansConfig {
	return KMeansConfig{
		Restarts:      10,
		MaxIterations: 300,
		Init:          InitRandom,
	}
}

func applyKMeansDefaults(cfg *KMeansConfig) {
	if cfg.Restarts == 0 {
		cfg.Restarts = 10
	}
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = 300
	}
	if cfg.Init == "" {
		cfg.Init = InitRandom
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

func validateKMeansConfig(cfg *KMeansConfig) error {
	if cfg.Restarts < 1 {
		return fmt.Errorf("edastats: Restarts must be >= 1, got %d", cfg.Restarts)
	}
	if cfg.MaxIterations < 1 {
		return fmt.Errorf("edastats: MaxIterations must be >= 1, got %d", cfg.MaxIterations)
	}
	switch cfg.Init {
	case InitRandom, InitPlusPlus:
		// valid
	default:
		return fmt.Errorf("edastats: invalid Init %q", cfg.Init)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("edastats: Workers must be >= 0, got %d", cfg.Workers)
	}
	return nil
}

// KMeans clusters points into cfg.K groups with Lloyd's algorithm.
// Each element of points is one observation; all must have the same
// dimensionality. Returns an *InvalidKError when K is outside [1, n] and a
// *DimensionMismatchError for ragged input. Deterministic given cfg.Seed.
func KMeans(points [][]float64, cfg KMeansConfig) (*KMeansResult, error) {
	applyKMeansDefaults(&cfg)
	if err := validateKMeansConfig(&cfg); err != nil {
		return nil, err
	}
	n := len(points)
	if cfg.K < 1 || cfg.K > n {
		return nil, &InvalidKError{K: cfg.K, N: n}
	}
	if err := checkPoints(points); err != nil {
		return nil, err
	}

	best := runRestarts(points, cfg)
	return &KMeansResult{
		Centroids:  best.centroids,
		Assignment: best.assignment,
		Inertia:    best.inertia,
	}, nil
}

// runResult is the outcome of a single restart. history records inertia
// after each assignment step; it is non-increasing within a run.
type runResult struct {
	centroids  [][]float64
	assignment []int
	inertia    float64
	history    []float64
}

// restart runs one seeded Lloyd's iteration sequence. Restart r always
// derives its RNG from cfg.Seed+r, independent of scheduling.
func restart(points [][]float64, cfg KMeansConfig, r int) runResult {
	rng := rand.New(rand.NewSource(cfg.Seed + int64(r)))
	return lloyd(points, cfg.K, cfg.MaxIterations, cfg.Init, rng)
}

// lloyd performs a single run of Lloyd's algorithm: assign every point to
// its nearest centroid (ties to the lowest centroid index), recompute each
// centroid as the mean of its members, and stop when assignments are stable
// or maxIter is reached. A cluster that loses all members is reseeded to
// the point currently farthest from its own centroid, so convergence with
// k <= n yields k non-empty clusters for inputs with at least k distinct
// points.
func lloyd(points [][]float64, k, maxIter int, initMethod Init, rng *rand.Rand) runResult {
	n := len(points)
	dims := len(points[0])

	centroids := initCentroids(points, k, initMethod, rng)
	assignment := make([]int, n)
	for i := range assignment {
		assignment[i] = -1
	}

	var history []float64
	var inertia float64
	for iter := 0; iter < maxIter; iter++ {
		changed := false
		inertia = 0
		for i, p := range points {
			best, bestD := 0, math.Inf(1)
			for c, cent := range centroids {
				if d := squaredDistance(p, cent); d < bestD {
					best, bestD = c, d
				}
			}
			if assignment[i] != best {
				assignment[i] = best
				changed = true
			}
			inertia += bestD
		}
		history = append(history, inertia)
		if !changed {
			break
		}

		counts := make([]int, k)
		next := make([][]float64, k)
		for c := range next {
			next[c] = make([]float64, dims)
		}
		for i, p := range points {
			c := assignment[i]
			counts[c]++
			floats.Add(next[c], p)
		}
		taken := make(map[int]bool)
		for c := range next {
			if counts[c] == 0 {
				next[c] = reseedEmpty(points, centroids, assignment, taken)
				continue
			}
			floats.Scale(1/float64(counts[c]), next[c])
		}
		centroids = next
	}

	return runResult{
		centroids:  centroids,
		assignment: assignment,
		inertia:    inertia,
		history:    history,
	}
}

// reseedEmpty picks the point farthest from its assigned centroid, skipping
// points already claimed by another empty cluster this iteration, and
// returns a copy of it as the new centroid.
func reseedEmpty(points, centroids [][]float64, assignment []int, taken map[int]bool) []float64 {
	worst, worstD := -1, -1.0
	for i, p := range points {
		if taken[i] {
			continue
		}
		if d := squaredDistance(p, centroids[assignment[i]]); d > worstD {
			worst, worstD = i, d
		}
	}
	if worst < 0 {
		// more empty clusters than points; fall back to point 0
		worst = 0
	}
	taken[worst] = true
	return append([]float64(nil), points[worst]...)
}

// initCentroids seeds k centroids according to the configured strategy.
func initCentroids(points [][]float64, k int, method Init, rng *rand.Rand) [][]float64 {
	if method == InitPlusPlus {
		return initPlusPlus(points, k, rng)
	}
	perm := rng.Perm(len(points))
	centroids := make([][]float64, k)
	for c := 0; c < k; c++ {
		centroids[c] = append([]float64(nil), points[perm[c]]...)
	}
	return centroids
}

// initPlusPlus implements k-means++ seeding: the first centroid is uniform,
// each later one is sampled proportionally to squared distance from the
// nearest already-chosen centroid.
func initPlusPlus(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(points)
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, append([]float64(nil), points[rng.Intn(n)]...))

	dist := make([]float64, n)
	for i, p := range points {
		dist[i] = squaredDistance(p, centroids[0])
	}
	for len(centroids) < k {
		var idx int
		if total := floats.Sum(dist); total == 0 {
			// all points coincide with a centroid; any choice is equivalent
			idx = rng.Intn(n)
		} else {
			target := rng.Float64() * total
			cum := 0.0
			idx = n - 1
			for i, d := range dist {
				cum += d
				if cum >= target {
					idx = i
					break
				}
			}
		}
		c := append([]float64(nil), points[idx]...)
		centroids = append(centroids, c)
		for i, p := range points {
			if d := squaredDistance(p, c); d < dist[i] {
				dist[i] = d
			}
		}
	}
	return centroids
}

// squaredDistance is the squared Euclidean distance (skips the sqrt that
// floats.Distance would apply).
func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
