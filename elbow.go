package edastats

import "fmt"

// ElbowPoint is one entry of an elbow curve: the inertia of the best
// k-means run at a given cluster count.
type ElbowPoint struct {
	K       int
	Inertia float64
}

// ElbowCurve holds (k, inertia) pairs in ascending k order, for rendering
// an elbow chart.
type ElbowCurve []ElbowPoint

// ElbowSweep runs KMeans once per k in [kMin, kMax] with otherwise
// identical configuration (cfg.K is overridden per run) and collects each
// run's inertia. The curve is advisory output for human model selection;
// no automatic elbow detection is performed. The chosen k is fed back to
// a later KMeans call by the caller.
func ElbowSweep(points [][]float64, kMin, kMax int, cfg KMeansConfig) (ElbowCurve, error) {
	if kMin < 1 || kMax < kMin {
		return nil, fmt.Errorf("edastats: invalid k range [%d, %d]", kMin, kMax)
	}

	curve := make(ElbowCurve, 0, kMax-kMin+1)
	for k := kMin; k <= kMax; k++ {
		c := cfg
		c.K = k
		result, err := KMeans(points, c)
		if err != nil {
			return nil, err
		}
		curve = append(curve, ElbowPoint{K: k, Inertia: result.Inertia})
	}
	return curve, nil
}
