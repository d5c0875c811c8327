package edastats

import "sync"

// runRestarts executes cfg.Restarts independent Lloyd's runs and keeps the
// one with minimum inertia (earliest restart wins ties). Restarts are split
// across cfg.Workers goroutines in contiguous ranges; since each restart
// writes only its own slot, no synchronization is needed beyond the final
// reduction. Falls back to sequential execution when Workers <= 1.
//
// The outcome is identical to sequential execution for a given Seed,
// because restart r derives its RNG from Seed+r regardless of which worker
// runs it.
func runRestarts(points [][]float64, cfg KMeansConfig) runResult {
	results := make([]runResult, cfg.Restarts)

	workers := cfg.Workers
	if workers > cfg.Restarts {
		workers = cfg.Restarts
	}

	if workers <= 1 {
		for r := 0; r < cfg.Restarts; r++ {
			results[r] = restart(points, cfg, r)
		}
	} else {
		var wg sync.WaitGroup
		perWorker := (cfg.Restarts + workers - 1) / workers

		for w := 0; w < workers; w++ {
			start := w * perWorker
			end := start + perWorker
			if end > cfg.Restarts {
				end = cfg.Restarts
			}
			if start >= cfg.Restarts {
				break
			}

			wg.Add(1)
			go func(start, end int) {
				defer wg.Done()
				for r := start; r < end; r++ {
					results[r] = restart(points, cfg, r)
				}
			}(start, end)
		}

		wg.Wait()
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.inertia < best.inertia {
			best = r
		}
	}
	return best
}
