package sim

import (
	"context"
	"sync"
)

// Ensemble runs the same scripted session under consecutive seeds. Each
// run owns its own field, so the runs share nothing but the script.
type Ensemble struct {
	numRuns   int
	seedStart int64
}

func NewEnsemble(numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context, cfg RunConfig) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfgCopy := cfg
			cfgCopy.Seed = e.seedStart + int64(idx)
			results[idx], errs[idx] = NewRunner().Run(ctx, cfgCopy)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
