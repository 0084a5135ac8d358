package batch

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/pfactor/PFactor-core/factor"
)

// Outcome pairs a target with whatever the search produced for it.
type Outcome struct {
	Target Target
	Res    *factor.Result
	Err    error
}

// Run factors every target, at most parallel of them at a time. Results come
// back in input order. Per-target overrides win over the base config; the
// method falls back to base when the entry carries none.
func Run(targets []Target, method factor.Method, base factor.Config, parallel int) []Outcome {
	if parallel < 1 {
		parallel = 1
	}

	outcomes := make([]Outcome, len(targets))
	sem := semaphore.NewWeighted(int64(parallel))
	ctx := context.Background()
	var wg sync.WaitGroup

	for i, target := range targets {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(i int, target Target) {
			defer wg.Done()
			defer sem.Release(1)

			cfg := base
			if target.Bound != 0 {
				cfg.Bound = target.Bound
			}
			if target.Attempts != 0 {
				cfg.Attempts = target.Attempts
			}
			m := method
			if target.Method != "" {
				m = target.Method
			}

			res, err := factor.Find(m, target.Num, cfg)
			outcomes[i] = Outcome{Target: target, Res: res, Err: err}
		}(i, target)
	}
	wg.Wait()

	return outcomes
}
