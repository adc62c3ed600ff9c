package cid

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	ciderrors "github.com/tkarna/cid/errors"
)

// Batch evaluates many named inputs concurrently and returns their Results
// keyed by name. Inputs are independent, so they run in parallel up to
// WithWorkers. The first failure cancels the remaining work and is
// returned; no partial map is produced.
func Batch(ctx context.Context, inputs map[string][]byte, opts ...Option) (map[string]*Result, error) {
	if len(inputs) == 0 {
		return nil, ciderrors.ErrNoInputs
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	var (
		mu      sync.Mutex
		results = make(map[string]*Result, len(inputs))
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workerCount())
	for name, data := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := compute(data, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			mu.Lock()
			results[name] = res
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
