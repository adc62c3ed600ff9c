package cid

import (
	"math"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// NormalizedResult relates the CID of an input to the CID of shuffled
// copies of it. Shuffling preserves symbol frequencies but destroys
// spatial correlations, so the ratio isolates spatial structure:
// close to 1 means no spatial order (gas-like); well below 1 means
// strong spatial order (crystal-like).
type NormalizedResult struct {
	// CID is the density of the input itself.
	CID float64

	// ShuffledMean and ShuffledStd summarize the densities of the
	// shuffled baselines. ShuffledStd is 0 for a single shuffle.
	ShuffledMean float64
	ShuffledStd  float64

	// Normalized is CID/ShuffledMean (1 when the mean is zero).
	Normalized float64

	// Gain is 1-Normalized, the share of compressibility attributable
	// to spatial structure.
	Gain float64
}

// Normalized computes the CID of data and of WithShuffles(k) shuffled
// copies, evaluated concurrently. The shuffles draw from a PCG stream
// fixed by WithShuffleSeed, so the result is deterministic.
func Normalized(data []byte, opts ...Option) (*NormalizedResult, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	base, err := compute(data, cfg)
	if err != nil {
		return nil, err
	}

	shuffles := cfg.shuffles
	if shuffles < 1 {
		shuffles = 1
	}

	densities := make([]float64, shuffles)
	var g errgroup.Group
	g.SetLimit(cfg.workerCount())
	for k := 0; k < shuffles; k++ {
		g.Go(func() error {
			// A distinct, reproducible stream per shuffle.
			rng := rand.New(rand.NewPCG(cfg.shuffleSeed, uint64(k)))
			shuffled := append([]byte(nil), data...)
			rng.Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			res, err := compute(shuffled, cfg)
			if err != nil {
				return err
			}
			densities[k] = res.Density
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	mean, std := meanStd(densities)
	out := &NormalizedResult{
		CID:          base.Density,
		ShuffledMean: mean,
		ShuffledStd:  std,
		Normalized:   1,
	}
	if mean > 0 {
		out.Normalized = base.Density / mean
		out.Gain = 1 - out.Normalized
	}
	return out, nil
}

func (c *config) workerCount() int {
	if c.workers > 0 {
		return c.workers
	}
	return runtime.GOMAXPROCS(0)
}

func meanStd(xs []float64) (mean, std float64) {
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	if len(xs) < 2 {
		return mean, 0
	}
	var sum float64
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}
	return mean, math.Sqrt(sum / float64(len(xs)))
}
