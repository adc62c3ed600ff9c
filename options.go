package cid

// SuffixOracle builds the suffix array for a text: a permutation of
// [0, len(text)) ordering all suffixes lexicographically. An oracle that
// cannot complete construction returns an error; the pipeline propagates
// it without retrying.
type SuffixOracle func(text []byte) ([]int32, error)

// Option is a functional option for configuring the pipeline.
type Option func(*config)

type config struct {
	strategy    ParseStrategy
	oracle      SuffixOracle
	keepFactors bool
	maxLength   int
	workers     int
	shuffles    int
	shuffleSeed uint64
}

func defaultConfig() *config {
	return &config{
		strategy:    StrategyIndexed,
		oracle:      buildSuffixArray,
		shuffles:    1,
		shuffleSeed: 0x1234567890abcdef, // Arbitrary default; overridden via WithShuffleSeed
	}
}

// WithStrategy selects the parse strategy. Default is StrategyIndexed.
func WithStrategy(s ParseStrategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}

// WithSuffixOracle replaces the suffix array provider. The oracle's output
// is trusted: the pipeline verifies its length but not the permutation
// invariant.
func WithSuffixOracle(oracle SuffixOracle) Option {
	return func(c *config) {
		c.oracle = oracle
	}
}

// WithFactors retains the explicit factor list in Result.FactorList. The
// estimator needs only the count; the list is for diagnostic use.
func WithFactors() Option {
	return func(c *config) {
		c.keepFactors = true
	}
}

// WithMaxLength caps the accepted input length. Zero (the default) means
// no cap beyond the int32 positions the index arrays can address.
func WithMaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// WithWorkers sets the number of concurrent evaluations in Batch and in
// Normalized's shuffled baselines. Zero (the default) uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithShuffles sets how many shuffled baselines Normalized averages over.
// Default is 1.
func WithShuffles(n int) Option {
	return func(c *config) {
		c.shuffles = n
	}
}

// WithShuffleSeed fixes the seed for the shuffled baselines, making
// Normalized fully deterministic for a given input.
func WithShuffleSeed(seed uint64) Option {
	return func(c *config) {
		c.shuffleSeed = seed
	}
}
