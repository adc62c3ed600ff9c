package cid

import (
	"fmt"
	"math"

	"github.com/zeebo/xxh3"

	ciderrors "github.com/tkarna/cid/errors"
	"github.com/tkarna/cid/internal/suffix"
)

// Result holds the outcome of one pipeline run. It is a pure function of
// the input bytes and the configuration: a value, never mutated.
type Result struct {
	// Length is the input length in bytes.
	Length int

	// Factors is the number of factors in the previous-factor parse.
	Factors int

	// CompressedBits is the closed-form estimate of the compressed size.
	CompressedBits float64

	// Density is CompressedBits/(8*Length), the CID statistic.
	Density float64

	// Digest is the xxHash3-64 of the input, identifying the analyzed
	// content across batch runs.
	Digest uint64

	// FactorList is the explicit parse, retained only under WithFactors.
	FactorList []Factor
}

// Compute runs the full pipeline on data: suffix array, LCP array,
// previous-factor parse, estimate. The pipeline is deterministic —
// identical bytes yield an identical Result — and produces either a
// complete, consistent result or an error, never a partial one.
func Compute(data []byte, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return compute(data, cfg)
}

func compute(data []byte, cfg *config) (*Result, error) {
	n := len(data)
	if n == 0 {
		return nil, ciderrors.ErrEmptyInput
	}
	if cfg.maxLength > 0 && n > cfg.maxLength {
		return nil, fmt.Errorf("%w: %d bytes over cap %d", ciderrors.ErrInputTooLarge, n, cfg.maxLength)
	}

	f, err := newFactorizer(cfg.strategy)
	if err != nil {
		return nil, err
	}

	sa, err := cfg.oracle(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ciderrors.ErrConstruction, err)
	}
	if len(sa) != n {
		return nil, fmt.Errorf("%w: oracle returned %d entries for %d bytes",
			ciderrors.ErrConstruction, len(sa), n)
	}

	count, covered, factors := f.Factorize(data, sa, cfg.keepFactors)
	if covered != n {
		return nil, fmt.Errorf("%w: %s strategy covered %d of %d bytes",
			ciderrors.ErrInconsistentParse, cfg.strategy, covered, n)
	}

	bits, density := Estimate(n, count)
	return &Result{
		Length:         n,
		Factors:        count,
		CompressedBits: bits,
		Density:        density,
		Digest:         xxh3.Hash(data),
		FactorList:     factors,
	}, nil
}

// buildSuffixArray is the default SuffixOracle, backed by internal/suffix.
func buildSuffixArray(text []byte) ([]int32, error) {
	if len(text) > math.MaxInt32 {
		return nil, fmt.Errorf("input of %d bytes exceeds int32 positions", len(text))
	}
	return suffix.Array(text), nil
}
