package cid

import (
	ciderrors "github.com/tkarna/cid/errors"
)

// ParseStrategy identifies the algorithm used for the previous-factor LZ77
// parse. Both strategies satisfy the same contract: the greedy
// longest-match parse with sources fully inside the processed prefix and
// ties broken by smallest source position. They differ only in complexity.
type ParseStrategy uint8

const (
	// StrategyIndexed finds each match through range-minimum queries over
	// the LCP array. O(n log^2 n) worst case, auxiliary memory a small
	// multiple of n. The default.
	StrategyIndexed ParseStrategy = 0

	// StrategyReference scans the whole suffix array at every cursor
	// position. O(n^2) worst case; a validation baseline for small inputs,
	// never the right choice for large ones.
	StrategyReference ParseStrategy = 1
)

// String returns the strategy name.
func (s ParseStrategy) String() string {
	switch s {
	case StrategyIndexed:
		return "indexed"
	case StrategyReference:
		return "reference"
	default:
		return "unknown"
	}
}

// ParseStrategyFromName maps a strategy name ("indexed", "reference") back
// to its identifier.
func ParseStrategyFromName(name string) (ParseStrategy, error) {
	switch name {
	case "indexed":
		return StrategyIndexed, nil
	case "reference":
		return StrategyReference, nil
	default:
		return 0, ciderrors.ErrUnknownStrategy
	}
}

// factorizer produces the previous-factor parse of a text.
//
// Factorize returns the factor count and the total number of bytes the
// factors cover; the caller verifies covered == len(text) before trusting
// the count. When keep is true the explicit factor list is returned as
// well, in left-to-right order.
//
// The suffix array is trusted input: it must be a valid permutation of
// [0, len(text)) ordering the suffixes lexicographically.
type factorizer interface {
	Factorize(text []byte, sa []int32, keep bool) (count int, covered int, factors []Factor)
}

// newFactorizer returns the implementation for the given strategy.
func newFactorizer(strategy ParseStrategy) (factorizer, error) {
	switch strategy {
	case StrategyIndexed:
		return indexedFactorizer{}, nil
	case StrategyReference:
		return referenceFactorizer{}, nil
	default:
		return nil, ciderrors.ErrUnknownStrategy
	}
}
