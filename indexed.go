package cid

import (
	"github.com/tkarna/cid/internal/rmq"
)

// indexedFactorizer finds each match through the suffix-array order
// locality of the LCP array instead of scanning candidates.
//
// The suffixes sharing a prefix of length >= l with the cursor suffix form
// a contiguous rank interval around the cursor's rank, bounded by the
// nearest LCP entries below l on either side. The interval's minimum text
// position is therefore the leftmost occurrence of that prefix. A source of
// effective length l exists exactly when that minimum position is at most
// cursor-l (the copy must fit inside the processed prefix), and since
// growing l only shrinks the interval, the predicate is monotone and the
// longest match falls out of a binary search over l.
//
// Per factor that is one binary search of O(log n) steps, each an O(log n)
// tree scan: O(n log^2 n) worst case overall. Auxiliary memory is the
// suffix, rank, and LCP arrays plus two 2n-slot trees, about 7n int32.
type indexedFactorizer struct{}

func (indexedFactorizer) Factorize(text []byte, sa []int32, keep bool) (int, int, []Factor) {
	n := len(text)
	var (
		count   int
		covered int
		factors []Factor
	)

	lcp := buildLCP(text, sa)
	rank := invert(sa)
	lcpTree := rmq.New(lcp)
	posTree := rmq.New(sa)

	// match reports the smallest source position offering a common prefix
	// of at least l whose copy fits before the cursor i, if any.
	match := func(i, l int) (int, bool) {
		r := int(rank[i])
		// Rank interval of suffixes sharing >= l with suffix i. lcp[0] is 0,
		// so the left scan always terminates at a valid boundary.
		lo := lcpTree.LastBelow(r, int32(l))
		hi := n - 1
		if m := lcpTree.FirstBelow(r+1, int32(l)); m >= 0 {
			hi = m - 1
		}
		p := int(posTree.Min(lo, hi))
		if p+l <= i {
			return p, true
		}
		return 0, false
	}

	for i := 0; i < n; {
		// A source needs length <= i-pos <= i, and a match cannot run past
		// the end of the text.
		limit := n - i
		if limit > i {
			limit = i
		}

		bestLen, bestPos := 0, 0
		lo, hi := 1, limit
		for lo <= hi {
			mid := (lo + hi) / 2
			if p, ok := match(i, mid); ok {
				bestLen, bestPos = mid, p
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}

		if bestLen > 0 {
			if keep {
				factors = append(factors, copyFactor(bestPos, bestLen))
			}
			i += bestLen
			covered += bestLen
		} else {
			if keep {
				factors = append(factors, literal(text[i]))
			}
			i++
			covered++
		}
		count++
	}

	return count, covered, factors
}
