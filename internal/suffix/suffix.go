// Package suffix constructs suffix arrays over byte texts.
//
// The construction is prefix doubling (the qsufsort lineage): suffixes are
// ranked by their first k characters, and each round doubles k by combining
// the rank of a suffix with the rank of the suffix k positions later. The
// loop ends once all ranks are distinct, after at most log2(n) rounds, for
// O(n log^2 n) time and 2n int32 of auxiliary space.
package suffix

import "sort"

// Sort fills sa with the suffix array of text: a permutation of [0, n)
// ordering all suffixes lexicographically. len(sa) must equal len(text),
// and len(text) must not exceed MaxInt32.
func Sort(text []byte, sa []int32) {
	n := len(text)
	if n == 0 {
		return
	}

	rnk := make([]int32, n)
	next := make([]int32, n)
	for i := 0; i < n; i++ {
		sa[i] = int32(i)
		rnk[i] = int32(text[i])
	}

	for k := 1; ; k *= 2 {
		// Rank of the suffix k positions past i, or -1 when that runs off
		// the end (shorter suffixes sort first among equal prefixes).
		tail := func(i int32) int32 {
			if int(i)+k < n {
				return rnk[int(i)+k]
			}
			return -1
		}

		sort.Slice(sa, func(a, b int) bool {
			if rnk[sa[a]] != rnk[sa[b]] {
				return rnk[sa[a]] < rnk[sa[b]]
			}
			return tail(sa[a]) < tail(sa[b])
		})

		next[sa[0]] = 0
		for i := 1; i < n; i++ {
			next[sa[i]] = next[sa[i-1]]
			if rnk[sa[i]] != rnk[sa[i-1]] || tail(sa[i]) != tail(sa[i-1]) {
				next[sa[i]]++
			}
		}
		rnk, next = next, rnk

		if int(rnk[sa[n-1]]) == n-1 {
			return
		}
	}
}

// Array is a convenience wrapper around Sort that allocates the result.
func Array(text []byte) []int32 {
	sa := make([]int32, len(text))
	Sort(text, sa)
	return sa
}
