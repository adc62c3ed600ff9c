package cid

// buildLCP derives the longest-common-prefix array from text and its suffix
// array using Kasai's algorithm: lcp[i] is the length of the longest common
// prefix of the suffixes at sa[i-1] and sa[i], with lcp[0] = 0 by
// convention.
//
// Precondition: sa must be a valid permutation of [0, len(text)). This is
// not checked; a broken permutation makes the index arithmetic undefined.
//
// The scan walks text positions in text order, carrying the running prefix
// length h. h decreases by at most 1 per step and grows only on successful
// character matches, bounding total comparisons by O(n).
func buildLCP(text []byte, sa []int32) []int32 {
	n := len(text)
	lcp := make([]int32, n)
	rank := invert(sa)

	h := 0
	for i := 0; i < n; i++ {
		r := int(rank[i])
		if r == 0 {
			h = 0
			continue
		}
		j := int(sa[r-1])
		for i+h < n && j+h < n && text[i+h] == text[j+h] {
			h++
		}
		lcp[r] = int32(h)
		if h > 0 {
			h--
		}
	}
	return lcp
}

// invert returns the rank array: the inverse permutation of sa, with
// rank[sa[i]] = i.
func invert(sa []int32) []int32 {
	rank := make([]int32, len(sa))
	for i, p := range sa {
		rank[p] = int32(i)
	}
	return rank
}
