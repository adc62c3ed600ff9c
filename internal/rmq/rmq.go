// Package rmq provides a flat-array segment tree answering range-minimum
// queries and threshold scans over a fixed []int32.
//
// The tree is an index structure, not a node graph: 2*size int32 values in
// one slice, where size is the smallest power of two covering the input.
// Positions past the input are padded with MaxInt32 and behave as +inf.
package rmq

import "math"

// Tree is an immutable range-minimum structure over the values it was
// built from. All query bounds are inclusive indices into those values.
type Tree struct {
	n    int
	size int
	min  []int32
}

// New builds a Tree over a copy-free view of values. The values slice must
// not be mutated afterwards; entries must be below MaxInt32.
func New(values []int32) *Tree {
	n := len(values)
	size := 1
	for size < n {
		size *= 2
	}
	min := make([]int32, 2*size)
	for i := range min {
		min[i] = math.MaxInt32
	}
	copy(min[size:], values)
	for i := size - 1; i >= 1; i-- {
		min[i] = min2(min[2*i], min[2*i+1])
	}
	return &Tree{n: n, size: size, min: min}
}

// Len returns the number of values the tree was built over.
func (t *Tree) Len() int { return t.n }

// Min returns the minimum value on [lo, hi]. An empty or out-of-range
// interval yields MaxInt32.
func (t *Tree) Min(lo, hi int) int32 {
	if lo < 0 {
		lo = 0
	}
	if hi >= t.n {
		hi = t.n - 1
	}
	if lo > hi {
		return math.MaxInt32
	}
	return t.rangeMin(1, 0, t.size-1, lo, hi)
}

func (t *Tree) rangeMin(node, nodeLo, nodeHi, lo, hi int) int32 {
	if hi < nodeLo || nodeHi < lo {
		return math.MaxInt32
	}
	if lo <= nodeLo && nodeHi <= hi {
		return t.min[node]
	}
	mid := (nodeLo + nodeHi) / 2
	return min2(
		t.rangeMin(2*node, nodeLo, mid, lo, hi),
		t.rangeMin(2*node+1, mid+1, nodeHi, lo, hi),
	)
}

// LastBelow returns the largest index i in [0, hi] with value(i) <
// threshold, or -1 if there is none.
func (t *Tree) LastBelow(hi int, threshold int32) int {
	if hi >= t.n {
		hi = t.n - 1
	}
	if hi < 0 {
		return -1
	}
	return t.lastBelow(1, 0, t.size-1, hi, threshold)
}

func (t *Tree) lastBelow(node, nodeLo, nodeHi, hi int, threshold int32) int {
	if nodeLo > hi || t.min[node] >= threshold {
		return -1
	}
	if nodeLo == nodeHi {
		return nodeLo
	}
	mid := (nodeLo + nodeHi) / 2
	if i := t.lastBelow(2*node+1, mid+1, nodeHi, hi, threshold); i >= 0 {
		return i
	}
	return t.lastBelow(2*node, nodeLo, mid, hi, threshold)
}

// FirstBelow returns the smallest index i in [lo, Len()) with value(i) <
// threshold, or -1 if there is none.
func (t *Tree) FirstBelow(lo int, threshold int32) int {
	if lo < 0 {
		lo = 0
	}
	if lo >= t.n {
		return -1
	}
	return t.firstBelow(1, 0, t.size-1, lo, threshold)
}

func (t *Tree) firstBelow(node, nodeLo, nodeHi, lo int, threshold int32) int {
	if nodeHi < lo || t.min[node] >= threshold {
		return -1
	}
	if nodeLo == nodeHi {
		return nodeLo
	}
	mid := (nodeLo + nodeHi) / 2
	if i := t.firstBelow(2*node, nodeLo, mid, lo, threshold); i >= 0 {
		return i
	}
	return t.firstBelow(2*node+1, mid+1, nodeHi, lo, threshold)
}

func min2(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
