package cid

import (
	"bytes"
	"testing"
)

// bruteLCP computes the LCP array by direct comparison of sorted-adjacent
// suffixes.
func bruteLCP(text []byte, sa []int32) []int32 {
	lcp := make([]int32, len(text))
	for i := 1; i < len(sa); i++ {
		a, b := text[sa[i-1]:], text[sa[i]:]
		var h int32
		for int(h) < len(a) && int(h) < len(b) && a[h] == b[h] {
			h++
		}
		lcp[i] = h
	}
	return lcp
}

func TestBuildLCPKnownTexts(t *testing.T) {
	tests := map[string][]byte{
		"banana":      []byte("banana"),
		"abracadabra": []byte("abracadabra"),
		"single":      []byte("x"),
		"all same":    bytes.Repeat([]byte("a"), 40),
		"two runs":    []byte("aaaabbbbaaaabbbb"),
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			sa := testSA(t, text)
			got := buildLCP(text, sa)
			want := bruteLCP(text, sa)
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("lcp[%d] = %d, want %d (text %q)", i, got[i], want[i], text)
				}
			}
		})
	}
}

func TestBuildLCPRandom(t *testing.T) {
	rng := newTestRNG(t)
	for trial := 0; trial < 50; trial++ {
		text := randomText(rng, 1+rng.IntN(300), []int{1, 2, 4, 256}[rng.IntN(4)])
		sa := testSA(t, text)

		got := buildLCP(text, sa)
		want := bruteLCP(text, sa)

		n := int32(len(text))
		if got[0] != 0 {
			t.Fatalf("lcp[0] = %d, want 0", got[0])
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("trial %d: lcp[%d] = %d, want %d", trial, i, got[i], want[i])
			}
			if i > 0 {
				bound := n - max32(sa[i-1], sa[i])
				if got[i] > bound {
					t.Fatalf("trial %d: lcp[%d] = %d exceeds bound %d", trial, i, got[i], bound)
				}
			}
		}
	}
}

func TestInvertIsInverse(t *testing.T) {
	rng := newTestRNG(t)
	text := randomText(rng, 200, 4)
	sa := testSA(t, text)
	rank := invert(sa)
	for i, p := range sa {
		if rank[p] != int32(i) {
			t.Fatalf("rank[sa[%d]] = %d, want %d", i, rank[p], i)
		}
	}
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
