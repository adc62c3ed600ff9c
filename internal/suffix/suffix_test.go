package suffix

import (
	"math/rand/v2"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeSA builds a suffix array by naive comparison sorting, as a test
// oracle for the prefix-doubling construction.
func makeSA(text []byte) []int32 {
	sa := make([]int32, len(text))
	for i := range text {
		sa[i] = int32(i)
	}
	sort.Slice(sa, func(i, j int) bool {
		return slices.Compare(text[sa[i]:], text[sa[j]:]) < 0
	})
	return sa
}

func TestSort(t *testing.T) {
	tests := map[string]struct {
		input []byte
	}{
		"single character": {
			input: []byte{100},
		},
		"same characters": {
			input: []byte("aaaaaaaaaaaaaaaaaaaaa"),
		},
		"banana": {
			input: []byte("banana"),
		},
		"abracadabra": {
			input: []byte("abracadabra"),
		},
		"repeated pattern": {
			input: []byte{1, 2, 1, 2, 1, 2, 1, 2},
		},
		"reverse sorted": {
			input: []byte{5, 4, 3, 2, 1},
		},
		"ACGTGCCTAGCCTACCGTGCC": {
			input: []byte("ACGTGCCTAGCCTACCGTGCC"),
		},
		"min/max edges": {
			input: []byte{0, 255},
		},
		"zero characters": {
			input: []byte{0, 0, 0, 1, 1, 1},
		},
		"alternating pattern": {
			input: []byte{3, 1, 3, 1, 3, 1},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			sa := make([]int32, len(tc.input))
			Sort(tc.input, sa)
			assert.Equal(t, makeSA(tc.input), sa)
		})
	}
}

func TestSortEmpty(t *testing.T) {
	Sort(nil, nil) // must not panic
	assert.Empty(t, Array(nil))
}

func TestSortRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(0x1234567890ABCDEF, 0xFEDCBA9876543210))
	alphabets := []int{1, 2, 4, 16, 256}
	for _, alpha := range alphabets {
		for trial := 0; trial < 20; trial++ {
			n := 1 + rng.IntN(400)
			text := make([]byte, n)
			for i := range text {
				text[i] = byte(rng.IntN(alpha))
			}

			got := Array(text)
			require.Equal(t, makeSA(text), got,
				"alphabet %d, trial %d, text %v", alpha, trial, text)
		}
	}
}

func TestSortIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	text := make([]byte, 1000)
	for i := range text {
		text[i] = byte(rng.IntN(3))
	}

	sa := Array(text)
	seen := make([]bool, len(text))
	for _, p := range sa {
		require.False(t, seen[p], "position %d appears twice", p)
		seen[p] = true
	}
}
