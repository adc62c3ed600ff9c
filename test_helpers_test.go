package cid

import (
	"encoding/binary"
	"hash/fnv"
	randv2 "math/rand/v2"
	"testing"

	"github.com/tkarna/cid/internal/suffix"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

func newTestRNG(t testing.TB) *randv2.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return randv2.New(randv2.NewPCG(testSeed1^s1, testSeed2^s2))
}

// randomText draws n bytes from an alphabet of the given size.
func randomText(rng *randv2.Rand, n, alphabet int) []byte {
	text := make([]byte, n)
	for i := range text {
		text[i] = byte(rng.IntN(alphabet))
	}
	return text
}

// testSA builds the suffix array the factorizers are fed in tests.
func testSA(t testing.TB, text []byte) []int32 {
	t.Helper()
	return suffix.Array(text)
}

// decodeFactors replays a parse and checks every copy stays inside the
// processed prefix. It returns the reconstructed text.
func decodeFactors(t *testing.T, factors []Factor) []byte {
	t.Helper()
	var out []byte
	for _, f := range factors {
		if f.IsLiteral() {
			if f.Len != 1 {
				t.Fatalf("literal factor with length %d", f.Len)
			}
			out = append(out, f.Lit)
			continue
		}
		if f.Len < 1 {
			t.Fatalf("copy factor with length %d", f.Len)
		}
		if int(f.Pos)+int(f.Len) > len(out) {
			t.Fatalf("copy %v reads at or past the cursor (prefix %d)", f, len(out))
		}
		out = append(out, out[f.Pos:int(f.Pos)+int(f.Len)]...)
	}
	return out
}
