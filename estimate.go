package cid

import "math"

// Estimate converts a sequence length and a previous-factor count into an
// approximate compressed bit length and its density, the compressed bits
// per original bit.
//
// For 0 < factors < length the estimate is
//
//	bits = z*log2(z) + 2z*log2(n/z)
//
// Outside that region — a degenerate non-positive count, or z >= n where
// every position parses as its own literal — the estimate saturates at 8n
// bits (one byte per symbol, density exactly 1.0) rather than letting the
// logarithms diverge. The fallback is a deliberate floor, not an error.
//
// Density is a dimensionless ratio, not clamped beyond the fallback;
// callers must not assume a hard upper bound of 1.0 outside that branch.
func Estimate(length, factors int) (compressedBits, density float64) {
	n := float64(length)
	z := float64(factors)

	if factors <= 0 || factors >= length {
		return 8 * n, 1.0
	}
	compressedBits = z*math.Log2(z) + 2*z*math.Log2(n/z)
	return compressedBits, compressedBits / (8 * n)
}
