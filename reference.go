package cid

// referenceFactorizer is the quadratic validation baseline. At every cursor
// it scans all suffix-array entries whose text position lies before the
// cursor and extends each candidate by direct comparison, keeping the
// longest match and, among equally long matches, the smallest source
// position.
type referenceFactorizer struct{}

func (referenceFactorizer) Factorize(text []byte, sa []int32, keep bool) (int, int, []Factor) {
	n := len(text)
	var (
		count   int
		covered int
		factors []Factor
	)

	for i := 0; i < n; {
		bestLen := 0
		bestPos := -1
		for r := 0; r < n; r++ {
			p := int(sa[r])
			if p >= i {
				continue
			}
			l := 0
			// The source must stay inside the processed prefix: extension
			// stops before the copy would read at or past the cursor.
			for p+l < i && i+l < n && text[p+l] == text[i+l] {
				l++
			}
			if l > bestLen || (l == bestLen && l > 0 && p < bestPos) {
				bestLen = l
				bestPos = p
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
