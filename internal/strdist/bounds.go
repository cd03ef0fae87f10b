package strdist

import "math"

// AdaptiveBound returns the effective edit-distance cutoff for the base
// Levenshtein strategy: min(maxDistance, ceil(0.3 * max(queryLen, candidateLen))).
// A fixed cutoff is too permissive for short names (a 2-character name with
// distance 2 matches almost anything) and too strict for long ones; scaling
// the bound keeps precision roughly constant across name lengths.
func AdaptiveBound(queryLen, candidateLen, maxDistance int) int {
	longest := queryLen
	if candidateLen > longest {
		longest = candidateLen
	}
	bound := int(math.Ceil(0.3 * float64(longest)))
	if bound > maxDistance {
		return maxDistance
	}
	return bound
}

// StrictBound returns the cutoff used by the strict strategies:
// min(maxDistance, ceil(0.6 * compactQueryLen)), where compactQueryLen is the
// rune length of the query with spaces removed.
func StrictBound(compactQueryLen, maxDistance int) int {
	bound := int(math.Ceil(0.6 * float64(compactQueryLen)))
	if bound > maxDistance {
		return maxDistance
	}
	return bound
}
