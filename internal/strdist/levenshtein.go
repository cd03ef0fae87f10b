// Package strdist implements the edit-distance primitives the matcher
// strategies are built on, plus the length-proportional distance bounds
// that keep precision roughly constant across name lengths.
package strdist

// Levenshtein computes the Levenshtein distance between two strings.
// It represents the minimum number of single-character edits (insertions,
// deletions, or substitutions) required to change one word into the other.
// Comparison is case-sensitive; callers lowercase inputs first.
// This implementation properly handles Unicode characters by working with runes.
func Levenshtein(a, b string) int {
	runesA := []rune(a)
	runesB := []rune(b)

	lenA := len(runesA)
	lenB := len(runesB)

	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	// matrix[i][j] is the distance between the first i characters of a
	// and the first j characters of b.
	matrix := make([][]int, lenA+1)
	for i := range matrix {
		matrix[i] = make([]int, lenB+1)
	}

	for i := 0; i <= lenA; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= lenB; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= lenA; i++ {
		for j := 1; j <= lenB; j++ {
			cost := 0
			if runesA[i-1] != runesB[j-1] {
				cost = 1
			}

			deletion := matrix[i-1][j] + 1
			insertion := matrix[i][j-1] + 1
			substitution := matrix[i-1][j-1] + cost

			matrix[i][j] = min3(deletion, insertion, substitution)
		}
	}

	return matrix[lenA][lenB]
}

// LevenshteinWithLimit computes the Levenshtein distance with early
// termination. Returns maxDistance + 1 as soon as the actual distance is
// known to exceed maxDistance, which lets candidate loops skip hopeless
// comparisons cheaply.
func LevenshteinWithLimit(a, b string, maxDistance int) int {
	runesA := []rune(a)
	runesB := []rune(b)

	lenA := len(runesA)
	lenB := len(runesB)

	// If the length difference alone exceeds the limit, no edit sequence can
	// stay within it.
	lengthDiff := lenA - lenB
	if lengthDiff < 0 {
		lengthDiff = -lengthDiff
	}
	if lengthDiff > maxDistance {
		return maxDistance + 1
	}

	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	prevRow := make([]int, lenB+1)
	currRow := make([]int, lenB+1)

	for j := 0; j <= lenB; j++ {
		prevRow[j] = j
	}

	for i := 1; i <= lenA; i++ {
		currRow[0] = i
		minInRow := i

		for j := 1; j <= lenB; j++ {
			cost := 0
			if runesA[i-1] != runesB[j-1] {
				cost = 1
			}

			deletion := prevRow[j] + 1
			insertion := currRow[j-1] + 1
			substitution := prevRow[j-1] + cost

			currRow[j] = min3(deletion, insertion, substitution)

			if currRow[j] < minInRow {
				minInRow = currRow[j]
			}
		}

		// Row minimum only grows from here, so the final distance will
		// definitely exceed maxDistance.
		if minInRow > maxDistance {
			return maxDistance + 1
		}

		prevRow, currRow = currRow, prevRow
	}

	return prevRow[lenB]
}

// min3 is a helper function to find the minimum of three integers
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
