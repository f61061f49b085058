package typoutil

// CalculateDamerauLevenshteinDistanceWithLimit returns the optimal string
// alignment distance between a and b: insertions, deletions, substitutions
// and transpositions of adjacent characters each cost one edit.
// Runes are compared, so accented characters count as one character.
// Once every cell of a row exceeds maxDistance the result is known to be too
// large and maxDistance+1 is returned without finishing the table.
func CalculateDamerauLevenshteinDistanceWithLimit(a, b string, maxDistance int) int {
	runesA := []rune(a)
	runesB := []rune(b)
	lenA, lenB := len(runesA), len(runesB)

	if abs(lenA-lenB) > maxDistance {
		return maxDistance + 1
	}
	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	// Three rolling rows: i-2 (for transpositions), i-1 and i.
	twoBack := make([]int, lenB+1)
	oneBack := make([]int, lenB+1)
	current := make([]int, lenB+1)
	for j := range oneBack {
		oneBack[j] = j
	}

	for i := 1; i <= lenA; i++ {
		current[0] = i
		rowMin := i

		for j := 1; j <= lenB; j++ {
			cost := 1
			if runesA[i-1] == runesB[j-1] {
				cost = 0
			}

			best := min3(oneBack[j]+1, current[j-1]+1, oneBack[j-1]+cost)
			if i > 1 && j > 1 && runesA[i-1] == runesB[j-2] && runesA[i-2] == runesB[j-1] {
				if t := twoBack[j-2] + cost; t < best {
					best = t
				}
			}
			current[j] = best

			if best < rowMin {
				rowMin = best
			}
		}

		if rowMin > maxDistance {
			return maxDistance + 1
		}
		twoBack, oneBack, current = oneBack, current, twoBack
	}

	return oneBack[lenB]
}

// CalculateDamerauLevenshteinDistance is the unbounded form of
// CalculateDamerauLevenshteinDistanceWithLimit.
func CalculateDamerauLevenshteinDistance(a, b string) int {
	limit := len([]rune(a)) + len([]rune(b))
	return CalculateDamerauLevenshteinDistanceWithLimit(a, b, limit)
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

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
