package search

// levenshteinCapped computes the edit distance between a and b, bounded by
// maxDist. Adjacent transpositions count as a single edit, so the common
// typo "pyhton" sits at distance 1 from "python". It returns maxDist+1 as a
// sentinel meaning "no match within tolerance" as soon as the distance can
// no longer come in under the bound: immediately when the length difference
// alone exceeds it, or mid-computation when a DP row's running minimum does.
// The bound is what keeps fuzzy matching affordable over unbounded corpora.
func levenshteinCapped(a, b string, maxDist int) int {
	if a == b {
		return 0
	}

	la, lb := len(a), len(b)
	diff := la - lb
	if diff < 0 {
		diff = -diff
	}
	if diff > maxDist {
		return maxDist + 1
	}
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev2 := make([]int, lb+1)
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			d := prev[j-1] + cost // substitution
			if del := prev[j] + 1; del < d {
				d = del
			}
			if ins := curr[j-1] + 1; ins < d {
				d = ins
			}
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if tr := prev2[j-2] + 1; tr < d {
					d = tr
				}
			}
			curr[j] = d
			if d < rowMin {
				rowMin = d
			}
		}

		if rowMin > maxDist {
			return maxDist + 1
		}
		prev2, prev, curr = prev, curr, prev2
	}

	if prev[lb] > maxDist {
		return maxDist + 1
	}
	return prev[lb]
}

// minEditDistance returns the smallest capped edit distance between token
// and any of the words, bounded by maxDist. Returns maxDist+1 when no word
// comes within tolerance.
func minEditDistance(token string, words []string, maxDist int) int {
	best := maxDist + 1
	for _, w := range words {
		if d := levenshteinCapped(token, w, maxDist); d < best {
			best = d
			if best == 0 {
				break
			}
		}
	}
	return best
}
