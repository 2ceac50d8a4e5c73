package match

// MinSimilarity is the score below which Closest reports no match.
const MinSimilarity = 0.5

// Closest returns the candidate most similar to name. Ties keep the earlier candidate.
// It returns false when no candidate reaches MinSimilarity.
func Closest(name string, candidates []string) (string, bool) {
	best, bestScore := "", MinSimilarity

	for _, c := range candidates {
		if score := Similarity(name, c); score > bestScore || (score == bestScore && best == "") {
			best, bestScore = c, score
		}
	}

	return best, best != ""
}
