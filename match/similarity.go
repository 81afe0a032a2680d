package match

import (
	"math"

	"github.com/hbollon/go-edlib"
)

// cosineSimilarity computes the cosine of the angle between two vectors.
// Defined as 0 when either vector has zero norm.
func cosineSimilarity(a, b []float64) float64 {
	length := len(a)
	if len(b) < length {
		length = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < length; i++ {
		dot += a[i] * b[i]
	}
	for _, v := range a {
		normA += v * v
	}
	for _, v := range b {
		normB += v * v
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}

// levSimilarity converts Levenshtein edit distance between two strings into
// a similarity in [0, 1]: 1 - distance/max(len), floored at 0.
func levSimilarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}

	dist := edlib.LevenshteinDistance(a, b)

	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}

	sim := 1 - float64(dist)/float64(maxLen)
	if sim < 0 {
		return 0
	}
	return sim
}
