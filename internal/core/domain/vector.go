package domain

import "math"

// CosineDistance returns 1 minus the cosine similarity of the two
// vectors, so identical directions score 0 and opposite directions
// score 2. Mismatched lengths and zero vectors return the maximum
// distance for non-negative similarities, 1.
func CosineDistance(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 1
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 1
	}

	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}
