package search

import (
	"math"
	"time"
)

// Cosine computes the cosine similarity of two vectors.
// It fails closed: vectors of differing length, or with zero magnitude,
// compare as 0 rather than raising. Accumulation happens in float64 so
// long float32 vectors don't lose precision.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// RecencyBoost returns an exponential decay factor in (0, 1] favoring newer
// items: 1.0 for an item created at now, exp(-age/halfLife) otherwise.
// Items with timestamps in the future count as brand new.
func RecencyBoost(createdAt, now time.Time, halfLifeDays float64) float64 {
	if halfLifeDays <= 0 {
		return 1
	}

	ageDays := now.Sub(createdAt).Hours() / 24
	if ageDays < 0 {
		ageDays = 0
	}
	return math.Exp(-ageDays / halfLifeDays)
}
