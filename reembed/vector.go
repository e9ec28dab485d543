package reembed

import "math"

// NormalizeVector scales a vector to unit length so that dot products double
// as cosine similarities. The magnitude accumulates in float64 to limit
// rounding drift on long vectors. A zero vector cannot be normalized and
// comes back as a fresh zero vector; the input is never mutated.
func NormalizeVector(v []float32) []float32 {
	if len(v) == 0 {
		return v
	}

	var sumSquares float64
	for _, val := range v {
		sumSquares += float64(val) * float64(val)
	}

	result := make([]float32, len(v))
	magnitude := math.Sqrt(sumSquares)
	if magnitude == 0 {
		return result
	}

	for i, val := range v {
		result[i] = float32(float64(val) / magnitude)
	}
	return result
}
