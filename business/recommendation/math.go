package recommendation

import "math"

// cosineSimilarity returns the cosine of the angle between two equal-length
// vectors, clamped to [0, 1]. Zero-norm vectors and length mismatches yield
// 0 instead of an error.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))

	return clamp01(sim)
}

// minMaxNormalize rescales scores to [0, 1] in place. Degenerate ranges
// (max == min) are left unchanged.
func minMaxNormalize(scores []float64) {
	if len(scores) == 0 {
		return
	}

	minV, maxV := scores[0], scores[0]
	for _, s := range scores[1:] {
		if s < minV {
			minV = s
		}
		if s > maxV {
			maxV = s
		}
	}

	if maxV <= minV {
		return
	}

	for i := range scores {
		scores[i] = (scores[i] - minV) / (maxV - minV)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
