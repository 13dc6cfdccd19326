package recommendation

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCosineSimilarity(t *testing.T) {
	cases := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1.0},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0.0},
		{"opposite clamped to zero", []float64{1, 0}, []float64{-1, 0}, 0.0},
		{"zero norm", []float64{0, 0}, []float64{1, 2}, 0.0},
		{"length mismatch", []float64{1, 2}, []float64{1, 2, 3}, 0.0},
		{"empty", nil, nil, 0.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cosineSimilarity(tc.a, tc.b)
			if !almostEqual(got, tc.want) {
				t.Errorf("cosineSimilarity(%v, %v) = %f, want %f", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestCosineSimilarity_ScaleInvariant(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{2, 4, 6}

	if got := cosineSimilarity(a, b); !almostEqual(got, 1.0) {
		t.Errorf("parallel vectors should have similarity 1, got %f", got)
	}
}

func TestMinMaxNormalize(t *testing.T) {
	scores := []float64{2, 4, 6}
	minMaxNormalize(scores)

	want := []float64{0, 0.5, 1}
	for i := range want {
		if !almostEqual(scores[i], want[i]) {
			t.Errorf("scores[%d] = %f, want %f", i, scores[i], want[i])
		}
	}
}

func TestMinMaxNormalize_DegenerateRangeUnchanged(t *testing.T) {
	scores := []float64{0.5, 0.5, 0.5}
	minMaxNormalize(scores)

	for i, s := range scores {
		if !almostEqual(s, 0.5) {
			t.Errorf("scores[%d] = %f, want 0.5", i, s)
		}
	}
}

func TestMinMaxNormalize_Empty(t *testing.T) {
	minMaxNormalize(nil)
	minMaxNormalize([]float64{})
}

func TestClamp01(t *testing.T) {
	if got := clamp01(-0.2); got != 0 {
		t.Errorf("clamp01(-0.2) = %f", got)
	}
	if got := clamp01(1.7); got != 1 {
		t.Errorf("clamp01(1.7) = %f", got)
	}
	if got := clamp01(0.3); !almostEqual(got, 0.3) {
		t.Errorf("clamp01(0.3) = %f", got)
	}
}
