package sapling

import (
	"math"
	"testing"
)

func TestGini(t *testing.T) {
	testCases := []struct {
		name   string
		labels []float64
		score  float64
	}{
		{"pure single class", []float64{1, 1, 1, 1}, 0.0},
		{"one sample", []float64{3}, 0.0},
		{"even two classes", []float64{0, 0, 1, 1}, 0.5},
		{"uneven two classes", []float64{0, 1, 1, 1}, 1.0 - 1.0/16.0 - 9.0/16.0},
		{"even three classes", []float64{0, 1, 2}, 2.0 / 3.0},
	}
	for _, tc := range testCases {
		score, count, err := Gini(tc.labels)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if count != len(tc.labels) {
			t.Errorf("%s: got count %d, want %d", tc.name, count, len(tc.labels))
		}
		if math.Abs(score-tc.score) > 1e-12 {
			t.Errorf("%s: got score %v, want %v", tc.name, score, tc.score)
		}
	}
}

func TestGiniEmptyLabels(t *testing.T) {
	_, _, err := Gini(nil)
	if err != ErrEmptyLabels {
		t.Errorf("got error %v, want %v", err, ErrEmptyLabels)
	}
}

// The impurity of any non-empty label subset lies in [0, 1-1/k] for k
// distinct classes, with 0 exactly on pure subsets.
func TestGiniBounds(t *testing.T) {
	testCases := [][]float64{
		{0},
		{0, 0, 0},
		{0, 1},
		{0, 0, 1},
		{0, 1, 2, 2, 2},
		{0, 1, 2, 3, 0, 1, 2, 3},
		{5, 5, 7, 9, 9, 9, 11},
	}
	for _, labels := range testCases {
		score, _, err := Gini(labels)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		distinct := make(map[float64]bool)
		pure := true
		for _, l := range labels {
			distinct[l] = true
			pure = pure && l == labels[0]
		}
		bound := 1.0 - 1.0/float64(len(distinct))
		if score < 0 || score > bound+1e-12 {
			t.Errorf("labels %v: score %v outside [0, %v]", labels, score, bound)
		}
		if pure != (score == 0) {
			t.Errorf("labels %v: purity %v does not match zero score %v", labels, pure, score)
		}
	}
}

func TestWeightedGini(t *testing.T) {
	// (0.5*2 + 0*2) / 4
	score, err := WeightedGini([]float64{0, 1}, []float64{1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(score-0.25) > 1e-12 {
		t.Errorf("got score %v, want 0.25", score)
	}
}

func TestWeightedGiniRewardsBalance(t *testing.T) {
	// Isolating a single sample of the majority class scores barely
	// better than the unsplit impurity of 0.5, while the clean split
	// scores 0.
	isolating, err := WeightedGini([]float64{0}, []float64{0, 0, 1, 1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clean, err := WeightedGini([]float64{0, 0, 0}, []float64{1, 1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clean != 0 {
		t.Errorf("clean split scored %v, want 0", clean)
	}
	if isolating <= 0.25 {
		t.Errorf("isolating split scored %v, want barely below 0.5", isolating)
	}
}

func TestWeightedGiniEmptySide(t *testing.T) {
	if _, err := WeightedGini(nil, []float64{1}); err != ErrEmptyLabels {
		t.Errorf("empty left side: got error %v, want %v", err, ErrEmptyLabels)
	}
	if _, err := WeightedGini([]float64{1}, nil); err != ErrEmptyLabels {
		t.Errorf("empty right side: got error %v, want %v", err, ErrEmptyLabels)
	}
}
