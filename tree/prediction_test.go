package tree

import (
	"math"
	"testing"
)

func TestNewPredictionFromLabels(t *testing.T) {
	p, err := NewPredictionFromLabels([]float64{0, 1, 1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Weight() != 4 {
		t.Errorf("got weight %d, want 4", p.Weight())
	}
	if got := p.ProbabilityOf(0); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("got probability %v for class 0, want 0.25", got)
	}
	if got := p.ProbabilityOf(1); math.Abs(got-0.75) > 1e-12 {
		t.Errorf("got probability %v for class 1, want 0.75", got)
	}
	if got := p.ProbabilityOf(7); got != 0 {
		t.Errorf("got probability %v for an absent class, want 0", got)
	}
	total := 0.0
	for _, prob := range p.Probabilities() {
		total += prob
	}
	if math.Abs(total-1.0) > 1e-12 {
		t.Errorf("probabilities sum to %v, want 1", total)
	}
}

func TestNewPredictionFromNoLabels(t *testing.T) {
	_, err := NewPredictionFromLabels(nil)
	if err != ErrCannotPredictFromEmptySet {
		t.Errorf("got error %v, want %v", err, ErrCannotPredictFromEmptySet)
	}
}

func TestPredictedValue(t *testing.T) {
	testCases := []struct {
		name   string
		labels []float64
		class  float64
		prob   float64
	}{
		{"clear majority", []float64{0, 1, 1, 1}, 1, 0.75},
		{"pure", []float64{2, 2, 2}, 2, 1.0},
		{"tie goes to lowest label", []float64{3, 5, 3, 5}, 3, 0.5},
	}
	for _, tc := range testCases {
		p, err := NewPredictionFromLabels(tc.labels)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		class, prob := p.PredictedValue()
		if class != tc.class {
			t.Errorf("%s: got class %v, want %v", tc.name, class, tc.class)
		}
		if math.Abs(prob-tc.prob) > 1e-12 {
			t.Errorf("%s: got probability %v, want %v", tc.name, prob, tc.prob)
		}
	}
}

func TestPredictionString(t *testing.T) {
	p, err := NewPredictionFromLabels([]float64{1, 1, 0, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "[0:0.25 1:0.75]"
	if got := p.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
