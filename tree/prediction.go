package tree

import (
	"fmt"
	"strings"
)

/*
Prediction represents the class probabilities a leaf assigns to the
samples routed to it.
*/
type Prediction struct {
	probabilities map[float64]float64
	weight        int
}

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrCannotPredictFromEmptySet is the error returned when trying to build
a prediction for a leaf to which no training samples were routed.
*/
const ErrCannotPredictFromEmptySet = PredictionError("cannot make prediction for empty label subset")

/*
ErrShortSample is the error returned by the Predict method of a tree
when the given feature vector defines fewer features than the tree
needs to look at to route it to a leaf.
*/
const ErrShortSample = PredictionError("sample defines fewer features than the tree splits on")

func (pe PredictionError) Error() string {
	return string(pe)
}

/*
NewPredictionFromLabels takes the class labels of the training samples
routed to a leaf and returns the prediction estimating each class
probability as its empirical frequency among them. The probabilities of
the classes present sum to 1. An empty slice yields
ErrCannotPredictFromEmptySet.
*/
func NewPredictionFromLabels(labels []float64) (*Prediction, error) {
	if len(labels) == 0 {
		return nil, ErrCannotPredictFromEmptySet
	}
	counts := make(map[float64]int)
	for _, label := range labels {
		counts[label]++
	}
	probs := make(map[float64]float64)
	for class, count := range counts {
		probs[class] = float64(count) / float64(len(labels))
	}
	return &Prediction{probabilities: probs, weight: len(labels)}, nil
}

/*
ProbabilityOf takes a class label and returns the float64 probability of
that class according to the prediction.
*/
func (p *Prediction) ProbabilityOf(class float64) float64 {
	return p.probabilities[class]
}

/*
Probabilities returns a map of class label to float64 containing the
probabilities of each class observed at the leaf.
*/
func (p *Prediction) Probabilities() map[float64]float64 {
	return p.probabilities
}

/*
Weight returns the weight of the prediction: an int equal to the number
of training samples routed to the leaf the prediction was made from.
*/
func (p *Prediction) Weight() int {
	return p.weight
}

/*
PredictedValue returns the most probable class label and a float64 with
its probability. When several classes tie, the lowest label wins so the
result does not depend on map iteration order.
*/
func (p *Prediction) PredictedValue() (class float64, prob float64) {
	for c, pr := range p.probabilities {
		if pr > prob || (pr == prob && c < class) {
			class = c
			prob = pr
		}
	}
	return
}

func (p *Prediction) String() string {
	return strings.Replace(fmt.Sprintf("%v", p.probabilities), "map", "", 1)
}
