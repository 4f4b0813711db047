package sapling

/*
TrainingError represents an error detected while growing a tree or
evaluating one of its splits.
*/
type TrainingError string

/*
ErrEmptyLabels is the error returned when an impurity score is requested
for an empty label subset. The Gini impurity is undefined for an empty
group, so callers partitioning a dataset must guard against routing zero
samples to one of the sides.
*/
const ErrEmptyLabels = TrainingError("cannot compute impurity of an empty label subset")

/*
ErrNoValidSplit is the error returned by SearchSplit when no candidate
threshold leaves at least the minimum leaf size on both sides.
*/
const ErrNoValidSplit = TrainingError("no candidate split satisfies the minimum leaf size")

func (te TrainingError) Error() string {
	return string(te)
}

/*
Gini takes a slice of class labels and returns its Gini impurity, the
number of labels it scored, and an error.

The impurity is 1 - Σ p(c)² over the distinct classes c present in the
slice, with p(c) the fraction of labels equal to c. It is 0 exactly when
all labels belong to one class and grows towards 1 - 1/k as the k present
classes approach an even split. An empty slice yields ErrEmptyLabels.
*/
func Gini(labels []float64) (float64, int, error) {
	if len(labels) == 0 {
		return 0.0, 0, ErrEmptyLabels
	}
	classCounts := make(map[float64]int)
	for _, label := range labels {
		classCounts[label]++
	}
	total := float64(len(labels))
	score := 1.0
	for _, count := range classCounts {
		p := float64(count) / total
		score -= p * p
	}
	return score, len(labels), nil
}

/*
WeightedGini takes the label subsets produced by partitioning a dataset
in two and returns their Gini impurities averaged by subset size, or an
error if either subset is empty.

This is the objective SearchSplit minimizes: it rewards splits that make
both sides more homogeneous in proportion to how many samples land on
each, so a split that merely isolates an outlier scores little better
than no split at all.
*/
func WeightedGini(left, right []float64) (float64, error) {
	leftScore, leftCount, err := Gini(left)
	if err != nil {
		return 0.0, err
	}
	rightScore, rightCount, err := Gini(right)
	if err != nil {
		return 0.0, err
	}
	total := float64(leftCount + rightCount)
	return (leftScore*float64(leftCount) + rightScore*float64(rightCount)) / total, nil
}
