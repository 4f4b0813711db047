package sapling

import (
	"github.com/marc-chan/sapling/dataset"
)

// worstGini seeds the search: the Gini impurity of a non-empty group is
// always strictly below 1, so any candidate passing the leaf size
// constraint improves on it.
const worstGini = 1.0

/*
Split represents a way to partition a dataset in two: samples whose
value for the feature at FeatureIndex is strictly below Threshold go
left, the rest go right. Impurity is the weighted Gini impurity the
partition achieves.
*/
type Split struct {
	FeatureIndex int
	Threshold    float64
	Impurity     float64
}

/*
SearchSplit takes a dataset and a minimum leaf size and returns the
split of the dataset with the lowest weighted Gini impurity, or
ErrNoValidSplit if no candidate leaves at least leafMin samples on both
sides.

Candidate thresholds are exactly the observed feature values: every
(row, feature) pair of the dataset contributes its value once, and
candidates are evaluated in that enumeration order against the whole
dataset. Ties are resolved in favor of the earliest candidate, which
makes the search deterministic for identical inputs. The scan is a
deliberate brute force over all N·D candidates, each partitioning all N
rows; sorting-based optimizations shift thresholds and tie-breaks, so
they are not applied here.
*/
func SearchSplit(ds *dataset.Dataset, leafMin int) (Split, error) {
	if leafMin < 1 {
		leafMin = 1
	}
	best := Split{Impurity: worstGini}
	found := false
	for r := 0; r < ds.Count(); r++ {
		for i := 0; i < ds.Width(); i++ {
			threshold := ds.Row(r)[i]
			left, right := ds.Partition(i, threshold)
			if left.Count() < leafMin || right.Count() < leafMin {
				continue
			}
			impurity, err := WeightedGini(left.Labels(), right.Labels())
			if err != nil {
				return Split{}, err
			}
			if impurity < best.Impurity {
				best = Split{FeatureIndex: i, Threshold: threshold, Impurity: impurity}
				found = true
			}
		}
	}
	if !found {
		return Split{}, ErrNoValidSplit
	}
	return best, nil
}
