/*
Package dataset provides the tabular training data representation trees
are grown from: a feature matrix of continuous values paired row by row
with a vector of numerically encoded class labels.
*/
package dataset

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

/*
Dataset represents an ordered collection of samples. Every sample is a
fixed-width vector of float64 features paired index for index with a
float64 class label.
*/
type Dataset struct {
	features [][]float64
	labels   []float64
}

/*
New takes a feature matrix and a label vector and returns a dataset
built with them, or an error if the matrix and the vector differ in
length or the feature vectors differ in width.

The returned dataset keeps the given slices: callers must not mutate
them afterwards.
*/
func New(features [][]float64, labels []float64) (*Dataset, error) {
	if len(features) != len(labels) {
		return nil, fmt.Errorf("building dataset: %d feature vectors paired with %d labels", len(features), len(labels))
	}
	for i, fv := range features {
		if len(fv) != len(features[0]) {
			return nil, fmt.Errorf("building dataset: feature vector %d has width %d, want %d", i, len(fv), len(features[0]))
		}
	}
	return &Dataset{features, labels}, nil
}

/*
Count returns the number of samples in the dataset.
*/
func (ds *Dataset) Count() int {
	return len(ds.features)
}

/*
Width returns the number of features every sample defines.
*/
func (ds *Dataset) Width() int {
	if len(ds.features) == 0 {
		return 0
	}
	return len(ds.features[0])
}

/*
Row returns the feature vector of the sample at the given index.
*/
func (ds *Dataset) Row(i int) []float64 {
	return ds.features[i]
}

/*
Label returns the class label of the sample at the given index.
*/
func (ds *Dataset) Label(i int) float64 {
	return ds.labels[i]
}

/*
Labels returns the label vector of the dataset.
*/
func (ds *Dataset) Labels() []float64 {
	return ds.labels
}

/*
Classes returns the distinct class labels present in the dataset in
increasing order.
*/
func (ds *Dataset) Classes() []float64 {
	present := make(map[float64]bool)
	for _, label := range ds.labels {
		present[label] = true
	}
	classes := maps.Keys(present)
	slices.Sort(classes)
	return classes
}

/*
Partition takes a feature index and a threshold and returns two datasets
splitting this one: the left one with the samples whose value for the
feature is strictly below the threshold, the right one with the rest.

This is the single routing rule of the system. Growing a tree and
predicting with it must route samples identically, so tree traversal
applies the same strict < comparison (see the tree package).
*/
func (ds *Dataset) Partition(featureIndex int, threshold float64) (*Dataset, *Dataset) {
	var leftFeatures, rightFeatures [][]float64
	var leftLabels, rightLabels []float64
	for i, fv := range ds.features {
		if fv[featureIndex] < threshold {
			leftFeatures = append(leftFeatures, fv)
			leftLabels = append(leftLabels, ds.labels[i])
		} else {
			rightFeatures = append(rightFeatures, fv)
			rightLabels = append(rightLabels, ds.labels[i])
		}
	}
	return &Dataset{leftFeatures, leftLabels}, &Dataset{rightFeatures, rightLabels}
}

func (ds *Dataset) String() string {
	return fmt.Sprintf("dataset with %d samples of %d features", ds.Count(), ds.Width())
}
