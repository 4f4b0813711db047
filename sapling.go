/*
Package sapling grows binary decision tree classifiers from labeled
tabular data with continuous features.

A Grower recursively partitions a dataset by the split with the lowest
weighted Gini impurity among every observed feature value, until the
routed label subsets are pure, too small, or too deep, and emits a tree
whose leaves predict class probabilities as empirical frequencies.
*/
package sapling

import (
	"context"

	"github.com/marc-chan/sapling/dataset"
	"github.com/marc-chan/sapling/tree"
)

const (
	// DefaultNodeMin is the minimum subset size for a node to be
	// developed further when the grower does not configure one.
	DefaultNodeMin = 2
	// DefaultLeafMin is the minimum size both sides of a candidate
	// split must reach when the grower does not configure one.
	DefaultLeafMin = 1
)

/*
ErrNonPositiveMaxDepth is the error returned by Grow when the grower
was configured with a maximum depth below 1.
*/
const ErrNonPositiveMaxDepth = TrainingError("maximum depth must be at least 1")

/*
ErrEmptyDataset is the error returned by Grow when the dataset to grow
from contains no samples.
*/
const ErrEmptyDataset = TrainingError("cannot grow tree from an empty dataset")

/*
Grower holds the stopping configuration with which trees are grown.

MaxDepth bounds how deep splitting goes: the root has depth 1 and
internal nodes exist at depths 1 through MaxDepth only, so every subset
reached below MaxDepth becomes a leaf regardless of purity.

NodeMin gates recursion: a subset smaller than NodeMin is never
developed further, even if a valid split for it exists.

LeafMin gates split candidacy: SearchSplit only considers candidates
leaving at least LeafMin samples on both sides. The two knobs are
independent and apply at different points of the algorithm.
*/
type Grower struct {
	MaxDepth int
	NodeMin  int
	LeafMin  int
}

/*
Option configures a Grower beyond its maximum depth.
*/
type Option func(*Grower)

/*
NodeMin sets the minimum subset size for a node to be developed
further.
*/
func NodeMin(n int) Option {
	return func(g *Grower) {
		g.NodeMin = n
	}
}

/*
LeafMin sets the minimum size both sides of a candidate split must
reach for the split to be considered.
*/
func LeafMin(n int) Option {
	return func(g *Grower) {
		g.LeafMin = n
	}
}

/*
New takes the maximum depth to grow trees to and a set of options and
returns a Grower with them. NodeMin and LeafMin default to
DefaultNodeMin and DefaultLeafMin when no option sets them.
*/
func New(maxDepth int, options ...Option) *Grower {
	g := &Grower{MaxDepth: maxDepth, NodeMin: DefaultNodeMin, LeafMin: DefaultLeafMin}
	for _, option := range options {
		option(g)
	}
	return g
}

/*
Grow takes a context and a dataset and returns the tree grown from it,
or an error if the grower configuration is invalid, the dataset is
empty, some subset that must be split admits no valid split, or the
context is cancelled. A failed Grow yields no tree.

Growth is a pure recursive computation over the immutable dataset:
repeated calls with identical inputs produce identical trees.
*/
func (g *Grower) Grow(ctx context.Context, ds *dataset.Dataset) (*tree.Tree, error) {
	if g.MaxDepth < 1 {
		return nil, ErrNonPositiveMaxDepth
	}
	if ds == nil || ds.Count() == 0 {
		return nil, ErrEmptyDataset
	}
	root, err := g.develop(ctx, ds, 1)
	if err != nil {
		return nil, err
	}
	return tree.New(root), nil
}

/*
develop returns the node predicting the given dataset at the given
depth: a leaf when the labels are pure, the dataset is below NodeMin or
the node lies below MaxDepth, and an internal node splitting the
dataset otherwise.
*/
func (g *Grower) develop(ctx context.Context, ds *dataset.Dataset, depth int) (*tree.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	score, count, err := Gini(ds.Labels())
	if err != nil {
		return nil, err
	}
	if score == 0 || count < g.nodeMin() || depth > g.MaxDepth {
		return leaf(ds, depth)
	}
	split, err := SearchSplit(ds, g.leafMin())
	if err != nil {
		return nil, err
	}
	left, right := ds.Partition(split.FeatureIndex, split.Threshold)
	n := &tree.Node{
		FeatureIndex: split.FeatureIndex,
		Threshold:    split.Threshold,
		Impurity:     split.Impurity,
		Depth:        depth,
	}
	n.Left, err = g.develop(ctx, left, depth+1)
	if err != nil {
		return nil, err
	}
	n.Right, err = g.develop(ctx, right, depth+1)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (g *Grower) nodeMin() int {
	if g.NodeMin < 1 {
		return DefaultNodeMin
	}
	return g.NodeMin
}

func (g *Grower) leafMin() int {
	if g.LeafMin < 1 {
		return DefaultLeafMin
	}
	return g.LeafMin
}

func leaf(ds *dataset.Dataset, depth int) (*tree.Node, error) {
	prediction, err := tree.NewPredictionFromLabels(ds.Labels())
	if err != nil {
		return nil, err
	}
	return &tree.Node{Depth: depth, Prediction: prediction}, nil
}
