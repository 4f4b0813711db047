package tree

/*
Node is a node of the tree. It takes one of two variants:

An internal node holds the feature index and threshold of the split
chosen for it, the weighted Gini impurity that split achieved, and owns
exactly two children: Left for samples whose value at FeatureIndex is
strictly below Threshold, Right for the rest.

A leaf holds the Prediction for the samples routed to it and has no
children.

Depth is set on both variants, with the root at depth 1. Nodes never
share children and are not mutated once the tree is grown.
*/
type Node struct {
	// The feature index and threshold the node splits on.
	// Meaningless on leaves.
	FeatureIndex int
	Threshold    float64
	// The weighted Gini impurity achieved by the split.
	Impurity float64
	// The depth of the node, 1 for the root.
	Depth int
	// The children of an internal node. Both nil on leaves.
	Left  *Node
	Right *Node
	// The class probabilities for samples reaching the node.
	// Non-nil exactly on leaves.
	Prediction *Prediction
}

/*
Leaf returns whether the node is a leaf.
*/
func (n *Node) Leaf() bool {
	return n.Prediction != nil
}
