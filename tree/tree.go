package tree

import (
	"fmt"
	"strings"

	"github.com/marc-chan/sapling/dataset"
)

/*
Tree represents a grown decision tree classifier. It is composed of the
root node owning the rest of the nodes. A tree is built once by a
grower and is read-only afterwards: predicting with it never mutates it.
*/
type Tree struct {
	Root *Node
}

/*
New takes the root node of a grown tree and returns the tree.
*/
func New(root *Node) *Tree {
	return &Tree{Root: root}
}

/*
Predict takes a sample feature vector and returns the prediction of the
leaf the sample is routed to, or an error if the prediction cannot be
made.

Starting at the root, the sample descends left when its value at the
node's feature index is strictly below the node's threshold and right
otherwise, the same routing rule datasets are partitioned with during
growth. The returned prediction is the leaf's own: callers must not
mutate it. ErrShortSample is returned if the vector does not define a
feature some visited node splits on.
*/
func (t *Tree) Predict(sample []float64) (*Prediction, error) {
	if t == nil || t.Root == nil {
		return nil, fmt.Errorf("nil tree cannot predict samples")
	}
	n := t.Root
	for !n.Leaf() {
		if n.FeatureIndex >= len(sample) {
			return nil, ErrShortSample
		}
		if sample[n.FeatureIndex] < n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Prediction, nil
}

/*
Test takes a dataset and returns the prediction success rate of the tree
over it: the fraction of samples whose most probable predicted class
equals their label. An error is returned if the dataset is empty or a
sample cannot be predicted.
*/
func (t *Tree) Test(ds *dataset.Dataset) (float64, error) {
	if ds.Count() == 0 {
		return 0.0, fmt.Errorf("testing tree: empty dataset")
	}
	var hits float64
	for i := 0; i < ds.Count(); i++ {
		p, err := t.Predict(ds.Row(i))
		if err != nil {
			return 0.0, fmt.Errorf("testing tree: predicting sample %d: %v", i, err)
		}
		class, _ := p.PredictedValue()
		if class == ds.Label(i) {
			hits += 1.0
		}
	}
	return hits / float64(ds.Count()), nil
}

/*
Traverse takes a bottomup boolean and an error-returning function on a
node, and goes through the tree running the function with every node.
Traverse will call the function with a parent node before its children
if bottomup is false, and after its children if bottomup is true. If a
call to the function returns an error, the traversing is aborted and
the error is returned.
*/
func (t *Tree) Traverse(bottomup bool, f func(*Node) error) error {
	if t == nil || t.Root == nil {
		return nil
	}
	return traverse(t.Root, bottomup, f)
}

func traverse(n *Node, bottomup bool, f func(*Node) error) error {
	if !bottomup {
		if err := f(n); err != nil {
			return err
		}
	}
	for _, child := range []*Node{n.Left, n.Right} {
		if child == nil {
			continue
		}
		if err := traverse(child, bottomup, f); err != nil {
			return err
		}
	}
	if bottomup {
		return f(n)
	}
	return nil
}

/*
Depth returns the depth of the deepest node of the tree, counting the
root as depth 1. A nil or empty tree has depth 0.
*/
func (t *Tree) Depth() int {
	depth := 0
	t.Traverse(false, func(n *Node) error {
		if n.Depth > depth {
			depth = n.Depth
		}
		return nil
	})
	return depth
}

/*
Size returns the number of nodes in the tree, leaves included.
*/
func (t *Tree) Size() int {
	size := 0
	t.Traverse(false, func(*Node) error {
		size++
		return nil
	})
	return size
}

func (t *Tree) String() string {
	if t == nil || t.Root == nil {
		return ""
	}
	return subtreeString(t.Root)
}

func subtreeString(n *Node) string {
	var result string
	if n.Leaf() {
		result = fmt.Sprintf("{ %v (%d samples) }\n", n.Prediction, n.Prediction.Weight())
		return fmt.Sprintf("%s \n", result)
	}
	result = fmt.Sprintf("{ x[%d] < %v (impurity %v) }\n|\n", n.FeatureIndex, n.Threshold, n.Impurity)
	children := []*Node{n.Left, n.Right}
	for i, child := range children {
		for j, line := range strings.Split(subtreeString(child), "\n") {
			if len(line) > 0 {
				if j == 0 {
					result = fmt.Sprintf("%s|__%s\n", result, line)
				} else {
					if i == len(children)-1 {
						result = fmt.Sprintf("%s   %s\n", result, line)
					} else {
						result = fmt.Sprintf("%s|  %s\n", result, line)
					}
				}
			}
		}
	}
	return result
}
