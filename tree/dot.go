package tree

import (
	"fmt"
	"io"

	"github.com/awalterschulze/gographviz"
)

/*
WriteDOT takes an io.Writer and a slice of feature names and writes the
tree to the writer as a graphviz digraph, with a graph node per tree
node labeled with the node's split or, for leaves, its class
probabilities. Feature names are matched to feature indexes by
position; splits on features beyond the slice are labeled x[i].
*/
func (t *Tree) WriteDOT(w io.Writer, featureNames []string) error {
	if t == nil || t.Root == nil {
		return fmt.Errorf("cannot export nil tree")
	}
	graphAst, err := gographviz.ParseString(`digraph G {}`)
	if err != nil {
		return fmt.Errorf("exporting tree: %v", err)
	}
	graph := gographviz.NewGraph()
	if err := gographviz.Analyse(graphAst, graph); err != nil {
		return fmt.Errorf("exporting tree: %v", err)
	}
	nextID := 0
	if err := addDOTNode(graph, t.Root, &nextID, featureNames); err != nil {
		return fmt.Errorf("exporting tree: %v", err)
	}
	if _, err := io.WriteString(w, graph.String()); err != nil {
		return fmt.Errorf("exporting tree: %v", err)
	}
	return nil
}

func addDOTNode(graph *gographviz.Graph, n *Node, nextID *int, featureNames []string) error {
	id := fmt.Sprintf("%d", *nextID)
	*nextID++
	var label string
	if n.Leaf() {
		label = fmt.Sprintf("\"%v\\nsamples = %d\"", n.Prediction, n.Prediction.Weight())
	} else {
		label = fmt.Sprintf("\"%s < %v\\nimpurity = %v\"", dotFeatureName(n.FeatureIndex, featureNames), n.Threshold, n.Impurity)
	}
	if err := graph.AddNode("G", id, map[string]string{"label": label}); err != nil {
		return err
	}
	for _, child := range []*Node{n.Left, n.Right} {
		if child == nil {
			continue
		}
		childID := fmt.Sprintf("%d", *nextID)
		if err := addDOTNode(graph, child, nextID, featureNames); err != nil {
			return err
		}
		if err := graph.AddEdge(id, childID, true, nil); err != nil {
			return err
		}
	}
	return nil
}

func dotFeatureName(i int, featureNames []string) string {
	if i < len(featureNames) {
		return featureNames[i]
	}
	return fmt.Sprintf("x[%d]", i)
}
