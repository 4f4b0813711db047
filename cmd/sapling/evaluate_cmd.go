package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/marc-chan/sapling"
	"github.com/marc-chan/sapling/dataset"
	"github.com/marc-chan/sapling/tree"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

type evaluateCmdConfig struct {
	*rootCmdConfig
	trainInput datasetInput
	testInput  string
	maxDepth   int
	nodeMin    int
	leafMin    int
}

func evaluateCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &evaluateCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a tree against a test dataset",
		Long:  `Grow a decision tree classifier from a training dataset and measure its predictions against a test dataset.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			trainingSet, _, err := config.trainInput.dataset(context.Background(), config.log)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			testingSet := datasetInput{path: config.testInput, metadataInput: config.trainInput.metadataInput, table: config.trainInput.table}
			testSet, _, err := testingSet.dataset(context.Background(), config.log)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			maxDepth, nodeMin, leafMin := growthParams(cmd, config.maxDepth, config.nodeMin, config.leafMin)
			grower := sapling.New(maxDepth, sapling.NodeMin(nodeMin), sapling.LeafMin(leafMin))
			config.log.Infof("Growing tree from a dataset with %d samples and %d features...", trainingSet.Count(), trainingSet.Width())
			t, err := grower.Grow(context.Background(), trainingSet)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(3)
			}
			config.log.Infof("Testing tree against a dataset with %d samples...", testSet.Count())
			err = renderEvaluation(t, testSet)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing tree: %v\n", err)
				os.Exit(4)
			}
		},
	}
	config.trainInput.registerFlags(cmd.PersistentFlags())
	registerGrowthFlags(cmd, &config.maxDepth, &config.nodeMin, &config.leafMin)
	cmd.PersistentFlags().StringVarP(&(config.testInput), "test-input", "t", "", "input with the test dataset, in any of the formats the input flag accepts (required)")
	return cmd
}

func (ecc *evaluateCmdConfig) Validate() error {
	if ecc.testInput == "" {
		return fmt.Errorf("required test-input flag was not set")
	}
	return nil
}

func renderEvaluation(t *tree.Tree, testSet *dataset.Dataset) error {
	if testSet.Count() == 0 {
		return fmt.Errorf("empty test dataset")
	}
	support := make(map[float64]int)
	predicted := make(map[float64]int)
	correct := make(map[float64]int)
	hits := 0
	for i := 0; i < testSet.Count(); i++ {
		p, err := t.Predict(testSet.Row(i))
		if err != nil {
			return fmt.Errorf("predicting sample %d: %v", i, err)
		}
		class, _ := p.PredictedValue()
		label := testSet.Label(i)
		support[label]++
		predicted[class]++
		if class == label {
			correct[label]++
			hits++
		}
	}
	classes := testSet.Classes()
	recalls := make([]float64, 0, len(classes))
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Class", "Support", "Precision", "Recall"})
	for _, class := range classes {
		precision := 0.0
		if predicted[class] > 0 {
			precision = float64(correct[class]) / float64(predicted[class])
		}
		recall := float64(correct[class]) / float64(support[class])
		recalls = append(recalls, recall)
		tw.AppendRow(table.Row{class, support[class], fmt.Sprintf("%.4f", precision), fmt.Sprintf("%.4f", recall)})
	}
	accuracy := float64(hits) / float64(testSet.Count())
	tw.AppendFooter(table.Row{"accuracy", testSet.Count(), fmt.Sprintf("%.4f", accuracy), fmt.Sprintf("%.4f macro", stat.Mean(recalls, nil))})
	tw.Render()
	return nil
}
