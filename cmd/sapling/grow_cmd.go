package main

import (
	"context"
	"fmt"
	"os"

	"github.com/marc-chan/sapling"
	"github.com/marc-chan/sapling/tree"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*rootCmdConfig
	input     datasetInput
	maxDepth  int
	nodeMin   int
	leafMin   int
	dotOutput string
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a dataset",
		Long:  `Grow a decision tree classifier from a dataset and print its structure.`,
		Run: func(cmd *cobra.Command, args []string) {
			ds, featureNames, err := config.input.dataset(context.Background(), config.log)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			maxDepth, nodeMin, leafMin := growthParams(cmd, config.maxDepth, config.nodeMin, config.leafMin)
			grower := sapling.New(maxDepth, sapling.NodeMin(nodeMin), sapling.LeafMin(leafMin))
			config.log.Infof("Growing tree from a dataset with %d samples and %d features...", ds.Count(), ds.Width())
			t, err := grower.Grow(context.Background(), ds)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(3)
			}
			config.log.Infof("Done: %d nodes, depth %d", t.Size(), t.Depth())
			fmt.Println(t)
			if config.dotOutput != "" {
				err = outputDOT(config.dotOutput, t, featureNames)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(4)
				}
				config.log.Infof("Tree graph written to %s", config.dotOutput)
			}
		},
	}
	config.input.registerFlags(cmd.PersistentFlags())
	registerGrowthFlags(cmd, &config.maxDepth, &config.nodeMin, &config.leafMin)
	cmd.PersistentFlags().StringVar(&(config.dotOutput), "dot", "", "path to a file to which the grown tree will be written as a graphviz digraph")
	return cmd
}

func registerGrowthFlags(cmd *cobra.Command, maxDepth, nodeMin, leafMin *int) {
	cmd.PersistentFlags().IntVar(maxDepth, "max-depth", defaultMaxDepth, "maximum depth to split at, counting the root as depth 1")
	cmd.PersistentFlags().IntVar(nodeMin, "node-min", sapling.DefaultNodeMin, "minimum subset size for a node to be split further")
	cmd.PersistentFlags().IntVar(leafMin, "leaf-min", sapling.DefaultLeafMin, "minimum size a candidate split must leave on both sides")
}

func outputDOT(outputPath string, t *tree.Tree, featureNames []string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return t.WriteDOT(f, featureNames)
}
