package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/marc-chan/sapling"
	"github.com/marc-chan/sapling/tree"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	*rootCmdConfig
	input    datasetInput
	samples  string
	maxDepth int
	nodeMin  int
	leafMin  int
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict class probabilities for samples",
		Long:  `Grow a decision tree classifier from a training dataset and use it to predict class probabilities for a set of samples.`,
		Run: func(cmd *cobra.Command, args []string) {
			ds, _, err := config.input.dataset(context.Background(), config.log)
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
			err = predictSamples(t, config.samples)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
		},
	}
	config.input.registerFlags(cmd.PersistentFlags())
	registerGrowthFlags(cmd, &config.maxDepth, &config.nodeMin, &config.leafMin)
	cmd.PersistentFlags().StringVarP(&(config.samples), "samples", "s", "", "path to a headerless CSV file with one feature vector per row to predict (defaults to STDIN)")
	return cmd
}

func predictSamples(t *tree.Tree, samplesPath string) error {
	var f *os.File
	var err error
	if samplesPath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(samplesPath)
		if err != nil {
			return fmt.Errorf("opening samples at %s: %v", samplesPath, err)
		}
		defer f.Close()
	}
	r := csv.NewReader(f)
	for l := 1; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading samples: %v", err)
		}
		sample := make([]float64, len(row))
		for i, v := range row {
			sample[i], err = strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("parsing sample on line %d: converting %s to float64: %v", l, v, err)
			}
		}
		p, err := t.Predict(sample)
		if err != nil {
			return fmt.Errorf("predicting sample on line %d: %v", l, err)
		}
		fmt.Printf("%v -> %v\n", sample, p)
	}
	return nil
}
