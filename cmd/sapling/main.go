package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootCmdConfig struct {
	verbose    bool
	configFile string
	log        *zap.SugaredLogger
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:   "sapling",
		Short: "sapling is a tool to grow decision tree classifiers",
		Long:  `A tool to grow decision tree classifiers from labeled tabular data, evaluate them, and use them to predict class probabilities`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.log = newLogger(config.verbose)
			initConfig(config.configFile, config.log)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "print debug messages")
	rootCmd.PersistentFlags().StringVar(&(config.configFile), "config", "", "path to a YML file with default values for the growth parameter flags")
	rootCmd.AddCommand(versionCmd(), growCmd(config), evaluateCmd(config), predictCmd(config))
	return rootCmd
}
