package main

import (
	"os"

	"github.com/marc-chan/sapling"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const defaultMaxDepth = 10

func initConfig(configFile string, log *zap.SugaredLogger) {
	viper.SetDefault("max-depth", defaultMaxDepth)
	viper.SetDefault("node-min", sapling.DefaultNodeMin)
	viper.SetDefault("leaf-min", sapling.DefaultLeafMin)
	viper.SetEnvPrefix("sapling")
	viper.AutomaticEnv()
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".sapling")
		viper.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
	}
	if err := viper.ReadInConfig(); err == nil {
		log.Debugf("Using config file %s", viper.ConfigFileUsed())
	} else if configFile != "" {
		log.Warnf("reading config file %s: %v", configFile, err)
	}
}

// growthParams resolves the growth parameter flags of a command against
// the config file and environment defaults: a flag left unset on the
// command line takes the viper value for its name.
func growthParams(cmd *cobra.Command, maxDepth, nodeMin, leafMin int) (int, int, int) {
	if !cmd.Flags().Changed("max-depth") {
		maxDepth = viper.GetInt("max-depth")
	}
	if !cmd.Flags().Changed("node-min") {
		nodeMin = viper.GetInt("node-min")
	}
	if !cmd.Flags().Changed("leaf-min") {
		leafMin = viper.GetInt("leaf-min")
	}
	return maxDepth, nodeMin, leafMin
}
