/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/wStockhausen/wtsTCSAM2015/params"
	"github.com/wStockhausen/wtsTCSAM2015/tcsamio"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tcsam",
	Short: "Tools for TCSAM model configuration and index-block files",
	Long: `
Reads and checks the text files that configure a TCSAM assessment model run:
the model configuration (year span, size bins, fishery and survey labels)
and the INDEX_BLOCK_SETS files that tie parameters to subsets of the model
dimensions.

Dimension bounds come from a model configuration file (--config) or can be
given directly by flags for quick checks on standalone block files.
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	optConfigPath string
	optDims       params.Dims
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.StringVarP(&optConfigPath, "config", "c", "", "Model configuration file supplying dimension bounds")
	pf.IntVar(&optDims.MinYear, "min-year", 0, "Min model year (when no --config)")
	pf.IntVar(&optDims.MaxYear, "max-year", 0, "Max model year (when no --config)")
	pf.IntVar(&optDims.SizeBins, "size-bins", 0, "Number of size bins (when no --config)")
	pf.IntVar(&optDims.Fisheries, "fisheries", 0, "Number of fisheries (when no --config)")
	pf.IntVar(&optDims.Surveys, "surveys", 0, "Number of surveys (when no --config)")
	if err := viper.BindPFlag("verbose", pf.Lookup("verbose")); err != nil {
		log.Fatal(err)
	}
	viper.SetEnvPrefix("TCSAM")
	viper.AutomaticEnv()
}

// setDefaultSlog installs the default logger honoring --verbose / TCSAM_VERBOSE.
func setDefaultSlog(_ *cobra.Command, _ []string) {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// loadDims resolves the dimension bounds for a run, preferring a model
// configuration file over the ad-hoc flags.
func loadDims(flags *pflag.FlagSet) params.Dims {
	if optConfigPath == "" {
		if !flags.Changed("min-year") || !flags.Changed("max-year") {
			log.Fatal("either --config or --min-year/--max-year are required")
		}
		return optDims
	}
	f, err := os.Open(optConfigPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	mc, err := params.ReadModelConfig(tcsamio.NewScanner(f, optConfigPath))
	if err != nil {
		log.Fatal(err)
	}
	slog.Debug("Read model configuration", "name", mc.Name,
		"years", mc.MaxYear-mc.MinYear+1, "sizeBins", len(mc.SizeMidPoints))
	return mc.Dims()
}
