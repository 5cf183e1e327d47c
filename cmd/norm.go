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
	"os"

	"github.com/spf13/cobra"
	"github.com/wStockhausen/wtsTCSAM2015/indexblocks"
	"github.com/wStockhausen/wtsTCSAM2015/tcsamio"
)

// normCmd represents the norm command
var normCmd = &cobra.Command{
	Use:   "norm [file]",
	Short: "Rewrite an INDEX_BLOCK_SETS file in normalized form",
	Long: `
Reads an INDEX_BLOCK_SETS file and re-emits it on stdout with open range
operands substituted by the model dimension bounds, blocks in id order, and
one value per line. Useful for diffing two configurations, since the output
no longer depends on formatting or on open-ended markers.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)
		dims := loadDims(cmd.Flags())

		f, err := os.Open(args[0])
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		sets := indexblocks.NewIndexBlockSets(dims)
		if err := sets.Read(tcsamio.NewScanner(f, args[0])); err != nil {
			log.Fatal(err)
		}
		if err := sets.Write(os.Stdout); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(normCmd)
}
