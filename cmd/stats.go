// Copyright 2025 The fastparse Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fastparse/fastparse/format/fcsv"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report CSV row and column statistics",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "stats requires at least one file")
			os.Exit(1)
		}

		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
				os.Exit(1)
			}

			stats, err := fcsv.Stats(data)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				os.Exit(1)
			}

			fmt.Printf("%s: rows=%d fields=[%d, %d]\n", path, stats.Rows, stats.MinFields, stats.MaxFields)
			for col, n := range stats.Distinct {
				fmt.Printf("- col%d: %d distinct values\n", col, n)
			}
		}
	},
	Example: "# fastparse stats data1.csv data2.csv",
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
