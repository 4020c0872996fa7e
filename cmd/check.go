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
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"

	"github.com/spf13/cobra"

	"github.com/fastparse/fastparse/batch"
	"github.com/fastparse/fastparse/confengine"
	"github.com/fastparse/fastparse/format/fjson"
)

type checkCmdConfig struct {
	Format        string
	NDJSON        bool
	Workers       int
	OnlyErrors    bool
	Console       bool
	ReportFile    string
	ReportSize    int
	ReportBackups int
}

func (c *checkCmdConfig) Yaml() []byte {
	text := `
logger:
  stdout: true
  level: error

batch:
  format: {{ .Format }}
  workers: {{ .Workers }}

{{ if .OnlyErrors }}
processor:
  - name: onlyerrors

pipeline:
  - name: reports
    processors:
      - onlyerrors
{{ else }}
processor:
pipeline:
{{ end }}

exporter:
  reports:
    enabled: true
    console: {{ .Console }}
    filename: {{ .ReportFile }}
    maxSize: {{ .ReportSize }}
    maxBackups: {{ .ReportBackups }}
    maxAge: 7
`
	tpl, err := template.New("Config").Parse(text)
	if err != nil {
		return nil
	}

	var buf bytes.Buffer
	err = tpl.Execute(&buf, map[string]interface{}{
		"Format":        c.Format,
		"Workers":       c.Workers,
		"OnlyErrors":    c.OnlyErrors,
		"Console":       c.Console,
		"ReportFile":    c.ReportFile,
		"ReportSize":    c.ReportSize,
		"ReportBackups": c.ReportBackups,
	})
	if err != nil {
		return nil
	}
	return buf.Bytes()
}

var checkConfig checkCmdConfig

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate files or stdin against a format",
	Run: func(cmd *cobra.Command, args []string) {
		if checkConfig.NDJSON {
			checkConfig.Format = fjson.LinesName
		}

		cfg, err := confengine.LoadContent(checkConfig.Yaml())
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}

		b, err := batch.New(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create batch: %v\n", err)
			os.Exit(1)
		}

		var summary batch.Summary
		if len(args) == 0 {
			summary, err = b.RunReader("stdin", os.Stdin)
		} else {
			summary, err = b.Run(context.Background(), args)
		}
		b.Close()

		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		fmt.Fprintf(os.Stderr, "checked: files=%d valid=%d invalid=%d rows=%d bytes=%d\n",
			summary.Files, summary.Valid, summary.Invalid, summary.Rows, summary.Bytes)

		if err != nil || summary.Invalid > 0 {
			os.Exit(1)
		}
	},
	Example: "# fastparse check --format csv data1.csv data2.csv\n" +
		"# cat records.ndjson | fastparse check --ndjson --only-errors",
}

func init() {
	checkCmd.Flags().StringVar(&checkConfig.Format, "format", "csv", "Format to validate against [csv|json|ndjson]")
	checkCmd.Flags().BoolVar(&checkConfig.NDJSON, "ndjson", false, "Shorthand for --format ndjson")
	checkCmd.Flags().IntVar(&checkConfig.Workers, "workers", 0, "Number of concurrent workers, defaults to 2x CPU cores")
	checkCmd.Flags().BoolVar(&checkConfig.OnlyErrors, "only-errors", false, "Report failed checks only")
	checkCmd.Flags().BoolVar(&checkConfig.Console, "console", true, "Write reports to stdout")
	checkCmd.Flags().StringVar(&checkConfig.ReportFile, "reports.file", "fastparse.reports", "Path to reports file when console is disabled")
	checkCmd.Flags().IntVar(&checkConfig.ReportSize, "reports.size", 100, "Maximum size of reports file in MB")
	checkCmd.Flags().IntVar(&checkConfig.ReportBackups, "reports.backups", 10, "Maximum number of old reports files to retain")
	rootCmd.AddCommand(checkCmd)
}
