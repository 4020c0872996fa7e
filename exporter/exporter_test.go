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

package exporter_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fastparse/fastparse/common"
	"github.com/fastparse/fastparse/confengine"
	"github.com/fastparse/fastparse/exporter"
	_ "github.com/fastparse/fastparse/exporter/sinker/reports"
	"github.com/fastparse/fastparse/format"
	"github.com/fastparse/fastparse/internal/json"
)

func TestExporterExport(t *testing.T) {
	file := filepath.Join(t.TempDir(), "reports.log")
	conf, err := confengine.LoadContent([]byte(fmt.Sprintf(`
exporter:
  reports:
    enabled: true
    filename: %s
`, file)))
	assert.NoError(t, err)

	exp, err := exporter.New(conf)
	assert.NoError(t, err)

	exp.Export(common.NewRecord(common.RecordReports, &format.Report{Format: "csv", Valid: true, Rows: 2}))
	exp.Export(common.NewRecord(common.RecordReports, "not a report"))
	exp.Close()

	b, err := os.ReadFile(file)
	assert.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(b), []byte{'\n'})
	assert.Len(t, lines, 1)

	var got format.Report
	assert.NoError(t, json.Unmarshal(lines[0], &got))
	assert.Equal(t, "csv", got.Format)
	assert.Equal(t, 2, got.Rows)
}

func TestExporterDisabled(t *testing.T) {
	conf, err := confengine.LoadContent([]byte(`
exporter:
  reports:
    enabled: false
`))
	assert.NoError(t, err)

	exp, err := exporter.New(conf)
	assert.NoError(t, err)

	// 未启用任何 sinker 导出为空操作
	exp.Export(common.NewRecord(common.RecordReports, &format.Report{Format: "csv"}))
	exp.Close()
}
