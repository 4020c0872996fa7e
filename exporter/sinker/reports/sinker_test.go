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

package reports

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fastparse/fastparse/common"
	"github.com/fastparse/fastparse/exporter"
	"github.com/fastparse/fastparse/format"
	"github.com/fastparse/fastparse/internal/json"
)

func TestSinker(t *testing.T) {
	file := filepath.Join(t.TempDir(), "reports.log")
	s, err := New(exporter.Config{
		Reports: exporter.ReportsConfig{
			Enabled:  true,
			Filename: file,
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, common.RecordReports, s.Name())

	assert.NoError(t, s.Sink(&format.Report{Format: "csv", Source: "a.csv", Valid: true, Rows: 3}))
	assert.NoError(t, s.Sink(&format.Report{Format: "json", Source: "b.json", Valid: false, Line: 2, Column: 7}))
	assert.NoError(t, s.Sink("not a report"))
	s.Close()

	b, err := os.ReadFile(file)
	assert.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(b), []byte{'\n'})
	assert.Len(t, lines, 2)

	var got format.Report
	assert.NoError(t, json.Unmarshal(lines[0], &got))
	assert.Equal(t, "csv", got.Format)
	assert.Equal(t, 3, got.Rows)
	assert.True(t, got.Valid)

	assert.NoError(t, json.Unmarshal(lines[1], &got))
	assert.False(t, got.Valid)
	assert.Equal(t, 2, got.Line)
	assert.Equal(t, 7, got.Column)
}
