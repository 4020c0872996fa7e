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

package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fastparse/fastparse/common"
	"github.com/fastparse/fastparse/scanner"
)

func TestNewReportValid(t *testing.T) {
	data := []byte("a,b\nc,d\n")
	r := NewReport("csv", "orders.csv", data, Result{
		Valid:    true,
		Rows:     2,
		Fields:   4,
		Consumed: len(data),
	})

	assert.Equal(t, "csv", r.Format)
	assert.Equal(t, "orders.csv", r.Source)
	assert.True(t, r.Valid)
	assert.Equal(t, len(data), r.Bytes)
	assert.Equal(t, 2, r.Rows)
	assert.Equal(t, 4, r.Fields)
	assert.Greater(t, r.Timestamp, int64(0))

	assert.Zero(t, r.Line)
	assert.Empty(t, r.Code)
	assert.Empty(t, r.Error)
	assert.Empty(t, r.Context)
}

func TestNewReportInvalid(t *testing.T) {
	data := []byte("line one\nbad line here\nline three\n")
	r := NewReport("json", "stdin", data, Result{
		Err: &scanner.ScanError{
			Code:    scanner.CodeCustom,
			Message: "malformed json value",
			Line:    2,
			Column:  5,
		},
	})

	assert.False(t, r.Valid)
	assert.Equal(t, 2, r.Line)
	assert.Equal(t, 5, r.Column)
	assert.Equal(t, "Custom", r.Code)
	assert.Equal(t, "malformed json value", r.Error)
	assert.Equal(t, "bad line here", r.Context)
}

func TestLineContext(t *testing.T) {
	tests := []struct {
		name string
		data string
		line int
		want string
	}{
		{
			name: "First line",
			data: "aa\nbb\ncc",
			line: 1,
			want: "aa",
		},
		{
			name: "Last line without terminator",
			data: "aa\nbb\ncc",
			line: 3,
			want: "cc",
		},
		{
			name: "CRLF trimmed",
			data: "aa\r\nbb\r\n",
			line: 1,
			want: "aa",
		},
		{
			name: "Line out of range",
			data: "aa\n",
			line: 5,
			want: "",
		},
		{
			name: "Zero line",
			data: "aa\n",
			line: 0,
			want: "",
		},
		{
			name: "Long line truncated",
			data: strings.Repeat("x", 1000) + "\n",
			line: 1,
			want: strings.Repeat("x", maxContextBytes),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lineContext([]byte(tt.data), tt.line))
		})
	}
}

type stubChecker struct{}

func (stubChecker) Name() string             { return "stub" }
func (stubChecker) Check(data []byte) Result { return Result{Valid: true, Consumed: len(data)} }

func TestCheckerFactory(t *testing.T) {
	Register("stub", func(opts common.Options) (Checker, error) {
		return stubChecker{}, nil
	})

	f, err := Get("stub")
	assert.NoError(t, err)

	c, err := f(nil)
	assert.NoError(t, err)
	assert.Equal(t, "stub", c.Name())
	assert.Contains(t, Names(), "stub")

	_, err = Get("not-exist")
	assert.Error(t, err)
	assert.Equal(t, "format checker (not-exist) not found", err.Error())
}
