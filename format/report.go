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
	"bytes"

	"github.com/fastparse/fastparse/internal/bufbytes"
	"github.com/fastparse/fastparse/internal/fasttime"
	"github.com/fastparse/fastparse/internal/splitio"
)

// maxContextBytes 错误上下文摘要的长度上限
const maxContextBytes = 256

// Report 为一次校验的完整报告 可被导出与订阅
//
// 校验失败时附带错误现场 Line/Column/Code/Error
// Context 为出错行的有界摘要 便于在日志或终端中直接定位
type Report struct {
	Format    string
	Source    string
	Valid     bool
	Bytes     int
	Rows      int
	Fields    int
	Line      int
	Column    int
	Code      string
	Error     string
	Context   string
	TraceID   string
	Timestamp int64
}

// NewReport 基于校验结果构建 Report
func NewReport(format, source string, data []byte, ret Result) *Report {
	r := &Report{
		Format:    format,
		Source:    source,
		Valid:     ret.Valid,
		Bytes:     len(data),
		Rows:      ret.Rows,
		Fields:    ret.Fields,
		Timestamp: fasttime.UnixTimestamp(),
	}

	if ret.Err != nil {
		r.Line = ret.Err.Line
		r.Column = ret.Err.Column
		r.Code = ret.Err.Code.String()
		r.Error = ret.Err.Message
		r.Context = lineContext(data, ret.Err.Line)
	}
	return r
}

// lineContext 提取第 n 行的内容作为错误上下文 超长部分截断
func lineContext(data []byte, n int) string {
	if n <= 0 {
		return ""
	}

	sc := splitio.NewScanner(data)
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return ""
		}
	}

	line := bytes.TrimRight(sc.Bytes(), "\r\n")
	buf := bufbytes.New(maxContextBytes)
	buf.Write(line)
	return buf.Text()
}
