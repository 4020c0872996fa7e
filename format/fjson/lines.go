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

package fjson

import (
	"bytes"

	"github.com/fastparse/fastparse/common"
	"github.com/fastparse/fastparse/format"
	"github.com/fastparse/fastparse/internal/splitio"
	"github.com/fastparse/fastparse/scanner"
)

const LinesName = "ndjson"

func init() {
	format.Register(LinesName, NewLines)
}

// CheckLines 按 NDJSON 约定逐行校验 每行一个 JSON 值 空行跳过
//
// 行切割复用 splitio 零拷贝扫描 错误位置会换算回整块 buffer 的行号
func CheckLines(data []byte, maxDepth int) format.Result {
	var ret format.Result

	sc := splitio.NewScanner(data)
	var lineno, offset int
	for sc.Scan() {
		lineno++
		line := sc.Bytes()
		if len(bytes.TrimRight(line, " \t\r\n")) == 0 {
			offset += len(line)
			continue
		}

		s := scanner.New(line)
		ok := skipValue(s, maxDepth)
		if ok {
			s.SkipWhitespace()
			if !s.AtEnd() {
				s.SetError(scanner.CodeCustom, "trailing data after json value")
				ok = false
			}
		}
		if !ok {
			if !s.HasError() {
				s.SetError(scanner.CodeCustom, "malformed json value")
			}
			serr := s.LastError()
			ret.Err = &scanner.ScanError{
				Code:    serr.Code,
				Message: serr.Message,
				Line:    lineno + serr.Line - 1,
				Column:  serr.Column,
			}
			ret.Consumed = offset + s.Pos()
			return ret
		}

		ret.Rows++
		offset += len(line)
	}

	ret.Valid = true
	ret.Consumed = len(data)
	return ret
}

type linesChecker struct {
	conf Config
}

// NewLines 创建并返回 ndjson Checker 实例
func NewLines(opts common.Options) (format.Checker, error) {
	conf := Config{MaxDepth: MaxDepth}
	if v, err := opts.GetInt("maxDepth"); err == nil && v > 0 {
		conf.MaxDepth = v
	}
	return &linesChecker{conf: conf}, nil
}

func (c *linesChecker) Name() string {
	return LinesName
}

func (c *linesChecker) Check(data []byte) format.Result {
	return CheckLines(data, c.conf.MaxDepth)
}
