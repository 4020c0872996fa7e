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

package fcsv

import (
	"fmt"

	"github.com/fastparse/fastparse/common"
	"github.com/fastparse/fastparse/format"
	"github.com/fastparse/fastparse/scanner"
	"github.com/fastparse/fastparse/view"
)

const (
	// Name 格式名称
	Name = "csv"

	// MaxFields 单行字段数上限 超出的字段留在输入中不被消费
	MaxFields = 64
)

func init() {
	format.Register(Name, New)
}

// parseField 解析单个 CSV 字段
//
// 字段先跳过前导空白 注意这里的空白包含换行 因此紧跟逗号的换行会被吞掉
// 并让下一行的内容续进当前行 这是刻意保留的行为 调用方需知晓
//
// 以 '"' 开头的字段按引号字符串解析 内容永不修剪
// 其余字节一路收集到 ',' '\n' '\r' 为止 并修剪尾部的空格与制表符
// 裸字段允许为空 游标已在输入末尾时返回 false 且不写错误槽
func parseField(s *scanner.Scanner) (view.View, bool) {
	s.SkipWhitespace()

	if s.AtEnd() {
		return nil, false
	}

	if s.Peek() == '"' {
		return s.ParseQuotedString()
	}

	rest := s.Rest()
	start := s.Pos()
	for !s.AtEnd() {
		c := s.Peek()
		if c == ',' || c == '\n' || c == '\r' {
			break
		}
		s.Advance()
	}

	raw := rest.Substr(0, s.Pos()-start)
	n := raw.Len()
	for n > 0 && (raw[n-1] == ' ' || raw[n-1] == '\t') {
		n--
	}
	return raw.Substr(0, n), true
}

// ParseRow 解析一行 CSV 并将字段窗口写入 fields 返回字段个数
//
// 字段以 ',' 分隔 行以 "\r\n" "\r" 或 "\n" 结束 行终止符缺失不算错误
// 最多写入 min(len(fields), MaxFields) 个字段 存储由调用方提供 解析不分配
// 返回 0 表示空行或输入结束 引号字段失败时中止并保留错误槽现场
func ParseRow(s *scanner.Scanner, fields []view.View) int {
	limit := len(fields)
	if limit > MaxFields {
		limit = MaxFields
	}

	var count int
	for !s.AtEnd() && count < limit {
		field, ok := parseField(s)
		if !ok {
			break
		}
		fields[count] = field
		count++

		if !s.MatchChar(',') {
			break
		}
	}

	// 行终止符 "\r\n" 或单独的 "\r" "\n"
	if s.MatchChar('\r') {
		s.MatchChar('\n')
	} else {
		s.MatchChar('\n')
	}
	return count
}

// Config CSV Checker 的策略配置
type Config struct {
	// UniformFields 要求所有行与首行的字段数一致
	UniformFields bool `config:"uniformFields"`
}

type checker struct {
	conf Config
}

// New 创建并返回 csv Checker 实例
func New(opts common.Options) (format.Checker, error) {
	var conf Config
	if v, err := opts.GetBool("uniformFields"); err == nil {
		conf.UniformFields = v
	}
	return &checker{conf: conf}, nil
}

func (c *checker) Name() string {
	return Name
}

// Check 逐行解析整块 buffer 统计行数与字段总数
func (c *checker) Check(data []byte) format.Result {
	s := scanner.New(data)
	var fields [MaxFields]view.View
	var ret format.Result

	refFields := -1
	for !s.AtEnd() {
		before := s.Pos()
		n := ParseRow(s, fields[:])
		if s.HasError() {
			ret.Err = s.LastError()
			ret.Consumed = s.Pos()
			return ret
		}
		if n == 0 && s.Pos() == before {
			break
		}
		if n == 0 {
			continue
		}

		ret.Rows++
		ret.Fields += n
		if c.conf.UniformFields {
			if refFields >= 0 && n != refFields {
				s.SetError(scanner.CodeCustom, fmt.Sprintf("expected %d fields per row, got %d", refFields, n))
				ret.Err = s.LastError()
				ret.Consumed = s.Pos()
				return ret
			}
			refFields = n
		}
	}

	ret.Valid = true
	ret.Consumed = s.Pos()
	return ret
}
