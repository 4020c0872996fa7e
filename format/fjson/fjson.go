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

// Package fjson 提供 JSON 结构校验 Checker
//
// 只做结构层面的跳过 不构建任何对象 不产生分配
// 字符串按引号配对处理 转义序列原样跳过 数字复用 scanner 的浮点解析
package fjson

import (
	"github.com/fastparse/fastparse/common"
	"github.com/fastparse/fastparse/format"
	"github.com/fastparse/fastparse/scanner"
	"github.com/fastparse/fastparse/view"
)

const Name = "json"

var (
	litTrue  = view.FromString("true")
	litFalse = view.FromString("false")
	litNull  = view.FromString("null")
)

// MaxDepth 默认的最大嵌套深度 超出后置 CodeCustom 错误
//
// 递归实现需要防御深度嵌套的输入打爆 goroutine 栈
const MaxDepth = 10000

func init() {
	format.Register(Name, New)
}

// SkipValue 跳过一个完整的 JSON 值 成功返回 true
//
// 失败分两类 结构性缺失(如缺 ':' 或字面量拼写错误)直接返回 false 不置错误
// 底层解析失败(字符串未闭合 / 数字非法 / 深度超限)会在 scanner 错误槽留下记录
func SkipValue(s *scanner.Scanner) bool {
	return skipValue(s, MaxDepth)
}

func skipValue(s *scanner.Scanner, depth int) bool {
	if depth <= 0 {
		s.SetError(scanner.CodeCustom, "max nesting depth exceeded")
		return false
	}

	s.SkipWhitespace()
	switch c := s.Peek(); c {
	case '{':
		return skipObject(s, depth)
	case '[':
		return skipArray(s, depth)
	case '"':
		_, ok := s.ParseQuotedString()
		return ok
	case 't':
		return s.MatchLiteral(litTrue)
	case 'f':
		return s.MatchLiteral(litFalse)
	case 'n':
		return s.MatchLiteral(litNull)
	default:
		if c == '-' || (c >= '0' && c <= '9') {
			_, ok := s.ParseFloat64()
			return ok
		}
		return false
	}
}

func skipObject(s *scanner.Scanner, depth int) bool {
	if !s.MatchChar('{') {
		return false
	}

	s.SkipWhitespace()
	if s.MatchChar('}') {
		return true
	}

	for {
		if _, ok := s.ParseQuotedString(); !ok {
			return false
		}
		s.SkipWhitespace()
		if !s.MatchChar(':') {
			return false
		}
		if !skipValue(s, depth-1) {
			return false
		}

		s.SkipWhitespace()
		if !s.MatchChar(',') {
			break
		}
	}
	return s.MatchChar('}')
}

func skipArray(s *scanner.Scanner, depth int) bool {
	if !s.MatchChar('[') {
		return false
	}

	s.SkipWhitespace()
	if s.MatchChar(']') {
		return true
	}

	for {
		if !skipValue(s, depth-1) {
			return false
		}

		s.SkipWhitespace()
		if !s.MatchChar(',') {
			break
		}
	}
	return s.MatchChar(']')
}

// Config JSON Checker 的策略配置
type Config struct {
	// MaxDepth 最大嵌套深度 0 表示使用默认值
	MaxDepth int `config:"maxDepth"`
}

type checker struct {
	conf Config
}

// New 创建并返回 json Checker 实例
func New(opts common.Options) (format.Checker, error) {
	conf := Config{MaxDepth: MaxDepth}
	if v, err := opts.GetInt("maxDepth"); err == nil && v > 0 {
		conf.MaxDepth = v
	}
	return &checker{conf: conf}, nil
}

func (c *checker) Name() string {
	return Name
}

// Check 校验整块 buffer 是否为单个合法的 JSON 值
//
// 值之后允许尾随空白 出现其他内容视为非法
func (c *checker) Check(data []byte) format.Result {
	s := scanner.New(data)
	var ret format.Result

	if ok := skipValue(s, c.conf.MaxDepth); !ok {
		if !s.HasError() {
			s.SetError(scanner.CodeCustom, "malformed json value")
		}
		ret.Err = s.LastError()
		ret.Consumed = s.Pos()
		return ret
	}

	s.SkipWhitespace()
	if !s.AtEnd() {
		s.SetError(scanner.CodeCustom, "trailing data after json value")
		ret.Err = s.LastError()
		ret.Consumed = s.Pos()
		return ret
	}

	ret.Valid = true
	ret.Rows = 1
	ret.Consumed = s.Pos()
	return ret
}
