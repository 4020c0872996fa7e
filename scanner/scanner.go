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

package scanner

import (
	"github.com/fastparse/fastparse/internal/bufbytes"
	"github.com/fastparse/fastparse/view"
)

// Scanner 在单块不可变 buffer 上维护解析游标
//
// Scanner 持有三类状态
// - 游标位置 pos 只会单调前进 永不回退
// - 行列号 均从 1 开始 遇到 '\n' 时行号加一列号归位
// - 粘滞错误槽 由失败的解析操作写入 成功的操作不会清除 参见 error.go
//
// Scanner 借用输入 buffer 所有解析结果均为指向原始输入的 view.View
// 整个解析过程不产生任何拷贝与分配
type Scanner struct {
	buf    []byte
	pos    int
	line   int
	column int

	err    *ScanError
	msgbuf *bufbytes.Bytes
}

// New 创建并返回 Scanner 实例 输入为借用的字节切片
func New(b []byte) *Scanner {
	return &Scanner{
		buf:    b,
		line:   1,
		column: 1,
	}
}

// NewString 以零拷贝方式在字符串上创建 Scanner
func NewString(s string) *Scanner {
	return New(view.FromString(s))
}

// AtEnd 判断游标是否到达输入末尾
func (s *Scanner) AtEnd() bool {
	return s.pos >= len(s.buf)
}

// Remaining 返回未消费的字节数
func (s *Scanner) Remaining() int {
	return len(s.buf) - s.pos
}

// Peek 返回游标处的字节 不移动游标 到达末尾时返回 0x00
func (s *Scanner) Peek() byte {
	if s.AtEnd() {
		return 0
	}
	return s.buf[s.pos]
}

// Advance 消费并返回游标处的字节 到达末尾时返回 0x00 且不移动
//
// 消费 '\n' 时行号加一且列号重置为 1 其余字节仅列号加一
func (s *Scanner) Advance() byte {
	if s.AtEnd() {
		return 0
	}

	c := s.buf[s.pos]
	s.pos++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

// Pos 返回游标的字节偏移量
func (s *Scanner) Pos() int {
	return s.pos
}

// Line 返回游标所在行号 从 1 开始
func (s *Scanner) Line() int {
	return s.line
}

// Column 返回游标所在列号 从 1 开始
func (s *Scanner) Column() int {
	return s.column
}

// Rest 返回未消费部分的只读窗口 常用于诊断输出
func (s *Scanner) Rest() view.View {
	return view.New(s.buf[s.pos:])
}
