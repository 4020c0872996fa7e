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
	"github.com/fastparse/fastparse/view"
)

// ParseQuotedString 解析一个双引号包裹的字符串 返回两引号之间的窗口
//
// 解析前先跳过空白 随后要求一个 '"' 作为开头
// 内容中的反斜杠会连同其后一个字节被原样跳过 不校验也不解码
// 返回的窗口因此可能仍含有转义序列 调用方按需自行处理
//
// 缺少开头或结尾引号都会报 UnterminatedString
// 输入在反斜杠后立刻结束时 按缺少结尾引号处理
func (s *Scanner) ParseQuotedString() (view.View, bool) {
	s.SkipWhitespace()

	if !s.MatchChar('"') {
		s.SetError(CodeUnterminatedString, "expected opening quote")
		return nil, false
	}

	start := s.pos
	for !s.AtEnd() && s.Peek() != '"' {
		if s.Peek() == '\\' {
			s.Advance()
			if s.AtEnd() {
				break
			}
		}
		s.Advance()
	}

	if !s.MatchChar('"') {
		s.SetError(CodeUnterminatedString, "expected closing quote")
		return nil, false
	}
	return view.New(s.buf[start : s.pos-1]), true
}
