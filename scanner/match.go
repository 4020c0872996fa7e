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
	"bytes"

	"github.com/fastparse/fastparse/view"
)

// MatchChar 尝试消费一个指定字节
//
// 匹配成功时消费并返回 true 否则游标不动返回 false
// 不匹配不算失败 不会写入错误槽
func (s *Scanner) MatchChar(c byte) bool {
	if s.Peek() == c {
		s.Advance()
		return true
	}
	return false
}

// MatchLiteral 尝试整体消费一段字节序列 空序列恒匹配成功
//
// 成功时列号按序列长度整体推进 不检查其中的换行
// 因此仅适用于单行内的字面量 这也是调用方的使用约定
func (s *Scanner) MatchLiteral(lit view.View) bool {
	n := lit.Len()
	if s.Remaining() >= n && bytes.Equal(s.buf[s.pos:s.pos+n], lit) {
		s.pos += n
		s.column += n
		return true
	}
	return false
}
