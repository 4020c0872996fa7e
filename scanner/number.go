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
	"math"
	"strconv"

	"github.com/fastparse/fastparse/internal/bytesconv"
)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// ParseInt64 解析一个十进制整数
//
// 格式为可选的 '+'/'-' 符号加至少一位数字 解析前先跳过空白
// 累加在 uint64 上进行 每接收一位数字前做一次上界检查
// 正数上界为 MaxInt64 负数为 MaxInt64+1 因此 MinInt64 可被精确解析
//
// 溢出时游标停留在 `肇事数字` 处不回退 调用方若需继续
// 应自行跳过剩余的数字串
func (s *Scanner) ParseInt64() (int64, bool) {
	s.SkipWhitespace()

	if s.AtEnd() {
		s.SetError(CodeEndOfInput, "expected number")
		return 0, false
	}

	var negative bool
	switch s.Peek() {
	case '-':
		negative = true
		s.Advance()
	case '+':
		s.Advance()
	}

	if !isDigit(s.Peek()) {
		s.SetError(CodeInvalidNumber, "expected digit")
		return 0, false
	}

	var value uint64
	maxVal := uint64(math.MaxInt64)
	if negative {
		maxVal = uint64(math.MaxInt64) + 1
	}

	for !s.AtEnd() && isDigit(s.Peek()) {
		digit := uint64(s.Peek() - '0')
		if value > (maxVal-digit)/10 {
			s.SetError(CodeIntegerOverflow, "integer overflow")
			return 0, false
		}
		value = value*10 + digit
		s.Advance()
	}

	if negative {
		// value 最大为 MaxInt64+1 转换回绕后取负恰好得到 MinInt64
		return -int64(value), true
	}
	return int64(value), true
}

// floatEnd 返回自 pos 起最长十进制浮点前缀的结束偏移
//
// 接受的形态为 [sign] digits ['.' digits] [e/E [sign] digits]
// 整数与小数部分合计至少要有一位数字 指数部分只有跟随数字时才被计入
// 仅识别十进制形态 不含 hex/inf/nan
func floatEnd(buf []byte, pos int) int {
	i := pos
	if i < len(buf) && (buf[i] == '+' || buf[i] == '-') {
		i++
	}

	var digits int
	for i < len(buf) && isDigit(buf[i]) {
		i++
		digits++
	}
	if i < len(buf) && buf[i] == '.' {
		i++
		for i < len(buf) && isDigit(buf[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return pos
	}

	if i < len(buf) && (buf[i] == 'e' || buf[i] == 'E') {
		j := i + 1
		if j < len(buf) && (buf[j] == '+' || buf[j] == '-') {
			j++
		}
		if j < len(buf) && isDigit(buf[j]) {
			for j < len(buf) && isDigit(buf[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

// ParseFloat64 解析一个十进制浮点数
//
// 先确定最长合法前缀再交由 strconv 完成数值换算 游标精确前进消费的字节数
// ".5" 这类省略整数位的形态是合法的 而 "1e+" 只会消费到 "1"
// 数量级超出 float64 表示范围时钳制到 ±Inf 下溢趋零 均不视为失败
// 没有任何字节被接受时报 InvalidNumber
func (s *Scanner) ParseFloat64() (float64, bool) {
	s.SkipWhitespace()

	start := s.pos
	end := floatEnd(s.buf, start)
	if end == start {
		s.SetError(CodeInvalidNumber, "expected number")
		return 0, false
	}

	f, err := strconv.ParseFloat(bytesconv.B2S(s.buf[start:end]), 64)
	if err != nil {
		ne, ok := err.(*strconv.NumError)
		if !ok || ne.Err != strconv.ErrRange {
			s.SetError(CodeInvalidNumber, "expected number")
			return 0, false
		}
	}

	consumed := end - start
	s.pos += consumed
	s.column += consumed
	return f, true
}
