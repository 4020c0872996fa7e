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
	"encoding/binary"
)

// 空白字符集合固定为 space/tab/LF/CR 面向字节不感知编码
//
// 快速路径以 16 字节为一个 lane 处理 对应 SSE2/NEON 的寄存器宽度
// lane 内所有字节均为空白时整体前进 否则退出交由逐字节路径收尾
// 两条路径的结果必须逐字节一致 fallback 同时也是正确性基准 参见单测
const laneSize = 16

const (
	swarOnes  uint64 = 0x0101010101010101
	swarLows  uint64 = 0x7f7f7f7f7f7f7f7f
	swarHighs uint64 = 0x8080808080808080
)

// wsEnd 返回 buf 中自 pos 起最长空白前缀的结束偏移 按 CPU 能力在包初始化时绑定
var wsEnd func(buf []byte, pos int) int

func init() {
	if hasFastLanes() {
		wsEnd = wsEndLanes
	} else {
		wsEnd = wsEndScalar
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// wsEndScalar 逐字节扫描空白前缀
func wsEndScalar(buf []byte, pos int) int {
	for pos < len(buf) && isSpace(buf[pos]) {
		pos++
	}
	return pos
}

// zeroBytes 返回掩码 v 中每个等于 0x00 的字节对应位置的最高位被置 1
//
// 先对每字节低 7 位加 0x7f 使非零的低位进位到最高位 再与原值的最高位取并
// 每个字节独立计算 不存在跨字节进位 结果是精确的
func zeroBytes(v uint64) uint64 {
	return ^(((v & swarLows) + swarLows) | v) & swarHighs
}

// spaceBytes 返回掩码 v 中每个空白字节对应位置的最高位被置 1
func spaceBytes(v uint64) uint64 {
	return zeroBytes(v^(swarOnes*' ')) |
		zeroBytes(v^(swarOnes*'\t')) |
		zeroBytes(v^(swarOnes*'\n')) |
		zeroBytes(v^(swarOnes*'\r'))
}

// wsEndLanes 以 16 字节 lane 扫描空白前缀 尾部与含非空白字节的 lane 退回逐字节路径
func wsEndLanes(buf []byte, pos int) int {
	for pos+laneSize <= len(buf) {
		lo := binary.LittleEndian.Uint64(buf[pos:])
		hi := binary.LittleEndian.Uint64(buf[pos+8:])
		if spaceBytes(lo) != swarHighs || spaceBytes(hi) != swarHighs {
			break
		}
		pos += laneSize
	}
	return wsEndScalar(buf, pos)
}

// SkipWhitespace 跳过游标处的连续空白
//
// 先用快速路径定位空白前缀的结束位置 再逐字节前进以维护行列号
// 任何实现差异都会破坏行列号的字节级精确性 因此两阶段缺一不可
func (s *Scanner) SkipWhitespace() {
	end := wsEnd(s.buf, s.pos)
	for s.pos < end {
		s.Advance()
	}
}
