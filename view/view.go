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

package view

import (
	"bytes"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// View 表示一段 `借用的` 只读字节窗口
//
// View 不持有底层数据的所有权 仅记录窗口位置 所有操作均为零拷贝
// 调用方需保证底层 buffer 在 View 的生命周期内保持有效且不被修改
// 唯一会产生拷贝的操作是 String 其返回独立所有权的副本
//
// 空 View 的规范形态为 nil 即 data 为 nil 当且仅当 len 为 0
// 所有可能产生空窗口的操作都会归一化为 nil
type View []byte

// New 创建并返回 View 实例 零长度输入归一化为 nil
func New(b []byte) View {
	if len(b) == 0 {
		return nil
	}
	return b
}

// FromString 以零拷贝方式创建指向 s 底层字节的 View
//
// Go 的 string 不可变 因此借用其底层数组是安全的
// 但调用方绝不能通过任何手段修改返回的 View 内容
func FromString(s string) View {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Len 返回窗口长度
func (v View) Len() int {
	return len(v)
}

// IsEmpty 判断窗口是否为空
func (v View) IsEmpty() bool {
	return len(v) == 0
}

// Bytes 返回底层字节切片 调用方不得修改
func (v View) Bytes() []byte {
	return v
}

// String 返回独立所有权的字符串副本
//
// 这是 View 唯一的 `实体化` 操作 产生一次分配与拷贝
func (v View) String() string {
	return string(v)
}

// Substr 返回窗口内 [offset, offset+n) 的子窗口
//
// offset 超出窗口末尾返回空 View n 超出剩余长度时会被截断
// 任何输入都不会越界
func (v View) Substr(offset, n int) View {
	if offset < 0 || offset >= len(v) {
		return nil
	}
	if n > len(v)-offset {
		n = len(v) - offset
	}
	if n <= 0 {
		return nil
	}
	return v[offset : offset+n]
}

// Equals 判断两个窗口内容是否完全一致
func (v View) Equals(o View) bool {
	return bytes.Equal(v, o)
}

// StartsWith 判断窗口是否以 prefix 开头 空前缀恒为 true
func (v View) StartsWith(prefix View) bool {
	return bytes.HasPrefix(v, prefix)
}

// Compare 按字节序比较两个窗口
//
// 先逐字节比较公共前缀 前缀一致时较短者在前
// 返回值为 -1/0/+1
func (v View) Compare(o View) int {
	return bytes.Compare(v, o)
}

// Hash 返回窗口内容的 xxhash 值 可用于以内容为键的场景
// 避免构建 map[string] 时的字符串实体化开销
func (v View) Hash() uint64 {
	return xxhash.Sum64(v)
}
