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

package bufbytes

// Bytes 为固定容量的字节缓冲 写入超出容量的部分会被静默截断
//
// 用于错误信息 上下文摘要等需要 `有界` 存储的场景
// Reset 之后可复用 不会释放已分配的空间
type Bytes struct {
	size int
	buf  []byte
}

// New 创建并返回 *Bytes 实例 size 为容量上限
func New(size int) *Bytes {
	return &Bytes{
		size: size,
	}
}

// Write 写入 p 超出容量的部分被丢弃
func (b *Bytes) Write(p []byte) {
	n := (b.size - len(b.buf)) - len(p)
	if n >= 0 {
		b.buf = append(b.buf, p...)
		return
	}

	l := b.size - len(b.buf)
	if l > 0 {
		b.buf = append(b.buf, p[:l]...)
	}
}

// WriteString 写入字符串 语义与 Write 一致
func (b *Bytes) WriteString(s string) {
	n := (b.size - len(b.buf)) - len(s)
	if n >= 0 {
		b.buf = append(b.buf, s...)
		return
	}

	l := b.size - len(b.buf)
	if l > 0 {
		b.buf = append(b.buf, s[:l]...)
	}
}

// Len 返回已写入的字节数
func (b *Bytes) Len() int {
	return len(b.buf)
}

// Full 判断缓冲是否已写满 写满意味着后续写入可能发生过截断
func (b *Bytes) Full() bool {
	return len(b.buf) >= b.size
}

// Text 返回缓冲内容的字符串副本
func (b *Bytes) Text() string {
	return string(b.buf)
}

// Clone 拷贝并返回缓冲内容
func (b *Bytes) Clone() []byte {
	if b.buf == nil {
		return nil
	}
	return append([]byte{}, b.buf...)
}

// Reset 清空缓冲 保留底层空间
func (b *Bytes) Reset() {
	b.buf = b.buf[:0]
}
