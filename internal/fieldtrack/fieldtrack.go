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

package fieldtrack

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/valyala/bytebufferpool"

	"github.com/fastparse/fastparse/view"
)

var seps = []byte{'\xff'}

// hashField 计算 (列号, 字段内容) 的哈希值
//
// 列号与内容之间以 0xff 分隔 避免不同列的同值字段互相碰撞
// 借助 bytebufferpool 组装键 不产生额外分配
func hashField(col int, field view.View) uint64 {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.B = strconv.AppendInt(buf.B, int64(col), 10)
	buf.Write(seps)
	buf.Write(field.Bytes())
	return xxhash.Sum64(buf.Bytes())
}

// Tracker 按列跟踪字段值的去重基数
//
// 字段以哈希值参与去重 不持有原始内容 因此内存占用与值长度无关
// 代价是哈希碰撞会造成极小概率的低估
type Tracker struct {
	seen []map[uint64]struct{}
}

// New 创建并返回 *Tracker 实例
func New() *Tracker {
	return &Tracker{}
}

// Observe 记录一次字段观测 col 从 0 开始
func (t *Tracker) Observe(col int, field view.View) {
	if col < 0 {
		return
	}
	for len(t.seen) <= col {
		t.seen = append(t.seen, make(map[uint64]struct{}))
	}
	t.seen[col][hashField(col, field)] = struct{}{}
}

// Columns 返回已观测到的列数
func (t *Tracker) Columns() int {
	return len(t.seen)
}

// Distinct 返回每列的去重基数 下标即列号
func (t *Tracker) Distinct() []int {
	counts := make([]int, len(t.seen))
	for i, m := range t.seen {
		counts[i] = len(m)
	}
	return counts
}
