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
	"github.com/fastparse/fastparse/internal/fieldtrack"
	"github.com/fastparse/fastparse/scanner"
	"github.com/fastparse/fastparse/view"
)

// RowStats 整块 CSV 的行列统计
type RowStats struct {
	// Rows 总行数 空行不计
	Rows int

	// MaxFields MinFields 单行字段数的上下界
	MaxFields int
	MinFields int

	// Distinct 每列去重后的取值个数 下标即列号
	Distinct []int
}

// Stats 扫描整块 buffer 统计行数与每列的取值基数
//
// 统计过程同样是零拷贝的 字段内容仅以哈希参与去重
func Stats(data []byte) (*RowStats, error) {
	s := scanner.New(data)
	tracker := fieldtrack.New()
	var fields [MaxFields]view.View

	stats := &RowStats{}
	for !s.AtEnd() {
		before := s.Pos()
		n := ParseRow(s, fields[:])
		if s.HasError() {
			return nil, s.Err()
		}
		if n == 0 {
			if s.Pos() == before {
				break
			}
			continue
		}

		for i := 0; i < n; i++ {
			tracker.Observe(i, fields[i])
		}
		stats.Rows++
		if n > stats.MaxFields {
			stats.MaxFields = n
		}
		if stats.MinFields == 0 || n < stats.MinFields {
			stats.MinFields = n
		}
	}

	stats.Distinct = tracker.Distinct()
	return stats, nil
}
