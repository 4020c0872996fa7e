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

package common

// RecordType 流转数据的类型标识
type RecordType string

const (
	// RecordReports 校验报告类型
	RecordReports RecordType = "reports"
)

// Record 在 pipeline / exporter 之间流转的数据单元
//
// Data 的具体类型由 RecordType 决定 消费方负责断言
type Record struct {
	RecordType RecordType
	Data       any
}

// NewRecord 创建并返回 *Record 实例
func NewRecord(rt RecordType, data any) *Record {
	return &Record{
		RecordType: rt,
		Data:       data,
	}
}
