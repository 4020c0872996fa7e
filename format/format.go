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

package format

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/fastparse/fastparse/common"
	"github.com/fastparse/fastparse/scanner"
)

// Result 记录单块 buffer 的一次校验结果
type Result struct {
	// Valid 标识 buffer 是否通过校验
	Valid bool

	// Rows 已识别的记录数 按格式各自定义 如 CSV 行数或 NDJSON 文档数
	Rows int

	// Fields 已识别的字段总数 仅对有字段概念的格式有意义
	Fields int

	// Consumed 校验过程实际消费的字节数
	Consumed int

	// Err 失败时的结构化现场 校验通过时为 nil
	Err *scanner.ScanError
}

// Checker 校验单块 buffer 是否符合某种格式
//
// Check 的输入为完整 buffer 实现内部借用数据 不做拷贝
// 同一实例会被多个 goroutine 并发调用 实现必须是无状态的
type Checker interface {
	// Name 格式名称
	Name() string

	// Check 校验 buffer 并返回结果
	Check(data []byte) Result
}

// CreateFunc Checker 工厂函数 opts 为格式各自的可选配置
type CreateFunc func(opts common.Options) (Checker, error)

var checkerFactory = map[string]CreateFunc{}

// Register 注册 Checker 工厂 由各格式包的 init 调用
func Register(name string, f CreateFunc) {
	checkerFactory[name] = f
}

// Get 检索指定名称的 Checker 工厂
func Get(name string) (CreateFunc, error) {
	f, ok := checkerFactory[name]
	if !ok {
		return nil, errors.Errorf("format checker (%s) not found", name)
	}
	return f, nil
}

// Names 返回所有已注册的格式名称 按字典序排列
func Names() []string {
	names := make([]string, 0, len(checkerFactory))
	for name := range checkerFactory {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
