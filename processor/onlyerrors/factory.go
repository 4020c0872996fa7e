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

package onlyerrors

import (
	"github.com/fastparse/fastparse/common"
	"github.com/fastparse/fastparse/format"
	"github.com/fastparse/fastparse/internal/mapstructure"
	"github.com/fastparse/fastparse/processor"
)

const Name = "onlyerrors"

func init() {
	processor.Register(Name, New)
}

// Config onlyerrors 过滤策略
type Config struct {
	// Formats 仅对列表内的格式生效 为空表示作用于全部格式
	Formats []string `config:"formats"`
}

// Factory 丢弃校验通过的报告 只放行失败报告
//
// 持续产出合法数据的源头会被完全静默 便于只留存需要关注的现场
type Factory struct {
	formats map[string]struct{}
}

func New(conf map[string]any) (processor.Processor, error) {
	cfg := &Config{}
	if err := mapstructure.Decode(conf, cfg); err != nil {
		return nil, err
	}

	formats := make(map[string]struct{})
	for _, name := range cfg.Formats {
		formats[name] = struct{}{}
	}

	factory := &Factory{
		formats: formats,
	}
	return factory, nil
}

func (f *Factory) Name() string {
	return Name
}

func (f *Factory) Process(record *common.Record) (*common.Record, error) {
	report, ok := record.Data.(*format.Report)
	if !ok {
		return record, nil
	}

	if len(f.formats) > 0 {
		if _, ok := f.formats[report.Format]; !ok {
			return record, nil
		}
	}

	if report.Valid {
		return nil, nil
	}
	return record, nil
}

func (f *Factory) Clean() {}
