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

package pipeline

import (
	"github.com/fastparse/fastparse/common"
	"github.com/fastparse/fastparse/confengine"
	"github.com/fastparse/fastparse/processor"
)

type Config struct {
	Name       string   `config:"name"`
	Processors []string `config:"processors"`
}

type Configs []Config

type Pipeline struct {
	configs Configs
	psmgr   *processor.Manager
}

func New(conf *confengine.Config) (*Pipeline, error) {
	configs, err := loadPipeline(conf)
	if err != nil {
		return nil, err
	}

	psmgr, err := processor.NewManager(conf)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		configs: configs,
		psmgr:   psmgr,
	}, nil
}

// Range 将 src 依次送入各 pipeline 的处理链 穿过整条链的数据交给 f
//
// 链上任一 Processor 返回 nil 即丢弃该条数据 Processor 出错则跳过该处理器
// 未配置任何 pipeline 时等价于恒等链 f 直接收到 src
func (p *Pipeline) Range(src *common.Record, f func(dst *common.Record)) {
	if len(p.configs) == 0 {
		f(src)
		return
	}

	for i := 0; i < len(p.configs); i++ {
		record := src
		for _, name := range p.configs[i].Processors {
			ps, ok := p.psmgr.Get(name)
			if !ok {
				continue
			}
			r, err := ps.Process(record)
			if err != nil {
				continue
			}
			if r == nil {
				record = nil
				break
			}
			record = r
		}
		if record != nil {
			f(record)
		}
	}
}

func loadPipeline(conf *confengine.Config) (Configs, error) {
	var configs Configs
	if err := conf.UnpackChild("pipeline", &configs); err != nil {
		return nil, err
	}
	return configs, nil
}
