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

package exporter

import (
	"github.com/fastparse/fastparse/common"
	"github.com/fastparse/fastparse/confengine"
	"github.com/fastparse/fastparse/format"
	"github.com/fastparse/fastparse/logger"
)

// Exporter 负责将校验报告分发给已启用的 Sinker
type Exporter struct {
	conf          Config
	reportsSinker Sinker
}

func New(conf *confengine.Config) (*Exporter, error) {
	var cfg Config
	if err := conf.UnpackChild("exporter", &cfg); err != nil {
		return nil, err
	}

	var err error
	var reportsSinker Sinker
	if cfg.Reports.Enabled {
		f := Get(common.RecordReports)
		if reportsSinker, err = f(cfg); err != nil {
			return nil, err
		}
	}

	exp := &Exporter{
		conf:          cfg,
		reportsSinker: reportsSinker,
	}
	return exp, nil
}

func (e *Exporter) Close() {
	if e.conf.Reports.Enabled {
		e.reportsSinker.Close()
	}
}

func (e *Exporter) Export(record *common.Record) {
	switch record.RecordType {
	case common.RecordReports:
		if !e.conf.Reports.Enabled {
			return
		}

		data, ok := record.Data.(*format.Report)
		if !ok {
			return
		}
		if err := e.reportsSinker.Sink(data); err != nil {
			logger.Errorf("sink report failed: %v", err)
		}
	}
}
