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

package reports

import (
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/fastparse/fastparse/common"
	"github.com/fastparse/fastparse/exporter"
	"github.com/fastparse/fastparse/format"
	"github.com/fastparse/fastparse/internal/json"
)

func init() {
	exporter.Register(common.RecordReports, New)
}

// Sinker 将校验报告以 NDJSON 形态写入目标
//
// 目标可为控制台或本地文件 文件模式下由 lumberjack 负责滚动与清理
type Sinker struct {
	wr      io.WriteCloser
	encoder json.Encoder
	cfg     *exporter.ReportsConfig
}

func New(conf exporter.Config) (exporter.Sinker, error) {
	cfg := &conf.Reports
	cfg.Validate()

	var wr io.WriteCloser
	switch {
	case cfg.Console:
		wr = os.Stdout
	default:
		wr = &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			LocalTime:  true,
		}
	}

	return &Sinker{
		wr:      wr,
		cfg:     cfg,
		encoder: json.NewEncoder(wr),
	}, nil
}

func (s *Sinker) Name() common.RecordType {
	return common.RecordReports
}

// Sink 每份报告编码为一行 JSON
func (s *Sinker) Sink(data any) error {
	report, ok := data.(*format.Report)
	if !ok {
		return nil
	}
	return s.encoder.Encode(report)
}

func (s *Sinker) Close() {
	s.wr.Close()
}
