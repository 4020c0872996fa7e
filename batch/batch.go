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

// Package batch 驱动命令行场景下的批量文件校验
//
// 输入路径被展开为文件列表 由固定数量的 worker 并发消费
// 每个文件读入完整 buffer 后交给 Checker 校验 报告流经 pipeline 后导出
// 校验失败不是错误 由 Summary 与报告体现 IO 错误则聚合后返回
package batch

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/fastparse/fastparse/common"
	"github.com/fastparse/fastparse/confengine"
	"github.com/fastparse/fastparse/exporter"
	"github.com/fastparse/fastparse/format"
	"github.com/fastparse/fastparse/internal/rescue"
	"github.com/fastparse/fastparse/internal/tracekit"
	"github.com/fastparse/fastparse/logger"
	"github.com/fastparse/fastparse/pipeline"
)

type Config struct {
	Format  string         `config:"format"`
	Workers int            `config:"workers"`
	Checker map[string]any `config:"checker"`
}

func (c *Config) Validate() error {
	if c.Format == "" {
		return errors.New("batch: format is required")
	}
	if c.Workers <= 0 {
		c.Workers = common.Concurrency()
	}
	return nil
}

// Summary 汇总一次批量校验的整体结果
type Summary struct {
	Files   int
	Valid   int
	Invalid int
	Rows    int
	Bytes   int
}

type Batch struct {
	cfg     Config
	checker format.Checker

	pl  *pipeline.Pipeline
	exp *exporter.Exporter

	mut     sync.Mutex
	summary Summary
	errs    *multierror.Error
}

func setupLogger(conf *confengine.Config) error {
	var opts logger.Options
	if err := conf.UnpackChild("logger", &opts); err != nil {
		return err
	}

	if opts.Filename == "" {
		opts.Filename = "fastparse.log"
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = 10
	}
	if opts.MaxAge <= 0 {
		opts.MaxAge = 7
	}
	if opts.MaxSize <= 0 {
		opts.MaxSize = 100
	}

	logger.SetOptions(opts)
	return nil
}

func New(conf *confengine.Config) (*Batch, error) {
	if err := setupLogger(conf); err != nil {
		return nil, err
	}

	exp, err := exporter.New(conf)
	if err != nil {
		return nil, err
	}

	pl, err := pipeline.New(conf)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := conf.UnpackChild("batch", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f, err := format.Get(cfg.Format)
	if err != nil {
		return nil, err
	}
	checker, err := f(common.Options(cfg.Checker))
	if err != nil {
		return nil, err
	}

	return &Batch{
		cfg:     cfg,
		checker: checker,
		pl:      pl,
		exp:     exp,
	}, nil
}

// Run 校验 paths 指向的所有文件 目录会被递归展开
//
// worker 数量由 .Workers 决定 ctx 取消后不再投递新文件
// 已投递的文件仍会完成校验
func (b *Batch) Run(ctx context.Context, paths []string) (Summary, error) {
	files, err := expandPaths(paths)
	if err != nil {
		b.recordError(err)
	}

	ch := make(chan string)
	wg := sync.WaitGroup{}
	for i := 0; i < b.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer rescue.HandleCrash()
			for path := range ch {
				b.checkFile(path)
			}
		}()
	}

loop:
	for _, file := range files {
		select {
		case ch <- file:
		case <-ctx.Done():
			break loop
		}
	}
	close(ch)
	wg.Wait()

	b.mut.Lock()
	defer b.mut.Unlock()
	return b.summary, b.errs.ErrorOrNil()
}

// RunReader 读取并校验单个数据流 用于 stdin 场景
func (b *Batch) RunReader(source string, r io.Reader) (Summary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Summary{}, err
	}
	b.checkData(source, data)

	b.mut.Lock()
	defer b.mut.Unlock()
	return b.summary, b.errs.ErrorOrNil()
}

func (b *Batch) Close() {
	b.exp.Close()
}

func (b *Batch) checkFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		b.recordError(errors.Wrapf(err, "read file (%s) failed", path))
		return
	}
	b.checkData(path, data)
}

func (b *Batch) checkData(source string, data []byte) {
	ret := b.checker.Check(data)
	if !ret.Valid && ret.Err != nil {
		logger.Debugf("check %s failed at %d:%d: %s", source, ret.Err.Line, ret.Err.Column, ret.Err.Message)
	}

	report := format.NewReport(b.checker.Name(), source, data, ret)
	report.TraceID = tracekit.RandomTraceID().String()

	record := common.NewRecord(common.RecordReports, report)
	b.pl.Range(record, func(dst *common.Record) {
		b.exp.Export(dst)
	})

	b.mut.Lock()
	defer b.mut.Unlock()
	b.summary.Files++
	b.summary.Bytes += len(data)
	b.summary.Rows += ret.Rows
	if ret.Valid {
		b.summary.Valid++
	} else {
		b.summary.Invalid++
	}
}

func (b *Batch) recordError(err error) {
	b.mut.Lock()
	defer b.mut.Unlock()
	b.errs = multierror.Append(b.errs, err)
}

// expandPaths 展开输入路径 目录被递归遍历 返回列表按字典序排列
//
// 单个路径的失败不会中断整体展开 错误聚合后一并返回
func expandPaths(paths []string) ([]string, error) {
	var files []string
	var errs *multierror.Error
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	sort.Strings(files)
	return files, errs.ErrorOrNil()
}
