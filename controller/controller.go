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

package controller

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/fastparse/fastparse/common"
	"github.com/fastparse/fastparse/confengine"
	"github.com/fastparse/fastparse/exporter"
	"github.com/fastparse/fastparse/format"
	"github.com/fastparse/fastparse/internal/json"
	"github.com/fastparse/fastparse/internal/pubsub"
	"github.com/fastparse/fastparse/internal/wait"
	"github.com/fastparse/fastparse/logger"
	"github.com/fastparse/fastparse/pipeline"
	"github.com/fastparse/fastparse/server"
)

// Controller 为 serve 模式的总调度
//
// 持有已配置的 Checker 实例 请求经由 server 路由进入
// 产出的报告穿过 pipeline 后交给 exporter 落地 同时对 watch 订阅方广播
type Controller struct {
	ctx       context.Context
	cancel    context.CancelFunc
	buildInfo common.BuildInfo

	mut      sync.RWMutex
	cfg      Config
	checkers map[string]format.Checker

	pl  *pipeline.Pipeline
	exp *exporter.Exporter
	svr *server.Server
	bus *pubsub.PubSub

	reports chan *format.Report
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

func loadCheckers(conf CheckerConfig) (map[string]format.Checker, error) {
	checkers := make(map[string]format.Checker)
	for _, name := range format.Names() {
		f, err := format.Get(name)
		if err != nil {
			return nil, err
		}
		checker, err := f(common.Options(conf.Get(name)))
		if err != nil {
			return nil, err
		}
		checkers[name] = checker
	}
	return checkers, nil
}

func New(conf *confengine.Config, buildInfo common.BuildInfo) (*Controller, error) {
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

	svr, err := server.New(conf)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := conf.UnpackChild("controller", &cfg); err != nil {
		return nil, err
	}

	checkers, err := loadCheckers(cfg.Checker)
	if err != nil {
		return nil, err
	}

	reports := make(chan *format.Report, common.Concurrency())
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		ctx:       ctx,
		cancel:    cancel,
		cfg:       cfg,
		buildInfo: buildInfo,
		checkers:  checkers,
		pl:        pl,
		svr:       svr,
		exp:       exp,
		bus:       pubsub.New(),
		reports:   reports,
	}, nil
}

func (c *Controller) Start() error {
	c.setupServer()

	for i := 0; i < common.Concurrency(); i++ {
		go wait.Until(c.ctx, c.consumeReport)
	}

	if c.svr != nil {
		go func() {
			err := c.svr.ListenAndServe()
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Errorf("failed to start server: %v", err)
			}
		}()
	}
	return nil
}

func (c *Controller) getChecker(name string) (format.Checker, bool) {
	c.mut.RLock()
	defer c.mut.RUnlock()

	checker, ok := c.checkers[name]
	return checker, ok
}

func (c *Controller) maxBodyBytes() int64 {
	c.mut.RLock()
	defer c.mut.RUnlock()

	return c.cfg.GetMaxBodyBytes()
}

// pushReport 将报告推入消费队列 队列满载时丢弃并计数
func (c *Controller) pushReport(report *format.Report) {
	select {
	case c.reports <- report:
	default:
		droppedReports.Inc()
	}
}

func (c *Controller) consumeReport() {
	for {
		select {
		case report := <-c.reports:
			handledReports.Inc()
			record := common.NewRecord(common.RecordReports, report)
			c.pl.Range(record, func(dst *common.Record) {
				c.exp.Export(dst)
			})
			c.publishWatch(report)

		case <-c.ctx.Done():
			return
		}
	}
}

// publishWatch 向 watch 订阅方广播报告 无订阅方时跳过编码
func (c *Controller) publishWatch(report *format.Report) {
	if c.bus.Num() == 0 {
		return
	}

	b, err := json.Marshal(report)
	if err != nil {
		return
	}
	c.bus.Publish(b)
}

// Reload 重载配置
//
// - 重建 checker 实例 仅支持调整各格式的校验特性
func (c *Controller) Reload(conf *confengine.Config) error {
	var cfg Config
	if err := conf.UnpackChild("controller", &cfg); err != nil {
		return err
	}

	checkers, err := loadCheckers(cfg.Checker)
	if err != nil {
		return err
	}

	c.mut.Lock()
	c.cfg = cfg
	c.checkers = checkers
	c.mut.Unlock()
	return nil
}

func (c *Controller) recordMetrics() {
	uptime.Set(float64(time.Now().Unix() - common.Started()))
	buildInfo.WithLabelValues(c.buildInfo.Version, c.buildInfo.GitHash, c.buildInfo.Time).Inc()
}

func (c *Controller) Stop() {
	if c.svr != nil {
		c.svr.Close()
	}
	c.exp.Close()
	c.cancel()
}
