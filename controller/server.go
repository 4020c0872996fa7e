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
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fastparse/fastparse/format"
	"github.com/fastparse/fastparse/internal/json"
	"github.com/fastparse/fastparse/internal/sigs"
	"github.com/fastparse/fastparse/internal/tracekit"
	"github.com/fastparse/fastparse/logger"
)

func (c *Controller) setupServer() {
	if c.svr == nil {
		return
	}

	// Admin Routes
	c.svr.RegisterPostRoute("/-/logger", c.routeLogger)
	c.svr.RegisterPostRoute("/-/reload", c.routeReload)

	// Check Routes
	c.svr.RegisterPostRoute("/v1/check/{format}", c.routeCheck)

	// Watch Routes
	c.svr.RegisterGetRoute("/watch", c.routeWatch)

	// Metrics Routes
	c.svr.RegisterGetRoute("/metrics", c.routeMetrics)
}

func (c *Controller) routeMetrics(w http.ResponseWriter, r *http.Request) {
	c.recordMetrics()
	promhttp.Handler().ServeHTTP(w, r)
}

func (c *Controller) routeLogger(w http.ResponseWriter, r *http.Request) {
	level := r.FormValue("level")
	logger.SetLoggerLevel(level)
	w.Write([]byte(`{"status": "success"}`))
}

func (c *Controller) routeReload(w http.ResponseWriter, r *http.Request) {
	if err := sigs.SelfReload(); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(err.Error()))
		return
	}
}

// routeCheck 校验请求体并返回 JSON 格式的报告
//
// 格式由路径变量指定 校验失败时响应码为 422 报告本身总是完整返回
func (c *Controller) routeCheck(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["format"]
	checker, ok := c.getChecker(name)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "format not supported"}`))
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, c.maxBodyBytes()))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "failed to read request body"}`))
		return
	}

	checksTotal.WithLabelValues(name).Inc()
	checkBytes.WithLabelValues(name).Add(float64(len(data)))

	source := r.URL.Query().Get("source")
	if source == "" {
		source = "http"
	}

	ret := checker.Check(data)
	report := format.NewReport(name, source, data, ret)

	traceID, ok := tracekit.TraceIDFromHTTPHeader(r.Header)
	if !ok {
		traceID = tracekit.RandomTraceID()
	}
	report.TraceID = traceID.String()

	if !ret.Valid {
		checkFailures.WithLabelValues(name).Inc()
	}
	c.pushReport(report)

	b, err := json.Marshal(report)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if !ret.Valid {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	w.Write(b)
}

func (c *Controller) routeWatch(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return
	}

	var maxMessage int
	maxMessage, _ = strconv.Atoi(r.URL.Query().Get("max_message"))
	if maxMessage <= 0 {
		maxMessage = 100
	}

	var timeout time.Duration
	timeout, _ = time.ParseDuration(r.URL.Query().Get("timeout"))
	if timeout <= 0 {
		timeout = time.Second * 5
	}

	queue := c.bus.Subscribe(10)
	defer c.bus.Unsubscribe(queue)

	for i := 0; i < maxMessage; i++ {
		data, ok := queue.PopTimeout(timeout)
		if !ok {
			return
		}

		w.Write(data.([]byte))
		w.Write([]byte{'\n'})
		flusher.Flush()
	}
}
