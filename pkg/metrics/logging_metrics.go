// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap/zapcore"
)

const (
	loggingMetricSubsystem = "logging"

	levelLabelName = "level"
)

var (
	LoggingMetricsRegisterOnce sync.Once

	LoggingWrites = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: zeusNamespace,
		Subsystem: loggingMetricSubsystem,
		Name:      "writes_total",
		Help:      "已输出日志条数，按级别区分",
	}, []string{levelLabelName})

	LoggingWriteBytes = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: zeusNamespace,
		Subsystem: loggingMetricSubsystem,
		Name:      "write_bytes_total",
		Help:      "已输出日志消息的总字节数",
	})
)

// RegisterLoggingMetrics 将日志相关的指标注册到 Prometheus Registry 中。
func RegisterLoggingMetrics(registry prometheus.Registerer) {
	LoggingMetricsRegisterOnce.Do(func() {
		registry.MustRegister(LoggingWrites)
		registry.MustRegister(LoggingWriteBytes)
	})
}

// NewLogMetricsHook 返回一个 zap Hook，按级别统计日志输出情况。
// 用法：zap.Hooks(metrics.NewLogMetricsHook())。
func NewLogMetricsHook() func(zapcore.Entry) error {
	return func(entry zapcore.Entry) error {
		LoggingWrites.WithLabelValues(entry.Level.String()).Inc()
		LoggingWriteBytes.Add(float64(len(entry.Message)))
		return nil
	}
}
