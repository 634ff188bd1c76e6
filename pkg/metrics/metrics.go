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
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lk2023060901/binser-garden-go/pkg/util/merr"
)

const (
	// zeusNamespace 是当前项目所有 Prometheus 指标使用的命名空间。
	zeusNamespace = "zeus"

	binserSubsystem = "binser"

	// 以下为当前使用的通用标签名。
	statusLabelName    = "status"
	errorCodeLabelName = "error_code"

	statusOK   = "ok"
	statusFail = "fail"
)

var (
	// sizeBuckets 为编解码数据大小直方图的桶划分，单位为字节。
	sizeBuckets = []float64{16, 64, 256, 1024, 4096, 16384, 65536, 262144, 1048576, 4194304, 16777216}

	SerializeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: zeusNamespace,
			Subsystem: binserSubsystem,
			Name:      "serialize_total",
			Help:      "编码操作总次数，按结果区分",
		}, []string{statusLabelName})

	DeserializeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: zeusNamespace,
			Subsystem: binserSubsystem,
			Name:      "deserialize_total",
			Help:      "解码操作总次数，按结果区分",
		}, []string{statusLabelName})

	SerializeBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: zeusNamespace,
			Subsystem: binserSubsystem,
			Name:      "serialize_bytes",
			Help:      "单次编码产出的字节数分布",
			Buckets:   sizeBuckets,
		})

	DeserializeBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: zeusNamespace,
			Subsystem: binserSubsystem,
			Name:      "deserialize_bytes",
			Help:      "单次解码消费的字节数分布",
			Buckets:   sizeBuckets,
		})

	ErrorTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: zeusNamespace,
			Subsystem: binserSubsystem,
			Name:      "error_total",
			Help:      "编解码失败总次数，按错误码区分",
		}, []string{errorCodeLabelName})

	metricRegisterer prometheus.Registerer
)

// GetRegisterer 返回全局 Prometheus Registerer。
// 如果尚未通过 Register 显式设置，则返回 prometheus.DefaultRegisterer。
func GetRegisterer() prometheus.Registerer {
	if metricRegisterer == nil {
		return prometheus.DefaultRegisterer
	}
	return metricRegisterer
}

// Register 注册当前定义的所有指标。
// 通常应在 init 函数中调用。
func Register(r prometheus.Registerer) {
	r.MustRegister(SerializeTotal)
	r.MustRegister(DeserializeTotal)
	r.MustRegister(SerializeBytes)
	r.MustRegister(DeserializeBytes)
	r.MustRegister(ErrorTotal)
	metricRegisterer = r
}

// RecordSerialize 记录一次编码操作的结果与产出大小。
func RecordSerialize(bytes int, err error) {
	if err != nil {
		SerializeTotal.WithLabelValues(statusFail).Inc()
		ErrorTotal.WithLabelValues(strconv.FormatInt(int64(merr.Code(err)), 10)).Inc()
		return
	}
	SerializeTotal.WithLabelValues(statusOK).Inc()
	SerializeBytes.Observe(float64(bytes))
}

// RecordDeserialize 记录一次解码操作的结果与输入大小。
func RecordDeserialize(bytes int, err error) {
	if err != nil {
		DeserializeTotal.WithLabelValues(statusFail).Inc()
		ErrorTotal.WithLabelValues(strconv.FormatInt(int64(merr.Code(err)), 10)).Inc()
		return
	}
	DeserializeTotal.WithLabelValues(statusOK).Inc()
	DeserializeBytes.Observe(float64(bytes))
}
