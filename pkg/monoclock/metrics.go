// Copyright 2026 TiKV Project Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package monoclock

import "github.com/prometheus/client_golang/prometheus"

const (
	platformLabel = "platform"
	widthLabel    = "width"
)

var (
	sleepPrimitiveCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "monoclock",
			Subsystem: "sleep",
			Name:      "primitive_calls_total",
			Help:      "Counter of calls to the platform sleep primitive.",
		}, []string{platformLabel})

	spinIterationCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "monoclock",
			Subsystem: "sleep",
			Name:      "spin_iterations_total",
			Help:      "Counter of clock polls while busy-waiting.",
		})

	deltaOverflowCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "monoclock",
			Subsystem: "timestamp",
			Name:      "delta_overflow_total",
			Help:      "Counter of timestamp deltas that did not fit in the requested width.",
		}, []string{widthLabel})
)

func init() {
	prometheus.MustRegister(sleepPrimitiveCounter)
	prometheus.MustRegister(spinIterationCounter)
	prometheus.MustRegister(deltaOverflowCounter)
}
