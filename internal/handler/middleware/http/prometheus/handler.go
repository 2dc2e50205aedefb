// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// New instruments the wrapped handler with a request counter, a duration histogram and an
// in-flight gauge, all labeled with the given service name.
func New(reg prometheus.Registerer, service string) func(http.Handler) http.Handler {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": service}

	inFlight := factory.NewGauge(prometheus.GaugeOpts{
		Name:        "pathtrie_http_requests_in_flight",
		Help:        "Number of HTTP requests currently being served.",
		ConstLabels: labels,
	})

	requests := factory.NewCounterVec(prometheus.CounterOpts{
		Name:        "pathtrie_http_requests_total",
		Help:        "Number of served HTTP requests.",
		ConstLabels: labels,
	}, []string{"code", "method"})

	duration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Name:        "pathtrie_http_request_duration_seconds",
		Help:        "Duration of served HTTP requests.",
		ConstLabels: labels,
		Buckets:     prometheus.DefBuckets,
	}, []string{"code", "method"})

	return func(next http.Handler) http.Handler {
		return promhttp.InstrumentHandlerInFlight(inFlight,
			promhttp.InstrumentHandlerDuration(duration,
				promhttp.InstrumentHandlerCounter(requests, next)))
	}
}
