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

package routes

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeMatched   = "matched"
	outcomeNotFound  = "not_found"
	outcomeAmbiguous = "ambiguous"
	outcomeError     = "error"

	statusSuccess = "success"
	statusFailure = "failure"
)

type metrics struct {
	lookups *prometheus.CounterVec
	routes  prometheus.Gauge
	size    prometheus.Gauge
	reloads *prometheus.CounterVec
}

// newMetrics creates the route table collectors. A nil registerer leaves them unregistered.
func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pathtrie",
			Name:      "route_lookups_total",
			Help:      "Number of route lookups by outcome",
		}, []string{"outcome"}),
		routes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "pathtrie",
			Name:      "routes",
			Help:      "Number of routes in the active route table",
		}),
		size: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "pathtrie",
			Name:      "route_table_size_bytes",
			Help:      "Approximate memory footprint of the active route table",
		}),
		reloads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pathtrie",
			Name:      "route_table_reloads_total",
			Help:      "Number of route table rebuilds by status",
		}, []string{"status"}),
	}
}
