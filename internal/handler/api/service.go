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

package api

import (
	"net/http"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/dadrus/pathtrie/internal/config"
	"github.com/dadrus/pathtrie/internal/handler/middleware/http/accesslog"
	"github.com/dadrus/pathtrie/internal/handler/middleware/http/errorhandler"
	"github.com/dadrus/pathtrie/internal/handler/middleware/http/passthrough"
	prometheus2 "github.com/dadrus/pathtrie/internal/handler/middleware/http/prometheus"
	"github.com/dadrus/pathtrie/internal/handler/middleware/http/recovery"
	"github.com/dadrus/pathtrie/internal/handler/middleware/http/trustedproxy"
	"github.com/dadrus/pathtrie/internal/routes"
)

func newService(
	conf *config.Configuration,
	table routes.Table,
	reg prometheus.Registerer,
	gatherer prometheus.Gatherer,
	logger zerolog.Logger,
) *http.Server {
	cfg := conf.Serve
	eh := errorhandler.New(errorhandler.WithVerboseErrors(cfg.Respond.Verbose))

	chain := alice.New()

	if cfg.TrustedProxies != nil {
		chain = chain.Append(trustedproxy.New(logger, *cfg.TrustedProxies...))
	}

	chain = chain.Append(
		accesslog.New(logger),
		recovery.New(eh),
	)

	if conf.Metrics.Enabled {
		chain = chain.Append(prometheus2.New(reg, "api"))
	} else {
		gatherer = nil
	}

	chain = chain.Append(corsHandler(cfg.CORS))

	return &http.Server{
		Handler:      chain.Then(newHandler(table, eh, gatherer, logger)),
		Addr:         cfg.Address(),
		ReadTimeout:  cfg.Timeout.Read,
		WriteTimeout: cfg.Timeout.Write,
		IdleTimeout:  cfg.Timeout.Idle,
	}
}

func corsHandler(conf *config.CORS) func(http.Handler) http.Handler {
	if conf == nil {
		return passthrough.New
	}

	return cors.New(cors.Options{
		AllowedOrigins:   conf.AllowedOrigins,
		AllowedMethods:   conf.AllowedMethods,
		AllowedHeaders:   conf.AllowedHeaders,
		AllowCredentials: conf.AllowCredentials,
		ExposedHeaders:   conf.ExposedHeaders,
		MaxAge:           int(conf.MaxAge.Seconds()),
	}).Handler
}
