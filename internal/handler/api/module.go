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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/dadrus/pathtrie/internal/config"
	"github.com/dadrus/pathtrie/internal/handler/fxlcm"
	"github.com/dadrus/pathtrie/internal/routes"
)

// Module is used on app bootstrap.
// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Invoke(registerHooks),
)

type hooksArgs struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Config     *config.Configuration
	Table      routes.Table
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
	Logger     zerolog.Logger
}

func registerHooks(args hooksArgs) {
	srv := newService(args.Config, args.Table, args.Registerer, args.Gatherer, args.Logger)

	lcm := &fxlcm.LifecycleManager{
		ServiceName:    "API",
		ServiceAddress: srv.Addr,
		Server:         srv,
		Shutdowner:     args.Shutdowner,
		Logger:         args.Logger,
	}

	args.Lifecycle.Append(fx.Hook{OnStart: lcm.Start, OnStop: lcm.Stop})
}
