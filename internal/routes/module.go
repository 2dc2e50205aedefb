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
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/dadrus/pathtrie/internal/cache"
	"github.com/dadrus/pathtrie/internal/config"
)

//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		fx.Annotate(newRouteTable, fx.As(new(Table)), fx.As(new(Repository))),
	),
)

type tableArgs struct {
	fx.In

	Config     *config.Configuration
	Cache      cache.Cache
	Registerer prometheus.Registerer `optional:"true"`
	Logger     zerolog.Logger
}

func newRouteTable(args tableArgs) (*RouteTable, error) {
	options := []Option{
		WithRoutesConfig(args.Config.Routes),
		WithCache(args.Cache, args.Config.Cache.TTL),
	}

	if args.Config.Metrics.Enabled {
		options = append(options, WithRegisterer(args.Registerer))
	}

	tbl, err := NewRouteTable(options...)
	if err != nil {
		args.Logger.Error().Err(err).Msg("Failed creating route table")

		return nil, err
	}

	return tbl, nil
}
