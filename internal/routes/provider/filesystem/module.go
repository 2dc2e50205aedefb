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

package filesystem

import (

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/dadrus/pathtrie/internal/config"
	"github.com/dadrus/pathtrie/internal/routes"
	"github.com/dadrus/pathtrie/internal/validation"
	"github.com/dadrus/pathtrie/internal/watcher"
)

// Module is used on app bootstrap.
// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Invoke(registerProvider),
)

type registrationArguments struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Config     *config.Configuration
	Repository routes.Repository
	Watcher    watcher.Watcher
	Validator  validation.Validator
	Logger     zerolog.Logger
}

func registerProvider(args registrationArguments) error {
	if args.Config.Routes.Providers.FileSystem == nil {
		return nil
	}

	provider, err := newProvider(
		args.Config.Routes.Providers.FileSystem,
		args.Repository,
		args.Watcher,
		args.Validator,
		args.Logger,
	)
	if err != nil {
		args.Logger.Error().Err(err).Str("_provider_type", providerType).Msg("Failed creating provider")

		return err
	}

	args.Logger.Info().Str("_provider_type", providerType).Msg("Route provider configured")

	args.Lifecycle.Append(fx.Hook{OnStart: provider.Start, OnStop: provider.Stop})

	return nil
}
