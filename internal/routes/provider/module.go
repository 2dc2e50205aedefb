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

package provider

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/dadrus/pathtrie/internal/config"
	"github.com/dadrus/pathtrie/internal/routes/provider/cloudblob"
	"github.com/dadrus/pathtrie/internal/routes/provider/filesystem"
	"github.com/dadrus/pathtrie/internal/routes/provider/httpendpoint"
)

// Module is used on app bootstrap.
// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Invoke(checkRouteProvider),
	filesystem.Module,
	httpendpoint.Module,
	cloudblob.Module,
)

func checkRouteProvider(logger zerolog.Logger, conf *config.Configuration) {
	providers := conf.Routes.Providers

	if providers.FileSystem == nil && providers.HTTPEndpoint == nil && providers.CloudBlob == nil {
		logger.Warn().Msg("No route provider configured. The route table stays empty.")
	}
}
