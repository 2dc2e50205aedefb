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

package config

type RoutesConfig struct {
	AllowVariables bool           `koanf:"allow_variables"`
	AllowExtra     bool           `koanf:"allow_extra"`
	ValuePattern   string         `koanf:"value_pattern"   validate:"omitempty,regexp"`
	Providers      RouteProviders `koanf:"providers"`
}

// RouteProviders holds the raw configuration of each provider. Each provider
// decodes and validates its part itself.
type RouteProviders struct {
	FileSystem   map[string]any `koanf:"file_system,omitempty"`
	CloudBlob    map[string]any `koanf:"cloud_blob,omitempty"`
	HTTPEndpoint map[string]any `koanf:"http_endpoint,omitempty"`
}
