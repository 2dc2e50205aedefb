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

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultPort         = 4458
	defaultReadTimeout  = 5 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 2 * time.Minute
	defaultCacheTTL     = 1 * time.Minute
)

func defaultConfig() Configuration {
	return Configuration{
		Log: LoggingConfig{
			Level:  zerolog.InfoLevel,
			Format: LogTextFormat,
		},
		Serve: ServeConfig{
			Port: defaultPort,
			Timeout: Timeout{
				Read:  defaultReadTimeout,
				Write: defaultWriteTimeout,
				Idle:  defaultIdleTimeout,
			},
		},
		Routes: RoutesConfig{
			AllowVariables: true,
		},
		Cache: CacheConfig{
			Type: "memory",
			TTL:  defaultCacheTTL,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}
