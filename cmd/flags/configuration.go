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

package flags

import (
	"github.com/spf13/cobra"

	"github.com/dadrus/pathtrie/internal/config"
	"github.com/dadrus/pathtrie/internal/validation"
)

// LoadConfiguration loads the configuration referenced by the global flags of cmd.
func LoadConfiguration(cmd *cobra.Command) (*config.Configuration, validation.Validator, error) {
	configPath, _ := cmd.Flags().GetString(Config)
	envPrefix, _ := cmd.Flags().GetString(EnvironmentConfigPrefix)

	validator, err := validation.NewValidator()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.NewConfiguration(
		config.EnvVarPrefix(envPrefix),
		config.ConfigurationPath(configPath),
		validator,
	)
	if err != nil {
		return nil, nil, err
	}

	return cfg, validator, nil
}
