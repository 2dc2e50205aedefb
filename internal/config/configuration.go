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
	"bytes"
	"os"

	"github.com/dadrus/pathtrie/internal/config/parser"
	"github.com/dadrus/pathtrie/internal/pathtrie"
	"github.com/dadrus/pathtrie/internal/validation"
	"github.com/dadrus/pathtrie/internal/x/errorchain"
)

type (
	EnvVarPrefix      string
	ConfigurationPath string
)

type Configuration struct {
	Log     LoggingConfig `koanf:"log"`
	Serve   ServeConfig   `koanf:"serve"`
	Routes  RoutesConfig  `koanf:"routes"`
	Cache   CacheConfig   `koanf:"cache"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// NewConfiguration loads the configuration from the given file, or from pathtrie.yaml
// in one of the lookup directories if no file is given, and the environment. The file is
// validated against the configuration schema, the result against the struct tags.
func NewConfiguration(
	envPrefix EnvVarPrefix,
	configFile ConfigurationPath,
	validator validation.Validator,
) (*Configuration, error) {
	result := defaultConfig()

	opts := []parser.Option{
		parser.WithDecodeHookFunc(logLevelDecodeHookFunc),
		parser.WithDecodeHookFunc(logFormatDecodeHookFunc),
		parser.WithDecodeHookFunc(ByteSizeDecodeHookFunc),
		parser.WithConfigFile(string(configFile)),
		parser.WithDefaultConfigFilename("pathtrie.yaml"),
		parser.WithEnvPrefix(string(envPrefix)),
		parser.WithConfigValidator(validateConfigFile),
	}

	if workDir, err := os.Getwd(); err == nil {
		opts = append(opts, parser.WithConfigLookupDir(workDir))
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		opts = append(opts, parser.WithConfigLookupDir(homeDir+"/.config"))
	}

	opts = append(opts, parser.WithConfigLookupDir("/etc/pathtrie"))

	if err := parser.New(opts...).Load(&result); err != nil {
		return nil, err
	}

	if err := validator.ValidateStruct(&result); err != nil {
		return nil, errorchain.NewWithMessage(pathtrie.ErrConfiguration,
			"configuration is invalid").CausedBy(err)
	}

	return &result, nil
}

func validateConfigFile(configFile string) error {
	contents, err := os.ReadFile(configFile)
	if err != nil {
		return errorchain.NewWithMessagef(pathtrie.ErrConfiguration,
			"failed to read %s", configFile).CausedBy(err)
	}

	return ValidateConfigSchema(bytes.NewReader(contents))
}
