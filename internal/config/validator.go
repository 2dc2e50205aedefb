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
	"io"

	"github.com/knadh/koanf/maps"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/pathtrie/internal/pathtrie"
	"github.com/dadrus/pathtrie/internal/x/errorchain"
	"github.com/dadrus/pathtrie/schema"
)

// ValidateConfigSchema checks the yaml document read from src against the configuration schema.
func ValidateConfigSchema(src io.Reader) error {
	return validateAgainst(src, "config.schema.json", schema.ConfigSchema)
}

// ValidateRouteSetSchema checks the yaml (or json) document read from src against the route set schema.
func ValidateRouteSetSchema(src io.Reader) error {
	return validateAgainst(src, "routeset.schema.json", schema.RouteSetSchema)
}

func validateAgainst(src io.Reader, url string, rawSchema []byte) error {
	var doc map[string]any

	if err := yaml.NewDecoder(src).Decode(&doc); err != nil && err != io.EOF { // nolint: errorlint
		return errorchain.NewWithMessage(pathtrie.ErrConfiguration,
			"failed to parse document").CausedBy(err)
	}

	compiled, err := compileSchema(url, rawSchema)
	if err != nil {
		return errorchain.NewWithMessage(pathtrie.ErrInternal,
			"failed to compile JSON schema").CausedBy(err)
	}

	if doc == nil {
		doc = map[string]any{}
	}

	maps.IntfaceKeysToStrings(doc)

	if err = compiled.Validate(doc); err != nil {
		return errorchain.New(pathtrie.ErrConfiguration).CausedBy(err)
	}

	return nil
}

func compileSchema(url string, rawSchema []byte) (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(rawSchema))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource(url, doc); err != nil {
		return nil, err
	}

	return compiler.Compile(url)
}
