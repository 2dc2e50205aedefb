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

package parser

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/pathtrie/internal/pathtrie"
	"github.com/dadrus/pathtrie/internal/x/errorchain"
)

// koanfFromEnv loads all variables starting with prefix. A single underscore
// separates path segments, a double one stands for a literal underscore and
// numeric segments address slice entries, e.g. PREFIX_ROUTES_PROVIDERS_CLOUD__BLOB_BUCKETS_0_URL.
func koanfFromEnv(prefix string) (*koanf.Koanf, error) {
	parser := koanf.New(".")

	err := parser.Load(env.Provider(".", env.Opt{
		Prefix: prefix,
		TransformFunc: func(key, value string) (string, any) {
			return envKeyToPath(strings.TrimPrefix(key, prefix)), envValue(value)
		},
	}), nil)
	if err != nil {
		return nil, errorchain.NewWithMessage(pathtrie.ErrConfiguration,
			"failed to load configuration from environment").CausedBy(err)
	}

	raw, ok := toSlices(parser.Raw()).(map[string]any)
	if !ok {
		return nil, errorchain.NewWithMessage(pathtrie.ErrConfiguration,
			"environment configuration must not start with an index")
	}

	result := koanf.New(".")
	if err = result.Load(confmap.Provider(raw, ""), nil); err != nil {
		return nil, errorchain.NewWithMessage(pathtrie.ErrInternal,
			"failed to restructure environment configuration").CausedBy(err)
	}

	return result, nil
}

func envKeyToPath(key string) string {
	segments := strings.Split(strings.ToLower(key), "__")
	for idx, segment := range segments {
		segments[idx] = strings.ReplaceAll(segment, "_", ".")
	}

	return strings.Trim(strings.Join(segments, "_"), ".")
}

// envValue interprets the value as yaml scalar or sequence. Anything yaml
// can't make sense of is used as is.
func envValue(value string) any {
	var doc map[string]any

	if err := yaml.Unmarshal([]byte("value: "+value), &doc); err != nil {
		return value
	}

	if parsed, ok := doc["value"]; ok && parsed != nil {
		return parsed
	}

	return value
}

// toSlices turns maps, which keys are all indexes, into slices. Missing
// entries stay nil so that merging keeps the values already present there.
func toSlices(value any) any {
	obj, ok := value.(map[string]any)
	if !ok {
		return value
	}

	indexes := make(map[int]any, len(obj))

	for key, val := range obj {
		obj[key] = toSlices(val)

		if idx, err := strconv.Atoi(key); err == nil && idx >= 0 && indexes != nil {
			indexes[idx] = obj[key]
		} else {
			indexes = nil
		}
	}

	if len(indexes) == 0 {
		return obj
	}

	result := make([]any, slices.Max(slices.Collect(maps.Keys(indexes)))+1)
	for idx, val := range indexes {
		result[idx] = val
	}

	return result
}
