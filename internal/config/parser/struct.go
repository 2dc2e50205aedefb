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
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/dadrus/pathtrie/internal/pathtrie"
	"github.com/dadrus/pathtrie/internal/x/errorchain"
)

func koanfFromStruct(s any) (*koanf.Koanf, error) {
	if val := reflect.ValueOf(s); val.Kind() != reflect.Pointer || val.Elem().Kind() != reflect.Struct {
		return nil, errorchain.NewWithMessage(pathtrie.ErrInternal,
			fmt.Sprintf("configuration must be a pointer to a struct, got %T", s))
	}

	parser := koanf.New(".")

	if err := parser.Load(structs.Provider(s, "koanf"), nil); err != nil {
		return nil, errorchain.NewWithMessage(pathtrie.ErrInternal,
			"failed to load configuration defaults").CausedBy(err)
	}

	for _, key := range parser.Keys() {
		if strings.IndexFunc(key, unicode.IsUpper) != -1 {
			return nil, errorchain.NewWithMessagef(pathtrie.ErrConfiguration,
				"field %s does not have lowercase key, use the `koanf` tag", key)
		}
	}

	return parser, nil
}
