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
	"github.com/dlclark/regexp2"

	"github.com/dadrus/pathtrie/internal/config"
	"github.com/dadrus/pathtrie/internal/pathtrie"
	"github.com/dadrus/pathtrie/internal/x/errorchain"
	"github.com/dadrus/pathtrie/internal/x/vartrie"
)

// newValueRecognizer accepts the prefix of a text matched by pattern.
func newValueRecognizer(pattern string) (vartrie.ValueRecognizer, error) {
	re, err := regexp2.Compile(`\A(?:`+pattern+`)`, regexp2.RE2)
	if err != nil {
		return nil, errorchain.NewWithMessagef(pathtrie.ErrConfiguration,
			"invalid value pattern %q", pattern).CausedBy(err)
	}

	return vartrie.ValueRecognizerFunc(func(text string) (string, string, bool) {
		match, err := re.FindStringMatch(text)
		if err != nil || match == nil || match.Length == 0 {
			return "", text, false
		}

		value := match.String()

		return value, text[len(value):], true
	}), nil
}

// TrieOptions translates the routes configuration into options of the underlying trie.
func TrieOptions(conf config.RoutesConfig) ([]vartrie.Option, error) {
	opts := []vartrie.Option{
		vartrie.WithVariables(conf.AllowVariables),
		vartrie.WithExtra(conf.AllowExtra),
	}

	if len(conf.ValuePattern) != 0 {
		recognizer, err := newValueRecognizer(conf.ValuePattern)
		if err != nil {
			return nil, err
		}

		opts = append(opts, vartrie.WithValueRecognizer(recognizer))
	}

	return opts, nil
}
