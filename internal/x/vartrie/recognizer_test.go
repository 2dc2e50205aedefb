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

package vartrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecognizeName(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		text    string
		expName string
		expRest string
		expOK   bool
	}{
		"bare name":                 {text: "$Foo", expName: "$Foo", expOK: true},
		"bare name is greedy":       {text: "$FooBar/baz", expName: "$FooBar", expRest: "/baz", expOK: true},
		"bare name stops at digit":  {text: "$foo1", expName: "$foo", expRest: "1", expOK: true},
		"braced name":               {text: "${Foo}Bar", expName: "$Foo", expRest: "Bar", expOK: true},
		"braced name with any text": {text: "${a b/c}", expName: "$a b/c", expOK: true},
		"unterminated braced name":  {text: "${Foo", expRest: "${Foo"},
		"empty braced name":         {text: "${}Foo", expRest: "${}Foo"},
		"sigil only":                {text: "$", expRest: "$"},
		"sigil followed by space":   {text: "$ Foo", expRest: "$ Foo"},
		"no sigil":                  {text: "Foo", expRest: "Foo"},
		"empty":                     {},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			name, rest, ok := DefaultNames.RecognizeName(tc.text)

			assert.Equal(t, tc.expOK, ok)
			assert.Equal(t, tc.expName, name)
			assert.Equal(t, tc.expRest, rest)
		})
	}
}

func TestRecognizeValue(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		text     string
		expValue string
		expRest  string
		expOK    bool
	}{
		"identifier":        {text: "foo_Bar", expValue: "foo_Bar", expOK: true},
		"version":           {text: "v1.2.3-rc", expValue: "v1.2.3-rc", expOK: true},
		"stops at slash":    {text: "abc/def", expValue: "abc", expRest: "/def", expOK: true},
		"starts with space": {text: " abc", expRest: " abc"},
		"non ascii":         {text: "\xc3\xa4", expRest: "\xc3\xa4"},
		"empty":             {},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			value, rest, ok := DefaultValues.RecognizeValue(tc.text)

			assert.Equal(t, tc.expOK, ok)
			assert.Equal(t, tc.expValue, value)
			assert.Equal(t, tc.expRest, rest)
		})
	}
}

func TestAnyValue(t *testing.T) {
	t.Parallel()

	value, rest, ok := AnyValue.RecognizeValue("a b/c")
	assert.True(t, ok)
	assert.Equal(t, "a b/c", value)
	assert.Empty(t, rest)

	_, _, ok = AnyValue.RecognizeValue("")
	assert.False(t, ok)
}

func TestSyntaxNextVariable(t *testing.T) {
	t.Parallel()

	syn := newSyntax(nil, nil)

	for uc, tc := range map[string]struct {
		path string
		exp  int
	}{
		"no sigil":                  {path: "FooBar", exp: -1},
		"sigil at the front":        {path: "$Foo", exp: -1},
		"single byte prefix":        {path: "a$b", exp: 1},
		"decoy before a reference":  {path: "Foo$ Bar$Baz", exp: 8},
		"only decoys":               {path: "Foo$ Bar", exp: -1},
		"trailing sigil":            {path: "Foo$", exp: -1},
		"braced reference":          {path: "Foo${Bar}", exp: 3},
		"unterminated and then ok":  {path: "Foo${Bar$Baz", exp: 8},
		"empty braces and then ok":  {path: "${}x$y", exp: 4},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.exp, syn.nextVariable(tc.path))
		})
	}
}

func TestSyntaxAccepts(t *testing.T) {
	t.Parallel()

	syn := newSyntax(nil, nil)

	assert.True(t, syn.accepts("abc"))
	assert.False(t, syn.accepts("abc/def"))
	assert.False(t, syn.accepts(""))

	custom := newSyntax(nil, ValueRecognizerFunc(func(text string) (string, string, bool) {
		return text, "", text == "yes"
	}))

	assert.True(t, custom.accepts("yes"))
	assert.False(t, custom.accepts("no"))
}
