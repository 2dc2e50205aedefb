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

func TestOffsets(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		text   string
		needle string
		exp    []int
	}{
		"overlapping":        {text: "cababababac", needle: "ababa", exp: []int{1, 3, 5}},
		"single byte":        {text: "aaa", needle: "a", exp: []int{0, 1, 2}},
		"not found":          {text: "abc", needle: "x"},
		"empty needle":       {text: "abc"},
		"needle longer":      {text: "ab", needle: "abc"},
		"needle is the text": {text: "abc", needle: "abc", exp: []int{0}},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.exp, offsets(tc.text, tc.needle))
		})
	}
}

func TestCommonPrefixLen(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, commonPrefixLen("FooBar", "FooQux"))
	assert.Equal(t, 0, commonPrefixLen("Foo", "Bar"))
	assert.Equal(t, 3, commonPrefixLen("Foo", "FooBar"))
	assert.Equal(t, 0, commonPrefixLen("", "Foo"))
}
