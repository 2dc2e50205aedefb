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
	"github.com/stretchr/testify/require"
)

func TestTrieRoundTrip(t *testing.T) {
	t.Parallel()

	trie := New[int](WithVariables(true))

	paths := []string{"", "/", "/users", "/users/${Id}", "/users/${Id}/posts", "/user", "/groups", "/x$"}
	for idx, path := range paths {
		require.NoError(t, trie.Insert(path, idx))
	}

	assert.Equal(t, len(paths), trie.Len())

	for idx, path := range paths {
		node, rest := trie.Root().Locate(path, true)
		require.Empty(t, rest, path)

		value, ok := node.Value()
		require.True(t, ok, path)
		assert.Equal(t, idx, value, path)
	}
}

func TestTrieInsertDuplicate(t *testing.T) {
	t.Parallel()

	trie := New[string]()

	require.NoError(t, trie.Insert("Foo", "1"))
	require.ErrorIs(t, trie.Insert("Foo", "2"), ErrDuplicateValue)
	require.NoError(t, trie.Set("Foo", "3"))

	res, err := trie.Resolve("Foo")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, "3", res.Value)
	assert.Equal(t, 1, trie.Len())
}

func TestTrieLookup(t *testing.T) {
	t.Parallel()

	trie := New[string](WithVariables(true))

	require.NoError(t, trie.Insert("Foo${Bar}Baz${Bar}", "1"))
	require.NoError(t, trie.Insert("Qux/${Id}", "2"))

	res, err := trie.Lookup("FooXBazY")
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, "1", res.Value)
	assert.Equal(t, "Foo$BarBaz$Bar", res.Path)

	value, ok := trie.Var("$Bar")
	assert.True(t, ok)
	assert.Equal(t, "X", value)
	assert.Equal(t, Captures{"$Bar": {"X", "Y"}}, trie.Vars())
	assert.Empty(t, trie.Rest())

	// a failed lookup replaces the recorded result
	res, err = trie.Lookup("Qux/a/b")
	require.NoError(t, err)
	assert.False(t, res.Found)

	_, ok = trie.Var("$Bar")
	assert.False(t, ok)
	assert.Empty(t, trie.Vars())
}

func TestTrieLookupWithExtra(t *testing.T) {
	t.Parallel()

	trie := New[string](WithVariables(true), WithExtra(true))

	require.NoError(t, trie.Insert("/api/${Version}/", "api"))

	res, err := trie.Lookup("/api/v1/users")
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, "api", res.Value)
	assert.Equal(t, "users", trie.Rest())

	value, ok := trie.Var("$Version")
	assert.True(t, ok)
	assert.Equal(t, "v1", value)

	exists, err := trie.Exists("/api/v2/other")
	require.NoError(t, err)
	assert.True(t, exists)

	// a trailing variable captures the accepted prefix only
	require.NoError(t, trie.Insert("/users/${User}", "user"))

	res, err = trie.Lookup("/users/alice/orders")
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, "user", res.Value)
	assert.Equal(t, "/orders", trie.Rest())
	assert.Equal(t, Captures{"$User": {"alice"}}, trie.Vars())
}

func TestTrieLookupTrailingVariableWithoutExtra(t *testing.T) {
	t.Parallel()

	trie := New[string](WithVariables(true))

	require.NoError(t, trie.Insert("/users/${User}", "user"))

	res, err := trie.Lookup("/users/alice/orders")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, trie.Rest())
}

func TestTrieLookupErrorClearsRecordedResult(t *testing.T) {
	t.Parallel()

	trie := New[string](WithVariables(true), WithExtra(true))

	require.NoError(t, trie.Insert("Foo${Bar}Qux", "1"))
	require.NoError(t, trie.Insert("Foo${Baz}Qux", "2"))
	require.NoError(t, trie.Insert("Zap/${Id}", "3"))

	res, err := trie.Lookup("Zap/42/more")
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, "/more", trie.Rest())

	_, err = trie.Lookup("FooXQux")
	require.ErrorIs(t, err, ErrAmbiguousMatch)

	_, ok := trie.Var("$Id")
	assert.False(t, ok)
	assert.Empty(t, trie.Vars())
	assert.Empty(t, trie.Rest())
}

func TestTrieWithoutVariables(t *testing.T) {
	t.Parallel()

	trie := New[string]()

	require.NoError(t, trie.Insert("/users/$Id", "literal"))

	res, err := trie.Resolve("/users/$Id")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Empty(t, res.Variables)

	res, err = trie.Resolve("/users/42")
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestTrieAmbiguity(t *testing.T) {
	t.Parallel()

	trie := New[string](WithVariables(true))

	require.NoError(t, trie.Insert("Foo${Bar}Qux", "1"))
	require.NoError(t, trie.Insert("Foo${Baz}Qux", "2"))

	_, err := trie.Lookup("FooXQux")
	require.ErrorIs(t, err, ErrAmbiguousMatch)

	_, err = trie.Exists("FooXQux")
	require.ErrorIs(t, err, ErrAmbiguousMatch)

	// addressing by name is unambiguous
	node, rest := trie.Root().Locate("Foo${Baz}Qux", true)
	require.Empty(t, rest)

	value, _ := node.Value()
	assert.Equal(t, "2", value)
}

func TestTrieRemove(t *testing.T) {
	t.Parallel()

	trie := New[string](WithVariables(true))

	require.NoError(t, trie.Insert("Foo", "1"))
	require.NoError(t, trie.Insert("Foo${Bar}Baz", "2"))

	assert.False(t, trie.Remove("Foo$Qux", false))
	assert.True(t, trie.Remove("Foo${Bar}Baz", false))
	assert.Equal(t, 1, trie.Len())

	// dead nodes are gone
	assert.Nil(t, trie.Root().Constant("Foo").Variable("$Bar"))

	exists, err := trie.Exists("FooXBaz")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = trie.Exists("Foo")
	require.NoError(t, err)
	assert.True(t, exists)

	assert.True(t, trie.Remove("Foo", true))
	assert.Equal(t, 0, trie.Len())
	assert.Empty(t, edgeKeys(trie.Root().Constants()))
}

func TestTrieMatchAll(t *testing.T) {
	t.Parallel()

	trie := New[string](WithVariables(true))

	require.NoError(t, trie.Insert("Foo", "FOO"))
	require.NoError(t, trie.Insert("Foo$Bar", "BAR"))

	var values []string

	for walk, err := range trie.MatchAll("FooX") {
		require.NoError(t, err)

		value, _ := walk.Value()
		values = append(values, value)
	}

	assert.Equal(t, []string{"FOO", "BAR"}, values)
}

func TestTrieCustomRecognizers(t *testing.T) {
	t.Parallel()

	// :name references instead of $name
	names := NameRecognizerFunc(func(text string) (string, string, bool) {
		if len(text) < 2 || text[0] != ':' {
			return "", text, false
		}

		end := 1
		for end < len(text) && text[end] != '/' {
			end++
		}

		return "$" + text[1:end], text[end:], true
	})

	trie := New[string](WithVariables(true), WithNameRecognizer(names), WithValueRecognizer(AnyValue))

	require.NoError(t, trie.Insert("/files/:name/raw", "raw"))

	res, err := trie.Resolve("/files/a b.txt/raw")
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, "/files/$name/raw", res.Path)
	assert.Equal(t, Captures{"$name": {"a b.txt"}}, res.Variables)
}
