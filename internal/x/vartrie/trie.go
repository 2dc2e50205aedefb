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

import "iter"

// Trie wraps a root node with the addressing mode fixed at construction.
// It is not safe for concurrent use. Lookup additionally records the last result,
// so concurrent readers have to use Resolve instead.
type Trie[V any] struct {
	root           *Node[V]
	allowVariables bool
	allowExtra     bool

	last *Result[V]
}

func New[V any](opts ...Option) *Trie[V] {
	o := newOptions(opts)

	return &Trie[V]{
		root:           &Node[V]{syntax: newSyntax(o.names, o.values)},
		allowVariables: o.allowVariables,
		allowExtra:     o.allowExtra,
		last:           &Result[V]{},
	}
}

func (t *Trie[V]) Root() *Node[V] { return t.root }

// Insert binds value to path and fails with ErrDuplicateValue if path is bound already.
func (t *Trie[V]) Insert(path string, value V) error {
	_, err := t.root.Insert(path, value, t.allowVariables, false)

	return err
}

// Set binds value to path, replacing an existing value.
func (t *Trie[V]) Set(path string, value V) error {
	_, err := t.root.Insert(path, value, t.allowVariables, true)

	return err
}

// Resolve looks path up without recording the result.
func (t *Trie[V]) Resolve(path string) (*Result[V], error) {
	return t.root.Get(path, t.allowVariables, t.allowExtra)
}

// Lookup resolves path and records the result for Var, Vars and Rest. A failed lookup
// clears the recorded result.
func (t *Trie[V]) Lookup(path string) (*Result[V], error) {
	res, err := t.Resolve(path)
	if err != nil {
		t.last = &Result[V]{}

		return nil, err
	}

	t.last = res

	return res, nil
}

func (t *Trie[V]) Exists(path string) (bool, error) {
	return t.root.Has(path, t.allowVariables, true, t.allowExtra)
}

func (t *Trie[V]) Remove(path string, prune bool) bool {
	return t.root.Remove(path, t.allowVariables, prune)
}

func (t *Trie[V]) MatchAll(path string) iter.Seq2[*Walk[V], error] {
	return t.root.Match(path, t.allowVariables)
}

// Len returns the number of bound values.
func (t *Trie[V]) Len() int {
	count := 0

	for node := range t.root.Nodes() {
		if node.hasValue {
			count++
		}
	}

	return count
}

// Var returns the first value captured for name by the last Lookup.
func (t *Trie[V]) Var(name string) (string, bool) { return t.last.Variables.Get(name) }

// Vars returns all variables captured by the last Lookup.
func (t *Trie[V]) Vars() Captures { return t.last.Variables }

// Rest returns the text left over by the last Lookup.
func (t *Trie[V]) Rest() string { return t.last.Rest }
