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
	"errors"
	"fmt"
	"iter"
	"strings"
)

var errStopped = errors.New("enumeration stopped")

// Result is the outcome of a lookup. Found is false if nothing matched.
type Result[V any] struct {
	Value     V
	Found     bool
	Path      string
	Variables Captures
	Rest      string
}

// trail is the immutable chain of steps leading to the node currently visited.
// Sibling branches share their common prefix.
type trail[V any] struct {
	kind     StepKind
	key      string
	captured string
	node     *Node[V]
	prev     *trail[V]
}

type matcher[V any] struct {
	origin         *Node[V]
	allowVariables bool
	expand         bool
	yield          func(*Walk[V], error) bool
}

// Enumerate lazily produces a walk for every node holding a value which is reachable from n by
// consuming a prefix of text. Constant edges must match literally. Variable edges are either
// addressed by name (expandVariables == false) or consume a part of text (expandVariables == true).
// On ErrStructural a single (nil, err) pair is produced.
func (n *Node[V]) Enumerate(text string, allowVariables, expandVariables bool) iter.Seq2[*Walk[V], error] {
	return func(yield func(*Walk[V], error) bool) {
		m := &matcher[V]{
			origin:         n,
			allowVariables: allowVariables,
			expand:         expandVariables,
			yield:          yield,
		}

		if err := m.enumerate(n, nil, text); err != nil && !errors.Is(err, errStopped) {
			yield(nil, err)
		}
	}
}

// Match produces every value holding node reachable by literal and substituted descent.
func (n *Node[V]) Match(path string, allowVariables bool) iter.Seq2[*Walk[V], error] {
	return n.Enumerate(path, allowVariables, true)
}

func (m *matcher[V]) enumerate(node *Node[V], tr *trail[V], text string) error {
	if node.hasValue && !m.yield(m.walk(tr, text), nil) {
		return errStopped
	}

	if len(text) != 0 {
		if child := node.constantAt(text[0]); child != nil && strings.HasPrefix(text, child.key) {
			next := &trail[V]{kind: ConstantStep, key: child.key, captured: child.key, node: child, prev: tr}
			if err := m.enumerate(child, next, text[len(child.key):]); err != nil {
				return err
			}
		}
	}

	if !m.allowVariables || len(node.variables) == 0 {
		return nil
	}

	if m.expand {
		return m.enumerateCaptures(node, tr, text)
	}

	name, rest, ok := node.syntax.names.RecognizeName(text)
	if !ok {
		return nil
	}

	child := node.Variable(name)
	if child == nil {
		return nil
	}

	return m.enumerate(child, &trail[V]{kind: VariableStep, key: name, captured: name, node: child, prev: tr}, rest)
}

func (m *matcher[V]) enumerateCaptures(node *Node[V], tr *trail[V], text string) error {
	if len(text) == 0 {
		return nil
	}

	for _, child := range node.variables {
		if len(child.variables) != 0 {
			return fmt.Errorf("%w: %s is directly followed by another variable", ErrStructural, child.Path())
		}

		for captured, rest := range child.splits(text) {
			next := &trail[V]{kind: CaptureStep, key: child.key, captured: captured, node: child, prev: tr}
			if err := m.enumerate(child, next, rest); err != nil {
				return err
			}
		}
	}

	return nil
}

// splits produces the ways a variable node can consume a prefix of text: all of it, up to
// every position at which one of its constant edges continues, or the longest prefix the
// value recognizer accepts. Every capture must be accepted by the value recognizer and each
// split position is produced once.
func (n *Node[V]) splits(text string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		seen := make(map[int]struct{})

		emit := func(pos int) bool {
			if _, done := seen[pos]; done || !n.syntax.accepts(text[:pos]) {
				return true
			}

			seen[pos] = struct{}{}

			return yield(text[:pos], text[pos:])
		}

		if !emit(len(text)) {
			return
		}

		for _, child := range n.constants {
			for _, pos := range offsets(text, child.key) {
				if pos == 0 {
					continue
				}

				if !emit(pos) {
					return
				}
			}
		}

		if value, rest, ok := n.syntax.values.RecognizeValue(text); ok && len(value) != 0 && len(rest) != 0 {
			emit(len(text) - len(rest))
		}
	}
}

func (m *matcher[V]) walk(tr *trail[V], rest string) *Walk[V] {
	walk := NewWalk(m.origin, rest)

	for cur := tr; cur != nil; cur = cur.prev {
		walk.Prepend(cur.kind, cur.key, cur.captured, cur.node)
	}

	return walk
}

// MatchOne selects the best scoring walk. A nil walk without an error means nothing matched.
func (n *Node[V]) MatchOne(text string, allowVariables, expandVariables bool) (*Walk[V], error) {
	var (
		best []*Walk[V]
		top  int
	)

	for walk, err := range n.Enumerate(text, allowVariables, expandVariables) {
		if err != nil {
			return nil, err
		}

		score := walk.Score()

		switch {
		case len(best) == 0 || score > top:
			best, top = []*Walk[V]{walk}, score
		case score == top:
			best = append(best, walk)
		}
	}

	switch len(best) {
	case 0:
		return nil, nil //nolint:nilnil
	case 1:
		return best[0], nil
	default:
		candidates := make([]Candidate, len(best))
		for idx, walk := range best {
			candidates[idx] = Candidate{Path: walk.Key(), Captured: walk.Captured(), Variables: walk.Variables()}
		}

		return nil, &AmbiguousMatchError{Query: text, Candidates: candidates}
	}
}

// Get looks up the value for path substituting variables. A non-empty remainder of the best
// walk is a miss unless allowExtra is set, in which case it is returned as Rest.
func (n *Node[V]) Get(path string, allowVariables, allowExtra bool) (*Result[V], error) {
	walk, err := n.MatchOne(path, allowVariables, true)
	if err != nil {
		return nil, err
	}

	if walk == nil || (!walk.Complete() && !allowExtra) {
		return &Result[V]{}, nil
	}

	value, found := walk.Value()

	return &Result[V]{
		Value:     value,
		Found:     found,
		Path:      walk.Key(),
		Variables: walk.Variables(),
		Rest:      walk.Rest,
	}, nil
}

// Has reports whether path leads to a node holding a value.
func (n *Node[V]) Has(path string, allowVariables, substitute, allowExtra bool) (bool, error) {
	walk, err := n.MatchOne(path, allowVariables, substitute)
	if err != nil {
		return false, err
	}

	if walk == nil || (!walk.Complete() && !allowExtra) {
		return false, nil
	}

	return walk.Node().HasValue(), nil
}
