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
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/hideo55/go-popcount"
)

// Node is a vertex of the trie. The edge leading to a node is stored on the node itself (key),
// so constant children can be kept in a plain slice ordered by the first byte of their keys.
type Node[V any] struct {
	key      string
	variable bool

	value    V
	hasValue bool

	parent *Node[V]

	// one bit per possible first byte of a constant child key. The rank of
	// a set bit is the position of the child in constants.
	bitmap    [4]uint64
	constants []*Node[V]

	// in insertion order
	variables []*Node[V]

	syntax *Syntax
}

// NewNode creates a detached root node. Only the recognizer options are taken into account.
func NewNode[V any](opts ...Option) *Node[V] {
	o := newOptions(opts)

	return &Node[V]{syntax: newSyntax(o.names, o.values)}
}

func (n *Node[V]) newChild() *Node[V] { return &Node[V]{syntax: n.syntax} }

func (n *Node[V]) Value() (V, bool) { return n.value, n.hasValue }

func (n *Node[V]) HasValue() bool { return n.hasValue }

// SetValue binds the value to the node. ErrDuplicateValue is returned if
// the node holds a value already and overwrite is not allowed.
func (n *Node[V]) SetValue(value V, allowOverwrite bool) error {
	if n.hasValue && !allowOverwrite {
		return fmt.Errorf("%w: %s", ErrDuplicateValue, n.Path())
	}

	n.value = value
	n.hasValue = true

	return nil
}

func (n *Node[V]) ClearValue() {
	var zero V

	n.value = zero
	n.hasValue = false
}

// IsDead reports whether the node has neither a value nor any children.
func (n *Node[V]) IsDead() bool {
	return !n.hasValue && len(n.constants) == 0 && len(n.variables) == 0
}

func (n *Node[V]) IsRoot() bool { return n.parent == nil }

func (n *Node[V]) Parent() *Node[V] { return n.parent }

// Key returns the label of the edge leading to this node. Empty for a root.
func (n *Node[V]) Key() string { return n.key }

func (n *Node[V]) IsVariable() bool { return n.variable }

// Path reconstructs the full path from the root, e.g. FooBar$Baz.
func (n *Node[V]) Path() string {
	var keys []string

	for cur := n; cur.parent != nil; cur = cur.parent {
		keys = append(keys, cur.key)
	}

	slices.Reverse(keys)

	return strings.Join(keys, "")
}

func (n *Node[V]) slot(b byte) (int, bool) {
	word, bit := b>>6, b&0x3f //nolint:mnd

	idx := int(popcount.Count(n.bitmap[word] & (1<<bit - 1))) //nolint:gosec
	for i := range word {
		idx += int(popcount.Count(n.bitmap[i])) //nolint:gosec
	}

	return idx, n.bitmap[word]&(1<<bit) != 0
}

// constantAt returns the constant child whose key starts with b, if any.
// Due to the radix invariant there is at most one.
func (n *Node[V]) constantAt(b byte) *Node[V] {
	if idx, ok := n.slot(b); ok {
		return n.constants[idx]
	}

	return nil
}

func (n *Node[V]) Constant(label string) *Node[V] {
	if len(label) == 0 {
		return nil
	}

	if child := n.constantAt(label[0]); child != nil && child.key == label {
		return child
	}

	return nil
}

func (n *Node[V]) Variable(name string) *Node[V] {
	for _, child := range n.variables {
		if child.key == name {
			return child
		}
	}

	return nil
}

// Constants iterates over the constant edges in ascending order of their first byte.
func (n *Node[V]) Constants() iter.Seq2[string, *Node[V]] {
	return edges(n.constants)
}

// Variables iterates over the variable edges in insertion order.
func (n *Node[V]) Variables() iter.Seq2[string, *Node[V]] {
	return edges(n.variables)
}

func edges[V any](children []*Node[V]) iter.Seq2[string, *Node[V]] {
	return func(yield func(string, *Node[V]) bool) {
		for _, child := range children {
			if !yield(child.key, child) {
				return
			}
		}
	}
}

// Nodes iterates depth first over the node and all its descendants.
func (n *Node[V]) Nodes() iter.Seq[*Node[V]] {
	return func(yield func(*Node[V]) bool) {
		n.visit(yield)
	}
}

func (n *Node[V]) visit(yield func(*Node[V]) bool) bool {
	if !yield(n) {
		return false
	}

	for _, child := range n.constants {
		if !child.visit(yield) {
			return false
		}
	}

	for _, child := range n.variables {
		if !child.visit(yield) {
			return false
		}
	}

	return true
}

// LinkConstant attaches a detached child under the given label. The label must not share
// its first byte with the label of an existing constant child.
func (n *Node[V]) LinkConstant(label string, child *Node[V]) error {
	if len(label) == 0 {
		return ErrEmptyLabel
	}

	if child.parent != nil {
		return fmt.Errorf("%w: %s", ErrAlreadyLinked, child.Path())
	}

	idx, taken := n.slot(label[0])
	if taken {
		return fmt.Errorf("%w: %s is blocked by %s", ErrEdgeExists, label, n.constants[idx].key)
	}

	n.bitmap[label[0]>>6] |= 1 << (label[0] & 0x3f) //nolint:mnd
	n.constants = slices.Insert(n.constants, idx, child)
	n.adopt(child, label, false)

	return nil
}

// LinkVariable attaches a detached child under the given variable name.
func (n *Node[V]) LinkVariable(name string, child *Node[V]) error {
	if len(name) == 0 {
		return ErrEmptyLabel
	}

	if child.parent != nil {
		return fmt.Errorf("%w: %s", ErrAlreadyLinked, child.Path())
	}

	if n.Variable(name) != nil {
		return fmt.Errorf("%w: %s", ErrEdgeExists, name)
	}

	n.variables = append(n.variables, child)
	n.adopt(child, name, true)

	return nil
}

func (n *Node[V]) adopt(child *Node[V], key string, variable bool) {
	child.parent = n
	child.key = key
	child.variable = variable
	child.syntax = n.syntax
}

// Unlink detaches the given child together with its subtree.
func (n *Node[V]) Unlink(child *Node[V]) error {
	if child.parent != n {
		return fmt.Errorf("%w: %s", ErrNotLinked, child.key)
	}

	if child.variable {
		idx := slices.Index(n.variables, child)
		if idx == -1 {
			return fmt.Errorf("%w: %s", ErrNotLinked, child.key)
		}

		n.variables = slices.Delete(n.variables, idx, idx+1)
	} else {
		first := child.key[0]

		idx, ok := n.slot(first)
		if !ok || n.constants[idx] != child {
			return fmt.Errorf("%w: %s", ErrNotLinked, child.key)
		}

		n.constants = slices.Delete(n.constants, idx, idx+1)
		n.bitmap[first>>6] &^= 1 << (first & 0x3f) //nolint:mnd
	}

	child.parent = nil

	return nil
}

// Prune detaches the node from its parent. Pruning a root is a no-op.
func (n *Node[V]) Prune() error {
	if n.parent == nil {
		return nil
	}

	return n.parent.Unlink(n)
}

// replaceConstant puts repl into the slot of old and detaches old. Both keys
// must start with the same byte.
func (n *Node[V]) replaceConstant(old *Node[V], key string, repl *Node[V]) {
	idx, _ := n.slot(key[0])

	n.constants[idx] = repl
	n.adopt(repl, key, false)

	old.parent = nil
}
