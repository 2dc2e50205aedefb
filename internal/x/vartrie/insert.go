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
	"strings"
)

// Insert binds value to the node addressed by path, creating and splitting nodes as required.
// If allowVariables is set, $name and ${name} references in path create variable edges.
// Nothing is modified if the addressed node holds a value already and overwrite is not allowed.
func (n *Node[V]) Insert(path string, value V, allowVariables, allowOverwrite bool) (*Node[V], error) {
	if target, rest := n.Locate(path, allowVariables); len(rest) == 0 && target.hasValue && !allowOverwrite {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateValue, target.Path())
	}

	target := n.ensure(path, allowVariables)
	if err := target.SetValue(value, allowOverwrite); err != nil {
		target.pruneDead()

		return nil, err
	}

	return target, nil
}

// Locate descends literally, that is variable references must name variable edges exactly.
// It returns the deepest node reached and the part of path not consumed.
func (n *Node[V]) Locate(path string, allowVariables bool) (*Node[V], string) {
	cur := n

	for len(path) != 0 {
		if allowVariables {
			if name, rest, ok := cur.syntax.names.RecognizeName(path); ok {
				child := cur.Variable(name)
				if child == nil {
					return cur, path
				}

				cur, path = child, rest

				continue
			}
		}

		child := cur.constantAt(path[0])
		if child == nil || !strings.HasPrefix(path, child.key) {
			return cur, path
		}

		cur, path = child, path[len(child.key):]
	}

	return cur, ""
}

// ensure returns the node addressed by path, creating it if absent. Values are never touched.
func (n *Node[V]) ensure(path string, allowVariables bool) *Node[V] {
	if len(path) == 0 {
		return n
	}

	if allowVariables {
		if name, rest, ok := n.syntax.names.RecognizeName(path); ok {
			return n.ensureVariable(name).ensure(rest, true)
		}

		if pos := n.syntax.nextVariable(path); pos != -1 {
			return n.ensureConstant(path[:pos]).ensure(path[pos:], true)
		}
	}

	return n.ensureConstant(path)
}

func (n *Node[V]) ensureVariable(name string) *Node[V] {
	if child := n.Variable(name); child != nil {
		return child
	}

	child := n.newChild()
	n.variables = append(n.variables, child)
	n.adopt(child, name, true)

	return child
}

// ensureConstant handles a pure literal, non-empty path.
func (n *Node[V]) ensureConstant(path string) *Node[V] {
	child := n.constantAt(path[0])
	if child == nil {
		child = n.newChild()
		_ = n.LinkConstant(path, child)

		return child
	}

	common := commonPrefixLen(child.key, path)
	if common == len(child.key) {
		if common == len(path) {
			return child
		}

		return child.ensureConstant(path[common:])
	}

	// split: the shared prefix becomes a new intermediate node
	// with the existing child moved below it
	mid := n.newChild()
	n.replaceConstant(child, path[:common], mid)
	_ = mid.LinkConstant(child.key[common:], child)

	if common == len(path) {
		return mid
	}

	leaf := mid.newChild()
	_ = mid.LinkConstant(path[common:], leaf)

	return leaf
}

// pruneDead removes the node and its ancestors as long as they are dead.
func (n *Node[V]) pruneDead() {
	for cur := n; !cur.IsRoot() && cur.IsDead(); {
		parent := cur.parent
		if err := parent.Unlink(cur); err != nil {
			return
		}

		cur = parent
	}
}
