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

// Remove clears the value of the node addressed literally by path and unlinks it, together
// with its ancestors, for as long as they are dead. With forcePrune the addressed node is
// unlinked even if it still has children. The ancestors are only unlinked if dead.
// The root is never unlinked. Remove reports whether path addressed a node.
func (n *Node[V]) Remove(path string, allowVariables, forcePrune bool) bool {
	target, rest := n.Locate(path, allowVariables)
	if len(rest) != 0 {
		return false
	}

	target.ClearValue()

	if forcePrune && !target.IsRoot() {
		parent := target.parent
		if err := parent.Unlink(target); err != nil {
			return true
		}

		target = parent
	}

	target.pruneDead()

	return true
}
