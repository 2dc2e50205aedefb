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
	"iter"
	"strings"
)

type StepKind int

const (
	// ConstantStep follows a constant edge.
	ConstantStep StepKind = iota
	// VariableStep follows a variable edge addressed by its name.
	VariableStep
	// CaptureStep follows a variable edge by consuming a part of the query.
	CaptureStep
)

const (
	structuralWeight = 100000
	captureWeight    = 1
	completionBonus  = 1
)

func (k StepKind) String() string {
	switch k {
	case ConstantStep:
		return "constant"
	case VariableStep:
		return "variable"
	case CaptureStep:
		return "capture"
	default:
		return "unknown"
	}
}

type Step[V any] struct {
	Kind     StepKind
	Key      string
	Captured string
	Node     *Node[V]

	prev *Step[V]
	next *Step[V]
}

func (s *Step[V]) score() int {
	if s.Kind == CaptureStep {
		return captureWeight
	}

	return structuralWeight
}

// Walk is one traversal attempt: the steps taken from its origin node and the part of the
// query not consumed. Candidates produced by the matcher are walks.
type Walk[V any] struct {
	origin *Node[V]
	head   *Step[V]
	tail   *Step[V]
	size   int

	Rest string
}

func NewWalk[V any](origin *Node[V], rest string) *Walk[V] {
	return &Walk[V]{origin: origin, Rest: rest}
}

func (w *Walk[V]) Append(kind StepKind, key, captured string, node *Node[V]) *Walk[V] {
	step := &Step[V]{Kind: kind, Key: key, Captured: captured, Node: node, prev: w.tail}

	if w.tail == nil {
		w.head = step
	} else {
		w.tail.next = step
	}

	w.tail = step
	w.size++

	return w
}

// Prepend adds a step in front. The origin moves to the parent of the node reached by it.
func (w *Walk[V]) Prepend(kind StepKind, key, captured string, node *Node[V]) *Walk[V] {
	step := &Step[V]{Kind: kind, Key: key, Captured: captured, Node: node, next: w.head}

	if w.head == nil {
		w.tail = step
	} else {
		w.head.prev = step
	}

	w.head = step
	w.size++

	if node.parent != nil {
		w.origin = node.parent
	}

	return w
}

// Merge appends copies of the steps of other, which is expected to start where w ends.
// The remainder of other is appended to the remainder of w.
func (w *Walk[V]) Merge(other *Walk[V]) *Walk[V] {
	for step := range other.Steps() {
		w.Append(step.Kind, step.Key, step.Captured, step.Node)
	}

	w.Rest += other.Rest

	return w
}

// Rollback drops trailing steps reaching nodes without a value.
// Their captured text is returned to the remainder.
func (w *Walk[V]) Rollback() *Walk[V] {
	for w.tail != nil && !w.tail.Node.hasValue {
		w.Rest = w.tail.Captured + w.Rest
		w.tail = w.tail.prev
		w.size--

		if w.tail == nil {
			w.head = nil
		} else {
			w.tail.next = nil
		}
	}

	return w
}

func (w *Walk[V]) Steps() iter.Seq[*Step[V]] {
	return func(yield func(*Step[V]) bool) {
		for step := w.head; step != nil; step = step.next {
			if !yield(step) {
				return
			}
		}
	}
}

func (w *Walk[V]) Len() int { return w.size }

// Node returns the node the walk ends at.
func (w *Walk[V]) Node() *Node[V] {
	if w.tail != nil {
		return w.tail.Node
	}

	return w.origin
}

func (w *Walk[V]) Origin() *Node[V] { return w.origin }

func (w *Walk[V]) Value() (V, bool) { return w.Node().Value() }

func (w *Walk[V]) Complete() bool { return len(w.Rest) == 0 }

// Key joins the keys of all edges taken, e.g. Foo$BarBaz.
func (w *Walk[V]) Key() string {
	var sb strings.Builder

	for step := range w.Steps() {
		sb.WriteString(step.Key)
	}

	return sb.String()
}

// Captured joins the text consumed by all steps.
func (w *Walk[V]) Captured() string {
	var sb strings.Builder

	for step := range w.Steps() {
		sb.WriteString(step.Captured)
	}

	return sb.String()
}

// Variables collects the text consumed by variable edges. Values of repeated names are
// accumulated in the order of their occurrence.
func (w *Walk[V]) Variables() Captures {
	vars := make(Captures)

	for step := range w.Steps() {
		if step.Kind != ConstantStep {
			vars[step.Key] = append(vars[step.Key], step.Captured)
		}
	}

	return vars
}

func (w *Walk[V]) Score() int {
	score := 0
	if w.Complete() {
		score += completionBonus
	}

	for step := range w.Steps() {
		score += step.score()
	}

	return score
}

// Captures maps variable names to the captured values.
type Captures map[string][]string

// Get returns the first value captured for name.
func (c Captures) Get(name string) (string, bool) {
	values := c[name]
	if len(values) == 0 {
		return "", false
	}

	return values[0], true
}

func (c Captures) All(name string) []string { return c[name] }
