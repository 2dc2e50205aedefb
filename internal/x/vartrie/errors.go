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
	"maps"
	"slices"
	"strings"
)

var (
	ErrDuplicateValue = errors.New("duplicate value")
	ErrAmbiguousMatch = errors.New("ambiguous match")
	ErrStructural     = errors.New("adjacent variables")
	ErrEdgeExists     = errors.New("edge exists")
	ErrEmptyLabel     = errors.New("empty edge label")
	ErrAlreadyLinked  = errors.New("node already linked")
	ErrNotLinked      = errors.New("node not linked")
)

// Candidate describes one of the walks competing for the best score.
type Candidate struct {
	Path      string   `json:"path"                yaml:"path"`
	Captured  string   `json:"captured"            yaml:"captured"`
	Variables Captures `json:"variables,omitempty" yaml:"variables,omitempty"`
}

func (c Candidate) String() string {
	if len(c.Variables) == 0 {
		return c.Path
	}

	names := slices.Sorted(maps.Keys(c.Variables))
	bindings := make([]string, len(names))

	for idx, name := range names {
		bindings[idx] = name + "=" + strings.Join(c.Variables[name], ",")
	}

	return c.Path + " {" + strings.Join(bindings, " ") + "}"
}

// AmbiguousMatchError is returned if more than one candidate reached the best score.
type AmbiguousMatchError struct {
	Query      string
	Candidates []Candidate
}

// Paths returns the keyed paths of the competing candidates. Candidates following the
// same edges with different captures share a path.
func (e *AmbiguousMatchError) Paths() []string {
	paths := make([]string, len(e.Candidates))
	for idx, candidate := range e.Candidates {
		paths[idx] = candidate.Path
	}

	return paths
}

func (e *AmbiguousMatchError) Error() string {
	candidates := make([]string, len(e.Candidates))
	for idx, candidate := range e.Candidates {
		candidates[idx] = candidate.String()
	}

	return fmt.Sprintf("%s: %q is matched by %s", ErrAmbiguousMatch, e.Query, strings.Join(candidates, ", "))
}

func (e *AmbiguousMatchError) Unwrap() error { return ErrAmbiguousMatch }
