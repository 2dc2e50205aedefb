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

package routes

import (
	"github.com/dadrus/pathtrie/internal/template"
	"github.com/dadrus/pathtrie/internal/x/vartrie"
)

type ResolvedRoute struct {
	ID     string `json:"id"             yaml:"id"`
	Set    string `json:"set,omitempty"  yaml:"set,omitempty"`
	Path   string `json:"path"           yaml:"path"`
	Target string `json:"target"         yaml:"target"`
}

// Resolution describes a route matched by a concrete path. Score is only set
// for the entries returned by Matches.
type Resolution struct {
	Route     ResolvedRoute       `json:"route"               yaml:"route"`
	Variables map[string][]string `json:"variables,omitempty" yaml:"variables,omitempty"`
	Rest      string              `json:"rest,omitempty"      yaml:"rest,omitempty"`
	Score     int                 `json:"score,omitempty"     yaml:"score,omitempty"`
}

type entry struct {
	set   *RouteSet
	route *Route
}

func (e *entry) resolve(variables vartrie.Captures, rest string) (*Resolution, error) {
	target, err := e.route.Target.Render(map[string]any{
		"Variables": template.Variables(variables),
		"Rest":      rest,
		"Path":      e.route.Path,
	})
	if err != nil {
		return nil, err
	}

	return &Resolution{
		Route: ResolvedRoute{
			ID:     e.route.ID,
			Set:    e.set.Name,
			Path:   e.route.Path,
			Target: target,
		},
		Variables: variables,
		Rest:      rest,
	}, nil
}
