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

package template

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"net/url"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/goccy/go-json"

	"github.com/dadrus/pathtrie/internal/pathtrie"
	"github.com/dadrus/pathtrie/internal/x/errorchain"
)

var ErrTemplateRender = errors.New("template error")

// Variables is the shape of the captures handed over to Render under the "Variables" key.
// They are available via the var and vars functions.
type Variables = map[string][]string

type Template interface {
	Render(values map[string]any) (string, error)
	Hash() []byte
	String() string
}

type templateImpl struct {
	t    *template.Template
	src  string
	hash []byte
}

func New(val string) (Template, error) {
	funcMap := sprig.TxtFuncMap()
	delete(funcMap, "env")
	delete(funcMap, "expandenv")

	tmpl, err := template.New("pathtrie").
		Funcs(funcMap).
		Funcs(template.FuncMap{
			"urlenc": urlEncode,
			"var":    func(string) string { return "" },
			"vars":   func(string) []string { return nil },
		}).
		Parse(val)
	if err != nil {
		return nil, errorchain.NewWithMessage(pathtrie.ErrConfiguration, "failed to parse template").
			CausedBy(err)
	}

	hash := sha256.Sum256([]byte(val))

	return &templateImpl{t: tmpl, src: val, hash: hash[:]}, nil
}

func (t *templateImpl) Render(values map[string]any) (string, error) {
	var buf bytes.Buffer

	vars, _ := values["Variables"].(Variables)

	tmpl, err := t.t.Clone()
	if err != nil {
		return "", errorchain.New(ErrTemplateRender).CausedBy(err)
	}

	tmpl.Funcs(template.FuncMap{
		"var": func(name string) string {
			if captured := vars[name]; len(captured) != 0 {
				return captured[0]
			}

			return ""
		},
		"vars": func(name string) []string { return vars[name] },
	})

	if err = tmpl.Execute(&buf, values); err != nil {
		return "", errorchain.New(ErrTemplateRender).CausedBy(err)
	}

	return buf.String(), nil
}

func (t *templateImpl) Hash() []byte { return t.hash }

func (t *templateImpl) String() string { return t.src }

func (t *templateImpl) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.src)
}

func (t *templateImpl) MarshalYAML() (any, error) { return t.src, nil }

func urlEncode(value any) string {
	switch t := value.(type) {
	case string:
		return url.QueryEscape(t)
	case fmt.Stringer:
		return url.QueryEscape(t.String())
	default:
		return ""
	}
}
