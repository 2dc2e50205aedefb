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
	"bytes"
	"crypto/sha256"
	"errors"
	"io"
	"sync"

	"github.com/dadrus/pathtrie/internal/config"
	"github.com/dadrus/pathtrie/internal/encoding"
	"github.com/dadrus/pathtrie/internal/pathtrie"
	"github.com/dadrus/pathtrie/internal/template"
	"github.com/dadrus/pathtrie/internal/validation"
	"github.com/dadrus/pathtrie/internal/x/errorchain"
)

//nolint:gochecknoglobals
var routeSetValidator = sync.OnceValues(func() (validation.Validator, error) {
	return validation.NewValidator()
})

type MetaData struct {
	Hash   []byte `json:"-" yaml:"-"`
	Source string `json:"-" yaml:"-"`
}

type RouteSet struct {
	MetaData

	Version string  `json:"version" validate:"required"                  yaml:"version"`
	Name    string  `json:"name"    yaml:"name"`
	Routes  []Route `json:"routes"  validate:"required,min=1,unique=ID,dive" yaml:"routes"`
}

type Route struct {
	ID     string            `json:"id"     validate:"required" yaml:"id"`
	Path   string            `json:"path"   validate:"required" yaml:"path"`
	Target template.Template `json:"target" validate:"required" yaml:"target"`
}

// ParseRouteSet reads a json or yaml route set document. An empty document results in
// a nil route set without an error. Environment variables are not substituted, as the
// ${name} notation is used for path variables.
func ParseRouteSet(contentType string, reader io.Reader) (*RouteSet, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errorchain.NewWithMessage(pathtrie.ErrInternal, "failed reading route set").
			CausedBy(err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil //nolint:nilnil
	}

	if err = config.ValidateRouteSetSchema(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	validator, err := routeSetValidator()
	if err != nil {
		return nil, errorchain.NewWithMessage(pathtrie.ErrInternal, "failed creating validator").
			CausedBy(err)
	}

	dec := encoding.NewDecoder(
		encoding.WithSourceContentType(contentType),
		encoding.WithValidator(validator),
		encoding.WithErrorOnUnused(true),
		encoding.WithDecodeHooks(template.DecodeTemplateHookFunc()),
		encoding.WithTagName("json"),
	)

	var rs RouteSet
	if err = dec.Decode(&rs, bytes.NewReader(data)); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil //nolint:nilnil
		}

		return nil, err
	}

	hash := sha256.Sum256(data)
	rs.Hash = hash[:]

	return &rs, nil
}
