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

package encoding

import (
	"bytes"
	"errors"
	"io"

	"github.com/drone/envsubst/v2"
	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/pathtrie/internal/pathtrie"
	"github.com/dadrus/pathtrie/internal/x"
	"github.com/dadrus/pathtrie/internal/x/errorchain"
)

type Decoder struct {
	decoderOpts
}

func NewDecoder(opts ...DecoderOption) *Decoder {
	decoder := &Decoder{
		decoderOpts: decoderOpts{
			contentType: "application/yaml",
			validator:   noopValidator{},
			tagName:     "json",
		},
	}

	for _, opt := range opts {
		opt(&decoder.decoderOpts)
	}

	return decoder
}

// Decode reads a json or yaml document from reader and decodes it into out. An empty
// document results in io.EOF.
func (d *Decoder) Decode(out any, reader io.Reader) error {
	var raw map[string]any

	if d.contentType != "application/json" && d.contentType != "application/yaml" {
		return errorchain.NewWithMessagef(pathtrie.ErrInternal,
			"unsupported content type: %s", d.contentType)
	}

	if d.substituteEnvVars {
		data, err := io.ReadAll(reader)
		if err != nil {
			return errorchain.NewWithMessage(pathtrie.ErrInternal,
				"reading object failed").CausedBy(err)
		}

		content, err := envsubst.EvalEnv(string(data))
		if err != nil {
			return errorchain.NewWithMessage(pathtrie.ErrConfiguration,
				"substitution of environment variables failed").CausedBy(err)
		}

		reader = bytes.NewReader([]byte(content))
	}

	// yaml is a superset of json
	if err := yaml.NewDecoder(reader).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return err
		}

		return errorchain.NewWithMessage(pathtrie.ErrConfiguration,
			"parsing of object failed").CausedBy(err)
	}

	return d.DecodeMap(out, raw)
}

func (d *Decoder) DecodeMap(out any, in map[string]any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: d.errorOnUnused,
		TagName:     d.tagName,
		DecodeHook:  x.IfThenElse(d.decodeHooks != nil, d.decodeHooks, mapstructure.ComposeDecodeHookFunc()),
	})
	if err != nil {
		return errorchain.NewWithMessage(pathtrie.ErrInternal,
			"failed creating object decoder").CausedBy(err)
	}

	if err = dec.Decode(in); err != nil {
		return errorchain.NewWithMessage(pathtrie.ErrConfiguration,
			"decoding of object failed").CausedBy(err)
	}

	if err = d.validator.ValidateStruct(out); err != nil {
		return errorchain.NewWithMessage(pathtrie.ErrConfiguration,
			"object validation failed").CausedBy(err)
	}

	return nil
}
