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
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/pathtrie/internal/pathtrie"
	"github.com/dadrus/pathtrie/internal/x/errorchain"
)

type Encoder struct {
	encoderOpts
}

func NewEncoder(opts ...EncoderOption) *Encoder {
	encoder := &Encoder{encoderOpts: encoderOpts{contentType: "application/json"}}

	for _, opt := range opts {
		opt(&encoder.encoderOpts)
	}

	return encoder
}

func (e *Encoder) Encode(in any, writer io.Writer) error {
	switch e.contentType {
	case "application/json":
		if err := json.NewEncoder(writer).Encode(in); err != nil {
			return errorchain.NewWithMessage(pathtrie.ErrInternal, "json encoding failed").CausedBy(err)
		}
	case "application/yaml":
		enc := yaml.NewEncoder(writer)
		enc.SetIndent(2) // nolint: mnd

		if err := enc.Encode(in); err != nil {
			return errorchain.NewWithMessage(pathtrie.ErrInternal, "yaml encoding failed").CausedBy(err)
		}

		if err := enc.Close(); err != nil {
			return errorchain.NewWithMessage(pathtrie.ErrInternal, "yaml encoding failed").CausedBy(err)
		}
	default:
		return errorchain.NewWithMessagef(pathtrie.ErrNotAcceptable,
			"unsupported content type: %s", e.contentType)
	}

	return nil
}
