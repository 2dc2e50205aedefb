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
	"testing"

	"github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/assert"
)

func TestDecoderOptions(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		opt    DecoderOption
		assert func(t *testing.T, opts decoderOpts)
	}{
		"empty content type is ignored": {
			opt: WithSourceContentType(""),
			assert: func(t *testing.T, opts decoderOpts) {
				t.Helper()

				assert.Equal(t, "text/plain", opts.contentType)
			},
		},
		"content type": {
			opt: WithSourceContentType("application/json"),
			assert: func(t *testing.T, opts decoderOpts) {
				t.Helper()

				assert.Equal(t, "application/json", opts.contentType)
			},
		},
		"nil validator is ignored": {
			opt: WithValidator(nil),
			assert: func(t *testing.T, opts decoderOpts) {
				t.Helper()

				assert.Nil(t, opts.validator)
			},
		},
		"validator": {
			opt: WithValidator(noopValidator{}),
			assert: func(t *testing.T, opts decoderOpts) {
				t.Helper()

				assert.IsType(t, noopValidator{}, opts.validator)
			},
		},
		"error on unused": {
			opt: WithErrorOnUnused(true),
			assert: func(t *testing.T, opts decoderOpts) {
				t.Helper()

				assert.True(t, opts.errorOnUnused)
			},
		},
		"env vars substitution": {
			opt: WithEnvVarsSubstitution(true),
			assert: func(t *testing.T, opts decoderOpts) {
				t.Helper()

				assert.True(t, opts.substituteEnvVars)
			},
		},
		"decode hooks": {
			opt: WithDecodeHooks(mapstructure.StringToTimeDurationHookFunc()),
			assert: func(t *testing.T, opts decoderOpts) {
				t.Helper()

				assert.NotNil(t, opts.decodeHooks)
			},
		},
		"no decode hooks": {
			opt: WithDecodeHooks(),
			assert: func(t *testing.T, opts decoderOpts) {
				t.Helper()

				assert.Nil(t, opts.decodeHooks)
			},
		},
		"tag name": {
			opt: WithTagName("koanf"),
			assert: func(t *testing.T, opts decoderOpts) {
				t.Helper()

				assert.Equal(t, "koanf", opts.tagName)
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			opts := decoderOpts{contentType: "text/plain"}

			tc.opt(&opts)

			tc.assert(t, opts)
		})
	}
}

func TestWithTargetContentType(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		contentType string
		expected    string
	}{
		"empty content type":     {contentType: "", expected: "application/json"},
		"not empty content type": {contentType: "application/yaml", expected: "application/yaml"},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			opts := encoderOpts{contentType: "application/json"}

			WithTargetContentType(tc.contentType)(&opts)

			assert.Equal(t, tc.expected, opts.contentType)
		})
	}
}
