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

type options struct {
	allowVariables bool
	allowExtra     bool
	names          NameRecognizer
	values         ValueRecognizer
}

type Option func(o *options)

// WithVariables enables interpretation of $name and ${name} references.
func WithVariables(enabled bool) Option {
	return func(o *options) {
		o.allowVariables = enabled
	}
}

// WithExtra lets lookups succeed with unconsumed trailing text.
func WithExtra(enabled bool) Option {
	return func(o *options) {
		o.allowExtra = enabled
	}
}

func WithNameRecognizer(r NameRecognizer) Option {
	return func(o *options) {
		if r != nil {
			o.names = r
		}
	}
}

func WithValueRecognizer(r ValueRecognizer) Option {
	return func(o *options) {
		if r != nil {
			o.values = r
		}
	}
}

func newOptions(opts []Option) options {
	var o options

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
