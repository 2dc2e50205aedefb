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
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dadrus/pathtrie/internal/cache"
	"github.com/dadrus/pathtrie/internal/config"
	"github.com/dadrus/pathtrie/internal/x/vartrie"
)

type opts struct {
	c   cache.Cache
	ttl time.Duration
	reg prometheus.Registerer
	m   *metrics

	allowVariables bool
	allowExtra     bool
	valuePattern   string
	trieOpts       []vartrie.Option
}

type Option func(o *opts)

// WithRoutesConfig sets the matching behavior. Variables are enabled if not configured otherwise.
func WithRoutesConfig(conf config.RoutesConfig) Option {
	return func(o *opts) {
		o.allowVariables = conf.AllowVariables
		o.allowExtra = conf.AllowExtra
		o.valuePattern = conf.ValuePattern
	}
}

// WithCache enables caching of lookup results for ttl. A ttl <= 0 disables caching.
func WithCache(cch cache.Cache, ttl time.Duration) Option {
	return func(o *opts) {
		if cch != nil {
			o.c = cch
			o.ttl = ttl
		}
	}
}

func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *opts) { o.reg = reg }
}

func newOptions(options []Option) (opts, error) {
	noop, _ := cache.Create("none", nil, nil)

	o := opts{c: noop, allowVariables: true}

	for _, opt := range options {
		opt(&o)
	}

	trieOpts, err := TrieOptions(config.RoutesConfig{
		AllowVariables: o.allowVariables,
		AllowExtra:     o.allowExtra,
		ValuePattern:   o.valuePattern,
	})
	if err != nil {
		return o, err
	}

	o.trieOpts = trieOpts
	o.m = newMetrics(o.reg)

	return o, nil
}
