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

package cache

import (
	"context"
	"errors"
	"time"

	"github.com/dadrus/pathtrie/internal/watcher"
)

var ErrNoCacheEntry = errors.New("no cache entry")

// Cache stores opaque values. Get returns ErrNoCacheEntry (possibly wrapped) for a miss.
type Cache interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error

	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type Factory interface {
	Create(conf map[string]any, cw watcher.Watcher) (Cache, error)
}

type FactoryFunc func(conf map[string]any, cw watcher.Watcher) (Cache, error)

func (f FactoryFunc) Create(conf map[string]any, cw watcher.Watcher) (Cache, error) {
	return f(conf, cw)
}
