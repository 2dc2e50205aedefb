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

package memory

import (
	"context"
	"time"

	"github.com/ccoveille/go-safecast"
	"github.com/inhies/go-bytesize"
	"github.com/jellydator/ttlcache/v3"

	"github.com/dadrus/pathtrie/internal/cache"
	"github.com/dadrus/pathtrie/internal/config"
	"github.com/dadrus/pathtrie/internal/encoding"
	"github.com/dadrus/pathtrie/internal/pathtrie"
	"github.com/dadrus/pathtrie/internal/validation"
	"github.com/dadrus/pathtrie/internal/watcher"
	"github.com/dadrus/pathtrie/internal/x/errorchain"
)

const (
	defaultMaxEntries = 10000
	defaultMaxMemory  = 16 * bytesize.MB

	// key and value headers plus the bookkeeping ttlcache does per item
	overheadPerEntry = 184
)

// by intention. Used only during application bootstrap.
func init() { // nolint: gochecknoinits
	cache.Register("memory", cache.FactoryFunc(NewCache))
}

type Cache struct {
	c *ttlcache.Cache[string, []byte]
}

func NewCache(conf map[string]any, _ watcher.Watcher) (cache.Cache, error) {
	type Config struct {
		MaxEntries int               `mapstructure:"max_entries" validate:"gte=0"`
		MaxMemory  bytesize.ByteSize `mapstructure:"max_memory"`
	}

	cfg := Config{MaxEntries: defaultMaxEntries, MaxMemory: defaultMaxMemory}

	validator, err := validation.NewValidator()
	if err != nil {
		return nil, err
	}

	dec := encoding.NewDecoder(
		encoding.WithTagName("mapstructure"),
		encoding.WithErrorOnUnused(true),
		encoding.WithValidator(validator),
		encoding.WithDecodeHooks(config.ByteSizeDecodeHookFunc),
	)

	if err = dec.DecodeMap(&cfg, conf); err != nil {
		return nil, errorchain.NewWithMessage(pathtrie.ErrConfiguration,
			"failed decoding memory cache config").CausedBy(err)
	}

	maxEntries, err := safecast.ToUint64(cfg.MaxEntries)
	if err != nil {
		return nil, errorchain.NewWithMessage(pathtrie.ErrConfiguration,
			"invalid max_entries").CausedBy(err)
	}

	return &Cache{
		c: ttlcache.New[string, []byte](
			ttlcache.WithDisableTouchOnHit[string, []byte](),
			ttlcache.WithCapacity[string, []byte](maxEntries),
			ttlcache.WithMaxCost[string, []byte](uint64(cfg.MaxMemory),
				func(item ttlcache.CostItem[string, []byte]) uint64 {
					cost, _ := safecast.ToUint64(len(item.Key) + len(item.Value) + overheadPerEntry)

					return cost
				},
			),
		),
	}, nil
}

func (c *Cache) Start(_ context.Context) error {
	go c.c.Start()

	return nil
}

func (c *Cache) Stop(_ context.Context) error {
	c.c.Stop()

	return nil
}

func (c *Cache) Get(_ context.Context, key string) ([]byte, error) {
	item := c.c.Get(key)
	if item == nil || item.IsExpired() {
		return nil, cache.ErrNoCacheEntry
	}

	return item.Value(), nil
}

func (c *Cache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.c.Set(key, value, ttl)

	return nil
}
