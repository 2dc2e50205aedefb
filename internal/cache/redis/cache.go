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

package redis

import (
	"context"
	"time"

	"github.com/redis/rueidis"

	"github.com/dadrus/pathtrie/internal/cache"
	"github.com/dadrus/pathtrie/internal/pathtrie"
	"github.com/dadrus/pathtrie/internal/watcher"
	"github.com/dadrus/pathtrie/internal/x/errorchain"
)

// by intention. Used only during application bootstrap.
func init() { // nolint: gochecknoinits
	cache.Register("redis", cache.FactoryFunc(NewStandaloneCache))
}

type redisCache struct {
	c rueidis.Client
}

func NewStandaloneCache(conf map[string]any, cw watcher.Watcher) (cache.Cache, error) {
	type Config struct {
		Credentials credentials   `mapstructure:"credentials"`
		Timeout     time.Duration `mapstructure:"timeout"`
		Address     string        `mapstructure:"address"     validate:"required"`
		DB          int           `mapstructure:"db"          validate:"gte=0"`
	}

	var cfg Config

	if err := decodeConfig(conf, &cfg); err != nil {
		return nil, err
	}

	if cfg.Credentials != nil {
		if err := cfg.Credentials.register(cw); err != nil {
			return nil, err
		}
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		ClientName:       "pathtrie",
		InitAddress:      []string{cfg.Address},
		SelectDB:         cfg.DB,
		DisableCache:     true,
		ConnWriteTimeout: cfg.Timeout,
		AuthCredentialsFn: func(_ rueidis.AuthCredentialsContext) (rueidis.AuthCredentials, error) {
			if cfg.Credentials != nil {
				return cfg.Credentials.get(), nil
			}

			return rueidis.AuthCredentials{}, nil
		},
	})
	if err != nil {
		return nil, errorchain.NewWithMessage(pathtrie.ErrInternal,
			"failed creating redis client").CausedBy(err)
	}

	return &redisCache{c: client}, nil
}

func (c *redisCache) Start(_ context.Context) error { return nil }

func (c *redisCache) Stop(_ context.Context) error {
	c.c.Close()

	return nil
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.c.Do(ctx, c.c.B().Get().Key(key).Build()).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, cache.ErrNoCacheEntry
		}

		return nil, errorchain.NewWithMessage(pathtrie.ErrCommunication,
			"failed fetching value from redis").CausedBy(err)
	}

	return val, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.c.Do(ctx, c.c.B().Set().Key(key).Value(rueidis.BinaryString(value)).Px(ttl).Build()).Error()
	if err != nil {
		return errorchain.NewWithMessage(pathtrie.ErrCommunication,
			"failed storing value in redis").CausedBy(err)
	}

	return nil
}
