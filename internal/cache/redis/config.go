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
	"os"
	"reflect"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/redis/rueidis"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/pathtrie/internal/pathtrie"
	"github.com/dadrus/pathtrie/internal/validation"
	"github.com/dadrus/pathtrie/internal/watcher"
	"github.com/dadrus/pathtrie/internal/x/errorchain"
)

type credentials interface {
	register(cw watcher.Watcher) error
	get() rueidis.AuthCredentials
}

type staticCredentials struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

func (c *staticCredentials) register(_ watcher.Watcher) error { return nil }

func (c *staticCredentials) get() rueidis.AuthCredentials {
	return rueidis.AuthCredentials{Username: c.Username, Password: c.Password}
}

// fileCredentials are read from a yaml file with username and password and
// reloaded whenever that file changes.
type fileCredentials struct {
	Path string

	creds *staticCredentials
	mut   sync.Mutex
}

func (c *fileCredentials) load() error {
	cf, err := os.Open(c.Path)
	if err != nil {
		return err
	}

	defer cf.Close()

	var creds staticCredentials

	dec := yaml.NewDecoder(cf)
	dec.KnownFields(true)

	if err = dec.Decode(&creds); err != nil {
		return err
	}

	c.mut.Lock()
	c.creds = &creds
	c.mut.Unlock()

	return nil
}

func (c *fileCredentials) OnChanged(log zerolog.Logger, _ watcher.Event) {
	if err := c.load(); err != nil {
		log.Warn().Err(err).
			Str("_source", "redis-cache").
			Str("_file", c.Path).
			Msg("Credentials reload failed")
	} else {
		log.Info().
			Str("_source", "redis-cache").
			Str("_file", c.Path).
			Msg("Credentials reloaded")
	}
}

func (c *fileCredentials) register(cw watcher.Watcher) error {
	if err := cw.Add(c.Path, c); err != nil {
		return errorchain.NewWithMessagef(pathtrie.ErrInternal,
			"failed registering credentials watcher on %s for redis client", c.Path).CausedBy(err)
	}

	return nil
}

func (c *fileCredentials) get() rueidis.AuthCredentials {
	c.mut.Lock()
	defer c.mut.Unlock()

	return c.creds.get()
}

func decodeCredentialsHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Map || to != reflect.TypeOf((*credentials)(nil)).Elem() {
		return data, nil
	}

	vals, ok := data.(map[string]any)
	if !ok {
		return data, nil
	}

	if path, ok := vals["path"].(string); ok {
		creds := &fileCredentials{Path: path}
		if err := creds.load(); err != nil {
			return nil, err
		}

		return creds, nil
	}

	username, _ := vals["username"].(string)
	password, _ := vals["password"].(string)

	return &staticCredentials{Username: username, Password: password}, nil
}

func decodeConfig(input any, output any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			decodeCredentialsHookFunc,
		),
		Result:      output,
		ErrorUnused: true,
	})
	if err != nil {
		return errorchain.NewWithMessage(pathtrie.ErrInternal,
			"failed creating redis cache config decoder").CausedBy(err)
	}

	if err = dec.Decode(input); err != nil {
		return errorchain.NewWithMessage(pathtrie.ErrConfiguration,
			"failed decoding redis cache config").CausedBy(err)
	}

	validator, err := validation.NewValidator()
	if err != nil {
		return err
	}

	if err = validator.ValidateStruct(output); err != nil {
		return errorchain.NewWithMessage(pathtrie.ErrConfiguration,
			"failed validating redis cache config").CausedBy(err)
	}

	return nil
}
