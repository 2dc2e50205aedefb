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

package filesystem

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/rs/zerolog"

	"github.com/dadrus/pathtrie/internal/encoding"
	"github.com/dadrus/pathtrie/internal/pathtrie"
	"github.com/dadrus/pathtrie/internal/routes"
	"github.com/dadrus/pathtrie/internal/validation"
	"github.com/dadrus/pathtrie/internal/watcher"
	"github.com/dadrus/pathtrie/internal/x"
	"github.com/dadrus/pathtrie/internal/x/errorchain"
)

const providerType = "file_system"

type Config struct {
	Src     string `mapstructure:"src"     validate:"required"`
	Watch   bool   `mapstructure:"watch"`
	Pattern string `mapstructure:"pattern" validate:"omitempty,glob"`
}

type provider struct {
	src     string
	isDir   bool
	watch   bool
	pattern glob.Glob
	r       routes.Repository
	w       watcher.Watcher
	l       zerolog.Logger
}

func newProvider(
	rawConf map[string]any,
	repo routes.Repository,
	cw watcher.Watcher,
	validator validation.Validator,
	logger zerolog.Logger,
) (*provider, error) {
	var conf Config

	dec := encoding.NewDecoder(
		encoding.WithTagName("mapstructure"),
		encoding.WithErrorOnUnused(true),
		encoding.WithValidator(validator),
	)
	if err := dec.DecodeMap(&conf, rawConf); err != nil {
		return nil, errorchain.
			NewWithMessage(pathtrie.ErrConfiguration, "failed to decode file_system route provider config").
			CausedBy(err)
	}

	absPath, err := filepath.Abs(conf.Src)
	if err != nil {
		return nil, errorchain.
			NewWithMessage(pathtrie.ErrInternal, "failed to get the absolute path for the configured src").
			CausedBy(err)
	}

	fInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, errorchain.
			NewWithMessage(pathtrie.ErrConfiguration, "configured src is not accessible").
			CausedBy(err)
	}

	pattern, err := glob.Compile(x.OrDefault(conf.Pattern, "*"))
	if err != nil {
		return nil, errorchain.
			NewWithMessage(pathtrie.ErrConfiguration, "invalid pattern").
			CausedBy(err)
	}

	return &provider{
		src:     absPath,
		isDir:   fInfo.IsDir(),
		watch:   conf.Watch,
		pattern: pattern,
		r:       repo,
		w:       cw,
		l:       logger.With().Str("_provider_type", providerType).Logger(),
	}, nil
}

func (p *provider) Start(ctx context.Context) error {
	p.l.Info().Msg("Starting route sets provider")

	if err := p.loadInitialRouteSets(p.l.WithContext(ctx)); err != nil {
		p.l.Error().Err(err).Msg("Failed loading initial route sets")

		return err
	}

	if !p.watch {
		p.l.Warn().Msg("Watching of route set files is not enabled. Updates will have no effects.")

		return nil
	}

	if err := p.w.Add(p.src, p); err != nil {
		p.l.Error().Err(err).Msg("Failed to watch route set files")

		return err
	}

	return nil
}

func (p *provider) Stop(_ context.Context) error {
	p.l.Info().Msg("Tearing down route sets provider")

	return nil
}

func (p *provider) OnChanged(logger zerolog.Logger, evt watcher.Event) {
	if p.isDir && !p.pattern.Match(filepath.Base(evt.Name)) {
		logger.Debug().Str("_file", evt.Name).Msg("Ignoring file not matching the pattern")

		return
	}

	ctx := logger.WithContext(context.Background())

	switch evt.Kind {
	case watcher.Removed:
		if err := p.r.DeleteRouteSet(ctx, source(evt.Name)); err != nil {
			logger.Warn().Err(err).Str("_file", evt.Name).Msg("Failed to remove route set")
		}
	case watcher.Created, watcher.Modified:
		if err := p.load(ctx, evt.Name); err != nil {
			logger.Warn().Err(err).Str("_file", evt.Name).Msg("Failed to update route set")
		}
	}
}

func (p *provider) loadInitialRouteSets(ctx context.Context) error {
	if !p.isDir {
		return p.load(ctx, p.src)
	}

	entries, err := os.ReadDir(p.src)
	if err != nil {
		return errorchain.NewWithMessage(pathtrie.ErrInternal, "failed reading src directory").CausedBy(err)
	}

	for _, entry := range entries {
		path := filepath.Join(p.src, entry.Name())

		if entry.IsDir() {
			p.l.Debug().Str("_path", path).Msg("Ignoring directory")

			continue
		}

		if !p.pattern.Match(entry.Name()) {
			p.l.Debug().Str("_path", path).Msg("Ignoring file not matching the pattern")

			continue
		}

		if err = p.load(ctx, path); err != nil {
			return err
		}
	}

	return nil
}

// load publishes the route set from file. An empty file removes a previously published set.
func (p *provider) load(ctx context.Context, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return errorchain.NewWithMessagef(pathtrie.ErrInternal, "failed reading %s", file).CausedBy(err)
	}

	rs, err := routes.ParseRouteSet(contentType(file), bytes.NewReader(data))
	if err != nil {
		return err
	}

	if rs == nil {
		p.l.Warn().Str("_file", file).Msg("Route set file is empty")

		return p.r.DeleteRouteSet(ctx, source(file))
	}

	return p.r.UpdateRouteSet(ctx, source(file), rs)
}

func source(file string) string { return providerType + ":" + file }

func contentType(file string) string {
	if strings.EqualFold(filepath.Ext(file), ".json") {
		return "application/json"
	}

	return "application/yaml"
}

// LoadRouteSets publishes the route sets found at src to repo once. Used by the commands,
// which work on route set files without a running service.
func LoadRouteSets(ctx context.Context, src string, repo routes.Repository, validator validation.Validator) error {
	prov, err := newProvider(map[string]any{"src": src}, repo, watcher.NoopWatcher{}, validator, *zerolog.Ctx(ctx))
	if err != nil {
		return err
	}

	return prov.loadInitialRouteSets(ctx)
}
