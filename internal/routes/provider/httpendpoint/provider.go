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

package httpendpoint

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"

	"github.com/dadrus/pathtrie/internal/encoding"
	"github.com/dadrus/pathtrie/internal/pathtrie"
	"github.com/dadrus/pathtrie/internal/routes"
	"github.com/dadrus/pathtrie/internal/validation"
	"github.com/dadrus/pathtrie/internal/x/errorchain"
)

const providerType = "http_endpoint"

type Config struct {
	Endpoints     []*Endpoint   `mapstructure:"endpoints"      validate:"required,min=1,dive,required"`
	WatchInterval time.Duration `mapstructure:"watch_interval" validate:"gte=0"`
}

type provider struct {
	r      routes.Repository
	l      zerolog.Logger
	s      gocron.Scheduler
	cancel context.CancelFunc

	mu     sync.Mutex
	hashes map[string][]byte
}

func newProvider(
	rawConf map[string]any,
	repo routes.Repository,
	validator validation.Validator,
	logger zerolog.Logger,
) (*provider, error) {
	var conf Config

	dec := encoding.NewDecoder(
		encoding.WithTagName("mapstructure"),
		encoding.WithErrorOnUnused(true),
		encoding.WithValidator(validator),
		encoding.WithDecodeHooks(mapstructure.StringToTimeDurationHookFunc()),
	)
	if err := dec.DecodeMap(&conf, rawConf); err != nil {
		return nil, errorchain.
			NewWithMessage(pathtrie.ErrConfiguration, "failed to decode http_endpoint route provider config").
			CausedBy(err)
	}

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, errorchain.NewWithMessage(pathtrie.ErrInternal, "failed to create scheduler").
			CausedBy(err)
	}

	logger = logger.With().Str("_provider_type", providerType).Logger()
	ctx, cancel := context.WithCancel(logger.WithContext(context.Background()))

	prov := &provider{
		r:      repo,
		l:      logger,
		s:      scheduler,
		cancel: cancel,
		hashes: make(map[string][]byte),
	}

	definition := gocron.JobDefinition(gocron.OneTimeJob(gocron.OneTimeJobStartImmediately()))
	jobOpts := []gocron.JobOption{gocron.WithSingletonMode(gocron.LimitModeReschedule)}

	if conf.WatchInterval > 0 {
		definition = gocron.DurationJob(conf.WatchInterval)
		jobOpts = append(jobOpts, gocron.WithStartAt(gocron.WithStartImmediately()))
	} else {
		logger.Warn().Msg("No watch interval configured. Route sets are loaded only once.")
	}

	for idx, ep := range conf.Endpoints {
		if _, err = scheduler.NewJob(
			definition,
			gocron.NewTask(func() { prov.watchChanges(ctx, ep) }),
			jobOpts...,
		); err != nil {
			cancel()

			return nil, errorchain.NewWithMessagef(pathtrie.ErrInternal,
				"failed to create a worker to fetch route sets from #%d endpoint", idx).
				CausedBy(err)
		}
	}

	return prov, nil
}

func (p *provider) Start(_ context.Context) error {
	p.l.Info().Msg("Starting route sets provider")

	p.s.Start()

	return nil
}

func (p *provider) Stop(_ context.Context) error {
	p.l.Info().Msg("Tearing down route sets provider")

	p.cancel()

	return p.s.Shutdown()
}

func (p *provider) watchChanges(ctx context.Context, ep *Endpoint) {
	logger := zerolog.Ctx(ctx).With().Str("_endpoint", ep.ID()).Logger()
	ctx = logger.WithContext(ctx)

	rs, hash, err := ep.FetchRouteSet(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to fetch route set")

		return
	}

	p.routeSetUpdated(ctx, ep.ID(), rs, hash)
}

func (p *provider) routeSetUpdated(ctx context.Context, id string, rs *routes.RouteSet, hash []byte) {
	logger := zerolog.Ctx(ctx)
	src := providerType + ":" + id

	p.mu.Lock()
	defer p.mu.Unlock()

	known, present := p.hashes[id]
	if present && bytes.Equal(known, hash) {
		logger.Debug().Msg("No updates received")

		return
	}

	var err error

	if rs == nil {
		if !present {
			logger.Warn().Msg("Route set is empty")

			p.hashes[id] = hash

			return
		}

		err = p.r.DeleteRouteSet(ctx, src)
	} else {
		err = p.r.UpdateRouteSet(ctx, src, rs)
	}

	if err != nil {
		logger.Warn().Err(err).Msg("Failed to apply route set")

		return
	}

	p.hashes[id] = hash
}
