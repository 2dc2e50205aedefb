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

package cloudblob

import (
	"bytes"
	"context"
	"maps"
	"slices"
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

const providerType = "cloud_blob"

type Config struct {
	Buckets       []*Bucket     `mapstructure:"buckets"        validate:"required,min=1,dive,required"`
	WatchInterval time.Duration `mapstructure:"watch_interval" validate:"gte=0"`
}

// bucketState maps route set keys to the hash of their contents.
type bucketState map[string][]byte

type provider struct {
	r      routes.Repository
	l      zerolog.Logger
	s      gocron.Scheduler
	ctx    context.Context //nolint:containedctx
	cancel context.CancelFunc

	mu     sync.Mutex
	states map[string]bucketState
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
			NewWithMessage(pathtrie.ErrConfiguration, "failed to decode cloud_blob route provider config").
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
		ctx:    ctx,
		cancel: cancel,
		states: make(map[string]bucketState),
	}

	definition := gocron.JobDefinition(gocron.OneTimeJob(gocron.OneTimeJobStartImmediately()))
	jobOpts := []gocron.JobOption{gocron.WithSingletonMode(gocron.LimitModeReschedule)}

	if conf.WatchInterval > 0 {
		definition = gocron.DurationJob(conf.WatchInterval)
		jobOpts = append(jobOpts, gocron.WithStartAt(gocron.WithStartImmediately()))
	} else {
		logger.Warn().Msg("No watch interval configured. Route sets are loaded only once.")
	}

	for idx, bucket := range conf.Buckets {
		if _, err = scheduler.NewJob(
			definition,
			gocron.NewTask(func() { prov.watchChanges(ctx, bucket) }),
			jobOpts...,
		); err != nil {
			cancel()

			return nil, errorchain.NewWithMessagef(pathtrie.ErrInternal,
				"failed to create a worker to fetch route sets from #%d bucket", idx).
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

func (p *provider) watchChanges(ctx context.Context, bucket *Bucket) {
	logger := zerolog.Ctx(ctx).With().Str("_bucket", bucket.ID()).Logger()

	logger.Debug().Msg("Retrieving route sets")

	sets, err := bucket.FetchRouteSets(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to fetch route sets")

		return
	}

	p.routeSetsUpdated(logger.WithContext(ctx), sets, p.bucketState(bucket.ID()))
}

func (p *provider) routeSetsUpdated(ctx context.Context, sets []RouteSet, state bucketState) {
	logger := zerolog.Ctx(ctx)

	current := make(map[string]struct{}, len(sets))
	for _, rs := range sets {
		current[rs.Key] = struct{}{}
	}

	for _, key := range slices.Sorted(maps.Keys(state)) {
		if _, ok := current[key]; ok {
			continue
		}

		if err := p.r.DeleteRouteSet(ctx, "blob:"+key); err != nil {
			logger.Warn().Err(err).Str("_route_set", key).Msg("Failed to remove route set")

			continue
		}

		delete(state, key)
	}

	for _, rs := range sets {
		if known, ok := state[rs.Key]; ok && bytes.Equal(known, rs.Hash) {
			logger.Debug().Str("_route_set", rs.Key).Msg("No updates received")

			continue
		}

		if err := p.r.UpdateRouteSet(ctx, "blob:"+rs.Key, rs.RouteSet); err != nil {
			logger.Warn().Err(err).Str("_route_set", rs.Key).Msg("Failed to update route set")

			continue
		}

		state[rs.Key] = rs.Hash
	}
}

func (p *provider) bucketState(id string) bucketState {
	p.mu.Lock()
	defer p.mu.Unlock()

	state, present := p.states[id]
	if !present {
		state = make(bucketState)
		p.states[id] = state
	}

	return state
}
