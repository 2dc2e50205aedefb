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
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/DmitriyVTitov/size"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/dadrus/pathtrie/internal/pathtrie"
	"github.com/dadrus/pathtrie/internal/x/errorchain"
	"github.com/dadrus/pathtrie/internal/x/vartrie"
)

//go:generate mockery --name Repository --structname RepositoryMock

// Table answers path queries against the currently loaded route sets.
type Table interface {
	Lookup(ctx context.Context, path string) (*Resolution, error)
	Find(ctx context.Context, path string) (*Resolution, error)
	Matches(ctx context.Context, path string) ([]*Resolution, error)
	Exists(ctx context.Context, path string) (bool, error)
	RouteSets() []*RouteSet
	Len() int
}

// Repository is used by the providers to publish route set changes. src identifies
// the origin of a route set and must be stable across updates.
type Repository interface {
	AddRouteSet(ctx context.Context, src string, rs *RouteSet) error
	UpdateRouteSet(ctx context.Context, src string, rs *RouteSet) error
	DeleteRouteSet(ctx context.Context, src string) error
}

// AmbiguityDetails is attached to ErrAmbiguousRoute errors.
type AmbiguityDetails struct {
	Paths      []string            `json:"paths"      yaml:"paths"`
	Candidates []vartrie.Candidate `json:"candidates" yaml:"candidates"`
}

type snapshot struct {
	trie        *vartrie.Trie[*entry]
	sets        []*RouteSet
	fingerprint string
	routes      int
}

type RouteTable struct {
	opts

	// guards sets and serializes rebuilds
	setsMutex sync.Mutex
	sets      map[string]*RouteSet

	mutex   sync.RWMutex
	current *snapshot
}

func NewRouteTable(options ...Option) (*RouteTable, error) {
	o, err := newOptions(options)
	if err != nil {
		return nil, err
	}

	tbl := &RouteTable{opts: o, sets: make(map[string]*RouteSet)}

	snap, err := tbl.build(tbl.sets)
	if err != nil {
		return nil, err
	}

	tbl.current = snap

	return tbl, nil
}

func (t *RouteTable) Lookup(ctx context.Context, path string) (*Resolution, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	key := t.cacheKey(t.current, path)

	if res, found, ok := t.cached(ctx, key); ok {
		if !found {
			t.m.lookups.WithLabelValues(outcomeNotFound).Inc()

			return nil, errorchain.NewWithMessagef(pathtrie.ErrNoRouteFound, "for %q", path)
		}

		t.m.lookups.WithLabelValues(outcomeMatched).Inc()

		return res, nil
	}

	res, err := t.current.trie.Resolve(path)
	if err != nil {
		return nil, t.lookupError(path, err)
	}

	if !res.Found {
		t.m.lookups.WithLabelValues(outcomeNotFound).Inc()
		t.store(ctx, key, nil)

		return nil, errorchain.NewWithMessagef(pathtrie.ErrNoRouteFound, "for %q", path)
	}

	resolution, err := res.Value.resolve(res.Variables, res.Rest)
	if err != nil {
		t.m.lookups.WithLabelValues(outcomeError).Inc()

		return nil, errorchain.NewWithMessagef(pathtrie.ErrInternal,
			"failed rendering target of route %s", res.Value.route.ID).CausedBy(err)
	}

	t.m.lookups.WithLabelValues(outcomeMatched).Inc()
	t.store(ctx, key, resolution)

	return resolution, nil
}

// Find resolves path with variables addressed by their name instead of being substituted,
// e.g. /users/${User} returns the route registered under exactly that path.
func (t *RouteTable) Find(_ context.Context, path string) (*Resolution, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	walk, err := t.current.trie.Root().MatchOne(path, t.allowVariables, false)
	if err != nil {
		return nil, t.lookupError(path, err)
	}

	if walk == nil || !walk.Complete() || !walk.Node().HasValue() {
		t.m.lookups.WithLabelValues(outcomeNotFound).Inc()

		return nil, errorchain.NewWithMessagef(pathtrie.ErrNoRouteFound, "for %q", path)
	}

	value, _ := walk.Value()

	resolution, err := value.resolve(walk.Variables(), walk.Rest)
	if err != nil {
		t.m.lookups.WithLabelValues(outcomeError).Inc()

		return nil, errorchain.NewWithMessagef(pathtrie.ErrInternal,
			"failed rendering target of route %s", value.route.ID).CausedBy(err)
	}

	t.m.lookups.WithLabelValues(outcomeMatched).Inc()

	return resolution, nil
}

// Matches returns every route reachable by path, best scoring first.
func (t *RouteTable) Matches(_ context.Context, path string) ([]*Resolution, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	var matches []*Resolution

	for walk, err := range t.current.trie.MatchAll(path) {
		if err != nil {
			return nil, errorchain.NewWithMessagef(pathtrie.ErrInternal,
				"failed matching %q", path).CausedBy(err)
		}

		if !walk.Complete() && !t.allowExtra {
			continue
		}

		value, _ := walk.Value()

		resolution, err := value.resolve(walk.Variables(), walk.Rest)
		if err != nil {
			return nil, errorchain.NewWithMessagef(pathtrie.ErrInternal,
				"failed rendering target of route %s", value.route.ID).CausedBy(err)
		}

		resolution.Score = walk.Score()
		matches = append(matches, resolution)
	}

	slices.SortStableFunc(matches, func(a, b *Resolution) int { return b.Score - a.Score })

	return matches, nil
}

func (t *RouteTable) Exists(_ context.Context, path string) (bool, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	found, err := t.current.trie.Exists(path)
	if err != nil {
		return false, t.lookupError(path, err)
	}

	return found, nil
}

// RouteSets returns the loaded route sets ordered by their source.
func (t *RouteTable) RouteSets() []*RouteSet {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.current.sets
}

func (t *RouteTable) Len() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.current.routes
}

// Fingerprint identifies the loaded route sets together with the matching options.
func (t *RouteTable) Fingerprint() string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.current.fingerprint
}

func (t *RouteTable) AddRouteSet(ctx context.Context, src string, rs *RouteSet) error {
	return t.apply(ctx, src, rs, "added")
}

func (t *RouteTable) UpdateRouteSet(ctx context.Context, src string, rs *RouteSet) error {
	return t.apply(ctx, src, rs, "updated")
}

func (t *RouteTable) DeleteRouteSet(ctx context.Context, src string) error {
	return t.apply(ctx, src, nil, "deleted")
}

func (t *RouteTable) apply(ctx context.Context, src string, rs *RouteSet, action string) error {
	logger := zerolog.Ctx(ctx)

	t.setsMutex.Lock()
	defer t.setsMutex.Unlock()

	sets := maps.Clone(t.sets)

	if rs == nil {
		if _, ok := sets[src]; !ok {
			return nil
		}

		delete(sets, src)
	} else {
		rs.Source = src
		sets[src] = rs
	}

	snap, err := t.build(sets)
	if err != nil {
		t.m.reloads.WithLabelValues(statusFailure).Inc()
		logger.Warn().Err(err).Str("_src", src).Msg("Route set rejected")

		return err
	}

	t.sets = sets

	t.mutex.Lock()
	t.current = snap
	t.mutex.Unlock()

	t.m.reloads.WithLabelValues(statusSuccess).Inc()
	t.m.routes.Set(float64(snap.routes))
	t.m.size.Set(float64(size.Of(snap.trie)))

	logger.Info().
		Str("_src", src).
		Int("_routes", snap.routes).
		Msg("Route set " + action)

	return nil
}

func (t *RouteTable) build(sets map[string]*RouteSet) (*snapshot, error) {
	trie := vartrie.New[*entry](t.trieOpts...)
	sources := slices.Sorted(maps.Keys(sets))
	ordered := make([]*RouteSet, 0, len(sources))
	hash := sha256.New()

	fmt.Fprintf(hash, "variables=%t;extra=%t;pattern=%s;", t.allowVariables, t.allowExtra, t.valuePattern)

	routes := 0

	for _, src := range sources {
		rs := sets[src]

		for idx := range rs.Routes {
			route := &rs.Routes[idx]

			if err := trie.Insert(route.Path, &entry{set: rs, route: route}); err != nil {
				return nil, errorchain.NewWithMessagef(pathtrie.ErrConfiguration,
					"route %s from %s conflicts with an already loaded route", route.ID, src).CausedBy(err)
			}

			fmt.Fprintf(hash, "%s\x00%s\x00%s\x00", src, route.ID, route.Path)
			hash.Write(route.Target.Hash())

			routes++
		}

		ordered = append(ordered, rs)
	}

	return &snapshot{
		trie:        trie,
		sets:        ordered,
		fingerprint: hex.EncodeToString(hash.Sum(nil)),
		routes:      routes,
	}, nil
}

func (t *RouteTable) lookupError(path string, err error) error {
	var ame *vartrie.AmbiguousMatchError
	if errors.As(err, &ame) {
		t.m.lookups.WithLabelValues(outcomeAmbiguous).Inc()

		return errorchain.NewWithMessagef(pathtrie.ErrAmbiguousRoute,
			"%q is matched by %d routes", path, len(ame.Candidates)).
			CausedBy(err).
			WithErrorContext(AmbiguityDetails{Paths: ame.Paths(), Candidates: ame.Candidates})
	}

	t.m.lookups.WithLabelValues(outcomeError).Inc()

	return errorchain.NewWithMessagef(pathtrie.ErrInternal, "failed resolving %q", path).CausedBy(err)
}

type cacheEntry struct {
	Resolution *Resolution `json:"resolution,omitempty"`
}

func (t *RouteTable) cacheKey(snap *snapshot, path string) string {
	return "pathtrie:lookup:" + snap.fingerprint + ":" + path
}

// cached returns ok == false if nothing usable is cached for key.
func (t *RouteTable) cached(ctx context.Context, key string) (*Resolution, bool, bool) {
	data, err := t.c.Get(ctx, key)
	if err != nil {
		return nil, false, false
	}

	var ce cacheEntry
	if err = json.Unmarshal(data, &ce); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("Ignoring malformed cache entry")

		return nil, false, false
	}

	return ce.Resolution, ce.Resolution != nil, true
}

func (t *RouteTable) store(ctx context.Context, key string, res *Resolution) {
	if t.ttl <= 0 {
		return
	}

	data, err := json.Marshal(cacheEntry{Resolution: res})
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("Failed to encode lookup result for caching")

		return
	}

	if err = t.c.Set(ctx, key, data, t.ttl); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("Failed to cache lookup result")
	}
}
