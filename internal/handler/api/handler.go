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

package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-http-utils/etag"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/dadrus/pathtrie/internal/handler/middleware/http/errorhandler"
	"github.com/dadrus/pathtrie/internal/handler/render"
	"github.com/dadrus/pathtrie/internal/pathtrie"
	"github.com/dadrus/pathtrie/internal/routes"
	"github.com/dadrus/pathtrie/internal/x/errorchain"
)

const (
	EndpointLookup    = "/routes/lookup"
	EndpointMatches   = "/routes/matches"
	EndpointRouteSets = "/routes"
	EndpointHealth    = "/.well-known/health"
	EndpointMetrics   = "/metrics"
)

// errLoggerFunc adapts promhttp error logging to zerolog.
type errLoggerFunc func(v ...any)

func (l errLoggerFunc) Println(v ...any) { l(v...) }

type routeInfo struct {
	ID     string `json:"id"     yaml:"id"`
	Path   string `json:"path"   yaml:"path"`
	Target string `json:"target" yaml:"target"`
}

type routeSetInfo struct {
	Source  string      `json:"source"         yaml:"source"`
	Version string      `json:"version"        yaml:"version"`
	Name    string      `json:"name,omitempty" yaml:"name,omitempty"`
	Routes  []routeInfo `json:"routes"         yaml:"routes"`
}

type handler struct {
	t  routes.Table
	eh errorhandler.ErrorHandler
}

func newHandler(
	table routes.Table,
	eh errorhandler.ErrorHandler,
	gatherer prometheus.Gatherer,
	logger zerolog.Logger,
) http.Handler {
	h := &handler{t: table, eh: eh}
	mux := http.NewServeMux()

	logger.Debug().Msg("Registering API routes")

	mux.HandleFunc("GET "+EndpointLookup, h.lookup)
	mux.HandleFunc("GET "+EndpointMatches, h.matches)
	mux.Handle("GET "+EndpointRouteSets, etag.Handler(http.HandlerFunc(h.routeSets), false))
	mux.HandleFunc("GET "+EndpointHealth, h.health)

	if gatherer != nil {
		mux.Handle("GET "+EndpointMetrics, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{
			ErrorLog: errLoggerFunc(func(v ...any) { logger.Error().Msg(fmt.Sprint(v...)) }),
		}))
	}

	return mux
}

func (h *handler) lookup(rw http.ResponseWriter, req *http.Request) {
	path, mediaType, err := h.queryArguments(req)
	if err != nil {
		h.eh.HandleError(rw, req, err)

		return
	}

	lookup := h.t.Lookup

	if literal, _ := strconv.ParseBool(req.URL.Query().Get("literal")); literal {
		lookup = h.t.Find
	}

	res, err := lookup(req.Context(), path)
	if err != nil {
		h.eh.HandleError(rw, req, err)

		return
	}

	render.Write(rw, req, mediaType, http.StatusOK, res)
}

func (h *handler) matches(rw http.ResponseWriter, req *http.Request) {
	path, mediaType, err := h.queryArguments(req)
	if err != nil {
		h.eh.HandleError(rw, req, err)

		return
	}

	matches, err := h.t.Matches(req.Context(), path)
	if err != nil {
		h.eh.HandleError(rw, req, err)

		return
	}

	if matches == nil {
		matches = []*routes.Resolution{}
	}

	render.Write(rw, req, mediaType, http.StatusOK, matches)
}

func (h *handler) routeSets(rw http.ResponseWriter, req *http.Request) {
	mediaType, err := render.Negotiate(req)
	if err != nil {
		h.eh.HandleError(rw, req, err)

		return
	}

	sets := h.t.RouteSets()
	infos := make([]routeSetInfo, 0, len(sets))

	for _, rs := range sets {
		info := routeSetInfo{
			Source:  rs.Source,
			Version: rs.Version,
			Name:    rs.Name,
			Routes:  make([]routeInfo, len(rs.Routes)),
		}

		for idx, route := range rs.Routes {
			info.Routes[idx] = routeInfo{ID: route.ID, Path: route.Path, Target: route.Target.String()}
		}

		infos = append(infos, info)
	}

	render.Write(rw, req, mediaType, http.StatusOK, infos)
}

func (h *handler) health(rw http.ResponseWriter, req *http.Request) {
	mediaType, err := render.Negotiate(req)
	if err != nil {
		mediaType = "application/json"
	}

	render.Write(rw, req, mediaType, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) queryArguments(req *http.Request) (string, string, error) {
	mediaType, err := render.Negotiate(req)
	if err != nil {
		return "", "", err
	}

	query := req.URL.Query()
	if !query.Has("path") {
		return "", "", errorchain.NewWithMessage(pathtrie.ErrArgument, "path query parameter is required")
	}

	return query.Get("path"), mediaType, nil
}
