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
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/pathtrie/internal/handler/middleware/http/errorhandler"
	"github.com/dadrus/pathtrie/internal/routes"
)

const shopRouteSet = `
version: "1"
name: shop
routes:
  - id: user-orders
    path: /users/${User}/orders
    target: http://orders/{{ var "$User" }}
  - id: users
    path: /users
    target: users-service
  - id: items-by-a
    path: /items/${A}
    target: a
  - id: items-by-b
    path: /items/$B
    target: b
`

func newTestTable(t *testing.T) *routes.RouteTable {
	t.Helper()

	rs, err := routes.ParseRouteSet("application/yaml", strings.NewReader(shopRouteSet))
	require.NoError(t, err)

	tbl, err := routes.NewRouteTable()
	require.NoError(t, err)

	require.NoError(t, tbl.AddRouteSet(context.Background(), "file_system:shop.yaml", rs))

	return tbl
}

func TestHandlerLookup(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(newHandler(newTestTable(t),
		errorhandler.New(errorhandler.WithVerboseErrors(true)), nil, zerolog.Nop()))
	t.Cleanup(srv.Close)

	for uc, tc := range map[string]struct {
		query  string
		accept string
		assert func(t *testing.T, resp *http.Response, body []byte)
	}{
		"route with a variable": {
			query: "path=/users/alice/orders",
			assert: func(t *testing.T, resp *http.Response, body []byte) {
				t.Helper()

				require.Equal(t, http.StatusOK, resp.StatusCode)
				assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

				var res routes.Resolution
				require.NoError(t, json.Unmarshal(body, &res))
				assert.Equal(t, "user-orders", res.Route.ID)
				assert.Equal(t, "shop", res.Route.Set)
				assert.Equal(t, "http://orders/alice", res.Route.Target)
				assert.Equal(t, map[string][]string{"$User": {"alice"}}, res.Variables)
			},
		},
		"route as yaml": {
			query:  "path=/users",
			accept: "application/yaml",
			assert: func(t *testing.T, resp *http.Response, body []byte) {
				t.Helper()

				require.Equal(t, http.StatusOK, resp.StatusCode)
				assert.Equal(t, "application/yaml", resp.Header.Get("Content-Type"))
				assert.Contains(t, string(body), "target: users-service")
			},
		},
		"literal lookup": {
			query: "literal=true&path=" + "/users/$%7BUser%7D/orders",
			assert: func(t *testing.T, resp *http.Response, body []byte) {
				t.Helper()

				require.Equal(t, http.StatusOK, resp.StatusCode)

				var res routes.Resolution
				require.NoError(t, json.Unmarshal(body, &res))
				assert.Equal(t, "user-orders", res.Route.ID)
				assert.Equal(t, "/users/${User}/orders", res.Route.Path)
			},
		},
		"no route": {
			query: "path=/orders",
			assert: func(t *testing.T, resp *http.Response, body []byte) {
				t.Helper()

				require.Equal(t, http.StatusNotFound, resp.StatusCode)
				assert.Contains(t, string(body), `"code":"noRouteFound"`)
			},
		},
		"ambiguous route": {
			query: "path=/items/x",
			assert: func(t *testing.T, resp *http.Response, body []byte) {
				t.Helper()

				require.Equal(t, http.StatusConflict, resp.StatusCode)
				assert.Contains(t, string(body), `"code":"ambiguousRoute"`)
				assert.Contains(t, string(body), `/items/$A`)
				assert.Contains(t, string(body), `/items/$B`)
			},
		},
		"missing path": {
			assert: func(t *testing.T, resp *http.Response, body []byte) {
				t.Helper()

				require.Equal(t, http.StatusBadRequest, resp.StatusCode)
				assert.Contains(t, string(body), `"code":"argumentError"`)
			},
		},
		"not acceptable": {
			query:  "path=/users",
			accept: "text/html",
			assert: func(t *testing.T, resp *http.Response, _ []byte) {
				t.Helper()

				require.Equal(t, http.StatusNotAcceptable, resp.StatusCode)
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			resp, body := get(t, srv.URL+EndpointLookup+"?"+tc.query, tc.accept, "")

			tc.assert(t, resp, body)
		})
	}
}

func TestHandlerMatches(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(newHandler(newTestTable(t), errorhandler.New(), nil, zerolog.Nop()))
	defer srv.Close()

	resp, body := get(t, srv.URL+EndpointMatches+"?path=/items/x", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var matches []*routes.Resolution
	require.NoError(t, json.Unmarshal(body, &matches))
	require.Len(t, matches, 2)
	assert.ElementsMatch(t, []string{"items-by-a", "items-by-b"},
		[]string{matches[0].Route.ID, matches[1].Route.ID})
	assert.Equal(t, matches[0].Score, matches[1].Score)

	resp, body = get(t, srv.URL+EndpointMatches+"?path=/nothing", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", string(body))
}

func TestHandlerRouteSets(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(newHandler(newTestTable(t), errorhandler.New(), nil, zerolog.Nop()))
	defer srv.Close()

	resp, body := get(t, srv.URL+EndpointRouteSets, "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sets []routeSetInfo
	require.NoError(t, json.Unmarshal(body, &sets))
	require.Len(t, sets, 1)
	assert.Equal(t, "file_system:shop.yaml", sets[0].Source)
	assert.Equal(t, "shop", sets[0].Name)
	require.Len(t, sets[0].Routes, 4)
	assert.Equal(t, `http://orders/{{ var "$User" }}`, sets[0].Routes[0].Target)

	tag := resp.Header.Get("ETag")
	require.NotEmpty(t, tag)

	resp, _ = get(t, srv.URL+EndpointRouteSets, "", tag)
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)
}

func TestHandlerHealthAndMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "test_counter", Help: "test"}))

	srv := httptest.NewServer(newHandler(newTestTable(t), errorhandler.New(), reg, zerolog.Nop()))
	defer srv.Close()

	resp, body := get(t, srv.URL+EndpointHealth, "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	resp, body = get(t, srv.URL+EndpointMetrics, "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "test_counter 0")
}

func TestHandlerWithoutMetrics(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(newHandler(newTestTable(t), errorhandler.New(), nil, zerolog.Nop()))
	defer srv.Close()

	resp, _ := get(t, srv.URL+EndpointMetrics, "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, srv.URL+EndpointHealth, nil)
	require.NoError(t, err)

	resp, err = srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
