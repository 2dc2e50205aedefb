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
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/pathtrie/internal/config"
)

func TestNewService(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		configure func(t *testing.T, conf *config.Configuration)
		request   func(t *testing.T, req *http.Request)
		assert    func(t *testing.T, resp *http.Response, reg *prometheus.Registry)
	}{
		"defaults": {
			assert: func(t *testing.T, resp *http.Response, reg *prometheus.Registry) {
				t.Helper()

				assert.Equal(t, http.StatusOK, resp.StatusCode)
				assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
				assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))

				mfs, err := reg.Gather()
				require.NoError(t, err)
				assert.NotEmpty(t, mfs)
			},
		},
		"request id is taken over": {
			request: func(t *testing.T, req *http.Request) {
				t.Helper()

				req.Header.Set("X-Request-Id", "foo-bar")
			},
			assert: func(t *testing.T, resp *http.Response, _ *prometheus.Registry) {
				t.Helper()

				assert.Equal(t, "foo-bar", resp.Header.Get("X-Request-Id"))
			},
		},
		"metrics disabled": {
			configure: func(t *testing.T, conf *config.Configuration) {
				t.Helper()

				conf.Metrics.Enabled = false
			},
			assert: func(t *testing.T, resp *http.Response, reg *prometheus.Registry) {
				t.Helper()

				assert.Equal(t, http.StatusOK, resp.StatusCode)

				mfs, err := reg.Gather()
				require.NoError(t, err)
				assert.Empty(t, mfs)
			},
		},
		"cors": {
			configure: func(t *testing.T, conf *config.Configuration) {
				t.Helper()

				conf.Serve.CORS = &config.CORS{
					AllowedOrigins: []string{"https://example.com"},
					AllowedMethods: []string{http.MethodGet},
					MaxAge:         time.Minute,
				}
			},
			request: func(t *testing.T, req *http.Request) {
				t.Helper()

				req.Header.Set("Origin", "https://example.com")
			},
			assert: func(t *testing.T, resp *http.Response, _ *prometheus.Registry) {
				t.Helper()

				assert.Equal(t, http.StatusOK, resp.StatusCode)
				assert.Equal(t, "https://example.com", resp.Header.Get("Access-Control-Allow-Origin"))
			},
		},
		"trusted proxies": {
			configure: func(t *testing.T, conf *config.Configuration) {
				t.Helper()

				conf.Serve.TrustedProxies = &[]string{"10.0.0.0/8"}
			},
			request: func(t *testing.T, req *http.Request) {
				t.Helper()

				req.Header.Set("X-Forwarded-For", "192.168.1.1")
			},
			assert: func(t *testing.T, resp *http.Response, _ *prometheus.Registry) {
				t.Helper()

				assert.Equal(t, http.StatusOK, resp.StatusCode)
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			conf := &config.Configuration{
				Serve:   config.ServeConfig{Host: "127.0.0.1", Port: 4458},
				Metrics: config.MetricsConfig{Enabled: true},
			}

			if tc.configure != nil {
				tc.configure(t, conf)
			}

			reg := prometheus.NewRegistry()
			srv := newService(conf, newTestTable(t), reg, reg, zerolog.Nop())

			assert.Equal(t, "127.0.0.1:4458", srv.Addr)

			req := httptest.NewRequestWithContext(context.Background(), http.MethodGet,
				"http://pathtrie.local"+EndpointLookup+"?path=/users", nil)
			if tc.request != nil {
				tc.request(t, req)
			}

			rec := httptest.NewRecorder()
			srv.Handler.ServeHTTP(rec, req)

			tc.assert(t, rec.Result(), reg)
		})
	}
}
