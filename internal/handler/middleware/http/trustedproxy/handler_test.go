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

package trustedproxy

import (
	"context"
	"maps"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/justinas/alice"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestHandlerExecution(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		ips        []string
		shouldDrop bool
	}{
		"bad IP range":           {ips: []string{"/128"}, shouldDrop: true},
		"bad IP":                 {ips: []string{"foo"}, shouldDrop: true},
		"single IP trusted":      {ips: []string{"127.0.0.1"}},
		"trusted IP range":       {ips: []string{"127.0.0.0/24"}},
		"everything trusted":     {ips: []string{"0.0.0.0/0"}},
		"source not in IP range": {ips: []string{"172.0.0.0/24", "::1"}, shouldDrop: true},
		"empty list":             {ips: []string{}, shouldDrop: true},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			send := http.Header{
				"X-Forwarded-Proto": []string{"https"},
				"X-Forwarded-Host":  []string{"foobar.com"},
				"X-Forwarded-Path":  []string{"/test"},
				"X-Forwarded-Uri":   []string{"/test?foo=bar"},
				"X-Forwarded-For":   []string{"172.17.1.2"},
				"Forwarded":         []string{"for=172.17.1.2;proto=https"},
				"X-Foo-Bar":         []string{"foo"},
			}

			var received http.Header

			srv := httptest.NewServer(
				alice.New(New(zerolog.Nop(), tc.ips...)).
					ThenFunc(func(rw http.ResponseWriter, req *http.Request) {
						received = maps.Clone(req.Header)

						rw.WriteHeader(http.StatusGone)
					}))

			defer srv.Close()

			req, err := http.NewRequestWithContext(
				context.Background(), http.MethodGet, srv.URL+"/test", nil)
			require.NoError(t, err)

			req.Header = send

			// WHEN
			resp, err := srv.Client().Do(req)

			// THEN
			require.NoError(t, err)
			resp.Body.Close()

			require.Equal(t, "foo", received.Get("X-Foo-Bar"))

			for name := range send {
				if name == "X-Foo-Bar" {
					continue
				}

				if tc.shouldDrop {
					require.Empty(t, received.Get(name), name)
				} else {
					require.Equal(t, send.Get(name), received.Get(name), name)
				}
			}
		})
	}
}
