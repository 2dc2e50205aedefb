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
	"crypto/sha256"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/ybbus/httpretry"

	"github.com/dadrus/pathtrie/internal/pathtrie"
	"github.com/dadrus/pathtrie/internal/routes"
	"github.com/dadrus/pathtrie/internal/x/errorchain"
)

type Endpoint struct {
	URL     string            `mapstructure:"url"     validate:"required,url"`
	Headers map[string]string `mapstructure:"headers"`
	Retry   *Retry            `mapstructure:"retry"`
}

type Retry struct {
	GiveUpAfter time.Duration `mapstructure:"give_up_after" validate:"gte=0"`
	MaxDelay    time.Duration `mapstructure:"max_delay"     validate:"gte=0"`
}

func (e *Endpoint) ID() string { return e.URL }

func (e *Endpoint) client() *http.Client {
	client := &http.Client{Transport: http.DefaultTransport}

	if e.Retry != nil {
		client = httpretry.NewCustomClient(
			client,
			httpretry.WithBackoffPolicy(
				httpretry.ExponentialBackoff(e.Retry.MaxDelay, e.Retry.GiveUpAfter, 0)))
	}

	return client
}

// FetchRouteSet retrieves the route set document and returns it together with the
// sha256 sum of the received payload. An empty payload results in a nil route set.
func (e *Endpoint) FetchRouteSet(ctx context.Context) (*routes.RouteSet, []byte, error) {
	zerolog.Ctx(ctx).Debug().Str("_endpoint", e.URL).Msg("Retrieving route set")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.URL, nil)
	if err != nil {
		return nil, nil, errorchain.NewWithMessage(pathtrie.ErrInternal, "failed creating request").
			CausedBy(err)
	}

	req.Header.Set("Accept", "application/yaml, application/json;q=0.9")

	for name, value := range e.Headers {
		req.Header.Set(name, value)
	}

	resp, err := e.client().Do(req)
	if err != nil {
		var clientErr *url.Error
		if errors.As(err, &clientErr) && clientErr.Timeout() {
			return nil, nil, errorchain.
				NewWithMessage(pathtrie.ErrCommunication, "request to route set endpoint timed out").
				CausedBy(err)
		}

		return nil, nil, errorchain.
			NewWithMessage(pathtrie.ErrCommunication, "request to route set endpoint failed").
			CausedBy(err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, errorchain.NewWithMessagef(pathtrie.ErrCommunication,
			"unexpected response code: %v", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, errorchain.NewWithMessage(pathtrie.ErrCommunication, "failed to read response").
			CausedBy(err)
	}

	hash := sha256.Sum256(data)

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, hash[:], nil
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))

	rs, err := routes.ParseRouteSet(mediaType, bytes.NewReader(data))
	if err != nil {
		return nil, nil, errorchain.NewWithMessage(pathtrie.ErrConfiguration,
			"failed to decode received route set").CausedBy(err)
	}

	return rs, hash[:], nil
}
