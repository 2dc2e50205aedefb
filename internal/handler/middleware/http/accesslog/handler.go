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

package accesslog

import (
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dadrus/pathtrie/internal/x/httpx"
)

const requestIDHeader = "X-Request-Id"

// New logs the start and the end of each transaction. The request id is taken from the
// X-Request-Id header or generated, echoed in the response and bound, together with the
// logger, to the request context.
func New(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			start := time.Now()

			requestID := req.Header.Get(requestIDHeader)
			if len(requestID) == 0 {
				requestID = uuid.NewString()
			}

			rw.Header().Set(requestIDHeader, requestID)

			logCtx := logger.With().
				Str("_request_id", requestID).
				Int64("_tx_start", start.Unix()).
				Str("_client_ip", httpx.IPFromHostPort(req.RemoteAddr)).
				Str("_http_method", req.Method).
				Str("_http_path", req.URL.Path).
				Str("_http_user_agent", req.Header.Get("User-Agent")).
				Str("_http_host", req.Host)

			logCtx = logHeader(req, logCtx, "X-Forwarded-For", "_http_x_forwarded_for")
			logCtx = logHeader(req, logCtx, "Forwarded", "_http_forwarded")

			accLog := logCtx.Logger()
			accLog.Debug().Msg("TX started")

			metrics := httpsnoop.CaptureMetrics(next, rw, req.WithContext(accLog.WithContext(req.Context())))

			accLog.Info().
				Int64("_body_bytes_sent", metrics.Written).
				Int("_http_status_code", metrics.Code).
				Int64("_tx_duration_ms", metrics.Duration.Milliseconds()).
				Msg("TX finished")
		})
	}
}

func logHeader(req *http.Request, logCtx zerolog.Context, headerName, logKey string) zerolog.Context {
	if headerValue := req.Header.Get(headerName); len(headerValue) != 0 {
		logCtx = logCtx.Str(logKey, headerValue)
	}

	return logCtx
}
