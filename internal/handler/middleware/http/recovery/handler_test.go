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

package recovery

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/pathtrie/internal/handler/middleware/http/errorhandler"
)

func TestRecovery(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		handler func(rw http.ResponseWriter, req *http.Request)
		expCode int
	}{
		"no panic": {
			handler: func(rw http.ResponseWriter, _ *http.Request) { rw.WriteHeader(http.StatusAccepted) },
			expCode: http.StatusAccepted,
		},
		"panic with error": {
			handler: func(_ http.ResponseWriter, _ *http.Request) { panic(errors.New("test error")) },
			expCode: http.StatusInternalServerError,
		},
		"panic with string": {
			handler: func(_ http.ResponseWriter, _ *http.Request) { panic("test error") },
			expCode: http.StatusInternalServerError,
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()

			New(errorhandler.New())(http.HandlerFunc(tc.handler)).
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tc.expCode, rec.Code)
		})
	}
}

func TestRecoveryRepanicsOnAbort(t *testing.T) {
	t.Parallel()

	handler := New(errorhandler.New())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	require.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
