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

package errorhandler

import (
	"errors"
	"net/http"

	"github.com/iancoleman/strcase"
	"github.com/rs/zerolog"

	"github.com/dadrus/pathtrie/internal/handler/render"
	"github.com/dadrus/pathtrie/internal/pathtrie"
	"github.com/dadrus/pathtrie/internal/x/errorchain"
)

//go:generate mockery --name ErrorHandler --structname ErrorHandlerMock

type ErrorHandler interface {
	HandleError(rw http.ResponseWriter, req *http.Request, err error)
}

type errorBody struct {
	Code string `json:"code" yaml:"code"`
}

// nolint: gochecknoglobals
var errorKinds = []struct {
	kind error
	code int
}{
	{pathtrie.ErrArgument, http.StatusBadRequest},
	{pathtrie.ErrNoRouteFound, http.StatusNotFound},
	{pathtrie.ErrNotAcceptable, http.StatusNotAcceptable},
	{pathtrie.ErrAmbiguousRoute, http.StatusConflict},
	{pathtrie.ErrCommunication, http.StatusBadGateway},
}

func New(opts ...Option) ErrorHandler {
	options := defaultOptions()

	for _, opt := range opts {
		opt(options)
	}

	return &errorHandler{opts: options}
}

type errorHandler struct {
	*opts
}

func (h *errorHandler) HandleError(rw http.ResponseWriter, req *http.Request, err error) {
	kind, code := h.classify(err)

	if code == http.StatusInternalServerError {
		zerolog.Ctx(req.Context()).Error().Err(err).Msg("Internal error occurred")
	}

	mediaType, nerr := render.Negotiate(req)
	if nerr != nil {
		mediaType = "application/json"
	}

	if !h.verboseErrors {
		render.Write(rw, req, mediaType, code, errorBody{Code: strcase.ToLowerCamel(kind.Error())})

		return
	}

	var ec *errorchain.ErrorChain
	if !errors.As(err, &ec) {
		ec = errorchain.New(kind).CausedBy(err)
	}

	render.Write(rw, req, mediaType, code, ec.Body())
}

func (h *errorHandler) classify(err error) (error, int) {
	for _, ek := range errorKinds {
		if errors.Is(err, ek.kind) {
			return ek.kind, h.code(ek.kind, ek.code)
		}
	}

	return pathtrie.ErrInternal, h.code(pathtrie.ErrInternal, http.StatusInternalServerError)
}

func (h *errorHandler) code(kind error, fallback int) int {
	if code, ok := h.codes[kind]; ok {
		return code
	}

	return fallback
}
