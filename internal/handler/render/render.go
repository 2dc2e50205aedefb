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

package render

import (
	"bytes"
	"net/http"

	"github.com/elnormous/contenttype"
	"github.com/rs/zerolog"

	"github.com/dadrus/pathtrie/internal/encoding"
	"github.com/dadrus/pathtrie/internal/pathtrie"
	"github.com/dadrus/pathtrie/internal/x/errorchain"
)

// nolint: gochecknoglobals
var supportedMediaTypes = []contenttype.MediaType{
	contenttype.NewMediaType("application/json"),
	contenttype.NewMediaType("application/yaml"),
}

// Negotiate selects the representation of a response based on the Accept header of the request.
// application/json is used if the request does not state any preferences.
func Negotiate(req *http.Request) (string, error) {
	mediaType, _, err := contenttype.GetAcceptableMediaType(req, supportedMediaTypes)
	if err != nil {
		return "", errorchain.NewWithMessage(pathtrie.ErrNotAcceptable,
			"only application/json and application/yaml can be produced").CausedBy(err)
	}

	return mediaType.Type + "/" + mediaType.Subtype, nil
}

// Write encodes body in the given media type and sends it with the given status code.
func Write(rw http.ResponseWriter, req *http.Request, mediaType string, code int, body any) {
	var buf bytes.Buffer

	if err := encoding.NewEncoder(encoding.WithTargetContentType(mediaType)).Encode(body, &buf); err != nil {
		zerolog.Ctx(req.Context()).Error().Err(err).Msg("Failed to encode response")

		rw.WriteHeader(http.StatusInternalServerError)

		return
	}

	rw.Header().Set("Content-Type", mediaType)
	rw.Header().Set("X-Content-Type-Options", "nosniff")
	rw.WriteHeader(code)

	_, _ = rw.Write(buf.Bytes())
}
