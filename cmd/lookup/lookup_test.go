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

package lookup

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/pathtrie/cmd/flags"
	"github.com/dadrus/pathtrie/internal/pathtrie"
)

const shopRoutes = `
version: "1"
name: shop
routes:
  - id: user-orders
    path: /users/${User}/orders
    target: http://orders/{{ var "$User" }}
  - id: items-by-a
    path: /items/${A}
    target: a
  - id: items-by-b
    path: /items/$B
    target: b
`

func TestLookup(t *testing.T) {
	t.Parallel()

	routeFile := filepath.Join(t.TempDir(), "shop.yaml")
	require.NoError(t, os.WriteFile(routeFile, []byte(shopRoutes), 0o600))

	for uc, tc := range map[string]struct {
		args   []string
		path   string
		assert func(t *testing.T, err error, out string)
	}{
		"resolves a path": {
			path: "/users/alice/orders",
			assert: func(t *testing.T, err error, out string) {
				t.Helper()

				require.NoError(t, err)
				assert.Contains(t, out, `"target":"http://orders/alice"`)
				assert.Contains(t, out, `"$User":["alice"]`)
			},
		},
		"resolves a path to yaml": {
			args: []string{"-o", "yaml"},
			path: "/users/alice/orders",
			assert: func(t *testing.T, err error, out string) {
				t.Helper()

				require.NoError(t, err)
				assert.Contains(t, out, "target: http://orders/alice")
			},
		},
		"finds a route by its literal path": {
			args: []string{"--literal"},
			path: "/users/${User}/orders",
			assert: func(t *testing.T, err error, out string) {
				t.Helper()

				require.NoError(t, err)
				assert.Contains(t, out, `"id":"user-orders"`)
			},
		},
		"ambiguous path": {
			path: "/items/x",
			assert: func(t *testing.T, err error, _ string) {
				t.Helper()

				require.ErrorIs(t, err, pathtrie.ErrAmbiguousRoute)
			},
		},
		"lists all matches with a query": {
			args: []string{"--all", "-q", "#.route.id"},
			path: "/items/x",
			assert: func(t *testing.T, err error, out string) {
				t.Helper()

				require.NoError(t, err)
				assert.Contains(t, out, "items-by-a")
				assert.Contains(t, out, "items-by-b")
			},
		},
		"query without result": {
			args: []string{"-q", "route.unknown"},
			path: "/users/alice/orders",
			assert: func(t *testing.T, err error, _ string) {
				t.Helper()

				require.ErrorIs(t, err, pathtrie.ErrArgument)
			},
		},
		"no route": {
			path: "/orders",
			assert: func(t *testing.T, err error, _ string) {
				t.Helper()

				require.ErrorIs(t, err, pathtrie.ErrNoRouteFound)
			},
		},
		"unsupported output": {
			args: []string{"-o", "xml"},
			path: "/users/alice/orders",
			assert: func(t *testing.T, err error, _ string) {
				t.Helper()

				require.ErrorIs(t, err, pathtrie.ErrArgument)
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			cmd := NewLookupCommand()
			flags.RegisterGlobalFlags(cmd)

			args := append([]string{"-r", routeFile, "--" + flags.EnvironmentConfigPrefix, "LOOKUPTEST_"}, tc.args...)
			require.NoError(t, cmd.ParseFlags(args))

			buf := bytes.NewBuffer([]byte{})
			cmd.SetOut(buf)

			// WHEN
			err := cmd.RunE(cmd, []string{tc.path})

			// THEN
			tc.assert(t, err, buf.String())
		})
	}
}
