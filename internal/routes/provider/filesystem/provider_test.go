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

package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/pathtrie/internal/pathtrie"
	"github.com/dadrus/pathtrie/internal/routes"
	"github.com/dadrus/pathtrie/internal/validation"
	"github.com/dadrus/pathtrie/internal/watcher"
	"github.com/dadrus/pathtrie/internal/watcher/mocks"
)

const (
	usersRouteSet = `
version: "1"
name: users
routes:
  - id: user
    path: /users/${User}
    target: users
`
	ordersRouteSet = `{"version": "1", "routes": [{"id": "order", "path": "/orders/$Id", "target": "orders"}]}`
)

func newTestValidator(t *testing.T) validation.Validator {
	t.Helper()

	validator, err := validation.NewValidator()
	require.NoError(t, err)

	return validator
}

func newTestTable(t *testing.T) *routes.RouteTable {
	t.Helper()

	tbl, err := routes.NewRouteTable()
	require.NoError(t, err)

	return tbl
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestNewProvider(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	for uc, tc := range map[string]struct {
		conf   map[string]any
		assert func(t *testing.T, err error, prov *provider)
	}{
		"missing src": {
			conf: map[string]any{"watch": true},
			assert: func(t *testing.T, err error, _ *provider) {
				t.Helper()

				require.ErrorIs(t, err, pathtrie.ErrConfiguration)
				require.ErrorContains(t, err, "'src'")
			},
		},
		"unknown property": {
			conf: map[string]any{"src": dir, "foo": "bar"},
			assert: func(t *testing.T, err error, _ *provider) {
				t.Helper()

				require.ErrorIs(t, err, pathtrie.ErrConfiguration)
			},
		},
		"not existing src": {
			conf: map[string]any{"src": filepath.Join(dir, "missing")},
			assert: func(t *testing.T, err error, _ *provider) {
				t.Helper()

				require.ErrorIs(t, err, pathtrie.ErrConfiguration)
				require.ErrorContains(t, err, "not accessible")
			},
		},
		"invalid pattern": {
			conf: map[string]any{"src": dir, "pattern": "[a-"},
			assert: func(t *testing.T, err error, _ *provider) {
				t.Helper()

				require.ErrorIs(t, err, pathtrie.ErrConfiguration)
			},
		},
		"directory with pattern": {
			conf: map[string]any{"src": dir, "watch": true, "pattern": "*.yaml"},
			assert: func(t *testing.T, err error, prov *provider) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, dir, prov.src)
				assert.True(t, prov.isDir)
				assert.True(t, prov.watch)
				assert.True(t, prov.pattern.Match("foo.yaml"))
				assert.False(t, prov.pattern.Match("foo.json"))
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			prov, err := newProvider(tc.conf, newTestTable(t), watcher.NoopWatcher{}, newTestValidator(t), zerolog.Nop())

			tc.assert(t, err, prov)
		})
	}
}

func TestProviderStartWithDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "users.yaml"), usersRouteSet)
	writeFile(t, filepath.Join(dir, "orders.json"), ordersRouteSet)
	writeFile(t, filepath.Join(dir, "empty.yaml"), "")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a route set")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o700))

	tbl := newTestTable(t)
	cw := mocks.NewWatcherMock(t)

	prov, err := newProvider(
		map[string]any{"src": dir, "watch": true, "pattern": "*.{yaml,json}"},
		tbl, cw, newTestValidator(t), zerolog.Nop(),
	)
	require.NoError(t, err)

	cw.EXPECT().Add(dir, prov).Return(nil)

	// WHEN
	err = prov.Start(context.Background())

	// THEN
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())

	var sources []string
	for _, rs := range tbl.RouteSets() {
		sources = append(sources, rs.Source)
	}

	assert.Equal(t, []string{
		"file_system:" + filepath.Join(dir, "orders.json"),
		"file_system:" + filepath.Join(dir, "users.yaml"),
	}, sources)

	res, err := tbl.Lookup(context.Background(), "/orders/42")
	require.NoError(t, err)
	assert.Equal(t, "orders", res.Route.Target)

	require.NoError(t, prov.Stop(context.Background()))
}

func TestProviderStartWithSingleFileWithoutWatching(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "routes.yaml")
	writeFile(t, file, usersRouteSet)

	tbl := newTestTable(t)

	// no expectations, so Add must not be called
	cw := mocks.NewWatcherMock(t)

	prov, err := newProvider(map[string]any{"src": file}, tbl, cw, newTestValidator(t), zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, prov.Start(context.Background()))
	assert.Equal(t, 1, tbl.Len())
}

func TestProviderStartFailures(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		content   string
		watchErr  error
		expErr    error
		expErrMsg string
	}{
		"malformed route set": {
			content: "version: \"1\"\nroutes: []",
			expErr:  pathtrie.ErrConfiguration,
		},
		"watcher failure": {
			content:   usersRouteSet,
			watchErr:  errors.New("test error"),
			expErrMsg: "test error",
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			file := filepath.Join(t.TempDir(), "routes.yaml")
			writeFile(t, file, tc.content)

			cw := &mocks.WatcherMock{}
			cw.On("Add", file, mock.Anything).Return(tc.watchErr)

			prov, err := newProvider(map[string]any{"src": file, "watch": true},
				newTestTable(t), cw, newTestValidator(t), zerolog.Nop())
			require.NoError(t, err)

			err = prov.Start(context.Background())

			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
			} else {
				require.ErrorContains(t, err, tc.expErrMsg)
			}
		})
	}
}

func TestProviderOnChanged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	users := filepath.Join(dir, "users.yaml")
	writeFile(t, users, usersRouteSet)

	tbl := newTestTable(t)

	prov, err := newProvider(map[string]any{"src": dir, "pattern": "*.yaml"},
		tbl, watcher.NoopWatcher{}, newTestValidator(t), zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, prov.Start(context.Background()))
	require.Equal(t, 1, tbl.Len())

	// a new file
	orders := filepath.Join(dir, "orders.yaml")
	writeFile(t, orders, ordersRouteSet)
	prov.OnChanged(zerolog.Nop(), watcher.Event{Name: orders, Kind: watcher.Created})
	assert.Equal(t, 2, tbl.Len())

	// a file not matching the pattern
	other := filepath.Join(dir, "other.json")
	writeFile(t, other, `{"version": "1", "routes": [{"id": "o", "path": "/other", "target": "o"}]}`)
	prov.OnChanged(zerolog.Nop(), watcher.Event{Name: other, Kind: watcher.Created})
	assert.Equal(t, 2, tbl.Len())

	// a modification
	writeFile(t, users, usersRouteSet+"  - id: admin\n    path: /admin\n    target: admin\n")
	prov.OnChanged(zerolog.Nop(), watcher.Event{Name: users, Kind: watcher.Modified})
	assert.Equal(t, 3, tbl.Len())

	// a broken modification keeps the previous state
	writeFile(t, users, "version: [")
	prov.OnChanged(zerolog.Nop(), watcher.Event{Name: users, Kind: watcher.Modified})
	assert.Equal(t, 3, tbl.Len())

	// emptied file
	writeFile(t, orders, "")
	prov.OnChanged(zerolog.Nop(), watcher.Event{Name: orders, Kind: watcher.Modified})
	assert.Equal(t, 2, tbl.Len())

	// removal
	require.NoError(t, os.Remove(users))
	prov.OnChanged(zerolog.Nop(), watcher.Event{Name: users, Kind: watcher.Removed})
	assert.Equal(t, 0, tbl.Len())
}

func TestContentType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "application/json", contentType("/a/b.json"))
	assert.Equal(t, "application/json", contentType("B.JSON"))
	assert.Equal(t, "application/yaml", contentType("b.yaml"))
	assert.Equal(t, "application/yaml", contentType("b"))
}

func TestLoadRouteSets(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "users.yaml"), usersRouteSet)
	writeFile(t, filepath.Join(dir, "orders.json"), ordersRouteSet)

	tbl := newTestTable(t)

	err := LoadRouteSets(context.Background(), dir, tbl, newTestValidator(t))
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())

	err = LoadRouteSets(context.Background(), filepath.Join(dir, "missing.yaml"), tbl, newTestValidator(t))
	require.ErrorIs(t, err, pathtrie.ErrConfiguration)
}
