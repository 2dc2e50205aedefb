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

package serve

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/dadrus/pathtrie/cmd/flags"
	"github.com/dadrus/pathtrie/internal/handler/api"
	"github.com/dadrus/pathtrie/internal/routes"
	"github.com/dadrus/pathtrie/internal/x/testsupport"
)

func TestCreateApp(t *testing.T) {
	t.Parallel()

	// this test verifies that all dependencies are resolved
	// and nothing has been forgotten
	addr, err := testsupport.FreeAddress()
	require.NoError(t, err)

	_, port, _ := strings.Cut(addr, ":")

	dir := t.TempDir()
	routeFile := filepath.Join(dir, "routes.yaml")
	require.NoError(t, os.WriteFile(routeFile, []byte(`
version: "1"
routes:
  - id: user
    path: /users/${User}
    target: users
`), 0o600))

	confFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(confFile, []byte(`
log:
  level: error
serve:
  host: 127.0.0.1
  port: `+port+`
routes:
  providers:
    file_system:
      src: `+routeFile+`
`), 0o600))

	cmd := &cobra.Command{}
	flags.RegisterGlobalFlags(cmd)

	err = cmd.ParseFlags([]string{"--" + flags.Config, confFile, "--" + flags.EnvironmentConfigPrefix, "CREATEAPPTEST_"})
	require.NoError(t, err)

	var table routes.Table

	app, err := createApp(cmd, fx.Options(api.Module, fx.Populate(&table)))
	require.NoError(t, err)
	require.NotNil(t, app)

	require.NoError(t, app.Start(context.Background()))
	defer func() { require.NoError(t, app.Stop(context.Background())) }()

	res, err := table.Lookup(context.Background(), "/users/alice")
	require.NoError(t, err)
	assert.Equal(t, "user", res.Route.ID)
}

func TestCreateAppWithInvalidConfiguration(t *testing.T) {
	t.Parallel()

	confFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(confFile, []byte("serve:\n  port: 0\n"), 0o600))

	cmd := &cobra.Command{}
	flags.RegisterGlobalFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--" + flags.Config, confFile}))

	_, err := createApp(cmd, api.Module)
	require.Error(t, err)
}
