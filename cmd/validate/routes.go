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

package validate

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dadrus/pathtrie/cmd/flags"
	"github.com/dadrus/pathtrie/internal/routes"
	"github.com/dadrus/pathtrie/internal/routes/provider/filesystem"
)

// NewValidateRoutesCommand represents the "validate routes" command.
func NewValidateRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "routes [path to route sets]",
		Short:   "Validates route set files",
		Long:    "Validates the route set file, or all route set files in the given directory, and checks them for conflicts",
		Args:    cobra.ExactArgs(1),
		Example: "pathtrie validate routes -c myconfig.yaml ./routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := validateRouteSets(cmd, args[0])
			if err != nil {
				return err
			}

			cmd.Printf("Route sets are valid (%d routes)\n", count)

			return nil
		},
	}
}

func validateRouteSets(cmd *cobra.Command, src string) (int, error) {
	conf, validator, err := flags.LoadConfiguration(cmd)
	if err != nil {
		return 0, err
	}

	tbl, err := routes.NewRouteTable(routes.WithRoutesConfig(conf.Routes))
	if err != nil {
		return 0, err
	}

	logger := zerolog.Nop()

	if err = filesystem.LoadRouteSets(logger.WithContext(context.Background()), src, tbl, validator); err != nil {
		return 0, err
	}

	return tbl.Len(), nil
}
