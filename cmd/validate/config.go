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
	"github.com/spf13/cobra"

	"github.com/dadrus/pathtrie/cmd/flags"
	"github.com/dadrus/pathtrie/internal/routes"
)

// NewValidateConfigCommand represents the "validate config" command.
func NewValidateConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   "Validates pathtrie's configuration",
		Example: "pathtrie validate config -c myconfig.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateConfig(cmd); err != nil {
				return err
			}

			cmd.Println("Configuration is valid")

			return nil
		},
	}
}

func validateConfig(cmd *cobra.Command) error {
	if configPath, _ := cmd.Flags().GetString(flags.Config); len(configPath) == 0 {
		return ErrNoConfigFile
	}

	conf, _, err := flags.LoadConfiguration(cmd)
	if err != nil {
		return err
	}

	// the matching options, like the value pattern, are only checked when the table is created
	_, err = routes.NewRouteTable(routes.WithRoutesConfig(conf.Routes))

	return err
}
