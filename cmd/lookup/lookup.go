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
	"context"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/dadrus/pathtrie/cmd/flags"
	"github.com/dadrus/pathtrie/internal/encoding"
	"github.com/dadrus/pathtrie/internal/pathtrie"
	"github.com/dadrus/pathtrie/internal/routes"
	"github.com/dadrus/pathtrie/internal/routes/provider/filesystem"
	"github.com/dadrus/pathtrie/internal/x/errorchain"
)

const (
	flagRoutes  = "routes"
	flagAll     = "all"
	flagLiteral = "literal"
	flagOutput  = "output"
	flagQuery   = "query"
)

// NewLookupCommand represents the "lookup" command.
func NewLookupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup [path]",
		Short: "Resolves a path against route set files",
		Args:  cobra.ExactArgs(1),
		Example: "pathtrie lookup -r ./routes /users/alice/orders\n" +
			"pathtrie lookup -r routes.yaml --all -q '#.route.id' /items/x",
		RunE: func(cmd *cobra.Command, args []string) error {
			return lookup(cmd, args[0])
		},
	}

	cmd.Flags().StringSliceP(flagRoutes, "r", nil,
		"Route set file, or directory with route set files. Can be repeated.")
	cmd.Flags().Bool(flagAll, false,
		"List all routes matching the path, best scoring first, instead of resolving it.")
	cmd.Flags().Bool(flagLiteral, false,
		"Address variables in the path by their name, e.g. /users/${User}.")
	cmd.Flags().StringP(flagOutput, "o", "json", "Output format. One of json or yaml.")
	cmd.Flags().StringP(flagQuery, "q", "",
		"GJSON path expression applied to the result before it is printed.")

	_ = cmd.MarkFlagRequired(flagRoutes)

	return cmd
}

func lookup(cmd *cobra.Command, path string) error {
	sources, _ := cmd.Flags().GetStringSlice(flagRoutes)
	all, _ := cmd.Flags().GetBool(flagAll)
	literal, _ := cmd.Flags().GetBool(flagLiteral)
	output, _ := cmd.Flags().GetString(flagOutput)
	query, _ := cmd.Flags().GetString(flagQuery)

	contentType, err := outputContentType(output)
	if err != nil {
		return err
	}

	conf, validator, err := flags.LoadConfiguration(cmd)
	if err != nil {
		return err
	}

	tbl, err := routes.NewRouteTable(routes.WithRoutesConfig(conf.Routes))
	if err != nil {
		return err
	}

	logger := zerolog.Nop()
	ctx := logger.WithContext(context.Background())

	for _, src := range sources {
		if err = filesystem.LoadRouteSets(ctx, src, tbl, validator); err != nil {
			return err
		}
	}

	var result any

	switch {
	case all:
		result, err = tbl.Matches(ctx, path)
	case literal:
		result, err = tbl.Find(ctx, path)
	default:
		result, err = tbl.Lookup(ctx, path)
	}

	if err != nil {
		return err
	}

	if len(query) != 0 {
		if result, err = applyQuery(result, query); err != nil {
			return err
		}
	}

	return encoding.NewEncoder(encoding.WithTargetContentType(contentType)).Encode(result, cmd.OutOrStdout())
}

func applyQuery(result any, query string) (any, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, errorchain.NewWithMessage(pathtrie.ErrInternal, "failed encoding result").CausedBy(err)
	}

	value := gjson.GetBytes(raw, query)
	if !value.Exists() {
		return nil, errorchain.NewWithMessagef(pathtrie.ErrArgument, "query %q yields no result", query)
	}

	return value.Value(), nil
}

func outputContentType(output string) (string, error) {
	switch output {
	case "json":
		return "application/json", nil
	case "yaml":
		return "application/yaml", nil
	default:
		return "", errorchain.NewWithMessagef(pathtrie.ErrArgument, "unsupported output format %q", output)
	}
}
