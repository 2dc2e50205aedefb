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

package watcher

import (
	"context"

	"go.uber.org/fx"
)

// Module is used on app bootstrap.
// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		fx.Annotate(
			newWatcher,
			fx.OnStart(func(ctx context.Context, w *watcher) error { return w.start(ctx) }),
			fx.OnStop(func(ctx context.Context, w *watcher) error { return w.stop(ctx) }),
		),
		func(w *watcher) Watcher { return w },
	),
)
