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

import "github.com/rs/zerolog"

type EventKind int

const (
	Created EventKind = iota + 1
	Modified
	Removed
)

func (k EventKind) String() string {
	switch k {
	case Created:
		return "created"
	case Modified:
		return "modified"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

type Event struct {
	// Name is the path of the affected file. For a watched directory, it is one of its entries.
	Name string
	Kind EventKind
}

//go:generate mockery --name ChangeListener --structname ChangeListenerMock

type ChangeListener interface {
	OnChanged(logger zerolog.Logger, evt Event)
}

//go:generate mockery --name Watcher --structname WatcherMock

// Watcher notifies listeners about changes of files. If the path is a directory, changes
// of the files directly in it are reported. Symlinks replaced by atomic swaps (as done for
// mounted config maps) are reported as modifications.
type Watcher interface {
	Add(path string, cl ChangeListener) error
}

type NoopWatcher struct{}

func (NoopWatcher) Add(string, ChangeListener) error { return nil }
