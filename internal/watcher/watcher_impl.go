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
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/dadrus/pathtrie/internal/pathtrie"
	"github.com/dadrus/pathtrie/internal/x/errorchain"
)

type listenerEntry struct {
	listeners    []ChangeListener
	resolvedPath string
	dir          bool
}

type watcher struct {
	w *fsnotify.Watcher
	m map[string]*listenerEntry
	l zerolog.Logger

	mut sync.Mutex
}

func newWatcher(logger zerolog.Logger) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errorchain.
			NewWithMessage(pathtrie.ErrInternal, "failed to instantiate new file watcher").
			CausedBy(err)
	}

	return &watcher{w: fsw, m: make(map[string]*listenerEntry), l: logger}, nil
}

func (w *watcher) Add(path string, cl ChangeListener) error {
	path = filepath.Clean(path)

	w.mut.Lock()
	defer w.mut.Unlock()

	if entry := w.m[path]; entry != nil {
		entry.listeners = append(entry.listeners, cl)

		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return errorchain.NewWithMessagef(pathtrie.ErrInternal,
			"listener registration for %s failed", path).CausedBy(err)
	}

	resolvedPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return errorchain.NewWithMessagef(pathtrie.ErrInternal,
			"listener registration for %s failed", path).CausedBy(err)
	}

	if err = w.w.Add(path); err != nil {
		return errorchain.NewWithMessagef(pathtrie.ErrInternal,
			"listener registration for %s failed", path).CausedBy(err)
	}

	w.m[path] = &listenerEntry{
		listeners:    []ChangeListener{cl},
		resolvedPath: resolvedPath,
		dir:          info.IsDir(),
	}

	return nil
}

func (w *watcher) start(_ context.Context) error {
	w.l.Debug().Msg("Starting watching files for changes")

	go w.watch()

	return nil
}

func (w *watcher) stop(_ context.Context) error {
	w.l.Debug().Msg("Stopping watching files for changes")

	return w.w.Close()
}

func (w *watcher) watch() {
	for {
		select {
		case evt, ok := <-w.w.Events:
			if !ok {
				w.l.Debug().Msg("File watcher closed")

				return
			}

			w.l.Debug().Str("_event", evt.String()).Msg("File system event received")

			kind, err := w.classify(evt)
			if err != nil {
				w.l.Warn().Err(err).Msgf("Handling modification for %s failed", evt.Name)

				continue
			}

			if kind != 0 {
				w.fireOnChange(Event{Name: evt.Name, Kind: kind})
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				w.l.Debug().Msg("File watcher error channel closed")

				return
			}

			w.l.Warn().Err(err).Msg("File watcher error received")
		}
	}
}

func (w *watcher) classify(evt fsnotify.Event) (EventKind, error) {
	switch {
	case evt.Has(fsnotify.Create):
		return Created, nil
	case evt.Has(fsnotify.Remove), evt.Has(fsnotify.Rename):
		return Removed, nil
	case evt.Has(fsnotify.Write):
		return Modified, nil
	case evt.Has(fsnotify.Chmod):
		if changed, err := w.checkForSwap(evt.Name); err != nil || !changed {
			return 0, err
		}

		return Modified, nil
	default:
		return 0, nil
	}
}

// checkForSwap reports whether the symlink at path points to another file now.
func (w *watcher) checkForSwap(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, err
	}

	resolvedPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return false, err
	}

	w.mut.Lock()
	defer w.mut.Unlock()

	entry := w.m[path]
	if entry == nil || entry.resolvedPath == resolvedPath {
		return false, nil
	}

	_ = w.w.Remove(path)
	entry.resolvedPath = resolvedPath
	_ = w.w.Add(path)

	return true, nil
}

func (w *watcher) fireOnChange(evt Event) {
	w.mut.Lock()

	var listeners []ChangeListener

	if entry := w.m[evt.Name]; entry != nil && !entry.dir {
		listeners = append(listeners, entry.listeners...)
	}

	if entry := w.m[filepath.Dir(evt.Name)]; entry != nil && entry.dir {
		listeners = append(listeners, entry.listeners...)
	}

	w.mut.Unlock()

	for _, listener := range listeners {
		go listener.OnChanged(w.l, evt)
	}
}
