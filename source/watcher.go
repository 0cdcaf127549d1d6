// Copyright 2026 Mundap Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package source

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce batches the burst of events an editor save produces
// into a single change notification.
const defaultDebounce = 500 * time.Millisecond

// Watcher reports changes to the markdown documents in a directory.
type Watcher struct {
	dir      string
	debounce time.Duration
	logger   *slog.Logger
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher) error

// WithDebounce sets the quiet period before a change is reported.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) error {
		w.debounce = d
		return nil
	}
}

// WithWatcherLogger sets the logger.
func WithWatcherLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) error {
		w.logger = logger
		return nil
	}
}

// NewWatcher creates a Watcher for the directory.
func NewWatcher(dir string, opts ...WatcherOption) (*Watcher, error) {
	w := &Watcher{
		dir:      dir,
		debounce: defaultDebounce,
		logger:   slog.Default().With("component", "source.Watcher"),
	}
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Watch reports document changes on the returned channel until ctx is
// done, then closes it. Create, write, rename and remove events on
// markdown files all count as changes; events within the debounce window
// coalesce into one notification.
func (w *Watcher) Watch(ctx context.Context) (<-chan struct{}, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		return nil, err
	}

	changes := make(chan struct{}, 1)

	go func() {
		defer close(changes)
		defer fsw.Close()

		var timer *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if !w.relevant(event) {
					continue
				}
				w.logger.Debug("document event", "op", event.Op.String(), "name", event.Name)
				if timer == nil {
					timer = time.NewTimer(w.debounce)
					fire = timer.C
				} else {
					if !timer.Stop() {
						<-timer.C
					}
					timer.Reset(w.debounce)
				}

			case <-fire:
				timer = nil
				fire = nil
				select {
				case changes <- struct{}{}:
				default:
				}

			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				w.logger.Warn("watch error", "error", err)
			}
		}
	}()

	return changes, nil
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !IsDocumentName(filepath.Base(event.Name)) {
		return false
	}
	return event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Rename) ||
		event.Op.Has(fsnotify.Remove)
}
