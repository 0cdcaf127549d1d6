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


package index

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mundap-io/mundap/ai"
	"github.com/mundap-io/mundap/core"
	"github.com/mundap-io/mundap/storage"
)

// Manager owns the live index and serializes rebuilds. Readers always see a
// complete index: the previous one keeps serving queries until the new one
// swaps in atomically.
type Manager struct {
	current  atomic.Pointer[Index]
	embedder ai.Embedder
	builder  *Builder
	store    storage.ChunkStore
	hooks    []func(context.Context) error
	rebuild  sync.Mutex
	logger   *slog.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager) error

// WithStore sets the chunk store used to persist and reload the embedded
// chunk set. Without a store the index lives only in memory.
func WithStore(store storage.ChunkStore) ManagerOption {
	return func(m *Manager) error {
		m.store = store
		return nil
	}
}

// WithRebuildHook registers a callback invoked after every successful
// rebuild, once the new index is live. Hooks run in registration order;
// a hook error is logged but does not fail the rebuild.
func WithRebuildHook(hook func(context.Context) error) ManagerOption {
	return func(m *Manager) error {
		m.hooks = append(m.hooks, hook)
		return nil
	}
}

// WithManagerLogger sets a custom logger.
// Default is slog.Default().
func WithManagerLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// NewManager creates an index manager.
func NewManager(embedder ai.Embedder, builder *Builder, opts ...ManagerOption) (*Manager, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	m := &Manager{
		embedder: embedder,
		builder:  builder,
		logger:   slog.Default().With("component", "index-manager"),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Ready reports whether an index is live.
func (m *Manager) Ready() bool {
	return m.current.Load() != nil
}

// BuildTime returns the live index's build time, or false when no index
// is live.
func (m *Manager) BuildTime() (time.Time, bool) {
	ix := m.current.Load()
	if ix == nil {
		return time.Time{}, false
	}
	return ix.BuildTime(), true
}

// IsStale reports whether any source modified at latestMod postdates the
// live index. A missing index is always stale.
func (m *Manager) IsStale(latestMod time.Time) bool {
	ix := m.current.Load()
	if ix == nil {
		return true
	}
	return latestMod.After(ix.BuildTime())
}

// Chunks returns the live index's chunks in insertion order.
func (m *Manager) Chunks() ([]core.Chunk, error) {
	ix := m.current.Load()
	if ix == nil {
		return nil, ErrNotReady
	}
	return ix.Chunks(), nil
}

// Load restores the index from the chunk store, skipping embedding. Returns
// ErrNotReady when the store holds no previous build.
func (m *Manager) Load(ctx context.Context) error {
	if m.store == nil {
		return ErrNotReady
	}

	chunks, buildTime, err := m.store.ListChunks(ctx)
	if err != nil {
		return err
	}
	if len(chunks) == 0 {
		return ErrNotReady
	}

	m.current.Store(newIndex(chunks, buildTime))
	m.logger.Info("index loaded from store", "chunks", len(chunks), "built", buildTime)
	return nil
}

// Rebuild embeds the chunk set, persists it, and swaps the new index in.
// Rebuilds are exclusive; queries keep hitting the old index until the swap.
func (m *Manager) Rebuild(ctx context.Context, chunks []core.Chunk) error {
	m.rebuild.Lock()
	defer m.rebuild.Unlock()

	ix, err := m.builder.Build(ctx, chunks)
	if err != nil {
		return err
	}

	if m.store != nil {
		if err := m.store.ReplaceChunks(ctx, ix.BuildTime(), ix.Chunks()); err != nil {
			return err
		}
	}

	m.current.Store(ix)
	m.logger.Info("index rebuilt", "chunks", ix.Len())

	for _, hook := range m.hooks {
		if err := hook(ctx); err != nil {
			m.logger.Warn("rebuild hook failed", "err", err)
		}
	}
	return nil
}

// Search embeds the query and returns the topK most similar chunks.
// Fails with ErrNotReady before the first build or load.
func (m *Manager) Search(ctx context.Context, query string, topK int) ([]core.SearchResult, error) {
	ix := m.current.Load()
	if ix == nil {
		return nil, ErrNotReady
	}

	vector, err := m.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, err
	}

	return ix.Search(normalize(vector), topK), nil
}
