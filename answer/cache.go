package answer

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/mundap-io/mundap/core"
	"github.com/mundap-io/mundap/storage"
)

// Cache holds resolved answers keyed by normalized query. An in-memory
// map serves reads; an optional persistent store survives restarts and
// backfills the map on miss.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*core.CachedAnswer

	store  storage.AnswerCacheStore
	logger *slog.Logger
}

// CacheOption configures a Cache.
type CacheOption func(*Cache) error

// WithCacheStore persists cache entries to the store.
func WithCacheStore(store storage.AnswerCacheStore) CacheOption {
	return func(c *Cache) error {
		c.store = store
		return nil
	}
}

// WithCacheLogger sets the logger.
func WithCacheLogger(logger *slog.Logger) CacheOption {
	return func(c *Cache) error {
		c.logger = logger
		return nil
	}
}

// NewCache creates an answer cache.
func NewCache(opts ...CacheOption) (*Cache, error) {
	c := &Cache{
		entries: make(map[string]*core.CachedAnswer),
		logger:  slog.Default().With("component", "answer.Cache"),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Get looks up a cached answer by normalized query key.
func (c *Cache) Get(ctx context.Context, key string) (*core.CachedAnswer, bool) {
	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return cached, true
	}

	if c.store == nil {
		return nil, false
	}

	cached, err := c.store.GetAnswer(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			c.logger.Warn("cache store read failed", "error", err)
		}
		return nil, false
	}

	c.mu.Lock()
	c.entries[key] = cached
	c.mu.Unlock()
	return cached, true
}

// Put stores an answer under its normalized query key. A store write
// failure keeps the in-memory entry and is only logged.
func (c *Cache) Put(ctx context.Context, cached *core.CachedAnswer) {
	c.mu.Lock()
	c.entries[cached.Key] = cached
	c.mu.Unlock()

	if c.store != nil {
		if err := c.store.PutAnswer(ctx, cached); err != nil {
			c.logger.Warn("cache store write failed", "key", cached.Key, "error", err)
		}
	}
}

// Purge drops every cached answer, in memory and in the store. Called on
// index rebuild so answers grounded in edited documents do not survive.
func (c *Cache) Purge(ctx context.Context) (int, error) {
	c.mu.Lock()
	dropped := len(c.entries)
	c.entries = make(map[string]*core.CachedAnswer)
	c.mu.Unlock()

	if c.store != nil {
		persisted, err := c.store.PurgeAnswers(ctx)
		if err != nil {
			return dropped, err
		}
		if persisted > dropped {
			dropped = persisted
		}
	}

	c.logger.Debug("answer cache purged", "entries", dropped)
	return dropped, nil
}

// Len returns the number of in-memory entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
