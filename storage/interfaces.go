package storage

import (
	"context"
	"time"

	"github.com/mundap-io/mundap/core"
)

// ChunkStore persists an embedded chunk set so a restart can reload the
// index without re-embedding. Implementations must be thread-safe.
type ChunkStore interface {
	// ReplaceChunks replaces the persisted chunk set wholesale with the
	// given build. Insertion order is preserved by ListChunks.
	ReplaceChunks(ctx context.Context, buildTime time.Time, chunks []core.Chunk) error

	// ListChunks returns the persisted chunks in insertion order together
	// with the build time. An empty store returns no chunks and a zero
	// time, not an error.
	ListChunks(ctx context.Context) ([]core.Chunk, time.Time, error)
}

// AnswerCacheStore persists resolved answers keyed by normalized query.
// Implementations must be thread-safe.
type AnswerCacheStore interface {
	// GetAnswer retrieves a cached answer by normalized query key.
	// Returns ErrNotFound on a miss.
	GetAnswer(ctx context.Context, key string) (*core.CachedAnswer, error)

	// PutAnswer stores a cached answer, overwriting any entry with the
	// same key.
	PutAnswer(ctx context.Context, answer *core.CachedAnswer) error

	// PurgeAnswers removes every cached answer and reports how many were
	// dropped. Called after index rebuilds so stale answers never outlive
	// the documents they were grounded on.
	PurgeAnswers(ctx context.Context) (int, error)
}

// FAQStore persists the curated FAQ corpus used by the keyword fallback.
// Implementations must be thread-safe.
type FAQStore interface {
	// ReplaceFAQItems replaces the FAQ corpus wholesale.
	ReplaceFAQItems(ctx context.Context, items []core.FAQItem) error

	// ListFAQItems returns the FAQ corpus in insertion order.
	ListFAQItems(ctx context.Context) ([]core.FAQItem, error)
}
