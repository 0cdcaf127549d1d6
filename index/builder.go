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
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/mundap-io/mundap/ai"
	"github.com/mundap-io/mundap/core"
)

// batchSize is the number of chunks embedded per worker task.
const batchSize = 32

// Builder embeds chunk sets into immutable indexes. Embedding runs on a
// worker pool, one batch of chunks per task.
type Builder struct {
	embedder   ai.Embedder
	pool       *ants.Pool
	progress   func(done, total int)
	attempts   int
	retryDelay time.Duration
	logger     *slog.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) BuilderOption {
	return func(b *Builder) error {
		if size < 1 {
			size = 1
		}
		if b.pool != nil {
			b.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		b.pool = pool
		return nil
	}
}

// WithEmbedRetry sets how often a failed embedding batch is retried and
// the base delay between attempts. The delay doubles on each retry.
func WithEmbedRetry(attempts int, baseDelay time.Duration) BuilderOption {
	return func(b *Builder) error {
		if attempts < 1 {
			return ErrInvalidAttempts
		}
		b.attempts = attempts
		b.retryDelay = baseDelay
		return nil
	}
}

// WithProgress sets a callback invoked after each embedded batch with the
// number of chunks done so far and the total.
func WithProgress(fn func(done, total int)) BuilderOption {
	return func(b *Builder) error {
		b.progress = fn
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBuilder creates an index builder.
func NewBuilder(embedder ai.Embedder, opts ...BuilderOption) (*Builder, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	b := &Builder{
		embedder:   embedder,
		pool:       pool,
		attempts:   defaultEmbedAttempts,
		retryDelay: defaultEmbedDelay,
		logger:     slog.Default().With("component", "index-builder"),
	}

	for _, opt := range opts {
		if optErr := opt(b); optErr != nil {
			b.Release()
			return nil, optErr
		}
	}
	return b, nil
}

// Build embeds every chunk and assembles the index. Input order is
// preserved, so identical chunk sets produce identical search rankings.
// The chunks slice is not mutated; embedded copies go into the index.
func (b *Builder) Build(ctx context.Context, chunks []core.Chunk) (*Index, error) {
	if len(chunks) == 0 {
		return nil, ErrNoChunks
	}

	embedded := make([]core.Chunk, len(chunks))
	copy(embedded, chunks)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		done     int
	)

	for start := 0; start < len(embedded); start += batchSize {
		end := min(start+batchSize, len(embedded))
		batch := embedded[start:end]

		wg.Add(1)
		submitErr := b.pool.Submit(func() {
			defer wg.Done()

			texts := make([]string, len(batch))
			for i := range batch {
				texts[i] = EmbedText(&batch[i])
			}

			var vectors [][]float32
			err := retryWithBackoff(ctx, func() error {
				vs, embedErr := b.embedder.EmbedTexts(ctx, texts)
				if embedErr != nil {
					return embedErr
				}
				if len(vs) != len(batch) {
					return ErrVectorCount
				}
				vectors = vs
				return nil
			}, b.attempts, b.retryDelay)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			for i := range batch {
				batch[i].Vector = normalize(vectors[i])
			}
			done += len(batch)
			if b.progress != nil {
				b.progress(done, len(embedded))
			}
		})
		if submitErr != nil {
			wg.Done()
			// Already-submitted batches may still be running and calling
			// the progress callback; let them finish before returning.
			wg.Wait()
			return nil, submitErr
		}
	}
	wg.Wait()

	if firstErr != nil {
		b.logger.Error("index build failed", "err", firstErr)
		return nil, firstErr
	}

	b.logger.Info("index built", "chunks", len(embedded))
	return newIndex(embedded, time.Now().UTC()), nil
}

// Release releases the worker pool.
// The builder should not be used after calling Release.
func (b *Builder) Release() {
	if b.pool != nil {
		b.pool.Release()
	}
}

// EmbedText renders the text submitted to the embedder for a chunk: the
// hierarchy path, then the question/answer pair for qa chunks or the title
// and body for prose chunks. Queries are embedded bare, which works because
// the hierarchy prefix shifts all chunks consistently.
func EmbedText(chunk *core.Chunk) string {
	var b strings.Builder
	b.WriteString(chunk.HierarchyString())
	b.WriteByte('\n')
	if chunk.Type == core.ChunkTypeQA {
		b.WriteString("질문: ")
		b.WriteString(chunk.Question)
		b.WriteString("\n답변: ")
		b.WriteString(chunk.Content)
	} else {
		b.WriteString(chunk.Title)
		b.WriteByte('\n')
		b.WriteString(chunk.Content)
	}
	return b.String()
}
