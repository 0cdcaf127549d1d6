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

package mundap

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/mundap-io/mundap/ai"
	"github.com/mundap-io/mundap/ai/openai"
	"github.com/mundap-io/mundap/answer"
	"github.com/mundap-io/mundap/category"
	"github.com/mundap-io/mundap/config"
	"github.com/mundap-io/mundap/core"
	"github.com/mundap-io/mundap/index"
	"github.com/mundap-io/mundap/segment"
	"github.com/mundap-io/mundap/source"
	badgerstore "github.com/mundap-io/mundap/storage/badger"
)

// Engine wires the full question-answering stack: source documents,
// section metadata, the vector index, the answer cache and the
// resolution cascade.
type Engine struct {
	cfg        *config.Config
	stores     *badgerstore.Stores
	provider   ai.AIProvider
	sources    *source.Store
	categories *category.Store
	segmenter  *segment.Segmenter
	builder    *index.Builder
	manager    *index.Manager
	cache      *answer.Cache
	resolver   *answer.Resolver
	logger     *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	provider ai.AIProvider
	progress func(done, total int)
}

// WithProvider replaces the OpenAI-backed provider, e.g. with mocks.
func WithProvider(provider ai.AIProvider) EngineOption {
	return func(o *engineOptions) {
		o.provider = provider
	}
}

// WithBuildProgress reports embedding progress during index builds.
func WithBuildProgress(fn func(done, total int)) EngineOption {
	return func(o *engineOptions) {
		o.progress = fn
	}
}

// NewEngine assembles an Engine from the configuration.
func NewEngine(cfg *config.Config, opts ...EngineOption) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}

	provider := options.provider
	if provider == nil {
		var err error
		provider, err = openai.NewProvider(ai.NewConfig(
			ai.WithEmbeddingHost(cfg.AI.EmbeddingHost),
			ai.WithChatHost(cfg.AI.ChatHost),
			ai.WithEmbeddingModel(cfg.AI.EmbeddingModel),
			ai.WithChatModel(cfg.AI.ChatModel),
			ai.WithToken(cfg.AI.Token),
		))
		if err != nil {
			return nil, err
		}
	}

	stores, err := badgerstore.OpenStores(cfg.Data.DatabasePath)
	if err != nil {
		provider.Close()
		return nil, err
	}

	sources, err := source.NewStore(cfg.Data.DocsDir)
	if err != nil {
		stores.Close()
		provider.Close()
		return nil, err
	}

	categories, err := category.LoadStore(cfg.Data.MetadataFile)
	if err != nil {
		stores.Close()
		provider.Close()
		return nil, err
	}

	matcher, err := category.NewMatcher(categories,
		category.WithAnswerer(provider.Answerer()))
	if err != nil {
		stores.Close()
		provider.Close()
		return nil, err
	}

	cache, err := answer.NewCache(answer.WithCacheStore(stores.Answers))
	if err != nil {
		stores.Close()
		provider.Close()
		return nil, err
	}

	builderOpts := []index.BuilderOption{}
	if options.progress != nil {
		builderOpts = append(builderOpts, index.WithProgress(options.progress))
	}
	builder, err := index.NewBuilder(provider.Embedder(), builderOpts...)
	if err != nil {
		stores.Close()
		provider.Close()
		return nil, err
	}

	manager, err := index.NewManager(provider.Embedder(), builder,
		index.WithStore(stores.Chunks),
		index.WithRebuildHook(func(ctx context.Context) error {
			_, err := cache.Purge(ctx)
			return err
		}))
	if err != nil {
		builder.Release()
		stores.Close()
		provider.Close()
		return nil, err
	}

	resolver, err := answer.NewResolver(cache,
		answer.WithMatcher(matcher, categories),
		answer.WithAnswerer(provider.Answerer()),
		answer.WithIndex(manager),
		answer.WithSources(sources),
		answer.WithFAQ(stores.FAQ),
	)
	if err != nil {
		builder.Release()
		stores.Close()
		provider.Close()
		return nil, err
	}

	return &Engine{
		cfg:        cfg,
		stores:     stores,
		provider:   provider,
		sources:    sources,
		categories: categories,
		segmenter:  segment.New(),
		builder:    builder,
		manager:    manager,
		cache:      cache,
		resolver:   resolver,
		logger:     slog.Default().With("component", "mundap.Engine"),
	}, nil
}

// Ask resolves a question through the cascade. The only error is an
// empty query; every other condition produces a well-formed answer.
func (e *Engine) Ask(ctx context.Context, question string) (*core.Answer, error) {
	return e.resolver.Resolve(ctx, question)
}

// Ready reports whether the index can serve queries.
func (e *Engine) Ready() bool {
	return e.manager.Ready()
}

// Ensure makes the index servable: load the persisted build if there is
// one, and rebuild when none exists or the documents have changed since.
func (e *Engine) Ensure(ctx context.Context) error {
	if !e.manager.Ready() {
		if err := e.manager.Load(ctx); err != nil {
			e.logger.Info("no persisted index, building", "reason", err)
			return e.Rebuild(ctx)
		}
	}

	latest, err := e.sources.LatestModTime()
	if err != nil {
		return err
	}
	if e.manager.IsStale(latest) {
		e.logger.Info("documents changed since last build, rebuilding")
		return e.Rebuild(ctx)
	}
	return nil
}

// Rebuild segments every document, re-embeds the chunks and swaps the
// index. The answer cache is purged and the FAQ corpus reloaded.
func (e *Engine) Rebuild(ctx context.Context) error {
	ids, err := e.sources.List()
	if err != nil {
		return err
	}

	var chunks []core.Chunk
	for _, id := range ids {
		text, err := e.sources.Read(id)
		if err != nil {
			return err
		}
		for chunk := range e.segmenter.Segment(id, text) {
			chunks = append(chunks, chunk)
		}
	}
	e.logger.Info("documents segmented", "documents", len(ids), "chunks", len(chunks))

	if e.cfg.Data.FAQFile != "" {
		items, err := LoadFAQFile(e.cfg.Data.FAQFile)
		if err != nil {
			return err
		}
		if err := e.stores.FAQ.ReplaceFAQItems(ctx, items); err != nil {
			return err
		}
		e.logger.Info("FAQ corpus replaced", "items", len(items))
	}

	return e.manager.Rebuild(ctx, chunks)
}

// Watch rebuilds the index whenever a document changes, until ctx is
// done.
func (e *Engine) Watch(ctx context.Context) error {
	watcherOpts := []source.WatcherOption{}
	if d := e.cfg.Watch.Debounce(); d > 0 {
		watcherOpts = append(watcherOpts, source.WithDebounce(d))
	}
	watcher, err := source.NewWatcher(e.sources.Dir(), watcherOpts...)
	if err != nil {
		return err
	}

	changes, err := watcher.Watch(ctx)
	if err != nil {
		return err
	}

	for range changes {
		e.logger.Info("document change detected, rebuilding")
		if err := e.Rebuild(ctx); err != nil {
			e.logger.Error("rebuild failed", "error", err)
		}
	}
	return ctx.Err()
}

// Chunks exposes the served chunk set.
func (e *Engine) Chunks() ([]core.Chunk, error) {
	return e.manager.Chunks()
}

// Close releases the worker pool, the AI provider and the database.
func (e *Engine) Close() error {
	e.builder.Release()

	if err := e.provider.Close(); err != nil {
		e.logger.Error("error closing AI provider", "error", err)
	}
	return e.stores.Close()
}

// faqFile mirrors the FAQ corpus JSON: a flat list of entries.
type faqFile struct {
	Items []faqEntry `json:"items"`
}

type faqEntry struct {
	Category   string   `json:"category"`
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Keywords   []string `json:"keywords,omitempty"`
	Department string   `json:"department,omitempty"`
	Link       string   `json:"link,omitempty"`
}

// LoadFAQFile reads a FAQ corpus JSON file. Ids are content hashes of
// the question text, stable across reloads.
func LoadFAQFile(path string) ([]core.FAQItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading FAQ file: %w", err)
	}

	var file faqFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing FAQ file: %w", err)
	}

	items := make([]core.FAQItem, 0, len(file.Items))
	for _, entry := range file.Items {
		if entry.Question == "" || entry.Answer == "" {
			return nil, fmt.Errorf("FAQ entry missing question or answer")
		}
		items = append(items, core.FAQItem{
			Id:         core.IDFromContent(entry.Question),
			Category:   entry.Category,
			Question:   entry.Question,
			Answer:     entry.Answer,
			Keywords:   entry.Keywords,
			Department: entry.Department,
			Link:       entry.Link,
		})
	}
	return items, nil
}
