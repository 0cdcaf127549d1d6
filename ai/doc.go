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


// Package ai provides abstractions for the AI services used in Mundap.
//
// This package defines interfaces for text embeddings and the chat-model
// operations of the answer pipeline (keyword extraction, section
// classification, grounded answer generation). The rest of the engine depends
// on these abstractions rather than concrete implementations.
//
// # Interfaces
//
//   - Embedder: generates vector embeddings from text
//   - Answerer: chat-model operations for the answer cascade
//   - AIProvider: aggregates the services for convenient initialization
//
// # Implementation Packages
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//   - ai/mock: test doubles for unit testing without external dependencies
//
// Public constructors (openai.NewProvider, openai.NewEmbedder, etc.) return
// interface types to prevent coupling to implementation details. Test
// constructors (mock.NewMockEmbedder, mock.NewMockAnswerer) return concrete
// types so tests can inject behavior and assert call counts.
//
// # Usage Example
//
//	config := ai.NewConfig(ai.WithHost("http://localhost:11434"))
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	vec, err := provider.Embedder().EmbedText(ctx, "연차는 어떻게 신청하나요?")
//
// The package also houses the question intent classifier. Intent is derived
// from trigger substrings in the question itself and never calls a model.
package ai
