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


package badger

import "github.com/mundap-io/mundap/storage"

// Stores bundles every store backed by one BadgerDB instance.
type Stores struct {
	Chunks  storage.ChunkStore
	Answers storage.AnswerCacheStore
	FAQ     storage.FAQStore
	Backend *Backend
}

// Close closes the shared backend.
func (s *Stores) Close() error {
	return s.Backend.Close()
}

// OpenStores opens a BadgerDB database at the path and creates all stores
// on it.
func OpenStores(filePath string) (*Stores, error) {
	return openStores(filePath, false)
}

// NewMemoryStores creates in-memory stores for testing.
// Caller must Close when done.
func NewMemoryStores() (*Stores, error) {
	return openStores("", true)
}

func openStores(filePath string, inMemory bool) (*Stores, error) {
	backend, err := OpenBackend(filePath, inMemory)
	if err != nil {
		return nil, err
	}

	chunks, err := NewChunkStore(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	answers, err := NewAnswerStore(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	faq, err := NewFAQStore(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Stores{
		Chunks:  chunks,
		Answers: answers,
		FAQ:     faq,
		Backend: backend,
	}, nil
}
