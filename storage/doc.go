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


// Package storage provides the storage abstraction layer for Mundap.
//
// Three stores back the engine: ChunkStore keeps the embedded chunk set so
// restarts skip re-embedding, AnswerCacheStore keeps resolved answers keyed
// by normalized query, and FAQStore keeps the curated FAQ corpus. The
// interfaces decouple the engine from the backing database; storage/badger
// implements all three on one BadgerDB instance.
//
// Public constructors return interface types so consumers never couple to
// BadgerDB specifics; internal constructors may return concrete types.
//
// Records cross the storage boundary in MUS binary format via the
// Marshal/Unmarshal helpers in this package.
package storage
