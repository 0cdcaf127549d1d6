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

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/mundap-io/mundap/core"
	"github.com/mundap-io/mundap/storage"
)

// ChunkStore implements storage.ChunkStore for BadgerDB.
//
// Chunks are keyed by build position so iteration returns them in insertion
// order. Writes go through a write batch because an embedded chunk set
// (vectors included) can exceed single-transaction size limits.
type ChunkStore struct {
	backend *Backend
}

var _ storage.ChunkStore = (*ChunkStore)(nil)

// NewChunkStore creates a chunk store on the backend.
func NewChunkStore(backend *Backend) (storage.ChunkStore, error) {
	return &ChunkStore{backend: backend}, nil
}

// ReplaceChunks replaces the persisted chunk set wholesale.
func (s *ChunkStore) ReplaceChunks(ctx context.Context, buildTime time.Time, chunks []core.Chunk) error {
	if _, err := s.backend.dropPrefix([]byte(chunkPrefix)); err != nil {
		return err
	}

	wb := s.backend.db.NewWriteBatch()
	defer wb.Cancel()

	for i := range chunks {
		if err := wb.Set(makeChunkKey(uint64(i)), storage.MarshalChunk(&chunks[i])); err != nil {
			return err
		}
	}

	buildBuf := make([]byte, 8)
	binary.BigEndian.PutUint64(buildBuf, uint64(buildTime.UnixMicro()))
	if err := wb.Set(makeChunkBuildKey(), buildBuf); err != nil {
		return err
	}

	return wb.Flush()
}

// ListChunks returns the persisted chunks in insertion order with the
// build time. An empty store yields no chunks and a zero time.
func (s *ChunkStore) ListChunks(ctx context.Context) ([]core.Chunk, time.Time, error) {
	var chunks []core.Chunk
	var buildTime time.Time

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeChunkBuildKey())
		switch err {
		case nil:
			err = item.Value(func(val []byte) error {
				if len(val) != 8 {
					return storage.ErrCorruptMetadata
				}
				buildTime = time.UnixMicro(int64(binary.BigEndian.Uint64(val))).UTC()
				return nil
			})
			if err != nil {
				return err
			}
		case badger.ErrKeyNotFound:
			return nil
		default:
			return err
		}

		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				chunk, err := storage.UnmarshalChunk(val)
				if err != nil {
					return err
				}
				chunks = append(chunks, *chunk)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, time.Time{}, err
	}

	return chunks, buildTime, nil
}
