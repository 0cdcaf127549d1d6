package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/mundap-io/mundap/core"
	"github.com/mundap-io/mundap/storage"
)

// AnswerStore implements storage.AnswerCacheStore for BadgerDB.
type AnswerStore struct {
	backend *Backend
}

var _ storage.AnswerCacheStore = (*AnswerStore)(nil)

// NewAnswerStore creates an answer cache store on the backend.
func NewAnswerStore(backend *Backend) (storage.AnswerCacheStore, error) {
	return &AnswerStore{backend: backend}, nil
}

// GetAnswer retrieves a cached answer by normalized query key.
func (s *AnswerStore) GetAnswer(ctx context.Context, key string) (*core.CachedAnswer, error) {
	var answer *core.CachedAnswer

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeAnswerKey(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			answer, err = storage.UnmarshalCachedAnswer(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return answer, nil
}

// PutAnswer stores a cached answer, overwriting any entry with the same key.
func (s *AnswerStore) PutAnswer(ctx context.Context, answer *core.CachedAnswer) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeAnswerKey(answer.Key), storage.MarshalCachedAnswer(answer)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// PurgeAnswers removes every cached answer.
func (s *AnswerStore) PurgeAnswers(ctx context.Context) (int, error) {
	return s.backend.dropPrefix([]byte(answerPrefix + ":"))
}
