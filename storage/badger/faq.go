package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/mundap-io/mundap/core"
	"github.com/mundap-io/mundap/storage"
)

// FAQStore implements storage.FAQStore for BadgerDB.
type FAQStore struct {
	backend *Backend
}

var _ storage.FAQStore = (*FAQStore)(nil)

// NewFAQStore creates a FAQ store on the backend.
func NewFAQStore(backend *Backend) (storage.FAQStore, error) {
	return &FAQStore{backend: backend}, nil
}

// ReplaceFAQItems replaces the FAQ corpus wholesale.
func (s *FAQStore) ReplaceFAQItems(ctx context.Context, items []core.FAQItem) error {
	if _, err := s.backend.dropPrefix([]byte(faqPrefix + ":")); err != nil {
		return err
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		for i := range items {
			if err := tx.Set(makeFAQKey(uint64(i)), storage.MarshalFAQItem(&items[i])); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// ListFAQItems returns the FAQ corpus in insertion order.
func (s *FAQStore) ListFAQItems(ctx context.Context) ([]core.FAQItem, error) {
	var items []core.FAQItem

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(faqPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				item, err := storage.UnmarshalFAQItem(val)
				if err != nil {
					return err
				}
				items = append(items, *item)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return items, nil
}
