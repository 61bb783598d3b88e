package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/contratoqa/core"
	"github.com/poiesic/contratoqa/storage"
)

// QARepository implements storage.QARepository for BadgerDB.
type QARepository struct {
	backend *Backend
}

var _ storage.QARepository = (*QARepository)(nil)

// NewQARepository creates a QA repository on top of an open backend.
// The caller retains ownership of the backend and must close it after the
// repository.
func NewQARepository(backend *Backend) (storage.QARepository, error) {
	return &QARepository{backend: backend}, nil
}

// Close is a no-op; the backend owns the database handle.
func (r *QARepository) Close() error {
	return nil
}

// FindSimilar delegates to the backend.
func (r *QARepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error) {
	return r.backend.FindSimilar(ctx, vector, minSimilarity, limit)
}

// WithTransaction delegates to the backend.
func (r *QARepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddEntries stores one or more QA entries, keyed by pair ID. Entries with
// the same ID are overwritten, so re-indexing the same log is idempotent.
func (r *QARepository) AddEntries(ctx context.Context, entries ...*core.QAEntry) ([]*core.QAEntry, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			if entry.InsertedAt.IsZero() {
				entry.InsertedAt = time.Now().UTC()
			}

			key := makeQAEntryKey(entry.ID)
			value := storage.MarshalQAEntry(entry)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return entries, err
}

// GetEntry retrieves a single entry by pair ID.
func (r *QARepository) GetEntry(ctx context.Context, id string) (*core.QAEntry, error) {
	var entry *core.QAEntry

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeQAEntryKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			entry, err = storage.UnmarshalQAEntry(val)
			return err
		})
	}, false)

	if err != nil {
		return nil, err
	}
	return entry, nil
}

// CountEntries returns the number of stored entries. Key-only iteration, no
// value fetches.
func (r *QARepository) CountEntries(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(qaEntryPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)

	if err != nil {
		return 0, err
	}
	return count, nil
}
