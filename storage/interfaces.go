package storage

import (
	"context"

	"github.com/poiesic/contratoqa/core"
)

// QARepository provides operations for the local QA entry index.
// Implementations must be thread-safe and support concurrent access.
type QARepository interface {
	// AddEntries stores one or more QA entries, keyed by their pair ID.
	// Sets InsertedAt if not already set. Existing entries with the same ID
	// are overwritten, which makes re-indexing idempotent.
	// Returns the entries with timestamps populated.
	AddEntries(ctx context.Context, entries ...*core.QAEntry) ([]*core.QAEntry, error)

	// GetEntry retrieves a single entry by pair ID.
	// Returns ErrNotFound if the entry doesn't exist.
	GetEntry(ctx context.Context, id string) (*core.QAEntry, error)

	// CountEntries returns the number of stored entries.
	CountEntries(ctx context.Context) (int, error)

	// FindSimilar finds entries similar to the given vector.
	// Returns entries with similarity >= minSimilarity, up to limit results,
	// ordered by similarity score (highest first). Vectors are assumed
	// normalized, so the dot product is the cosine similarity.
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the repository and releases resources.
	Close() error
}
