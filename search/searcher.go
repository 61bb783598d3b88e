package search

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/contratoqa/ai"
	"github.com/poiesic/contratoqa/core"
	"github.com/poiesic/contratoqa/index"
	"github.com/poiesic/contratoqa/storage"
)

// defaultMinSimilarity is the cosine similarity floor below which entries are
// considered unrelated to the query.
const defaultMinSimilarity = 0.60

// Searcher provides semantic search over the local QA index.
type Searcher struct {
	repository    storage.QARepository
	embedder      ai.Embedder
	minSimilarity float32
	logger        *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithMinSimilarity overrides the similarity floor.
func WithMinSimilarity(min float32) Option {
	return func(s *Searcher) error {
		s.minSimilarity = min
		return nil
	}
}

// NewSearcher creates a new searcher over the given repository, embedding
// queries with embedder.
func NewSearcher(repository storage.QARepository, embedder ai.Embedder, opts ...Option) (*Searcher, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Searcher{
		repository:    repository,
		embedder:      embedder,
		minSimilarity: defaultMinSimilarity,
		logger:        slog.Default().With("component", "search"),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// FindSimilar searches for QA entries similar to the query.
// Returns up to maxHits results, ranked by cosine similarity descending.
func (s *Searcher) FindSimilar(ctx context.Context, query string, maxHits int) ([]*core.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	embedding, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}

	// Stored vectors are unit length; normalize the query side too so the
	// dot product in the repository is a true cosine similarity.
	embedding = index.NormalizeVector(embedding)

	results, err := s.repository.FindSimilar(ctx, embedding, s.minSimilarity, maxHits)
	if err != nil {
		s.logger.Error("error querying for similar entries", "err", err)
		return nil, err
	}

	s.logger.Debug("search complete", "query", query, "hits", len(results))
	return results, nil
}
