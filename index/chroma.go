package index

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/vectorstores/chroma"

	"github.com/poiesic/contratoqa/core"
	"github.com/poiesic/contratoqa/progress"
)

// chromaIndexer hands embedding and storage off to a Chroma server via
// langchaingo. One document is stored per pair; the pair fields travel as
// document metadata so search results can be reconstructed without the log.
type chromaIndexer struct {
	store  chroma.Store
	config *Config
	opts   indexerOptions
}

// NewChromaIndexer creates an indexer that writes to the Chroma collection
// named namespace on the server at chromaURL. config may be nil, in which
// case defaults are used.
func NewChromaIndexer(chromaURL, namespace string, embedder embeddings.Embedder, config *Config, opts ...Option) (Indexer, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if config == nil {
		config = DefaultIndexConfig()
	}

	store, err := chroma.New(
		chroma.WithChromaURL(chromaURL),
		chroma.WithEmbedder(embedder),
		chroma.WithNameSpace(namespace),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to chroma at %s: %w", chromaURL, err)
	}

	o := indexerOptions{
		progressW: os.Stderr,
		logger:    slog.Default().With("component", "chroma-indexer"),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &chromaIndexer{
		store:  store,
		config: config,
		opts:   o,
	}, nil
}

// Index stores pairs batch by batch. Embedding happens server-side of the
// langchaingo store, driven by the configured embedder.
func (ix *chromaIndexer) Index(ctx context.Context, pairs []*core.QAPair) (int, error) {
	tracker := progress.NewTracker(ix.opts.progressW, len(pairs), ix.config.ReportInterval)
	tracker.Start()

	indexed := 0
	for start := 0; start < len(pairs); start += ix.config.BatchSize {
		end := start + ix.config.BatchSize
		if end > len(pairs) {
			end = len(pairs)
		}
		batch := pairs[start:end]

		docs := make([]schema.Document, len(batch))
		for i, pair := range batch {
			docs[i] = schema.Document{
				PageContent: pair.CombinedText(),
				Metadata: map[string]any{
					"id":       pair.ID,
					"question": pair.Question,
					"answer":   pair.Answer,
					"objeto":   pair.Objeto,
					"valor":    pair.Valor,
				},
			}
		}

		err := RetryWithBackoff(ctx, func() error {
			_, err := ix.store.AddDocuments(ctx, docs)
			return err
		}, ix.config.MaxRetries, ix.config.RetryDelay)
		if err != nil {
			return indexed, fmt.Errorf("failed to add batch after %d attempts: %w", ix.config.MaxRetries, err)
		}

		indexed += len(batch)
		tracker.Increment(len(batch))
	}
	tracker.Finish()

	ix.opts.logger.Info("indexing complete", "indexed", indexed)
	return indexed, nil
}
