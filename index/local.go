// Copyright 2025 Poiesic Systems
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


package index

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/poiesic/contratoqa/ai"
	"github.com/poiesic/contratoqa/core"
	"github.com/poiesic/contratoqa/progress"
	"github.com/poiesic/contratoqa/storage"
)

// localIndexer embeds pairs in batches and stores them as entries in the
// local QA repository. Vectors are normalized after embedding so the stored
// dot product equals cosine similarity.
type localIndexer struct {
	repo     storage.QARepository
	embedder ai.Embedder
	config   *Config
	opts     indexerOptions
}

// NewLocalIndexer creates an indexer backed by the local QA repository.
// config may be nil, in which case defaults are used.
func NewLocalIndexer(repo storage.QARepository, embedder ai.Embedder, config *Config, opts ...Option) (Indexer, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if config == nil {
		config = DefaultIndexConfig()
	}

	o := indexerOptions{
		progressW: os.Stderr,
		logger:    slog.Default().With("component", "local-indexer"),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &localIndexer{
		repo:     repo,
		embedder: embedder,
		config:   config,
		opts:     o,
	}, nil
}

// Index embeds and stores pairs batch by batch.
func (ix *localIndexer) Index(ctx context.Context, pairs []*core.QAPair) (int, error) {
	tracker := progress.NewTracker(ix.opts.progressW, len(pairs), ix.config.ReportInterval)
	tracker.Start()

	indexed := 0
	for start := 0; start < len(pairs); start += ix.config.BatchSize {
		end := start + ix.config.BatchSize
		if end > len(pairs) {
			end = len(pairs)
		}
		batch := pairs[start:end]

		if err := ix.indexBatch(ctx, batch); err != nil {
			return indexed, err
		}
		indexed += len(batch)
		tracker.Increment(len(batch))
	}
	tracker.Finish()

	count, err := ix.repo.CountEntries(ctx)
	if err != nil {
		return indexed, err
	}
	ix.opts.logger.Info("indexing complete", "indexed", indexed, "stored_total", count)
	return indexed, nil
}

// indexBatch embeds one batch with retry and stores the resulting entries.
func (ix *localIndexer) indexBatch(ctx context.Context, batch []*core.QAPair) error {
	texts := make([]string, len(batch))
	for i, pair := range batch {
		texts[i] = pair.CombinedText()
	}

	var vectors [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		vectors, err = ix.embedder.EmbedTexts(ctx, texts)
		return err
	}, ix.config.MaxRetries, ix.config.RetryDelay)
	if err != nil {
		return fmt.Errorf("failed to embed batch after %d attempts: %w", ix.config.MaxRetries, err)
	}

	if len(vectors) != len(batch) {
		return fmt.Errorf("%w: expected %d, got %d", ErrEmbeddingMismatch, len(batch), len(vectors))
	}

	entries := make([]*core.QAEntry, len(batch))
	for i, pair := range batch {
		entry := pair.Entry()
		entry.Vector = NormalizeVector(vectors[i])
		entries[i] = entry
	}

	if _, err := ix.repo.AddEntries(ctx, entries...); err != nil {
		return fmt.Errorf("failed to store entries: %w", err)
	}
	return nil
}
