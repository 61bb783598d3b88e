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


package contratoqa

import (
	"log/slog"

	"github.com/poiesic/contratoqa/ai"
	"github.com/poiesic/contratoqa/ai/openai"
	"github.com/poiesic/contratoqa/index"
	"github.com/poiesic/contratoqa/search"
	"github.com/poiesic/contratoqa/storage"
	"github.com/poiesic/contratoqa/storage/badger"
)

// Index bundles the local QA store with the AI provider used to embed and
// search it. It is the root handle for the index and search stages.
type Index struct {
	backend  *badger.Backend
	repo     storage.QARepository
	provider ai.Provider
	logger   *slog.Logger
}

// IndexOption configures an Index.
type IndexOption func(*indexOptions)

type indexOptions struct {
	aiConfig *ai.Config
}

// WithAIConfig overrides the default AI service configuration.
func WithAIConfig(config *ai.Config) IndexOption {
	return func(o *indexOptions) {
		o.aiConfig = config
	}
}

// OpenIndex opens (or creates) the local QA index at filePath.
func OpenIndex(filePath string, opts ...IndexOption) (*Index, error) {
	options := &indexOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	repo, err := badger.NewQARepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		repo.Close()
		backend.Close()
		return nil, err
	}

	return &Index{
		backend:  backend,
		repo:     repo,
		provider: provider,
		logger:   slog.Default(),
	}, nil
}

// Close releases the AI provider and the underlying store.
func (ix *Index) Close() error {
	if err := ix.provider.Close(); err != nil {
		ix.logger.Error("error closing AI provider", "err", err)
	}

	if err := ix.repo.Close(); err != nil {
		ix.logger.Error("error closing QA repository", "err", err)
		return err
	}
	if err := ix.backend.Close(); err != nil {
		ix.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Repository returns the underlying QA repository.
func (ix *Index) Repository() storage.QARepository {
	return ix.repo
}

// NewIndexer creates an indexer that embeds pairs and stores them here.
func (ix *Index) NewIndexer(config *index.Config, opts ...index.Option) (index.Indexer, error) {
	return index.NewLocalIndexer(ix.repo, ix.provider.Embedder(), config, opts...)
}

// NewSearcher creates a searcher over this index.
func (ix *Index) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(ix.repo, ix.provider.Embedder(), opts...)
}
