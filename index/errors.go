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

import "errors"

var (
	// ErrRepositoryRequired is returned when a local indexer is built without
	// a repository.
	ErrRepositoryRequired = errors.New("repository is required")

	// ErrEmbedderRequired is returned when an indexer is built without an
	// embedder.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrInvalidMaxAttempts is returned when a retry loop is given a
	// non-positive attempt budget.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")

	// ErrEmbeddingMismatch indicates the embedding service returned a
	// different number of vectors than texts submitted.
	ErrEmbeddingMismatch = errors.New("embedding count mismatch")
)
