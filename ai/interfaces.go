package ai

import "context"

// Generator issues prompt-completion requests that ask a language model for
// k distinct questions whose answer is a known contract value.
// Implementations must be thread-safe for concurrent use.
type Generator interface {
	// Complete performs a single completion attempt for the given contract
	// object and value, requesting k distinct questions. It returns the raw
	// completion text; the caller owns retries and parsing.
	// The object text is truncated to the configured character budget before
	// the prompt is built.
	Complete(ctx context.Context, objeto, valor string, k int) (string, error)
}

// Embedder generates vector embeddings from text for semantic similarity
// search. Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a
	// batch. The returned slice contains embeddings in input order.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Provider aggregates AI services for convenient initialization and
// lifecycle management.
type Provider interface {
	// Generator returns the question-generation service.
	Generator() Generator

	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Close releases resources held by the provider and its services.
	Close() error
}
