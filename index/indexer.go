package index

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/poiesic/contratoqa/core"
)

// Indexer loads QA pairs into a vector store.
type Indexer interface {
	// Index embeds and stores the given pairs. Returns the number of pairs
	// stored. A batch that still fails after retries aborts the run with an
	// error; already-stored batches are not rolled back.
	Index(ctx context.Context, pairs []*core.QAPair) (int, error)
}

// Config holds tuning parameters shared by the indexer implementations.
type Config struct {
	// BatchSize is the number of pairs embedded and stored per request.
	BatchSize int

	// MaxRetries is the attempt budget per batch.
	MaxRetries int

	// RetryDelay is the base backoff; it doubles on each retry.
	RetryDelay time.Duration

	// ReportInterval controls how often progress is printed, in pairs.
	ReportInterval int
}

// DefaultIndexConfig returns the default indexer configuration.
func DefaultIndexConfig() *Config {
	return &Config{
		BatchSize:      32,
		MaxRetries:     3,
		RetryDelay:     2 * time.Second,
		ReportInterval: 50,
	}
}

type indexerOptions struct {
	progressW io.Writer
	logger    *slog.Logger
}

// Option configures an indexer.
type Option func(*indexerOptions)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *indexerOptions) {
		o.logger = logger
	}
}

// WithProgressWriter sets where progress output goes. Defaults to stderr.
func WithProgressWriter(w io.Writer) Option {
	return func(o *indexerOptions) {
		o.progressW = w
	}
}
