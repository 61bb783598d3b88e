// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Generator, ai.Embedder,
// and ai.Provider for use in unit tests. The mocks allow tests to run without
// external AI service dependencies and enable controlled, deterministic
// behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	text, err := mockProvider.Generator().Complete(ctx, objeto, valor, 3)
//
//	// Custom behavior injection
//	gen := mock.NewMockGenerator()
//	gen.CompleteFunc = func(ctx context.Context, objeto, valor string, k int) (string, error) {
//	    return "P1: Qual o valor?", nil
//	}
//
// # Default Behavior
//
//   - MockGenerator: returns a well-formed completion with k "P<n>:" lines
//   - MockEmbedder: returns deterministic vectors based on text hash
//   - MockProvider: aggregates mock generator and embedder
package mock
