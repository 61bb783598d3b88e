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


// Package ai provides abstractions for the AI services used by contratoqa.
//
// This package defines interfaces for the two AI operations of the pipeline:
// question generation (prompt completion against a remote LLM) and text
// embeddings. The pipeline and indexing stages depend only on these
// abstractions, never on a concrete client.
//
// # Interfaces
//
//   - Generator: issues one prompt-completion attempt for a contract
//   - Embedder: generates vector embeddings from text
//   - Provider: aggregates both services for convenient initialization
//
// # Implementation Packages
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//     (Ollama, LocalAI, vLLM) via langchaingo
//   - ai/mock: test doubles for unit testing without external services
//
// Public constructors in the implementation packages return interface types
// to enforce abstraction; mock constructors return concrete types so tests
// can inject behavior and assert on call counts.
//
// # Usage Example
//
//	config := ai.NewConfig(
//	    ai.WithGeneratorHost("http://localhost:11434/v1"),
//	    ai.WithGeneratorModel("llama4"),
//	)
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	text, err := provider.Generator().Complete(ctx, objeto, valor, 3)
//	questions, err := ai.ParseQuestions(text, 3)
package ai
