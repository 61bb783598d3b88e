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


package mock

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MockGenerator is a test double for ai.Generator.
// It allows custom behavior injection via function fields.
type MockGenerator struct {
	// CompleteFunc is called by Complete if set.
	// If nil, uses default deterministic behavior.
	CompleteFunc func(ctx context.Context, objeto, valor string, k int) (string, error)

	mu        sync.Mutex
	callCount int
}

// NewMockGenerator creates a mock generator with default deterministic
// behavior. Returns the concrete type to allow test assertions.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Complete returns a well-formed completion with k question lines unless a
// custom CompleteFunc is set. Safe for concurrent use.
func (m *MockGenerator) Complete(ctx context.Context, objeto, valor string, k int) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, objeto, valor, k)
	}

	var b strings.Builder
	for i := 1; i <= k; i++ {
		fmt.Fprintf(&b, "P%d: Pergunta %d sobre %s?\n", i, i, objeto)
	}
	fmt.Fprintf(&b, "Resposta: %s", valor)
	return b.String(), nil
}

// CallCount returns the number of Complete calls.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and any injected behavior.
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.CompleteFunc = nil
}
