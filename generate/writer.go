package generate

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/poiesic/contratoqa/core"
)

// PairWriter appends QA pairs to a JSON-lines log, one object per line.
// Writes are serialized; AppendAll keeps a task's pairs contiguous.
type PairWriter struct {
	mu  sync.Mutex
	f   *os.File
	enc *json.Encoder
}

// OpenPairWriter opens path for appending, creating it if needed. Non-ASCII
// text is written literally, not escaped.
func OpenPairWriter(path string) (*PairWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open pair log %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	return &PairWriter{f: f, enc: enc}, nil
}

// Append writes one pair as a single JSON line.
func (w *PairWriter) Append(pair *core.QAPair) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.enc.Encode(pair)
}

// AppendAll writes pairs as consecutive JSON lines under one lock, so lines
// from concurrent tasks never interleave within a group.
func (w *PairWriter) AppendAll(pairs []*core.QAPair) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, pair := range pairs {
		if err := w.enc.Encode(pair); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying file.
func (w *PairWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.f.Close()
}
