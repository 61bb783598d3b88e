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


package generate

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/poiesic/contratoqa/core"
)

// Ledger is the set of done markers used to skip contracts that a previous
// run already attempted. A marker is recorded after a single attempt,
// successful or not, so a contract is never retried across runs even when it
// produced fewer questions than requested.
type Ledger struct {
	mu   sync.Mutex
	done map[string]struct{}
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{done: map[string]struct{}{}}
}

// LoadLedger builds a ledger from an existing output log at path. Pair IDs
// found in the log are reduced to their base and recorded as done markers;
// malformed lines are skipped with a debug log. When the file exists it is
// first copied to a timestamped backup so the original can be appended to
// safely. A missing file yields an empty ledger.
func LoadLedger(path string) (*Ledger, error) {
	ledger := NewLedger()
	logger := slog.Default().With("component", "ledger")

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ledger, nil
		}
		return nil, fmt.Errorf("failed to open output log %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var pair core.QAPair
		if err := json.Unmarshal(line, &pair); err != nil {
			logger.Debug("skipping malformed log line", "line", lineNum, "error", err)
			continue
		}

		base, ok := core.BaseFromPairID(pair.ID)
		if !ok {
			logger.Debug("skipping pair with unrecognized id", "line", lineNum, "id", pair.ID)
			continue
		}
		ledger.done[core.DoneMarker(base)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read output log %s: %w", path, err)
	}

	backupPath := fmt.Sprintf("%s.bak-%s", path, time.Now().Format("20060102-150405"))
	if err := copyFile(path, backupPath); err != nil {
		return nil, fmt.Errorf("failed to back up output log: %w", err)
	}
	logger.Info("resuming from existing output log",
		"path", path,
		"done", len(ledger.done),
		"backup", backupPath)

	return ledger, nil
}

// Done reports whether marker has been recorded.
func (l *Ledger) Done(marker string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.done[marker]
	return ok
}

// MarkDone records marker.
func (l *Ledger) MarkDone(marker string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.done[marker] = struct{}{}
}

// Len returns the number of recorded markers.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.done)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
