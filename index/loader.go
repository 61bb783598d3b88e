package index

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/poiesic/contratoqa/core"
)

// ReadPairs loads QA pairs from a JSON-lines log. Lines that fail to parse
// or fail validation are skipped with a debug log, mirroring how the resume
// ledger treats them.
func ReadPairs(path string) ([]*core.QAPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pair log %s: %w", path, err)
	}
	defer f.Close()

	logger := slog.Default().With("component", "index")

	var pairs []*core.QAPair
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
		if err := core.ValidateQAPair(&pair); err != nil {
			logger.Debug("skipping invalid pair", "line", lineNum, "error", err)
			continue
		}
		pairs = append(pairs, &pair)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pair log %s: %w", path, err)
	}

	return pairs, nil
}
