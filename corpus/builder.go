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


package corpus

import (
	"log/slog"

	"github.com/poiesic/contratoqa/core"
)

// BuildRecords converts source documents into normalized contract records.
//
// Entries missing the object or value field, or whose value cannot be parsed
// as a Brazilian currency amount, are dropped silently (logged at debug).
// Duplicate (compositeKey, rawTextHash) pairs collapse to the first
// occurrence; surviving records get a dense 0-based version index per
// composite key, in first-seen order.
func BuildRecords(entries []DocumentEntry) []*core.ContractRecord {
	logger := slog.Default().With("component", "corpus-builder")

	seen := make(map[[2]string]bool)
	versions := make(map[string]int)
	records := make([]*core.ContractRecord, 0, len(entries))

	for _, entry := range entries {
		objeto := entry.Metadata[MetaObjeto]
		valor := entry.Metadata[MetaValor]
		if objeto == "" || valor == "" {
			logger.Debug("skipping entry with missing fields",
				"hasObjeto", objeto != "", "hasValor", valor != "")
			continue
		}

		valorNorm, err := core.NormalizeValue(valor)
		if err != nil {
			logger.Debug("skipping entry with unparseable value", "valor", valor)
			continue
		}

		key := core.CompositeKey(objeto, entry.Metadata[MetaProcesso], entry.Metadata[MetaNumero])
		rawHash := core.ContentHash(entry.RawText)

		// Collapse duplicates, keeping the first occurrence.
		pair := [2]string{key, rawHash}
		if seen[pair] {
			continue
		}
		seen[pair] = true

		record := &core.ContractRecord{
			CompositeKey:   key,
			Objeto:         core.NormalizeObject(objeto),
			Valor:          valorNorm,
			ProcessoGDF:    entry.Metadata[MetaProcesso],
			NumeroContrato: entry.Metadata[MetaNumero],
			RawTextHash:    rawHash,
			VersionIndex:   versions[key],
		}
		versions[key]++
		records = append(records, record)
	}

	logger.Info("built contract records", "input", len(entries), "output", len(records))
	return records
}
