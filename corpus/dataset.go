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
	"encoding/json"
	"fmt"
	"os"
)

// Metadata keys carried by contract extract documents.
const (
	MetaObjeto   = "objeto_contrato"
	MetaValor    = "valor_contrato"
	MetaProcesso = "processo_gdf"
	MetaNumero   = "numero_contrato"
)

// DefaultDocType is the dataset entry holding contract extracts.
const DefaultDocType = "EXTRATO_CONTRATO"

// DocumentEntry is one source document: its raw text plus the key/value
// metadata extracted from it.
type DocumentEntry struct {
	RawText  string            `json:"raw_text"`
	Metadata map[string]string `json:"metadata"`
}

// Dataset maps document types to their entries.
type Dataset map[string][]DocumentEntry

// LoadDataset reads a serialized dataset from a JSON file.
func LoadDataset(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}
	return ds, nil
}

// Entries returns the documents of one type, or ErrDocTypeMissing when the
// dataset has no such entry.
func (ds Dataset) Entries(docType string) ([]DocumentEntry, error) {
	entries, ok := ds[docType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDocTypeMissing, docType)
	}
	return entries, nil
}
