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


package core

import "fmt"

// ValidateContractRecord validates a ContractRecord according to domain rules.
//
// Validation rules:
//   - CompositeKey must not be empty
//   - Objeto must not be empty
//   - Valor must not be empty
//   - VersionIndex must not be negative
func ValidateContractRecord(record *ContractRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}
	if record.CompositeKey == "" {
		return fmt.Errorf("%w: composite key is empty", ErrInvalidRecord)
	}
	if record.Objeto == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyObject)
	}
	if record.Valor == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyValue)
	}
	if record.VersionIndex < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrNegativeVersion)
	}
	return nil
}

// ValidateQAPair validates a QAPair according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - Question must not be empty
//   - Answer must not be empty
func ValidateQAPair(pair *QAPair) error {
	if pair == nil {
		return fmt.Errorf("%w: pair is nil", ErrInvalidQAPair)
	}
	if pair.ID == "" {
		return fmt.Errorf("%w: id is empty", ErrInvalidQAPair)
	}
	if pair.Question == "" {
		return fmt.Errorf("%w: %w", ErrInvalidQAPair, ErrEmptyQuestion)
	}
	if pair.Answer == "" {
		return fmt.Errorf("%w: answer is empty", ErrInvalidQAPair)
	}
	return nil
}
