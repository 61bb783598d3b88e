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

import "errors"

// Domain validation errors
var (
	// ErrUnparseableValue indicates a currency string that could not be parsed.
	ErrUnparseableValue = errors.New("unparseable currency value")

	// ErrInvalidRecord indicates a ContractRecord failed validation.
	ErrInvalidRecord = errors.New("invalid contract record")

	// ErrEmptyObject indicates the Objeto field is empty.
	ErrEmptyObject = errors.New("contract object cannot be empty")

	// ErrEmptyValue indicates the Valor field is empty.
	ErrEmptyValue = errors.New("contract value cannot be empty")

	// ErrNegativeVersion indicates a negative version index.
	ErrNegativeVersion = errors.New("version index cannot be negative")

	// ErrInvalidQAPair indicates a QAPair failed validation.
	ErrInvalidQAPair = errors.New("invalid qa pair")

	// ErrEmptyQuestion indicates the Question field is empty.
	ErrEmptyQuestion = errors.New("question cannot be empty")
)
