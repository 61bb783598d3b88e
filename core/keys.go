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

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-crypt/x/blake2b"
)

// Sentinels used when a metadata field is absent, so composite keys stay
// deterministic and non-empty.
const (
	SentinelNoObject   = "no_obj_hash"
	SentinelNoProcesso = "unknown_processo"
	SentinelNoNumero   = "unknown_numero"
)

// maxSlugLen caps the base identifier derived from object text.
const maxSlugLen = 60

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	pairIDRE     = regexp.MustCompile(`^(.+)_\d{2}_v\d+$`)
)

// NormalizeObject collapses internal whitespace runs to single spaces and
// trims the result.
func NormalizeObject(text string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
}

// ContentHash generates a deterministic 12-hex-character hash of text using
// BLAKE2b. Identical text always produces the same hash; 48 bits is enough
// collision resistance for dataset-scale deduplication.
func ContentHash(text string) string {
	h, _ := blake2b.New(6, nil) // 6 bytes = 12 hex characters
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// CompositeKey derives the stable identifier for a contract record from its
// metadata fields. The object text is normalized before hashing; missing
// fields fall back to fixed sentinels.
func CompositeKey(objeto, processo, numero string) string {
	objHash := SentinelNoObject
	if obj := NormalizeObject(objeto); obj != "" {
		objHash = ContentHash(obj)
	}
	if processo == "" {
		processo = SentinelNoProcesso
	}
	if numero == "" {
		numero = SentinelNoNumero
	}
	return objHash + "_" + processo + "_" + numero
}

// Slug derives the base identifier for generation tasks from object text:
// lowercase, runs of non-alphanumeric characters replaced by underscores,
// trimmed and capped at 60 characters.
func Slug(text string) string {
	var b strings.Builder
	underscore := false
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			underscore = false
		} else if !underscore {
			b.WriteByte('_')
			underscore = true
		}
	}
	s := strings.Trim(b.String(), "_")
	if runes := []rune(s); len(runes) > maxSlugLen {
		s = strings.TrimRight(string(runes[:maxSlugLen]), "_")
	}
	return s
}

// PairID builds the identifier of one generated question:
// "{base}_{version:02d}_v{questionIndex}".
func PairID(base string, version, questionIndex int) string {
	return fmt.Sprintf("%s_%02d_v%d", base, version, questionIndex)
}

// DoneMarker is the resume-ledger marker for a base identifier. It is
// recorded once a task has been attempted, regardless of outcome or version.
func DoneMarker(base string) string {
	return base + "_v0"
}

// BaseFromPairID recovers the base identifier from a stored pair ID.
// Returns false when the id does not have the "{base}_{vv}_v{i}" shape.
func BaseFromPairID(id string) (string, bool) {
	m := pairIDRE.FindStringSubmatch(id)
	if m == nil {
		return "", false
	}
	return m[1], true
}
