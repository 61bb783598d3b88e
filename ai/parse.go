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


package ai

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoQuestions indicates a completion with no "P<n>:"-prefixed lines.
// It distinguishes "model returned nothing structured" from "model returned
// fewer than k questions", which is not an error.
var ErrNoQuestions = errors.New("completion contains no questions")

var questionLineRE = regexp.MustCompile(`(?i)^p\d+\s*:`)

// ParseQuestions extracts question strings from a completion.
//
// Non-empty lines matching a case-insensitive "P<number>:" prefix contribute
// the text after the colon; at most k questions are returned, in order of
// appearance. Returns ErrNoQuestions when no line matches.
func ParseQuestions(text string, k int) ([]string, error) {
	var questions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !questionLineRE.MatchString(line) {
			continue
		}
		_, after, _ := strings.Cut(line, ":")
		if q := strings.TrimSpace(after); q != "" {
			questions = append(questions, q)
		}
		if len(questions) == k {
			break
		}
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w:\n%s", ErrNoQuestions, text)
	}
	return questions, nil
}
