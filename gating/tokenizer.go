package gating

import (
	"regexp"
	"strings"

	"github.com/jamesaoverton/hipc-gates/reference"
)

// prefixLabel matches a leading "label: " prefix, which is commentary rather
// than gate content.
var prefixLabel = regexp.MustCompile(`^.*:\s+`)

// Tokenizer converts reported gating descriptions into standardized gate
// tokens using the project-specific dialect table and the intensity-suffix
// scale.
type Tokenizer struct {
	suffixes *reference.SuffixTable
}

// NewTokenizer creates a tokenizer over the given suffix scale.
func NewTokenizer(suffixes *reference.SuffixTable) *Tokenizer {
	return &Tokenizer{suffixes: suffixes}
}

// Tokenize splits the reported text into standardized gate tokens. The
// project name selects the delimiter dialect; each raw token is trimmed, has
// a trailing suffix synonym replaced by its canonical symbol, and has any
// internal spaces replaced by underscores. Empty tokens (from trailing
// delimiters and the like) are dropped.
func (t *Tokenizer) Tokenize(project, reported string) []string {
	if strings.Contains(reported, ": ") {
		reported = prefixLabel.ReplaceAllString(reported, "")
	}

	raw := selectDialect(project).apply(reported)

	tokens := make([]string, 0, len(raw))
	for _, gate := range raw {
		gate = strings.TrimSpace(gate)
		gate = strings.ReplaceAll(gate, "ý", "-") // stray Unicode hyphen
		gate = t.suffixes.ReplaceTrailingSynonyms(gate, false)
		gate = strings.ReplaceAll(gate, " ", "_")
		if gate != "" {
			tokens = append(tokens, gate)
		}
	}
	return tokens
}
