package reference

import (
	"sort"
	"strings"
)

// SuffixSynonym maps one reported intensity word to its canonical scale name.
// Declaration order matters: synonyms are tested for trailing replacement in
// the order the scale table declares them.
type SuffixSynonym struct {
	Synonym string
	Name    string
}

// SuffixTable is the canonical intensity-suffix scale: synonyms resolve to
// canonical names, canonical names resolve to suffix symbols. Immutable once
// built.
type SuffixTable struct {
	synonyms []SuffixSynonym
	symbols  map[string]string // canonical name -> symbol

	// symbols sorted by descending length, for suffix splitting; a symbol
	// may be a prefix of a longer one ("+" inside "++"), so the longer
	// symbol must always be tested first.
	longestFirst []string
}

// NewSuffixTable builds a suffix table from ordered synonyms and a canonical
// name to symbol map.
func NewSuffixTable(synonyms []SuffixSynonym, symbols map[string]string) *SuffixTable {
	t := &SuffixTable{
		synonyms: append([]SuffixSynonym(nil), synonyms...),
		symbols:  make(map[string]string, len(symbols)),
	}
	for name, symbol := range symbols {
		t.symbols[name] = symbol
		t.longestFirst = append(t.longestFirst, symbol)
	}
	sort.Slice(t.longestFirst, func(i, j int) bool {
		if len(t.longestFirst[i]) != len(t.longestFirst[j]) {
			return len(t.longestFirst[i]) > len(t.longestFirst[j])
		}
		return t.longestFirst[i] < t.longestFirst[j]
	})
	return t
}

// Synonyms returns the synonym list in declaration order.
func (t *SuffixTable) Synonyms() []SuffixSynonym {
	return t.synonyms
}

// Symbol returns the suffix symbol for a canonical scale name.
func (t *SuffixTable) Symbol(name string) (string, bool) {
	s, ok := t.symbols[name]
	return s, ok
}

// Symbols returns all suffix symbols sorted longest-first.
func (t *SuffixTable) Symbols() []string {
	return t.longestFirst
}

// ReplaceTrailingSynonyms rewrites a trailing suffix synonym (and any
// whitespace before it) into the canonical suffix symbol. Synonyms are tested
// in declaration order against the current form of the token, so a
// replacement can be followed by further matches. With fold set, matching is
// case-insensitive; the batch path matches exactly while the interactive
// path folds case.
func (t *SuffixTable) ReplaceTrailingSynonyms(token string, fold bool) string {
	for _, syn := range t.synonyms {
		if !hasSuffixFold(token, syn.Synonym, fold) {
			continue
		}
		symbol, ok := t.symbols[syn.Name]
		if !ok {
			continue
		}
		base := token[:len(token)-len(syn.Synonym)]
		token = strings.TrimRight(base, " \t") + symbol
	}
	return token
}

func hasSuffixFold(s, suffix string, fold bool) bool {
	if len(s) < len(suffix) {
		return false
	}
	tail := s[len(s)-len(suffix):]
	if fold {
		return strings.EqualFold(tail, suffix)
	}
	return tail == suffix
}
