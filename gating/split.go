package gating

import "sort"

// SplitGate splits a gate token into its marker label and suffix symbol.
// Symbols are tested longest-first: a symbol may be a proper suffix of a
// longer one ("+" inside "++"), and the more specific suffix must win. A
// token ending in no known symbol is all label.
func SplitGate(token string, symbols []string) (label, symbol string) {
	ordered := append([]string(nil), symbols...)
	sort.Slice(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})

	for _, s := range ordered {
		if s == "" {
			continue
		}
		if len(token) >= len(s) && token[len(token)-len(s):] == s {
			return token[:len(token)-len(s)], s
		}
	}
	return token, ""
}
