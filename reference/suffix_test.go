package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSuffixTable() *SuffixTable {
	return NewSuffixTable(
		[]SuffixSynonym{
			{"high", "high"},
			{"bright", "high"},
			{"hi", "high"},
			{"intermediate", "intermediate"},
			{"int", "intermediate"},
			{"medium", "intermediate"},
			{"med", "intermediate"},
			{"low", "low"},
			{"dim", "low"},
			{"lo", "low"},
			{"positive", "positive"},
			{"pos", "positive"},
			{"negative", "negative"},
			{"neg", "negative"},
		},
		map[string]string{
			"high":         "++",
			"intermediate": "+~",
			"low":          "+-",
			"positive":     "+",
			"negative":     "-",
		},
	)
}

func TestSuffixTable_Symbols_LongestFirst(t *testing.T) {
	symbols := testSuffixTable().Symbols()

	// Two-character symbols must come before the one-character symbols they
	// contain, so suffix splitting never matches "+" inside "++".
	for i, s := range symbols {
		for _, later := range symbols[i+1:] {
			assert.GreaterOrEqual(t, len(s), len(later),
				"symbol %q sorted after shorter %q", s, later)
		}
	}
	assert.ElementsMatch(t, []string{"++", "+~", "+-", "+", "-"}, symbols)
}

func TestSuffixTable_ReplaceTrailingSynonyms(t *testing.T) {
	table := testSuffixTable()

	tests := []struct {
		name     string
		token    string
		fold     bool
		expected string
	}{
		{"canonical name with space", "CD4 high", false, "CD4++"},
		{"synonym", "CD8 bright", false, "CD8++"},
		{"short synonym", "CD56 dim", false, "CD56+-"},
		{"no suffix", "CD4", false, "CD4"},
		{"already symbolic", "CD4+", false, "CD4+"},
		{"attached synonym", "CD45RAhi", false, "CD45RA++"},
		{"case mismatch without fold", "CD4 HIGH", false, "CD4 HIGH"},
		{"case mismatch with fold", "CD4 HIGH", true, "CD4++"},
		{"negative word", "CD19 negative", false, "CD19-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, table.ReplaceTrailingSynonyms(tt.token, tt.fold))
		})
	}
}

func TestSuffixTable_Symbol(t *testing.T) {
	table := testSuffixTable()

	symbol, ok := table.Symbol("high")
	assert.True(t, ok)
	assert.Equal(t, "++", symbol)

	_, ok = table.Symbol("unknown")
	assert.False(t, ok)
}
