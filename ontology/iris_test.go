package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortenProtein(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "long form PR IRI",
			input:    "http://purl.obolibrary.org/obo/PR_000001004",
			expected: "PR:000001004",
		},
		{
			name:     "CL IRI unchanged",
			input:    "http://purl.obolibrary.org/obo/CL_0001044",
			expected: "http://purl.obolibrary.org/obo/CL_0001044",
		},
		{
			name:     "plain keyword unchanged",
			input:    "proliferating",
			expected: "proliferating",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShortenProtein(tt.input))
		})
	}
}

func TestExpandCell(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "short form CL id",
			input:    "CL:0001044",
			expected: "http://purl.obolibrary.org/obo/CL_0001044",
		},
		{
			name:     "already long form",
			input:    "http://purl.obolibrary.org/obo/CL_0001044",
			expected: "http://purl.obolibrary.org/obo/CL_0001044",
		},
		{
			name:     "cell label unchanged",
			input:    "effector CD4-positive, alpha-beta T cell",
			expected: "effector CD4-positive, alpha-beta T cell",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandCell(tt.input))
		})
	}
}

func TestIsIRI(t *testing.T) {
	assert.True(t, IsIRI("http://purl.obolibrary.org/obo/PR_000001004"))
	assert.True(t, IsIRI("https://example.org/term"))
	assert.False(t, IsIRI("PR:000001004"))
	assert.False(t, IsIRI("CD4"))
	assert.False(t, IsIRI(""))
}

func TestIsShortForm(t *testing.T) {
	assert.True(t, IsShortForm("PR:000001004"))
	assert.True(t, IsShortForm("CL:0001044"))
	assert.False(t, IsShortForm("!CD4"))
	assert.False(t, IsShortForm("http://purl.obolibrary.org/obo/PR_000001004"))
	assert.False(t, IsShortForm("PR:"))
}
