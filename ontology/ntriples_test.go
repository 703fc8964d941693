package ontology

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shortLabelTriples = `_:genid1 <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#Axiom> .
_:genid1 <http://www.w3.org/2002/07/owl#annotatedSource> <http://purl.obolibrary.org/obo/PR_000001004> .
_:genid1 <http://www.w3.org/2002/07/owl#annotatedProperty> <http://www.geneontology.org/formats/oboInOwl#hasExactSynonym> .
_:genid1 <http://www.w3.org/2002/07/owl#annotatedTarget> "CD4"^^<http://www.w3.org/2001/XMLSchema#string> .
_:genid1 <http://www.geneontology.org/formats/oboInOwl#hasSynonymType> <http://purl.obolibrary.org/obo/pr#PRO-short-label> .
_:genid2 <http://www.w3.org/2002/07/owl#annotatedSource> <http://purl.obolibrary.org/obo/PR_000001002> .
_:genid2 <http://www.w3.org/2002/07/owl#annotatedProperty> <http://www.geneontology.org/formats/oboInOwl#hasRelatedSynonym> .
_:genid2 <http://www.w3.org/2002/07/owl#annotatedTarget> "not a short label"^^<http://www.w3.org/2001/XMLSchema#string> .
_:genid3 <http://www.w3.org/2002/07/owl#annotatedProperty> <http://www.geneontology.org/formats/oboInOwl#hasExactSynonym> .
_:genid3 <http://www.geneontology.org/formats/oboInOwl#hasSynonymType> <http://purl.obolibrary.org/obo/pr#PRO-short-label> .
_:genid3 <http://www.w3.org/2002/07/owl#annotatedSource> <http://purl.obolibrary.org/obo/PR_000001020> .
_:genid3 <http://www.w3.org/2002/07/owl#annotatedTarget> "CD3e"^^<http://www.w3.org/2001/XMLSchema#string> .
<http://purl.obolibrary.org/obo/PR_000001004> <http://www.w3.org/2000/01/rdf-schema#label> "CD4 molecule" .
`

func TestScanShortLabels(t *testing.T) {
	labels, err := ScanShortLabels(strings.NewReader(shortLabelTriples))
	require.NoError(t, err)

	// genid2 lacks both the exact-synonym and short-label markers; the
	// non-genid label triple is ignored entirely.
	require.Len(t, labels, 2)
	assert.Equal(t, ShortLabel{
		IRI:   "http://purl.obolibrary.org/obo/PR_000001004",
		Label: "CD4",
	}, labels[0])
	assert.Equal(t, ShortLabel{
		IRI:   "http://purl.obolibrary.org/obo/PR_000001020",
		Label: "CD3e",
	}, labels[1])
}

func TestScanShortLabels_EmitsOncePerBlock(t *testing.T) {
	// Extra triples after the block is complete must not duplicate the row.
	input := shortLabelTriples +
		"_:genid1 <http://www.w3.org/2002/07/owl#annotatedTarget> \"CD4\" .\n"
	labels, err := ScanShortLabels(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, labels, 2)
}

func TestScanShortLabels_Empty(t *testing.T) {
	labels, err := ScanShortLabels(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, labels)
}

func TestSplitTriple(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		subject   string
		predicate string
		object    string
		ok        bool
	}{
		{
			name:      "simple triple",
			line:      "_:genid1 <p> <o> .",
			subject:   "_:genid1",
			predicate: "<p>",
			object:    "<o>",
			ok:        true,
		},
		{
			name:      "literal object with spaces",
			line:      `_:genid1 <p> "effector CD4-positive, alpha-beta T cell" .`,
			subject:   "_:genid1",
			predicate: "<p>",
			object:    `"effector CD4-positive, alpha-beta T cell"`,
			ok:        true,
		},
		{name: "blank line", line: "", ok: false},
		{name: "comment", line: "# header", ok: false},
		{name: "one field", line: "lonely", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, p, o, ok := splitTriple(tt.line)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.subject, s)
				assert.Equal(t, tt.predicate, p)
				assert.Equal(t, tt.object, o)
			}
		})
	}
}

func TestLiteralValue(t *testing.T) {
	assert.Equal(t, "CD4", literalValue(`"CD4"^^<http://www.w3.org/2001/XMLSchema#string>`))
	assert.Equal(t, "CD4", literalValue(`"CD4"`))
	assert.Equal(t, "plain", literalValue("plain"))
}
