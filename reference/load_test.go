package reference

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesaoverton/hipc-gates/errors"
	"github.com/jamesaoverton/hipc-gates/ontology"
)

const valueScaleTSV = "Name\tSymbol\tSynonyms\n" +
	"high\t++\tbright, hi\n" +
	"intermediate\t+~\tint, medium, med\n" +
	"low\t+-\tdim, lo\n" +
	"positive\t+\tpos\n" +
	"negative\t-\tneg\n"

func TestLoadSuffixTable(t *testing.T) {
	table, err := LoadSuffixTable(strings.NewReader(valueScaleTSV))
	require.NoError(t, err)

	symbol, ok := table.Symbol("intermediate")
	require.True(t, ok)
	assert.Equal(t, "+~", symbol)

	// Declaration order: canonical name first, then its synonyms, row by row.
	synonyms := table.Synonyms()
	require.Len(t, synonyms, 14)
	assert.Equal(t, SuffixSynonym{"high", "high"}, synonyms[0])
	assert.Equal(t, SuffixSynonym{"bright", "high"}, synonyms[1])
	assert.Equal(t, SuffixSynonym{"hi", "high"}, synonyms[2])
	assert.Equal(t, SuffixSynonym{"neg", "negative"}, synonyms[13])
}

func TestLoadSuffixTable_MissingColumn(t *testing.T) {
	_, err := LoadSuffixTable(strings.NewReader("Name\tSymbol\nhigh\t++\n"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
	assert.ErrorIs(t, err, errors.ErrMissingColumn)
}

func TestLoadExcludedAccessions(t *testing.T) {
	input := "Experiment Accession\tComment\nEXP1\tbad panel\nEXP2\t\n\n"
	excluded, err := LoadExcludedAccessions(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"EXP1": true, "EXP2": true}, excluded)
}

func TestLoadGateMappings(t *testing.T) {
	input := "Label\tOntology ID\n" +
		"CD4\thttp://purl.obolibrary.org/obo/PR_000001004\n" +
		"CD19\tPR:000001002\n"
	mappings, err := LoadGateMappings(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "http://purl.obolibrary.org/obo/PR_000001004", mappings["CD4"])
	assert.Equal(t, "PR:000001002", mappings["CD19"])
}

func TestLoadSpecialGates(t *testing.T) {
	input := "Label\tOntology ID\tSynonyms\ttoxic synonym\n" +
		"Annexin\tannexin\tAnnexin V, AnnV\t\n" +
		"Viability\tviability\tLIVE/DEAD, Aqua\tdead\n"
	table, err := LoadSpecialGates(strings.NewReader(input))
	require.NoError(t, err)

	entries := table.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, SpecialGate{
		Label:      "Annexin",
		OntologyID: "annexin",
		Synonyms:   []string{"Annexin V", "AnnV"},
	}, entries[0])
	assert.Equal(t, "dead", entries[1].ToxicSynonym)

	matches := table.Matches("AnnV")
	require.Len(t, matches, 1)
	assert.Equal(t, "annexin", matches[0].OntologyID)

	matches = table.Matches("dead")
	require.Len(t, matches, 1)
	assert.Equal(t, "viability", matches[0].OntologyID)

	assert.Empty(t, table.Matches(""))
	assert.Empty(t, table.Matches("CD4"))
}

func TestSpecialGateTable_DuplicateMatchesInOrder(t *testing.T) {
	table := NewSpecialGateTable([]SpecialGate{
		{Label: "Aqua", OntologyID: "first"},
		{Label: "Viability", OntologyID: "second", Synonyms: []string{"Aqua"}},
	})

	matches := table.Matches("Aqua")
	require.Len(t, matches, 2)
	// First match by declaration order wins downstream.
	assert.Equal(t, "first", matches[0].OntologyID)
}

func TestBundle_AddLabels(t *testing.T) {
	b := NewBundle()
	b.AddLabels([]LabelPair{
		{IRI: "http://purl.obolibrary.org/obo/PR_000001004", Label: "CD4 molecule"},
		{IRI: "http://purl.obolibrary.org/obo/PR_000001002", Label: "CD4 molecule"},
	})

	assert.Equal(t, "CD4 molecule", b.IRILabels["http://purl.obolibrary.org/obo/PR_000001004"])
	assert.Equal(t, "CD4 molecule", b.IRILabels["http://purl.obolibrary.org/obo/PR_000001002"])
	// Within one call the first IRI claims the label.
	assert.Equal(t, "http://purl.obolibrary.org/obo/PR_000001004", b.SynonymIRIs["cd4 molecule"])
}

func TestBundle_InstallSpecialGates(t *testing.T) {
	b := NewBundle()
	b.InstallSpecialGates(NewSpecialGateTable([]SpecialGate{
		{Label: "Annexin", OntologyID: "annexin", Synonyms: []string{"Annexin V"}, ToxicSynonym: "AnnX"},
	}))

	assert.Equal(t, "Annexin", b.IRILabels["annexin"])
	assert.Equal(t, "annexin", b.SynonymIRIs["annexin v"])
	assert.Equal(t, "annexin", b.SynonymIRIs["annx"])
}

func TestBundle_LoadCellGates(t *testing.T) {
	b := NewBundle()
	input := "http://purl.obolibrary.org/obo/CL_0001044\thttp://purl.obolibrary.org/obo/PR_000001004\t" +
		ontology.HasPlasmaMembranePart + "\n" +
		"http://purl.obolibrary.org/obo/CL_0001044\thttp://purl.obolibrary.org/obo/PR_000001203\t" +
		ontology.LacksPlasmaMembranePart + "\n"
	require.NoError(t, b.LoadCellGates(strings.NewReader(input)))

	panel := b.IRIGates["http://purl.obolibrary.org/obo/CL_0001044"]
	require.Len(t, panel, 2)
	assert.Equal(t, ExpectedGate{
		Kind:  "http://purl.obolibrary.org/obo/PR_000001004",
		Level: ontology.HasPlasmaMembranePart,
	}, panel[0])
}

func TestLevelVocabulary(t *testing.T) {
	b := NewBundle()

	assert.Equal(t, ontology.HasPlasmaMembranePart, b.LevelIRIs["+"])
	assert.Equal(t, ontology.HasPlasmaMembranePart, b.LevelIRIs["+~"])
	assert.Equal(t, ontology.HasHighPlasmaMembraneAmount, b.LevelIRIs["++"])
	assert.Equal(t, ontology.LacksPlasmaMembranePart, b.LevelIRIs["-"])

	// The shared has-plasma-membrane-part IRI reads back as positive.
	assert.Equal(t, "+", b.IRILevels[ontology.HasPlasmaMembranePart])
	assert.Equal(t, "medium", b.LevelNames["+~"])
	assert.Equal(t, "positive", b.LevelNames["+"])
}
