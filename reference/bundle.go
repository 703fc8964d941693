package reference

import (
	"github.com/jamesaoverton/hipc-gates/ontology"
)

// ExpectedGate is one marker/level pair from a cell type's ontology-declared
// gate panel.
type ExpectedGate struct {
	Kind  string // marker IRI
	Level string // expression-level relation IRI
}

// Bundle carries every reference table the engine needs, built once at
// startup and treated as read-only thereafter.
type Bundle struct {
	// Suffixes is the intensity-suffix scale.
	Suffixes *SuffixTable

	// GateMappings maps marker labels to ontology identifiers (primary).
	GateMappings map[string]string

	// SpecialGates is the secondary synonym table.
	SpecialGates *SpecialGateTable

	// SynonymIRIs maps lower-cased labels and synonyms to entity IRIs.
	SynonymIRIs map[string]string

	// IRILabels maps entity IRIs to their declared labels.
	IRILabels map[string]string

	// IRIParents maps a cell IRI to its parent cell IRI (one level only).
	IRIParents map[string]string

	// IRIGates maps a cell IRI to its expected gate panel, in declaration
	// order. Markers are unique within one panel.
	IRIGates map[string][]ExpectedGate

	// LevelIRIs maps suffix symbols to expression-level relation IRIs.
	LevelIRIs map[string]string

	// IRILevels is the inverse of LevelIRIs.
	IRILevels map[string]string

	// LevelNames maps suffix symbols to human-readable level names.
	LevelNames map[string]string
}

// NewBundle creates an empty bundle with the fixed level vocabulary
// installed. Tables are filled by the loaders and by tests.
func NewBundle() *Bundle {
	levelIRIs, iriLevels, levelNames := levelVocabulary()
	return &Bundle{
		GateMappings: make(map[string]string),
		SpecialGates: NewSpecialGateTable(nil),
		SynonymIRIs:  make(map[string]string),
		IRILabels:    make(map[string]string),
		IRIParents:   make(map[string]string),
		IRIGates:     make(map[string][]ExpectedGate),
		LevelIRIs:    levelIRIs,
		IRILevels:    iriLevels,
		LevelNames:   levelNames,
	}
}

// levelVocabulary returns the fixed suffix-symbol level maps. Both "+" and
// "+~" assert has-plasma-membrane-part; the inverse map resolves that IRI to
// "+" so panel gates read back as positive.
func levelVocabulary() (levelIRIs, iriLevels, levelNames map[string]string) {
	levelIRIs = map[string]string{
		"+":  ontology.HasPlasmaMembranePart,
		"++": ontology.HasHighPlasmaMembraneAmount,
		"+~": ontology.HasPlasmaMembranePart,
		"+-": ontology.HasLowPlasmaMembraneAmount,
		"-":  ontology.LacksPlasmaMembranePart,
	}
	iriLevels = map[string]string{
		ontology.HasPlasmaMembranePart:       "+",
		ontology.HasHighPlasmaMembraneAmount: "++",
		ontology.HasLowPlasmaMembraneAmount:  "+-",
		ontology.LacksPlasmaMembranePart:     "-",
	}
	levelNames = map[string]string{
		"+":  "positive",
		"++": "high",
		"+~": "medium",
		"+-": "low",
		"-":  "negative",
	}
	return levelIRIs, iriLevels, levelNames
}
