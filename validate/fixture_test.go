package validate

import (
	"github.com/jamesaoverton/hipc-gates/ontology"
	"github.com/jamesaoverton/hipc-gates/reference"
)

// IRIs used throughout the fixture bundle.
const (
	prCD4    = "http://purl.obolibrary.org/obo/PR_000001004"
	prCD19   = "http://purl.obolibrary.org/obo/PR_000001002"
	prCD34   = "http://purl.obolibrary.org/obo/PR_000001003"
	prCD3e   = "http://purl.obolibrary.org/obo/PR_000001020"
	prCD56   = "http://purl.obolibrary.org/obo/PR_000001024"
	prCD20   = "http://purl.obolibrary.org/obo/PR_000001289"
	prCD103  = "http://purl.obolibrary.org/obo/PR_000001010"
	prCD11c  = "http://purl.obolibrary.org/obo/PR_000001013"
	prCD45RA = "http://purl.obolibrary.org/obo/PR_000001015"
	prCD8    = "http://purl.obolibrary.org/obo/PR_000025402"
	prCCR7   = "http://purl.obolibrary.org/obo/PR_000001203"

	clEffectorT = "http://purl.obolibrary.org/obo/CL_0001044"
	clCD103DC   = "http://purl.obolibrary.org/obo/CL_0002461"
	clTCell     = "http://purl.obolibrary.org/obo/CL_0000084"
)

// fixtureBundle builds the literal reference bundle used by the interactive
// tests: two cell types with expected panels, marker labels and synonyms,
// and the standard suffix scale.
func fixtureBundle() *reference.Bundle {
	b := reference.NewBundle()

	b.Suffixes = reference.NewSuffixTable(
		[]reference.SuffixSynonym{
			{Synonym: "high", Name: "high"},
			{Synonym: "bright", Name: "high"},
			{Synonym: "hi", Name: "high"},
			{Synonym: "intermediate", Name: "intermediate"},
			{Synonym: "int", Name: "intermediate"},
			{Synonym: "medium", Name: "intermediate"},
			{Synonym: "med", Name: "intermediate"},
			{Synonym: "low", Name: "low"},
			{Synonym: "dim", Name: "low"},
			{Synonym: "lo", Name: "low"},
			{Synonym: "positive", Name: "positive"},
			{Synonym: "pos", Name: "positive"},
			{Synonym: "negative", Name: "negative"},
			{Synonym: "neg", Name: "negative"},
		},
		map[string]string{
			"high":         "++",
			"intermediate": "+~",
			"low":          "+-",
			"positive":     "+",
			"negative":     "-",
		},
	)

	for synonym, iri := range map[string]string{
		"cd4":                             prCD4,
		"cd4 molecule":                    prCD4,
		"t-cell surface glycoprotein cd4": prCD4,
		"cd19":                            prCD19,
		"cd19 molecule":                   prCD19,
		"cd34":                            prCD34,
		"cd3e":                            prCD3e,
		"cd3 epsilon":                     prCD3e,
		"cd56":                            prCD56,
		"ncam1":                           prCD56,
		"cd20":                            prCD20,
		"ms4a1":                           prCD20,
		"cd103":                           prCD103,
		"itgae":                           prCD103,
		"cd11c":                           prCD11c,
		"itgax":                           prCD11c,
		"cd45ra":                          prCD45RA,
		"cd8alphabeta":                    prCD8,
		"ccr7":                            prCCR7,
		"cd197":                           prCCR7,
		"effector cd4-positive, alpha-beta t cell": clEffectorT,
		"cd103-positive dendritic cell":            clCD103DC,
	} {
		b.SynonymIRIs[synonym] = iri
	}

	for iri, label := range map[string]string{
		prCD4:    "CD4 molecule",
		prCD19:   "CD19 molecule",
		prCD34:   "CD34 molecule",
		prCD3e:   "CD3 epsilon",
		prCD56:   "neural cell adhesion molecule 1",
		prCD20:   "membrane-spanning 4-domains subfamily A member 1",
		prCD103:  "integrin alpha-E",
		prCD11c:  "integrin alpha-X",
		prCD45RA: "receptor-type tyrosine-protein phosphatase C isoform CD45RA",
		prCD8:    "T cell receptor co-receptor CD8",
		prCCR7:   "C-C chemokine receptor type 7",

		clEffectorT: "effector CD4-positive, alpha-beta T cell",
		clCD103DC:   "CD103-positive dendritic cell",
		clTCell:     "T cell",

		ontology.HasPlasmaMembranePart:       "has plasma membrane part",
		ontology.HasHighPlasmaMembraneAmount: "has high plasma membrane amount",
		ontology.HasLowPlasmaMembraneAmount:  "has low plasma membrane amount",
		ontology.LacksPlasmaMembranePart:     "lacks plasma membrane part",
	} {
		b.IRILabels[iri] = label
	}

	b.IRIGates = map[string][]reference.ExpectedGate{
		clEffectorT: {
			{Kind: prCD4, Level: ontology.HasPlasmaMembranePart},
			{Kind: prCD45RA, Level: ontology.HasPlasmaMembranePart},
			{Kind: prCCR7, Level: ontology.LacksPlasmaMembranePart},
			{Kind: prCD8, Level: ontology.LacksPlasmaMembranePart},
		},
		clCD103DC: {
			{Kind: prCD103, Level: ontology.HasPlasmaMembranePart},
			{Kind: prCD11c, Level: ontology.HasHighPlasmaMembraneAmount},
			{Kind: prCD19, Level: ontology.LacksPlasmaMembranePart},
			{Kind: prCD34, Level: ontology.LacksPlasmaMembranePart},
			{Kind: prCD3e, Level: ontology.LacksPlasmaMembranePart},
			{Kind: prCD56, Level: ontology.LacksPlasmaMembranePart},
			{Kind: prCD20, Level: ontology.LacksPlasmaMembranePart},
		},
	}

	b.IRIParents = map[string]string{
		clEffectorT: clTCell,
	}

	b.SpecialGates = reference.NewSpecialGateTable([]reference.SpecialGate{
		{Label: "Annexin", OntologyID: "annexin", Synonyms: []string{"Annexin V"}},
	})
	b.IRILabels["annexin"] = "Annexin"
	b.SynonymIRIs["annexin"] = "annexin"

	return b
}
