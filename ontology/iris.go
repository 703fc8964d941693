// Package ontology provides IRI constants and identifier conversion helpers
// for the OBO ontologies used in gating descriptions: the Protein Ontology
// (PR) for markers, the Cell Ontology (CL) for cell types, and the plasma
// membrane expression-level relations defined by CL and RO.
package ontology

import (
	"regexp"
	"strings"
)

// OBOBase is the base IRI prefix for OBO Foundry ontology terms.
const OBOBase = "http://purl.obolibrary.org/obo/"

// Namespace prefixes under OBOBase.
const (
	// ProteinNamespace is the long-form prefix of Protein Ontology terms,
	// which identify gate markers ("kinds").
	ProteinNamespace = OBOBase + "PR_"

	// CellNamespace is the long-form prefix of Cell Ontology terms, which
	// identify cell populations.
	CellNamespace = OBOBase + "CL_"
)

// Expression-level relation IRIs. Each gate asserts one of these between a
// cell type and a marker.
const (
	// HasPlasmaMembranePart is asserted by positive (and intermediate) gates.
	HasPlasmaMembranePart = OBOBase + "RO_0002104"

	// HasHighPlasmaMembraneAmount is asserted by high/bright gates.
	HasHighPlasmaMembraneAmount = OBOBase + "cl#has_high_plasma_membrane_amount"

	// HasLowPlasmaMembraneAmount is asserted by low/dim gates.
	HasLowPlasmaMembraneAmount = OBOBase + "cl#has_low_plasma_membrane_amount"

	// LacksPlasmaMembranePart is asserted by negative gates.
	LacksPlasmaMembranePart = OBOBase + "cl#lacks_plasma_membrane_part"
)

var shortFormPattern = regexp.MustCompile(`^[A-Za-z]+:\d+$`)

// ShortenProtein rewrites a long-form Protein Ontology IRI to its short form:
//
//	http://purl.obolibrary.org/obo/PR_000001004 -> PR:000001004
//
// Identifiers outside the PR namespace are returned unchanged.
func ShortenProtein(id string) string {
	return strings.Replace(id, ProteinNamespace, "PR:", 1)
}

// ExpandCell rewrites a short-form Cell Ontology identifier to its long-form
// IRI:
//
//	CL:0001044 -> http://purl.obolibrary.org/obo/CL_0001044
//
// Strings without the CL: prefix are returned unchanged.
func ExpandCell(id string) string {
	if !strings.HasPrefix(id, "CL:") {
		return id
	}
	return CellNamespace + strings.TrimPrefix(id, "CL:")
}

// IsIRI reports whether id looks like a full IRI rather than a short-form
// identifier or a plain keyword.
func IsIRI(id string) bool {
	return strings.HasPrefix(id, "http://") || strings.HasPrefix(id, "https://")
}

// IsShortForm reports whether id is a short-form ontology identifier such as
// PR:000001004 or CL:0001044.
func IsShortForm(id string) bool {
	return shortFormPattern.MatchString(id)
}
