// Package reference holds the read-only reference tables the normalization
// engine consumes: the intensity-suffix scale, the marker label to ontology
// identifier mappings, the special-gates synonym table, and the cell ontology
// maps (labels, synonyms, parents and expected gate panels).
//
// All tables are populated exactly once during an explicit load phase and are
// never mutated afterwards, so concurrent readers need no locking. The loaded
// tables travel together as a Bundle that is passed by reference into every
// core operation; nothing in this module reads them from package globals.
// A future hot-reload must build a fresh Bundle and swap the reference, not
// mutate a live one.
package reference
