// Package hipcgates normalizes reported flow cytometry gating descriptions
// against Protein Ontology and Cell Ontology reference tables.
//
// The module has two processing paths over one immutable reference bundle:
//
// Batch path: TSV tables of reported cell population definitions are
// tokenized with project-specific delimiter dialects, each gate's marker
// label is resolved to an ontology identifier, and the table is rewritten
// with two extra columns carrying the tokenized and ontology-mapped forms.
// Markers no table knows keep their label behind a "!" sentinel for manual
// curation.
//
// Interactive path: a cell population name and a submitted gate list are
// resolved against the ontology-declared expected gate panel for that cell
// type, and level disagreements between submitted and expected gates are
// reported as conflicts. The gateway/http package serves this as a JSON API.
//
// Package layout:
//
//   - reference: reference-table loading and the immutable Bundle
//   - gating: dialect tokenizer and marker resolution
//   - batch: table-level normalization
//   - validate: interactive cell/gate validation and conflict detection
//   - ontology: IRI helpers and N-triples short-label extraction
//   - gateway/http: HTTP edge for the interactive path
//   - metric, config, errors: operational plumbing
//   - cmd/hipc-gates: the command-line entry point
package hipcgates
