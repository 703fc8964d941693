// Package gating implements the gate normalization engine: dialect-aware
// tokenization of free-text gating descriptions, splitting of gate tokens
// into marker label and intensity-suffix symbol, and resolution of marker
// labels to ontology identifiers.
//
// Every data-contributing project reports gating its own way, so tokenization
// is driven by a declarative dialect table: each dialect names the project
// keywords it matches, zero or more text rewrites that insert a canonical
// delimiter before un-delimited marker mentions, and a final split (or
// extract) expression. Dialects are tested in fixed priority order by
// project-name substring containment; the first match wins and an unmatched
// project falls back to the default dialect.
//
// An unresolved marker label is not an error: resolution returns a tagged
// Resolution value, and the "!label" curation sentinel is rendered only at
// the output boundary by Resolution.Normalized.
package gating
