// Package batch normalizes cell population descriptions over whole TSV
// tables.
//
// A source table carries one row per reported population, with the project
// name selecting the tokenizer dialect and the experiment accession gating
// exclusion. Normalize appends two columns to every surviving row: the
// standardized gate tokens and their ontology-mapped forms, both joined with
// "; ". Rows for excluded experiments are dropped. A missing required column
// aborts the run with an invalid-class error.
package batch
