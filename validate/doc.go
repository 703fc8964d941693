// Package validate implements the interactive validation path: resolving a
// cell-type name to its ontology identifier and expected gate panel, parsing
// submitted gate lists, and flagging conflicts between the two.
//
// A conflict is a submitted gate whose marker matches an expected-panel
// marker while asserting a different expression level. Unrecognized cells
// and unresolved markers degrade gracefully: they are reported through
// flags on the result records, never as errors.
package validate
