// Package errors provides standardized error handling patterns for hipc-gates.
//
// # Overview
//
// The package implements a three-class error classification system: Transient
// (temporary, retryable), Invalid (bad input, non-retryable), and Fatal
// (unrecoverable, stop processing).
//
// Expected "not found" outcomes of the normalization engine (an unresolved
// marker label, an unrecognized cell name) are deliberately NOT errors: they
// are modeled as explicit values (gating.Resolution, validate.CellInfo flags)
// because they are common, expected results requiring graceful degradation.
// This package covers genuine faults only: unreadable reference tables,
// missing source columns, bad configuration.
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransient(err, "Component", "Method", "action")
//	errors.WrapInvalid(err, "Component", "Method", "action")
//	errors.WrapFatal(err, "Component", "Method", "action")
//
// The generic Wrap() preserves the original error's classification.
//
// # Integration with errors.As/Is
//
// All error types support standard library error inspection:
//
//	var ce *errors.ClassifiedError
//	if errors.As(err, &ce) {
//	    log.Printf("Component: %s, Class: %s", ce.Component, ce.Class)
//	}
//
//	if errors.Is(err, errors.ErrMissingColumn) {
//	    // The batch source file lacks a required column: abort the run.
//	}
//
// Classification is preserved through error chains.
package errors
