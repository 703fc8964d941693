package gating

import (
	"log/slog"

	"github.com/jamesaoverton/hipc-gates/ontology"
	"github.com/jamesaoverton/hipc-gates/reference"
)

// Resolution is the outcome of resolving a marker label against the
// reference tables. Unresolved labels are preserved, not dropped; the
// curation sentinel is rendered only by Normalized.
type Resolution struct {
	// Label is the marker label as reported.
	Label string

	// ID is the ontology identifier, set only when Resolved.
	ID string

	// Resolved marks whether any table knew the label.
	Resolved bool
}

// Normalized renders the resolution for output: the short-form ontology
// identifier when resolved, otherwise the label behind a "!" sentinel so the
// row keeps its position and signals "needs curation" downstream. The
// sentinel can never collide with an identifier: identifiers never start
// with "!".
func (r Resolution) Normalized() string {
	if !r.Resolved {
		return "!" + r.Label
	}
	return ontology.ShortenProtein(r.ID)
}

// Gate is one normalized marker-and-level assertion.
type Gate struct {
	// Raw is the tokenized gate text.
	Raw string

	// Label is the marker part of the token.
	Label string

	// Symbol is the intensity-suffix symbol, possibly empty.
	Symbol string

	// Resolution is the marker's ontology resolution.
	Resolution Resolution
}

// Normalized renders the gate as its ontology-coded token.
func (g Gate) Normalized() string {
	return g.Resolution.Normalized() + g.Symbol
}

// Resolver resolves marker labels to ontology identifiers using the primary
// mapping table with the special-gates synonym table as fallback.
type Resolver struct {
	mappings map[string]string
	special  *reference.SpecialGateTable
	logger   *slog.Logger
}

// NewResolver creates a resolver over the given tables.
func NewResolver(mappings map[string]string, special *reference.SpecialGateTable, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	if special == nil {
		special = reference.NewSpecialGateTable(nil)
	}
	return &Resolver{mappings: mappings, special: special, logger: logger}
}

// Resolve looks the label up in the primary mapping table, then in the
// special-gates table by label, synonym or toxic synonym. An ambiguous
// special-gate match is a table defect: it is logged as a warning and the
// first entry by declaration order wins.
func (r *Resolver) Resolve(label string) Resolution {
	if id, ok := r.mappings[label]; ok && id != "" {
		return Resolution{Label: label, ID: id, Resolved: true}
	}

	matches := r.special.Matches(label)
	if len(matches) > 1 {
		r.logger.Warn("multiple special-gate entries match label",
			"label", label,
			"count", len(matches))
	}
	if len(matches) > 0 {
		return Resolution{Label: label, ID: matches[0].OntologyID, Resolved: true}
	}

	return Resolution{Label: label}
}

// NormalizeTokens splits and resolves tokenized gates, producing one Gate
// per token in order.
func (r *Resolver) NormalizeTokens(tokens []string, symbols []string) []Gate {
	gates := make([]Gate, 0, len(tokens))
	for _, token := range tokens {
		label, symbol := SplitGate(token, symbols)
		gates = append(gates, Gate{
			Raw:        token,
			Label:      label,
			Symbol:     symbol,
			Resolution: r.Resolve(label),
		})
	}
	return gates
}
