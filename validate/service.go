package validate

import (
	"log/slog"
	"strings"

	"github.com/jamesaoverton/hipc-gates/reference"
)

// Default inputs served when a request omits the cells or gates parameter.
const (
	DefaultCells = "CD4-positive, alpha-beta T cell & CD19-"
	DefaultGates = "CD4-, CD19+, CD20-, CD27++, CD38+-, CD56[glycosylated]+"
)

// Response is the full validation result for one request.
type Response struct {
	// Cells and Gates echo the inputs after normalization.
	Cells string `json:"cells"`
	Gates string `json:"gates"`

	// Cell is the resolved-cell record.
	Cell CellInfo `json:"cell"`

	// CellResults holds the cell's expected panel plus cells-field gates.
	CellResults []GateInfo `json:"cell_results"`

	// GateResults holds one record per submitted gate.
	GateResults []GateInfo `json:"gate_results"`

	// GateErrors is set when any submitted gate's marker was unrecognized.
	GateErrors bool `json:"gate_errors"`

	// Conflicts lists level disagreements between submitted gates and the
	// expected panel.
	Conflicts []Conflict `json:"conflicts"`
}

// SpecialGateDetail describes one special gate for the gate-detail route.
type SpecialGateDetail struct {
	Found        bool     `json:"found"`
	Label        string   `json:"label,omitempty"`
	OntologyID   string   `json:"ontology_id,omitempty"`
	Synonyms     []string `json:"synonyms,omitempty"`
	ToxicSynonym string   `json:"toxic_synonym,omitempty"`
}

// Service runs validation requests against a loaded reference bundle. The
// bundle is read-only, so a single Service is safe for concurrent use.
type Service struct {
	bundle *reference.Bundle
	logger *slog.Logger
}

// NewService creates a validation service over the given bundle.
func NewService(bundle *reference.Bundle, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{bundle: bundle, logger: logger}
}

// Validate resolves the cells field, processes the gates field, and reports
// conflicts. Empty fields take the documented defaults. Curly quotes, a
// frequent copy-paste artifact, are normalized to ASCII first.
func (s *Service) Validate(cellsField, gatesField string) Response {
	cellsField = cleanField(cellsField, DefaultCells)
	gatesField = cleanField(gatesField, DefaultGates)

	cell := ParseCellsField(cellsField, s.bundle)
	gating := ParseGatesField(gatesField, &cell, s.bundle)

	s.logger.Debug("validated gating",
		"cells", cellsField,
		"cell_recognized", cell.Core.Recognized,
		"gates", len(gating.Results),
		"conflicts", len(gating.Conflicts),
		"errors", gating.HasErrors)

	return Response{
		Cells:       cellsField,
		Gates:       gatesField,
		Cell:        cell.Core,
		CellResults: cell.Results,
		GateResults: gating.Results,
		GateErrors:  gating.HasErrors,
		Conflicts:   gating.Conflicts,
	}
}

// SpecialGate looks up one special-gate entry by its label or its keyword
// identifier. Gate links emit the identifier, so both must resolve.
func (s *Service) SpecialGate(label string) SpecialGateDetail {
	label = strings.TrimSpace(label)
	for _, e := range s.bundle.SpecialGates.Entries() {
		if e.Label == label || e.OntologyID == label {
			return SpecialGateDetail{
				Found:        true,
				Label:        e.Label,
				OntologyID:   e.OntologyID,
				Synonyms:     e.Synonyms,
				ToxicSynonym: e.ToxicSynonym,
			}
		}
	}
	return SpecialGateDetail{Label: label}
}

func cleanField(field, fallback string) string {
	field = strings.TrimSpace(field)
	if field == "" {
		return fallback
	}
	field = strings.ReplaceAll(field, "‘", "'")
	field = strings.ReplaceAll(field, "’", "'")
	return field
}
