package validate

import (
	"github.com/jamesaoverton/hipc-gates/reference"
)

// Conflict records a level disagreement: the submitted gate together with
// the level the cell's panel expects for the same marker.
type Conflict struct {
	GateInfo

	// CellLevel is the expected level IRI from the cell's panel.
	CellLevel string `json:"cell_level,omitempty"`

	// CellLevelName is the human-readable name of the expected level.
	CellLevelName string `json:"cell_level_name,omitempty"`
}

// Gating is the submitted-gates record of a validation response.
type Gating struct {
	// Results holds one annotated record per submitted gate, in order.
	Results []GateInfo `json:"results"`

	// Conflicts lists every level disagreement against the cell's panel.
	Conflicts []Conflict `json:"conflicts"`

	// HasErrors is set when at least one submitted gate's marker was
	// unrecognized.
	HasErrors bool `json:"has_errors"`
}

// ParseGatesField processes a comma-separated submitted gate list and checks
// each gate against the cell's result gates (expected panel plus any
// cells-field gates). A submitted gate whose resolved marker matches a
// result gate's marker while asserting a different level marks both records
// conflicted and contributes a conflict entry carrying both levels. Markers
// are unique within a panel, so a submitted gate conflicts with at most one
// panel entry. Unresolved markers never match; equal levels never conflict.
func ParseGatesField(gatesField string, cell *Cell, b *reference.Bundle) Gating {
	gating := Gating{
		Results:   []GateInfo{},
		Conflicts: []Conflict{},
	}

	for _, gateString := range splitGateList(gatesField) {
		info, unrecognized := processGate(gateString, b)
		if unrecognized {
			gating.HasErrors = true
		}

		for i := range cell.Results {
			result := &cell.Results[i]
			if info.kindIRI == "" || result.kindIRI == "" {
				continue
			}
			if info.kindIRI != result.kindIRI || info.Level == result.Level {
				continue
			}
			info.Conflict = true
			result.Conflict = true
			cell.Core.Conflicts = true
			gating.Conflicts = append(gating.Conflicts, Conflict{
				GateInfo:      info,
				CellLevel:     result.Level,
				CellLevelName: result.LevelName,
			})
		}

		gating.Results = append(gating.Results, info)
	}

	return gating
}
