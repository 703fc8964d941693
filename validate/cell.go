package validate

import (
	"encoding/csv"
	"regexp"
	"strings"

	"github.com/jamesaoverton/hipc-gates/ontology"
	"github.com/jamesaoverton/hipc-gates/reference"
)

var (
	enclosingQuotes = regexp.MustCompile(`^("|')|("|')$`)
	extraSpaces     = regexp.MustCompile(`\s\s+`)
)

// CellInfo is the resolved-cell record of a validation response.
type CellInfo struct {
	// Recognized is set when the cell resolved to an IRI with a declared
	// expected-gate panel.
	Recognized bool `json:"recognized"`

	// Conflicts is set when any submitted gate conflicted with the panel.
	Conflicts bool `json:"conflicts"`

	// HasCellGates is set when the cells field carried its own gate list
	// after "&".
	HasCellGates bool `json:"has_cell_gates"`

	// CellGates are the gates parsed from the cells field.
	CellGates []GateInfo `json:"cell_gates"`

	IRI         string `json:"iri,omitempty"`
	Label       string `json:"label,omitempty"`
	Parent      string `json:"parent,omitempty"`
	ParentLabel string `json:"parent_label,omitempty"`
}

// Cell pairs the core cell record with its result gates: the expected panel
// first, then any cells-field gates.
type Cell struct {
	Core    CellInfo
	Results []GateInfo
}

// ResolveCellIRI finds the IRI for a cell name, which may be a label or
// synonym (case-insensitive), an IRI, or a short-form CL identifier. An
// unknown name resolves to "".
func ResolveCellIRI(name string, b *reference.Bundle) string {
	if iri, ok := b.SynonymIRIs[strings.ToLower(name)]; ok {
		return iri
	}
	if _, ok := b.IRILabels[name]; ok {
		return name
	}
	if expanded := ontology.ExpandCell(name); expanded != name {
		if _, ok := b.IRILabels[expanded]; ok {
			return expanded
		}
	}
	return ""
}

// splitCellsField separates the cell name from an optional trailing
// comma-separated gate list introduced by "&".
func splitCellsField(cellsField string) (name, gates string) {
	if i := strings.Index(cellsField, "&"); i >= 0 {
		name = cellsField[:i]
		gates = strings.TrimSpace(cellsField[i+1:])
	} else {
		name = cellsField
	}
	name = enclosingQuotes.ReplaceAllString(strings.TrimSpace(name), "")
	name = extraSpaces.ReplaceAllString(name, " ")
	return name, gates
}

// splitGateList breaks a comma-separated gate list, honoring quoted fields
// so a quoted gate may itself contain a comma.
func splitGateList(field string) []string {
	cr := csv.NewReader(strings.NewReader(field))
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	record, err := cr.Read()
	if err != nil {
		record = strings.Split(field, ",")
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
	}
	return record
}

// ParseCellsField resolves the cells field of a request: the cell name (and
// optional "&"-introduced gate list) becomes a core cell record plus the
// result gates the panel declares, with any cells-field gates appended.
func ParseCellsField(cellsField string, b *reference.Bundle) Cell {
	name, gateList := splitCellsField(cellsField)

	var cellGates []GateInfo
	if gateList != "" {
		for _, gateString := range splitGateList(gateList) {
			info, _ := processGate(strings.Trim(gateString, "'"), b)
			cellGates = append(cellGates, info)
		}
	}

	iri := ResolveCellIRI(name, b)

	core := CellInfo{
		HasCellGates: len(cellGates) > 0,
		CellGates:    cellGates,
	}
	if _, ok := b.IRIGates[iri]; ok {
		core.Recognized = true
		core.IRI = iri
		if label, ok := b.IRILabels[iri]; ok {
			core.Label = label
		}
		if parent, ok := b.IRIParents[iri]; ok {
			core.Parent = parent
			if label, ok := b.IRILabels[parent]; ok {
				core.ParentLabel = label
			}
		}
	}

	results := expectedGateInfo(iri, b)
	results = append(results, cellGates...)

	return Cell{Core: core, Results: results}
}

// expectedGateInfo decorates the expected panel declared for a cell IRI.
// An unresolved cell has no panel and yields no results.
func expectedGateInfo(iri string, b *reference.Bundle) []GateInfo {
	var results []GateInfo
	for _, eg := range b.IRIGates[iri] {
		info := decorateGate(eg.Kind, eg.Level, b)
		if symbol, ok := b.IRILevels[eg.Level]; ok {
			info.LevelName = b.LevelNames[symbol]
		}
		results = append(results, info)
	}
	return results
}
