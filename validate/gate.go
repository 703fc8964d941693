package validate

import (
	"regexp"
	"strings"

	"github.com/jamesaoverton/hipc-gates/gating"
	"github.com/jamesaoverton/hipc-gates/ontology"
	"github.com/jamesaoverton/hipc-gates/reference"
)

// bracketComment matches a bracketed parenthetical in a gate string, e.g.
// "[glycosylated]". It is commentary, not part of the marker name.
var bracketComment = regexp.MustCompile(`\s*\[.*\]\s*`)

// GateInfo is one annotated gate in interactive output: a submitted gate, a
// cells-field gate, or an expected-panel gate.
type GateInfo struct {
	// Gate is the display text of the gate as submitted, including any
	// bracketed comment. Empty for expected-panel gates.
	Gate string `json:"gate,omitempty"`

	// KindName is the marker label as typed, with comments stripped.
	KindName string `json:"kind_name,omitempty"`

	// Kind is the marker identifier for display: the IRI when on-ontology,
	// or a "?gate=" query link for special gates with keyword identifiers.
	Kind string `json:"kind,omitempty"`

	KindRecognized bool   `json:"kind_recognized"`
	KindLabel      string `json:"kind_label,omitempty"`

	// Level is the expression-level relation IRI.
	Level string `json:"level,omitempty"`

	LevelRecognized bool   `json:"level_recognized"`
	LevelLabel      string `json:"level_label,omitempty"`
	LevelName       string `json:"level_name,omitempty"`

	// Conflict marks a level disagreement with the paired gate record.
	Conflict bool `json:"conflict,omitempty"`

	// kindIRI is the resolved marker identifier used for conflict
	// matching, untouched by display rewriting. Empty when unresolved.
	kindIRI string
}

// decorateGate builds a GateInfo for a marker identifier and level IRI,
// marking each part recognized when the reference tables know it.
func decorateGate(kind, level string, b *reference.Bundle) GateInfo {
	info := GateInfo{
		Kind:    kind,
		Level:   level,
		kindIRI: kind,
	}

	if label, ok := b.IRILabels[kind]; ok {
		info.KindRecognized = true
		info.KindLabel = label
	}
	if kind != "" && !ontology.IsIRI(kind) {
		info.Kind = "?gate=" + kind
	}

	if label, ok := b.IRILabels[level]; ok {
		info.LevelRecognized = true
		info.LevelLabel = label
	}

	return info
}

// processGate normalizes one submitted gate string: trailing suffix synonyms
// are replaced case-insensitively with their symbols, the token splits into
// marker and level, bracketed comments are stripped from the marker name,
// and both parts are resolved against the bundle. The returned flag reports
// whether the marker was unrecognized.
func processGate(gateString string, b *reference.Bundle) (GateInfo, bool) {
	gateString = b.Suffixes.ReplaceTrailingSynonyms(gateString, true)

	kindName, levelSymbol := gating.SplitGate(gateString, b.Suffixes.Symbols())
	kindName = bracketComment.ReplaceAllString(kindName, "")

	kind := b.SynonymIRIs[strings.ToLower(kindName)]

	// A gate with no suffix at all asserts the positive level.
	if levelSymbol == "" {
		levelSymbol = "+"
	}
	level := b.LevelIRIs[levelSymbol]

	info := decorateGate(kind, level, b)
	info.Gate = gateString
	info.KindName = kindName
	info.LevelName = b.LevelNames[levelSymbol]

	return info, kind == ""
}
