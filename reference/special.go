package reference

// SpecialGate describes one entry of the auxiliary synonym table consulted
// when the primary label mapping misses. The ontology identifier may be a
// full IRI or a plain keyword for gates with no ontology term yet.
type SpecialGate struct {
	Label        string
	OntologyID   string
	Synonyms     []string
	ToxicSynonym string
}

// SpecialGateTable is an ordered list of special gates. Order is the source
// declaration order; when a label ambiguously matches several entries the
// first one wins.
type SpecialGateTable struct {
	entries []SpecialGate
}

// NewSpecialGateTable builds a table preserving entry order.
func NewSpecialGateTable(entries []SpecialGate) *SpecialGateTable {
	return &SpecialGateTable{entries: append([]SpecialGate(nil), entries...)}
}

// Entries returns all entries in declaration order.
func (t *SpecialGateTable) Entries() []SpecialGate {
	return t.entries
}

// Matches returns every entry whose label, synonym list or toxic synonym
// equals the given label, in declaration order. More than one match signals a
// duplicate in the source table; callers warn and use the first.
func (t *SpecialGateTable) Matches(label string) []SpecialGate {
	if label == "" {
		return nil
	}
	var out []SpecialGate
	for _, e := range t.entries {
		if e.matches(label) {
			out = append(out, e)
		}
	}
	return out
}

func (e SpecialGate) matches(label string) bool {
	if label == e.Label || label == e.ToxicSynonym {
		return true
	}
	for _, syn := range e.Synonyms {
		if label == syn {
			return true
		}
	}
	return false
}
