package reference

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jamesaoverton/hipc-gates/errors"
)

// tsvTable is a parsed tab-separated file with a header row.
type tsvTable struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

func readTSV(r io.Reader) (*tsvTable, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.WrapInvalid(err, "reference", "readTSV", "parsing rows")
	}
	if len(records) == 0 {
		return nil, errors.WrapInvalid(errors.ErrEmptyTable, "reference", "readTSV", "reading header")
	}

	t := &tsvTable{
		columns: records[0],
		index:   make(map[string]int, len(records[0])),
		rows:    records[1:],
	}
	for i, name := range t.columns {
		t.index[name] = i
	}
	return t, nil
}

// cell returns the named column of a row, or "" when the row is short.
func (t *tsvTable) cell(row []string, column string) string {
	i, ok := t.index[column]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func (t *tsvTable) requireColumns(names ...string) error {
	for _, name := range names {
		if _, ok := t.index[name]; !ok {
			return errors.WrapInvalid(
				fmt.Errorf("%w: %q", errors.ErrMissingColumn, name),
				"reference", "requireColumns", "checking header")
		}
	}
	return nil
}

// LoadSuffixTable reads the value-scale table (columns Name, Symbol,
// Synonyms). Each row contributes its canonical name as its own synonym first,
// then its comma-separated synonyms, preserving row order.
func LoadSuffixTable(r io.Reader) (*SuffixTable, error) {
	t, err := readTSV(r)
	if err != nil {
		return nil, err
	}
	if err := t.requireColumns("Name", "Symbol", "Synonyms"); err != nil {
		return nil, err
	}

	symbols := make(map[string]string)
	var synonyms []SuffixSynonym
	for _, row := range t.rows {
		name := t.cell(row, "Name")
		if name == "" {
			continue
		}
		symbols[name] = t.cell(row, "Symbol")
		synonyms = append(synonyms, SuffixSynonym{Synonym: name, Name: name})
		for _, syn := range strings.Split(t.cell(row, "Synonyms"), ",") {
			syn = strings.TrimSpace(syn)
			if syn != "" {
				synonyms = append(synonyms, SuffixSynonym{Synonym: syn, Name: name})
			}
		}
	}

	return NewSuffixTable(synonyms, symbols), nil
}

// LoadExcludedAccessions reads the excluded-experiments table (column
// "Experiment Accession") into a set.
func LoadExcludedAccessions(r io.Reader) (map[string]bool, error) {
	t, err := readTSV(r)
	if err != nil {
		return nil, err
	}
	if err := t.requireColumns("Experiment Accession"); err != nil {
		return nil, err
	}

	excluded := make(map[string]bool, len(t.rows))
	for _, row := range t.rows {
		if acc := t.cell(row, "Experiment Accession"); acc != "" {
			excluded[acc] = true
		}
	}
	return excluded, nil
}

// LoadGateMappings reads the primary marker-label mapping table (columns
// Label, Ontology ID).
func LoadGateMappings(r io.Reader) (map[string]string, error) {
	t, err := readTSV(r)
	if err != nil {
		return nil, err
	}
	if err := t.requireColumns("Label", "Ontology ID"); err != nil {
		return nil, err
	}

	mappings := make(map[string]string, len(t.rows))
	for _, row := range t.rows {
		if label := t.cell(row, "Label"); label != "" {
			mappings[label] = t.cell(row, "Ontology ID")
		}
	}
	return mappings, nil
}

// LoadSpecialGates reads the special-gates table (columns Label, Ontology ID,
// Synonyms, "toxic synonym") preserving row order.
func LoadSpecialGates(r io.Reader) (*SpecialGateTable, error) {
	t, err := readTSV(r)
	if err != nil {
		return nil, err
	}
	if err := t.requireColumns("Label", "Ontology ID", "Synonyms", "toxic synonym"); err != nil {
		return nil, err
	}

	var entries []SpecialGate
	for _, row := range t.rows {
		label := t.cell(row, "Label")
		if label == "" {
			continue
		}
		var synonyms []string
		for _, syn := range strings.Split(t.cell(row, "Synonyms"), ",") {
			syn = strings.TrimSpace(syn)
			if syn != "" {
				synonyms = append(synonyms, syn)
			}
		}
		entries = append(entries, SpecialGate{
			Label:        label,
			OntologyID:   t.cell(row, "Ontology ID"),
			Synonyms:     synonyms,
			ToxicSynonym: t.cell(row, "toxic synonym"),
		})
	}
	return NewSpecialGateTable(entries), nil
}

// LabelPair is one (IRI, label) row from a headerless extraction file, as
// produced by the N-triples label and synonym scans.
type LabelPair struct {
	IRI   string
	Label string
}

// LoadLabelPairs reads a headerless two-column TSV of (IRI, label) rows.
func LoadLabelPairs(r io.Reader) ([]LabelPair, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.WrapInvalid(err, "reference", "LoadLabelPairs", "parsing rows")
	}

	var pairs []LabelPair
	for _, rec := range records {
		if len(rec) < 2 || rec[0] == "" {
			continue
		}
		pairs = append(pairs, LabelPair{IRI: rec[0], Label: rec[1]})
	}
	return pairs, nil
}

// AddLabels merges (IRI, label) pairs into the bundle: the IRI-to-label map
// takes every pair, and each label (lower-cased) becomes a synonym for the
// first IRI it names within this call.
func (b *Bundle) AddLabels(pairs []LabelPair) {
	synonyms := make(map[string]string)
	for _, p := range pairs {
		b.IRILabels[p.IRI] = p.Label
		key := strings.ToLower(p.Label)
		if _, seen := synonyms[key]; !seen {
			synonyms[key] = p.IRI
		}
	}
	for key, iri := range synonyms {
		b.SynonymIRIs[key] = iri
	}
}

// AddSynonyms merges (IRI, synonym) pairs into the synonym map only.
func (b *Bundle) AddSynonyms(pairs []LabelPair) {
	synonyms := make(map[string]string)
	for _, p := range pairs {
		key := strings.ToLower(p.Label)
		if _, seen := synonyms[key]; !seen {
			synonyms[key] = p.IRI
		}
	}
	for key, iri := range synonyms {
		b.SynonymIRIs[key] = iri
	}
}

// InstallSpecialGates sets the special-gates table and registers its labels,
// synonyms and identifiers with the bundle's synonym and label maps so the
// interactive path can resolve them like ontology terms.
func (b *Bundle) InstallSpecialGates(t *SpecialGateTable) {
	b.SpecialGates = t
	for _, e := range t.Entries() {
		if e.OntologyID == "" {
			continue
		}
		b.IRILabels[e.OntologyID] = e.Label
		b.SynonymIRIs[strings.ToLower(e.Label)] = e.OntologyID
		for _, syn := range e.Synonyms {
			b.SynonymIRIs[strings.ToLower(syn)] = e.OntologyID
		}
		if e.ToxicSynonym != "" {
			b.SynonymIRIs[strings.ToLower(e.ToxicSynonym)] = e.OntologyID
		}
	}
}

// LoadCellGates reads a headerless three-column TSV of (cell IRI, marker IRI,
// level IRI) rows into the expected-panel map, preserving row order per cell.
func (b *Bundle) LoadCellGates(r io.Reader) error {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return errors.WrapInvalid(err, "reference", "LoadCellGates", "parsing rows")
	}
	for _, rec := range records {
		if len(rec) < 3 || rec[0] == "" {
			continue
		}
		b.IRIGates[rec[0]] = append(b.IRIGates[rec[0]], ExpectedGate{Kind: rec[1], Level: rec[2]})
	}
	return nil
}

// LoadCellParents reads a headerless two-column TSV of (cell IRI, parent IRI)
// rows into the parent map.
func (b *Bundle) LoadCellParents(r io.Reader) error {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return errors.WrapInvalid(err, "reference", "LoadCellParents", "parsing rows")
	}
	for _, rec := range records {
		if len(rec) < 2 || rec[0] == "" {
			continue
		}
		b.IRIParents[rec[0]] = rec[1]
	}
	return nil
}

// Paths names the reference-table files needed to assemble a Bundle.
// Cell tables are optional; the batch path runs without them.
type Paths struct {
	ValueScale   string // suffix scale (required)
	GateMappings string // primary label mappings (required)
	SpecialGates string // special gates (required)
	MarkerLabels string // (IRI, label) pairs for markers
	MarkerSyns   string // (IRI, synonym) pairs for markers
	CellLabels   string // (IRI, label) pairs for cell types
	CellSynonyms string // (IRI, synonym) pairs for cell types
	CellGates    string // (cell IRI, marker IRI, level IRI) triples
	CellParents  string // (cell IRI, parent IRI) pairs
}

// LoadBundle opens the files named by paths and assembles a frozen Bundle.
// Optional paths may be empty.
func LoadBundle(paths Paths) (*Bundle, error) {
	b := NewBundle()

	suffixes, err := loadFile(paths.ValueScale, LoadSuffixTable)
	if err != nil {
		return nil, err
	}
	b.Suffixes = suffixes

	mappings, err := loadFile(paths.GateMappings, LoadGateMappings)
	if err != nil {
		return nil, err
	}
	b.GateMappings = mappings

	special, err := loadFile(paths.SpecialGates, LoadSpecialGates)
	if err != nil {
		return nil, err
	}
	b.InstallSpecialGates(special)

	for _, p := range []struct {
		path string
		add  func([]LabelPair)
	}{
		{paths.MarkerLabels, b.AddLabels},
		{paths.MarkerSyns, b.AddSynonyms},
		{paths.CellLabels, b.AddLabels},
		{paths.CellSynonyms, b.AddSynonyms},
	} {
		if p.path == "" {
			continue
		}
		pairs, err := loadFile(p.path, LoadLabelPairs)
		if err != nil {
			return nil, err
		}
		p.add(pairs)
	}

	if paths.CellGates != "" {
		if err := loadInto(paths.CellGates, b.LoadCellGates); err != nil {
			return nil, err
		}
	}
	if paths.CellParents != "" {
		if err := loadInto(paths.CellParents, b.LoadCellParents); err != nil {
			return nil, err
		}
	}

	return b, nil
}

func loadFile[T any](path string, load func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, errors.WrapFatal(err, "reference", "LoadBundle", "opening "+path)
	}
	defer f.Close()
	v, err := load(f)
	if err != nil {
		return zero, errors.Wrap(err, "reference", "LoadBundle", "loading "+path)
	}
	return v, nil
}

func loadInto(path string, load func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.WrapFatal(err, "reference", "LoadBundle", "opening "+path)
	}
	defer f.Close()
	if err := load(f); err != nil {
		return errors.Wrap(err, "reference", "LoadBundle", "loading "+path)
	}
	return nil
}
