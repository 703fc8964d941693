package batch

import (
	"log/slog"
	"strings"

	"github.com/jamesaoverton/hipc-gates/gating"
	"github.com/jamesaoverton/hipc-gates/metric"
	"github.com/jamesaoverton/hipc-gates/reference"
)

// Output columns appended by Normalize.
const (
	TokenizedColumn = "Gating tokenized"
	MappedColumn    = "Gating mapped to ontologies"
)

// Columns names the source columns the normalizer reads. The defaults match
// the upstream export, misspelling included.
type Columns struct {
	Project   string
	Reported  string
	Accession string
}

// DefaultColumns returns the source column names of the upstream export.
func DefaultColumns() Columns {
	return Columns{
		Project:   "NAME",
		Reported:  "POPULATION_DEFNITION_REPORTED",
		Accession: "EXPERIMENT_ACCESSION",
	}
}

// Normalizer runs batch normalization over source tables: tokenize each
// row's reported gating description, resolve every token, and append the
// tokenized and ontology-mapped columns.
type Normalizer struct {
	tokenizer *gating.Tokenizer
	resolver  *gating.Resolver
	symbols   []string
	excluded  map[string]bool
	columns   Columns
	logger    *slog.Logger
	metrics   *metric.Metrics
}

// NewNormalizer creates a normalizer over the given reference bundle. Rows
// whose experiment accession appears in excluded are dropped. A nil metrics
// disables instrumentation.
func NewNormalizer(b *reference.Bundle, excluded map[string]bool, columns Columns,
	logger *slog.Logger, metrics *metric.Metrics) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	if columns == (Columns{}) {
		columns = DefaultColumns()
	}
	return &Normalizer{
		tokenizer: gating.NewTokenizer(b.Suffixes),
		resolver:  gating.NewResolver(b.GateMappings, b.SpecialGates, logger),
		symbols:   b.Suffixes.Symbols(),
		excluded:  excluded,
		columns:   columns,
		logger:    logger,
		metrics:   metrics,
	}
}

// Normalize copies the source table, appends the tokenized and mapped
// columns, and fills them row by row. Rows describing excluded experiments
// are dropped. Source column order is preserved.
func (n *Normalizer) Normalize(source Table) (Table, error) {
	if err := source.RequireColumns(n.columns.Project, n.columns.Reported, n.columns.Accession); err != nil {
		return Table{}, err
	}

	out := Table{
		Columns: append(append([]string{}, source.Columns...), TokenizedColumn, MappedColumn),
	}

	excluded := 0
	for _, row := range source.Rows {
		if n.excluded[row[n.columns.Accession]] {
			excluded++
			if n.metrics != nil {
				n.metrics.RecordRowExcluded()
			}
			continue
		}
		out.Rows = append(out.Rows, n.normalizeRow(row))
	}

	n.logger.Info("normalized table",
		"rows", len(out.Rows),
		"excluded", excluded)

	return out, nil
}

// normalizeRow tokenizes and resolves one source row, returning a copy with
// the two output columns set.
func (n *Normalizer) normalizeRow(row map[string]string) map[string]string {
	reported := strings.Trim(row[n.columns.Reported], `"'`)

	tokens := n.tokenizer.Tokenize(row[n.columns.Project], reported)
	gates := n.resolver.NormalizeTokens(tokens, n.symbols)

	normalized := make([]string, len(gates))
	for i, gate := range gates {
		normalized[i] = gate.Normalized()
		if n.metrics != nil {
			n.metrics.RecordResolution(gate.Resolution.Resolved)
		}
	}

	out := make(map[string]string, len(row)+2)
	for column, value := range row {
		out[column] = value
	}
	out[TokenizedColumn] = strings.Join(tokens, "; ")
	out[MappedColumn] = strings.Join(normalized, "; ")

	if n.metrics != nil {
		n.metrics.RecordRowProcessed()
		n.metrics.RecordGatesTokenized(len(tokens))
	}

	return out
}
