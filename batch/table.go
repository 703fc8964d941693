package batch

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jamesaoverton/hipc-gates/errors"
)

// Table is a column-ordered table of source rows. Rows are keyed by column
// name; Columns preserves the header order for writing.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// ReadTable reads a tab-separated table with a header row. Short rows are
// padded with empty cells; long rows keep only the header's columns.
func ReadTable(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, errors.WrapInvalid(err, "batch", "ReadTable", "failed to parse TSV")
	}
	if len(records) == 0 {
		return Table{}, errors.WrapInvalid(errors.ErrEmptyTable, "batch", "ReadTable", "no header row")
	}

	table := Table{Columns: records[0]}
	for _, record := range records[1:] {
		row := make(map[string]string, len(table.Columns))
		for i, column := range table.Columns {
			if i < len(record) {
				row[column] = record[i]
			} else {
				row[column] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// RequireColumns returns an invalid-class error naming the first column the
// table is missing.
func (t Table) RequireColumns(names ...string) error {
	present := make(map[string]bool, len(t.Columns))
	for _, column := range t.Columns {
		present[column] = true
	}
	for _, name := range names {
		if !present[name] {
			return errors.WrapInvalid(errors.ErrMissingColumn, "batch", "RequireColumns",
				fmt.Sprintf("missing column %q", name))
		}
	}
	return nil
}

// Write writes the table as TSV in header order. Cells for columns a row
// never set are written empty.
func (t Table) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(t.Columns); err != nil {
		return errors.Wrap(err, "batch", "Write", "failed to write header")
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, column := range t.Columns {
			record[i] = row[column]
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "batch", "Write", "failed to write row")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(err, "batch", "Write", "failed to flush output")
	}
	return nil
}
