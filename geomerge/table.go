package geomerge

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Row maps column names to their raw cell values.
type Row map[string]string

// Table is an ordered tabular dataset with named columns shared across
// all rows.
type Table struct {
	Columns []string
	Rows    []Row
}

// ReadTable parses delimited text with a header row into a Table. Short
// rows are padded with empty cells, cells beyond the header are dropped.
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("Failed to parse CSV: %s", err)
	}
	if len(records) == 0 {
		return nil, errors.New("The CSV file is empty")
	}

	columns := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, len(columns))
		for i, col := range columns {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}, nil
}

// HasColumn reports whether the table contains the named column.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// Numeric coerces a column to float64 values. The second slice flags
// which rows coerced successfully: non-numeric cells are treated as
// missing rather than failing the whole column.
func (t *Table) Numeric(name string) ([]float64, []bool) {
	vals := make([]float64, len(t.Rows))
	ok := make([]bool, len(t.Rows))
	for i, row := range t.Rows {
		vals[i], ok[i] = parseNumber(row[name])
	}
	return vals, ok
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
