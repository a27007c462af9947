// Package table is an ordered, row-oriented table of string fields. All
// operations return new tables; inputs are never modified.
package table

import (
	"fmt"
	"slices"

	apperrors "github.com/Tiliavir/latecalc/pkg/errors"
)

// Row maps column name to cell value. A missing key reads as blank.
type Row map[string]string

// Table is a header plus rows. Columns fixes the output order.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates an empty table with the given columns.
func New(columns ...string) Table {
	return Table{Columns: slices.Clone(columns), Rows: []Row{}}
}

// Append returns t with a row built from positional values.
func (t Table) Append(values ...string) Table {
	out := t.Clone()
	row := make(Row, len(t.Columns))
	for i, c := range t.Columns {
		if i < len(values) {
			row[c] = values[i]
		}
	}
	out.Rows = append(out.Rows, row)
	return out
}

// Clone returns a deep copy of t.
func (t Table) Clone() Table {
	out := Table{Columns: slices.Clone(t.Columns), Rows: make([]Row, len(t.Rows))}
	for i, r := range t.Rows {
		out.Rows[i] = r.Clone()
	}
	return out
}

// Clone returns a copy of r.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Index returns the position of column name, or -1.
func (t Table) Index(name string) int {
	return slices.Index(t.Columns, name)
}

// Has reports whether column name exists.
func (t Table) Has(name string) bool {
	return t.Index(name) >= 0
}

// InsertColumn returns t with a new column at position idx, every row set to
// value. idx may equal len(Columns) to append.
func (t Table) InsertColumn(idx int, name, value string) (Table, error) {
	if idx < 0 || idx > len(t.Columns) {
		return Table{}, fmt.Errorf("%w: index %d, table has %d columns", apperrors.ErrOutOfRange, idx, len(t.Columns))
	}
	if t.Has(name) {
		return Table{}, fmt.Errorf("column %q already exists", name)
	}
	out := t.Clone()
	out.Columns = slices.Insert(out.Columns, idx, name)
	for _, r := range out.Rows {
		r[name] = value
	}
	return out, nil
}

// DropColumn returns t without column name. Dropping a missing column is a no-op.
func (t Table) DropColumn(name string) Table {
	out := t.Clone()
	idx := out.Index(name)
	if idx < 0 {
		return out
	}
	out.Columns = slices.Delete(out.Columns, idx, idx+1)
	for _, r := range out.Rows {
		delete(r, name)
	}
	return out
}

// Filter returns the rows for which keep reports true.
func (t Table) Filter(keep func(Row) bool) Table {
	out := New(t.Columns...)
	for _, r := range t.Rows {
		if keep(r) {
			out.Rows = append(out.Rows, r.Clone())
		}
	}
	return out
}

// Records returns the rows as positional string slices in column order,
// header first.
func (t Table) Records() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	out = append(out, slices.Clone(t.Columns))
	for _, r := range t.Rows {
		rec := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			rec[i] = r[c]
		}
		out = append(out, rec)
	}
	return out
}

// FromRecords builds a table from a header row followed by data rows. Short
// rows are padded with blanks; cells beyond the header are dropped.
func FromRecords(records [][]string) (Table, error) {
	if len(records) == 0 {
		return Table{}, fmt.Errorf("table has no header row")
	}
	t := New(records[0]...)
	seen := map[string]bool{}
	for _, c := range t.Columns {
		if seen[c] {
			return Table{}, fmt.Errorf("duplicate column %q", c)
		}
		seen[c] = true
	}
	for _, rec := range records[1:] {
		t.Rows = append(t.Rows, rowFrom(t.Columns, rec))
	}
	return t, nil
}

func rowFrom(columns, values []string) Row {
	row := make(Row, len(columns))
	for i, c := range columns {
		if i < len(values) {
			row[c] = values[i]
		} else {
			row[c] = ""
		}
	}
	return row
}
