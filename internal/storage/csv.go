package storage

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/Tiliavir/latecalc/internal/table"
)

// WriteCSV writes t as CSV to w, header first.
func WriteCSV(w io.Writer, t table.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(t.Records()); err != nil {
		return fmt.Errorf("encoding CSV: %w", err)
	}
	return nil
}

// SaveCSV atomically writes t to path as CSV.
func SaveCSV(path string, t table.Table) error {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, t); err != nil {
		return err
	}
	return writeAtomic(path, buf.Bytes(), 0o644)
}

// LoadCSV reads a CSV file with a header row. A UTF-8 byte order mark, as
// written by spreadsheet exports, is ignored.
func LoadCSV(path string) (table.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return table.Table{}, fmt.Errorf("storage error reading %s: %w", path, err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return table.Table{}, fmt.Errorf("error reading CSV file %s: %w", path, err)
	}
	t, err := table.FromRecords(records)
	if err != nil {
		return table.Table{}, fmt.Errorf("error reading CSV file %s: %w", path, err)
	}
	return t, nil
}
