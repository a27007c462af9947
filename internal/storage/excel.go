package storage

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/Tiliavir/latecalc/internal/table"
)

// SheetName is the worksheet reports are written to.
const SheetName = "Submissions"

// SaveExcel atomically writes t to path as a single-sheet workbook.
// Cells that hold whole numbers are stored as numbers.
func SaveExcel(path string, t table.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	for i, rec := range t.Records() {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(rec))
		for j, v := range rec {
			row[j] = cellValue(i, v)
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("encoding workbook: %w", err)
	}
	return writeAtomic(path, buf.Bytes(), 0o644)
}

func cellValue(rowIdx int, v string) interface{} {
	if rowIdx == 0 {
		return v
	}
	if n, err := strconv.Atoi(v); err == nil && strconv.Itoa(n) == v {
		return n
	}
	return v
}

// LoadExcel reads the first worksheet of an .xlsx file as a table.
func LoadExcel(path string) (table.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return table.Table{}, fmt.Errorf("storage error reading %s: %w", path, err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return table.Table{}, fmt.Errorf("failed to open Excel file %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return table.Table{}, fmt.Errorf("excel file %s has no worksheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return table.Table{}, fmt.Errorf("failed to get rows: %w", err)
	}
	return table.FromRecords(rows)
}
