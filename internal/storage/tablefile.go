package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Tiliavir/latecalc/internal/table"
	apperrors "github.com/Tiliavir/latecalc/pkg/errors"
)

const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
)

// Extension returns the file extension for an output format.
func Extension(format string) (string, error) {
	switch format {
	case FormatCSV:
		return "csv", nil
	case FormatExcel:
		return "xlsx", nil
	}
	return "", fmt.Errorf("%w: %s. Supported formats are 'csv' and 'excel'", apperrors.ErrUnsupportedFormat, format)
}

// Save writes t to path in the given output format.
func Save(path, format string, t table.Table) error {
	switch format {
	case FormatCSV:
		return SaveCSV(path, t)
	case FormatExcel:
		return SaveExcel(path, t)
	}
	_, err := Extension(format)
	return err
}

// Load reads a table from path, choosing the reader by file extension.
func Load(path string) (table.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadExcel(path)
	default:
		return LoadCSV(path)
	}
}
