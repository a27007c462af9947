package storage_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/latecalc/internal/storage"
	"github.com/Tiliavir/latecalc/internal/table"
	apperrors "github.com/Tiliavir/latecalc/pkg/errors"
)

func reportTable() table.Table {
	return table.New("Student Name", "Late Flag", "Late Days").
		Append("Lovelace, Ada", "Over-Full", "2").
		Append(`Alan "The" Turing`, "Available", "-1")
}

func TestWriteCSVQuotes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, storage.WriteCSV(&buf, reportTable()))

	want := "Student Name,Late Flag,Late Days\n" +
		"\"Lovelace, Ada\",Over-Full,2\n" +
		"\"Alan \"\"The\"\" Turing\",Available,-1\n"
	assert.Equal(t, want, buf.String())
}

func TestSaveAndLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.csv")
	require.NoError(t, storage.Save(path, storage.FormatCSV, reportTable()))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file must be renamed away")

	got, err := storage.Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(reportTable().Records(), got.Records()); diff != "" {
		t.Errorf("CSV mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCSVStripsBOMAndPadsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grades.csv")
	require.NoError(t, os.WriteFile(path, []byte("\xef\xbb\xbfFirst Name,Last Name,Personal Days Used\nAda,Lovelace\n"), 0o600))

	got, err := storage.LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, "First Name", got.Columns[0])
	assert.Equal(t, "", got.Rows[0]["Personal Days Used"])
}

func TestSaveAndLoadExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, storage.Save(path, storage.FormatExcel, reportTable()))

	got, err := storage.Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(reportTable().Records(), got.Records()); diff != "" {
		t.Errorf("workbook mismatch (-want +got):\n%s", diff)
	}
}

func TestExtension(t *testing.T) {
	ext, err := storage.Extension("csv")
	require.NoError(t, err)
	assert.Equal(t, "csv", ext)

	ext, err = storage.Extension("excel")
	require.NoError(t, err)
	assert.Equal(t, "xlsx", ext)

	_, err = storage.Extension("pdf")
	require.ErrorIs(t, err, apperrors.ErrUnsupportedFormat)
	require.ErrorIs(t, storage.Save(filepath.Join(t.TempDir(), "x.pdf"), "pdf", reportTable()), apperrors.ErrUnsupportedFormat)
}
