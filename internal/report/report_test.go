package report_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/latecalc/internal/lateness"
	"github.com/Tiliavir/latecalc/internal/model"
	"github.com/Tiliavir/latecalc/internal/report"
	"github.com/Tiliavir/latecalc/internal/storage"
	apperrors "github.com/Tiliavir/latecalc/pkg/errors"
)

func classified() map[string]model.LatenessRecord {
	p := lateness.Policy{
		Deadline:           time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC),
		GraceWindowMinutes: 30,
		EarlyOffsetCounts:  true,
	}
	return lateness.Classify(p, []model.Submission{
		{StudentName: "Alan Turing", SubmittedAt: time.Date(2024, 3, 3, 1, 0, 0, 0, time.UTC)},
		{StudentName: "Ada Lovelace", SubmittedAt: time.Date(2024, 3, 2, 0, 10, 0, 0, time.UTC)},
		{StudentName: "Grace Hopper", SubmittedAt: time.Date(2024, 3, 1, 21, 59, 0, 0, time.UTC)},
	})
}

func TestBuild(t *testing.T) {
	got := report.Build(classified(), lateness.DefaultLabels)

	want := [][]string{
		report.Columns,
		{"Ada Lovelace", "2024-03-02 00:10:00", "0h 11m", "Available", "0"},
		{"Alan Turing", "2024-03-03 01:00:00", "25h 1m", "Over-Full", "2"},
		{"Grace Hopper", "2024-03-01 21:59:00", "-2h 0m", "Available", "0"},
	}
	if diff := cmp.Diff(want, got.Records()); diff != "" {
		t.Errorf("Build mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildLegacyLabels(t *testing.T) {
	got := report.Filter(report.Build(classified(), lateness.LegacyLabels), "LATE")
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "Alan Turing", got.Rows[0][report.ColStudentName])
}

func TestFileNames(t *testing.T) {
	got := report.FileNames("CS101", "HW1", "xlsx")
	assert.Equal(t, report.Names{
		Full:      "CS101_HW1_submissions.xlsx",
		Filtered:  "CS101_HW1_late_submissions.xlsx",
		GradeBook: "grade_book_CS101_HW1.csv",
	}, got)
}

func options(dir, format string) report.Options {
	return report.Options{
		Dir:         dir,
		Course:      "CS101",
		Assignment:  "HW1",
		Format:      format,
		FilterLabel: "Over-Full",
		Labels:      lateness.DefaultLabels,
	}
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	out, err := report.Write(options(dir, "csv"), classified())
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "CS101_HW1_submissions.csv"),
		filepath.Join(dir, "CS101_HW1_late_submissions.csv"),
	}, out.Written)

	late, err := storage.LoadCSV(filepath.Join(dir, "CS101_HW1_late_submissions.csv"))
	require.NoError(t, err)
	require.Len(t, late.Rows, 1)
	assert.Equal(t, "Alan Turing", late.Rows[0][report.ColStudentName])
}

func TestWriteExcel(t *testing.T) {
	dir := t.TempDir()
	_, err := report.Write(options(dir, "excel"), classified())
	require.NoError(t, err)

	full, err := storage.Load(filepath.Join(dir, "CS101_HW1_submissions.xlsx"))
	require.NoError(t, err)
	assert.Len(t, full.Rows, 3)
}

func TestWriteEmptyFails(t *testing.T) {
	dir := t.TempDir()
	_, err := report.Write(options(dir, "csv"), map[string]model.LatenessRecord{})
	require.ErrorIs(t, err, apperrors.ErrEmptyResult)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no output files may be written")
}

func TestWriteUnsupportedFormat(t *testing.T) {
	_, err := report.Write(options(t.TempDir(), "pdf"), classified())
	require.ErrorIs(t, err, apperrors.ErrUnsupportedFormat)
}

func TestWriteFailureDoesNotCascade(t *testing.T) {
	dir := t.TempDir()
	// A directory squatting on the full report's temp path makes that write fail.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "CS101_HW1_submissions.csv.tmp"), 0o755))

	out, err := report.Write(options(dir, "csv"), classified())
	require.Error(t, err)
	require.Len(t, out.Failed, 1)
	assert.Equal(t, filepath.Join(dir, "CS101_HW1_submissions.csv"), out.Failed[0].Path)
	assert.Equal(t, []string{filepath.Join(dir, "CS101_HW1_late_submissions.csv")}, out.Written)
}
