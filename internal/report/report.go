// Package report renders lateness records as tables and writes the full and
// filtered report files.
package report

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/Tiliavir/latecalc/internal/lateness"
	"github.com/Tiliavir/latecalc/internal/model"
	"github.com/Tiliavir/latecalc/internal/storage"
	"github.com/Tiliavir/latecalc/internal/table"
	apperrors "github.com/Tiliavir/latecalc/pkg/errors"
)

const (
	ColStudentName    = "Student Name"
	ColSubmissionTime = "Submission Time"
	ColLateDuration   = "Late Duration"
	ColLateFlag       = "Late Flag"
	ColLateDays       = "Late Days"
)

// Columns is the report header.
var Columns = []string{ColStudentName, ColSubmissionTime, ColLateDuration, ColLateFlag, ColLateDays}

// Sorted returns the records ordered by student name.
func Sorted(records map[string]model.LatenessRecord) []model.LatenessRecord {
	out := make([]model.LatenessRecord, 0, len(records))
	for _, r := range records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudentName < out[j].StudentName })
	return out
}

// Build renders records as a report table. Late Days is reported unclamped.
func Build(records map[string]model.LatenessRecord, labels lateness.Labels) table.Table {
	t := table.New(Columns...)
	for _, r := range Sorted(records) {
		t = t.Append(
			r.StudentName,
			r.SubmissionTime,
			r.OffsetDisplay,
			labels.Label(r.Status),
			strconv.Itoa(r.PenaltyDays),
		)
	}
	return t
}

// Filter keeps the rows whose Late Flag equals label.
func Filter(t table.Table, label string) table.Table {
	return t.Filter(func(r table.Row) bool { return r[ColLateFlag] == label })
}

// Names holds the output file names for one course assignment.
type Names struct {
	Full      string
	Filtered  string
	GradeBook string
}

// FileNames returns the conventional output names. ext applies to the two
// reports; the grade book is always CSV.
func FileNames(course, assignment, ext string) Names {
	return Names{
		Full:      fmt.Sprintf("%s_%s_submissions.%s", course, assignment, ext),
		Filtered:  fmt.Sprintf("%s_%s_late_submissions.%s", course, assignment, ext),
		GradeBook: fmt.Sprintf("grade_book_%s_%s.csv", course, assignment),
	}
}

// Options configures Write.
type Options struct {
	Dir         string
	Course      string
	Assignment  string
	Format      string
	FilterLabel string
	Labels      lateness.Labels
}

// Output lists what Write produced.
type Output struct {
	Full     table.Table
	Filtered table.Table
	Written  []string
	Failed   []apperrors.WriteError
}

// Write renders and writes the full and the filtered report. It fails with
// ErrEmptyResult before writing anything when records is empty. A failure to
// write one file does not prevent the other; failures are returned in
// Output.Failed and joined into the returned error.
func Write(opts Options, records map[string]model.LatenessRecord) (Output, error) {
	if len(records) == 0 {
		return Output{}, apperrors.ErrEmptyResult
	}
	ext, err := storage.Extension(opts.Format)
	if err != nil {
		return Output{}, err
	}

	var out Output
	out.Full = Build(records, opts.Labels)
	out.Filtered = Filter(out.Full, opts.FilterLabel)

	names := FileNames(opts.Course, opts.Assignment, ext)
	var errs []error
	for _, f := range []struct {
		name string
		t    table.Table
	}{
		{names.Full, out.Full},
		{names.Filtered, out.Filtered},
	} {
		path := filepath.Join(opts.Dir, f.name)
		if err := storage.Save(path, opts.Format, f.t); err != nil {
			we := apperrors.WriteError{Path: path, Err: err}
			out.Failed = append(out.Failed, we)
			errs = append(errs, we)
			continue
		}
		out.Written = append(out.Written, path)
	}
	return out, errors.Join(errs...)
}
