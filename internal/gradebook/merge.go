// Package gradebook merges penalty days into a grade-book table.
package gradebook

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/Tiliavir/latecalc/internal/model"
	"github.com/Tiliavir/latecalc/internal/table"
	apperrors "github.com/Tiliavir/latecalc/pkg/errors"
)

const (
	// PenaltyColumn is the column penalty days accumulate in.
	PenaltyColumn = "Personal Days Used"
	FirstName     = "First Name"
	LastName      = "Last Name"
)

// Result is the outcome of a merge.
type Result struct {
	Table table.Table
	// Inserted is true when the penalty column did not exist and was added.
	Inserted bool
	// Updated counts rows whose penalty cell was rewritten.
	Updated   int
	Unmatched []apperrors.UnmatchedStudentError
}

// DisplayName joins first and last name the way lateness records are keyed.
func DisplayName(r table.Row) string {
	return r[FirstName] + " " + r[LastName]
}

// ResolvePenaltyColumn returns t with the penalty column present. An existing
// column named PenaltyColumn always wins; otherwise one is inserted at index
// hint with every value set to 0.
func ResolvePenaltyColumn(t table.Table, hint int) (table.Table, bool, error) {
	if t.Has(PenaltyColumn) {
		return t.Clone(), false, nil
	}
	out, err := t.InsertColumn(hint, PenaltyColumn, "0")
	if err != nil {
		return table.Table{}, false, fmt.Errorf("resolving %q column: %w", PenaltyColumn, err)
	}
	return out, true, nil
}

// MergePenalties adds max(0, PenaltyDays) of each record to the penalty cell of
// the row whose display name matches the record's student name exactly.
// Blank or non-numeric cells count as 0. Rows without a record are left
// unchanged; records without a row are returned as Unmatched. Running the
// merge twice adds the penalty twice.
func MergePenalties(t table.Table, hint int, records map[string]model.LatenessRecord) (Result, error) {
	for _, col := range []string{FirstName, LastName} {
		if !t.Has(col) {
			return Result{}, fmt.Errorf("%w: %q", apperrors.ErrMissingColumn, col)
		}
	}

	out, inserted, err := ResolvePenaltyColumn(t, hint)
	if err != nil {
		return Result{}, err
	}
	res := Result{Table: out, Inserted: inserted}

	byName := map[string][]table.Row{}
	for _, r := range out.Rows {
		name := DisplayName(r)
		byName[name] = append(byName[name], r)
	}

	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rows, ok := byName[name]
		if !ok {
			res.Unmatched = append(res.Unmatched, apperrors.UnmatchedStudentError{Name: name})
			continue
		}
		add := max(0, records[name].PenaltyDays)
		for _, r := range rows {
			r[PenaltyColumn] = formatDays(ParseDays(r[PenaltyColumn]) + float64(add))
			res.Updated++
		}
	}
	return res, nil
}

// ParseDays reads a penalty cell. Blank, non-numeric, NaN and infinite values
// read as 0.
func ParseDays(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func formatDays(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
