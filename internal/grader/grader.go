// Package grader runs one assignment end to end: extract the archive,
// classify the latest submission of every student, write the reports and
// accrue penalty days into the grade book.
package grader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/Tiliavir/latecalc/internal/config"
	"github.com/Tiliavir/latecalc/internal/gradebook"
	"github.com/Tiliavir/latecalc/internal/lateness"
	"github.com/Tiliavir/latecalc/internal/model"
	"github.com/Tiliavir/latecalc/internal/report"
	"github.com/Tiliavir/latecalc/internal/storage"
	"github.com/Tiliavir/latecalc/internal/submission"
	"github.com/Tiliavir/latecalc/internal/timecalc"
	apperrors "github.com/Tiliavir/latecalc/pkg/errors"
)

// Options configures a run.
type Options struct {
	Config config.Config
	// SkipApplied skips the grade-book merge when the ledger shows it was
	// already applied for this assignment and deadline.
	SkipApplied bool
	Log         zerolog.Logger
	// Now is the clock used for ledger entries. Defaults to time.Now.
	Now func() time.Time
}

// Result holds what a run produced.
type Result struct {
	Records  map[string]model.LatenessRecord
	Counts   map[model.Status]int
	Reports  report.Output
	Failed   []apperrors.WriteError
	Written  []string
	Merge    *gradebook.Result
	Skipped  bool
	Previous *model.LedgerEntry
}

// Collect extracts the archive and classifies every student's latest
// submission. An archive without any submission folders yields an empty map.
func Collect(cfg config.Config, log zerolog.Logger) (map[string]model.LatenessRecord, error) {
	dir := cfg.ExtractDir
	if dir == "" {
		tmp, err := os.MkdirTemp("", "latecalc-*")
		if err != nil {
			return nil, fmt.Errorf("creating extract directory: %w", err)
		}
		defer os.RemoveAll(tmp)
		dir = tmp
	}

	if err := submission.Extract(cfg.ZipFileName, dir); err != nil {
		return nil, err
	}
	names, err := submission.ListEntries(dir)
	if err != nil {
		return nil, err
	}
	subs := submission.Parse(names, log)
	log.Debug().Int("entries", len(names)).Int("students", len(subs)).Str("dir", dir).Msg("Parsed submission folders")

	return lateness.Classify(cfg.Policy(), subs), nil
}

// Count tallies records per status.
func Count(records map[string]model.LatenessRecord) map[model.Status]int {
	counts := make(map[model.Status]int, len(model.Statuses))
	for _, s := range model.Statuses {
		counts[s] = 0
	}
	for _, r := range records {
		counts[r.Status]++
	}
	return counts
}

// Run performs the whole pipeline. Configuration, empty-result and grade-book
// structure errors abort the run; files already written stay on disk.
// Failing to write one artifact does not stop the others: such failures are
// listed in Result.Failed and joined into the returned error.
func Run(opts Options) (Result, error) {
	cfg := opts.Config
	log := opts.Log
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	records, err := Collect(cfg, log)
	if err != nil {
		return Result{}, err
	}
	res := Result{Records: records, Counts: Count(records)}

	out, err := report.Write(report.Options{
		Dir:         cfg.OutputDir,
		Course:      cfg.CourseName,
		Assignment:  cfg.AssignmentName,
		Format:      cfg.OutputFormat,
		FilterLabel: cfg.FilterLabel,
		Labels:      cfg.Labels,
	}, records)
	res.Reports = out
	res.Written = append(res.Written, out.Written...)
	res.Failed = append(res.Failed, out.Failed...)
	if err != nil && len(out.Failed) == 0 {
		return res, err
	}
	for _, f := range out.Failed {
		log.Error().Err(f.Err).Str("file", f.Path).Msg("An error occurred while writing the file")
	}

	if cfg.GradeBookOn() {
		if err := accrue(opts, now, &res); err != nil {
			return res, err
		}
	}

	if len(res.Failed) > 0 {
		errs := make([]error, len(res.Failed))
		for i, f := range res.Failed {
			errs[i] = f
		}
		return res, errors.Join(errs...)
	}
	return res, nil
}

func accrue(opts Options, now func() time.Time, res *Result) error {
	cfg := opts.Config
	log := opts.Log

	ledgerPath := storage.LedgerPath(cfg.OutputDir)
	ledger, err := storage.LoadLedger(ledgerPath)
	if err != nil {
		log.Warn().Err(err).Msg("Could not read ledger; repeated runs will not be detected")
		ledger = model.LedgerFile{}
	}
	if prev := storage.FindApplied(ledger, cfg.CourseName, cfg.AssignmentName, cfg.Deadline, cfg.GradeBookFile); prev != nil {
		res.Previous = prev
		if opts.SkipApplied {
			log.Warn().Str("applied_at", prev.AppliedAt.Format(time.RFC3339)).Msg("Grade book already updated for this assignment; skipping merge")
			res.Skipped = true
			return nil
		}
		log.Warn().Str("applied_at", prev.AppliedAt.Format(time.RFC3339)).Msg("Grade book already updated for this assignment; penalty days will be added again")
	}

	book, err := storage.Load(cfg.GradeBookFile)
	if err != nil {
		return err
	}
	merged, err := gradebook.MergePenalties(book, cfg.PersonalDaysColumn, res.Records)
	if err != nil {
		return fmt.Errorf("updating grade book %s: %w", cfg.GradeBookFile, err)
	}
	res.Merge = &merged
	for _, u := range merged.Unmatched {
		log.Warn().Str("student", u.Name).Msg("Student not found in grade book")
	}

	path := filepath.Join(cfg.OutputDir, report.FileNames(cfg.CourseName, cfg.AssignmentName, "csv").GradeBook)
	if err := storage.SaveCSV(path, merged.Table); err != nil {
		we := apperrors.WriteError{Path: path, Err: err}
		log.Error().Err(err).Str("file", path).Msg("An error occurred while writing the file")
		res.Failed = append(res.Failed, we)
		return nil
	}
	res.Written = append(res.Written, path)

	entry := model.LedgerEntry{
		ID:         timecalc.GenerateID(now()),
		Course:     cfg.CourseName,
		Assignment: cfg.AssignmentName,
		Deadline:   cfg.Deadline,
		GradeBook:  cfg.GradeBookFile,
		AppliedAt:  now(),
		Students:   merged.Updated,
	}
	if err := storage.AppendLedger(ledgerPath, entry); err != nil {
		log.Warn().Err(err).Msg("Could not record grade book update in ledger")
	}
	return nil
}
