// Package lateness classifies submission times against a deadline and a
// grace window and computes penalty days.
package lateness

import (
	"time"

	"github.com/Tiliavir/latecalc/internal/model"
	"github.com/Tiliavir/latecalc/internal/timecalc"
)

// Policy holds the deadline parameters a classification runs against.
type Policy struct {
	Deadline time.Time
	// GraceWindowMinutes is the number of minutes past the deadline that are
	// not yet penalized. Must be non-negative.
	GraceWindowMinutes float64
	// EarlyOffsetCounts keeps negative offsets for early submissions. When
	// false, early submissions are treated as exactly on time.
	EarlyOffsetCounts bool
}

// Classify returns one record per student. Submissions are expected to be
// deduplicated already; if a student appears twice the later timestamp wins.
// An empty input yields an empty, non-nil map.
func Classify(p Policy, submissions []model.Submission) map[string]model.LatenessRecord {
	records := make(map[string]model.LatenessRecord, len(submissions))
	for _, s := range submissions {
		if prev, ok := records[s.StudentName]; ok && !s.SubmittedAt.After(prev.SubmittedAt) {
			continue
		}
		records[s.StudentName] = p.Record(s)
	}
	return records
}

// Record classifies a single submission.
func (p Policy) Record(s model.Submission) model.LatenessRecord {
	offset := s.SubmittedAt.Sub(p.Deadline)
	if !p.EarlyOffsetCounts && offset < 0 {
		offset = 0
	}
	grace := timecalc.Minutes(p.GraceWindowMinutes)

	return model.LatenessRecord{
		StudentName:    s.StudentName,
		SubmittedAt:    s.SubmittedAt,
		SubmissionTime: s.SubmittedAt.Format(timecalc.DisplayLayout),
		Offset:         offset,
		OffsetDisplay:  timecalc.FormatOffset(offset),
		Status:         StatusFor(offset.Seconds()/60, p.GraceWindowMinutes),
		PenaltyDays:    timecalc.FloorDays(offset-grace) + 1,
	}
}

// StatusFor maps an offset in minutes to a status. Every input is classified:
// beyond the window is over-full, exactly on it is full, anything else
// (on time, early, or late within the window) is available.
func StatusFor(totalMinutes, graceWindowMinutes float64) model.Status {
	switch {
	case totalMinutes > graceWindowMinutes:
		return model.StatusOverFull
	case totalMinutes == graceWindowMinutes:
		return model.StatusFull
	default:
		return model.StatusAvailable
	}
}
