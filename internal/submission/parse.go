// Package submission turns submission archive folders into one submission
// per student.
package submission

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Tiliavir/latecalc/internal/model"
)

const (
	separator = " - "
	// stampLayout is applied after a colon has been inserted into the
	// separator-less "HMM" time group.
	stampLayout = "Jan 2, 2006 3:04 PM"
)

// Folder is one parsed archive entry of the form
// "{id} - {name} - {Mon D, YYYY HMM AM}".
type Folder struct {
	ID          string
	StudentName string
	SubmittedAt time.Time
}

// ParseFolderName parses a single archive entry name. ok is false when the
// name does not have exactly three parts; err is set when it does but the
// timestamp is malformed.
func ParseFolderName(name string) (f Folder, ok bool, err error) {
	parts := strings.Split(name, separator)
	if len(parts) != 3 {
		return Folder{}, false, nil
	}
	ts, err := ParseTimestamp(parts[2])
	if err != nil {
		return Folder{}, true, err
	}
	return Folder{ID: parts[0], StudentName: parts[1], SubmittedAt: ts}, true, nil
}

// ParseTimestamp parses stamps like "Mar 2, 2024 1210 AM" or "Mar 2, 2024 915 PM".
// The time group carries no separator: the last two digits are minutes and
// the rest is a 12-hour clock hour.
func ParseTimestamp(s string) (time.Time, error) {
	fields := strings.Fields(s)
	if len(fields) != 5 {
		return time.Time{}, fmt.Errorf("cannot parse submission time %q", s)
	}
	hm := fields[3]
	if len(hm) < 3 || len(hm) > 4 {
		return time.Time{}, fmt.Errorf("cannot parse submission time %q: bad hour/minute group %q", s, hm)
	}
	fields[3] = hm[:len(hm)-2] + ":" + hm[len(hm)-2:]
	t, err := time.Parse(stampLayout, strings.Join(fields, " "))
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse submission time %q: %w", s, err)
	}
	return t, nil
}

// Parse turns archive entry names into one submission per student, keeping
// the latest timestamp when a student submitted more than once. Unparseable
// names are logged and skipped. The result is sorted by student name.
func Parse(names []string, log zerolog.Logger) []model.Submission {
	latest := map[string]time.Time{}
	for _, name := range names {
		f, ok, err := ParseFolderName(name)
		if !ok {
			log.Debug().Str("entry", name).Msg("Skipping entry without submission name format")
			continue
		}
		if err != nil {
			log.Warn().Err(err).Str("entry", name).Msg("Skipping entry with malformed submission time")
			continue
		}
		prev, seen := latest[f.StudentName]
		if !seen || f.SubmittedAt.After(prev) {
			if seen {
				log.Debug().Str("student", f.StudentName).Time("replaced", prev).Time("kept", f.SubmittedAt).Msg("Resubmission overrides earlier submission")
			}
			latest[f.StudentName] = f.SubmittedAt
		}
	}

	subs := make([]model.Submission, 0, len(latest))
	for name, ts := range latest {
		subs = append(subs, model.Submission{StudentName: name, SubmittedAt: ts})
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].StudentName < subs[j].StudentName })
	return subs
}
