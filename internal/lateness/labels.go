package lateness

import (
	"fmt"

	"github.com/Tiliavir/latecalc/internal/model"
)

// Labels is the vocabulary used to render statuses in reports. The filtered
// report selects rows by one of these strings.
type Labels struct {
	OverFull  string `yaml:"over_full"`
	Full      string `yaml:"full"`
	Available string `yaml:"available"`
}

// DefaultLabels is the current vocabulary.
var DefaultLabels = Labels{
	OverFull:  "Over-Full",
	Full:      "Full",
	Available: "Available",
}

// LegacyLabels is the vocabulary of earlier grading sheets.
var LegacyLabels = Labels{
	OverFull:  "LATE",
	Full:      "LATE (within offset)",
	Available: "EARLY",
}

// Label returns the display string for s.
func (l Labels) Label(s model.Status) string {
	switch s {
	case model.StatusOverFull:
		return l.OverFull
	case model.StatusFull:
		return l.Full
	default:
		return l.Available
	}
}

// Lookup returns the status rendered as label, if any.
func (l Labels) Lookup(label string) (model.Status, bool) {
	for _, s := range model.Statuses {
		if l.Label(s) == label {
			return s, true
		}
	}
	return 0, false
}

// Validate checks that every label is set and that no two statuses share one.
func (l Labels) Validate() error {
	seen := map[string]model.Status{}
	for _, s := range model.Statuses {
		label := l.Label(s)
		if label == "" {
			return fmt.Errorf("label for %s is empty", s)
		}
		if other, dup := seen[label]; dup {
			return fmt.Errorf("label %q used for both %s and %s", label, other, s)
		}
		seen[label] = s
	}
	return nil
}

// WithDefaults fills empty labels from DefaultLabels.
func (l Labels) WithDefaults() Labels {
	if l.OverFull == "" {
		l.OverFull = DefaultLabels.OverFull
	}
	if l.Full == "" {
		l.Full = DefaultLabels.Full
	}
	if l.Available == "" {
		l.Available = DefaultLabels.Available
	}
	return l
}
