package model

// Status is the outcome of classifying a submission offset against the grace
// window. The zero value is StatusAvailable.
type Status int

const (
	// StatusAvailable covers on-time, early and late-within-grace submissions.
	StatusAvailable Status = iota
	// StatusFull is an offset landing exactly on the grace window boundary.
	StatusFull
	// StatusOverFull is an offset beyond the grace window.
	StatusOverFull
)

// Statuses lists every status in report order.
var Statuses = []Status{StatusOverFull, StatusFull, StatusAvailable}

func (s Status) String() string {
	switch s {
	case StatusOverFull:
		return "over_full"
	case StatusFull:
		return "full"
	default:
		return "available"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
