package timecalc

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// DeadlineLayout is the configured deadline format (minute precision).
	DeadlineLayout = "2006-01-02 15:04"
	// DisplayLayout renders submission times in reports.
	DisplayLayout = "2006-01-02 15:04:05"

	day = 24 * time.Hour
)

// GenerateID creates a unique ID based on timestamp and a short random suffix.
func GenerateID(t time.Time) string {
	return fmt.Sprintf("%s-%s", t.Format("20060102-150405"), uuid.New().String()[:8])
}

// floorDiv divides a by a positive b, rounding toward negative infinity.
func floorDiv(a, b time.Duration) time.Duration {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// FloorDays returns the number of whole 24-hour periods in d, floored, so
// -19m yields -1 and 24h31m yields 1.
func FloorDays(d time.Duration) int {
	return int(floorDiv(d, day))
}

// FormatOffset renders d as "{H}h {M}m" from elapsed time rather than
// calendar fields. Hours are floored and the minute remainder is always in
// [0, 59], so -19m renders as "-1h 41m".
func FormatOffset(d time.Duration) string {
	h := floorDiv(d, time.Hour)
	m := (d - h*time.Hour) / time.Minute
	return fmt.Sprintf("%dh %dm", h, m)
}

// Minutes converts a fractional minute count to a Duration.
func Minutes(m float64) time.Duration {
	return time.Duration(m * float64(time.Minute))
}

// ParseDeadline parses a naive "YYYY-MM-DD HH:MM" timestamp.
func ParseDeadline(s string) (time.Time, error) {
	return time.Parse(DeadlineLayout, s)
}
