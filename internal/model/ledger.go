package model

import "time"

// LedgerEntry records one grade-book merge so repeated runs for the same
// assignment can be detected.
type LedgerEntry struct {
	ID         string    `json:"id"`
	Course     string    `json:"course"`
	Assignment string    `json:"assignment"`
	Deadline   string    `json:"deadline"`
	GradeBook  string    `json:"grade_book"`
	AppliedAt  time.Time `json:"applied_at"`
	Students   int       `json:"students"`
}

// LedgerFile is the top-level structure of the ledger JSON file.
type LedgerFile struct {
	Entries []LedgerEntry `json:"entries"`
}
