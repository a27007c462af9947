package model

import "time"

// Submission is the most recent hand-in of one student.
type Submission struct {
	StudentName string
	SubmittedAt time.Time
}

// LatenessRecord is the classification of one student's submission against a
// deadline and grace window.
type LatenessRecord struct {
	StudentName    string        `json:"student_name"`
	SubmittedAt    time.Time     `json:"-"`
	SubmissionTime string        `json:"submission_time"`
	Offset         time.Duration `json:"-"`
	OffsetDisplay  string        `json:"late_duration"`
	Status         Status        `json:"status"`
	// PenaltyDays is unclamped; merging into a grade book floors it at zero.
	PenaltyDays int `json:"late_days"`
}
