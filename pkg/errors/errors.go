package errors

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyResult       = errors.New("no submissions to report")
	ErrOutOfRange        = errors.New("column index out of range")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrMissingColumn     = errors.New("missing required column")
)

// ConfigError reports a missing or malformed policy field.
type ConfigError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ConfigError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("configuration error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error for field '%s' with value '%v': %s",
		e.Field, e.Value, e.Message)
}

// UnmatchedStudentError is a non-fatal diagnostic: a lateness record had no
// grade-book row with the same display name.
type UnmatchedStudentError struct {
	Name string
}

func (e UnmatchedStudentError) Error() string {
	return fmt.Sprintf("student %s not found in grade book", e.Name)
}

// WriteError wraps a failure to produce one output artifact.
type WriteError struct {
	Path string
	Err  error
}

func (e WriteError) Error() string {
	return fmt.Sprintf("writing %s: %s", e.Path, e.Err.Error())
}

func (e WriteError) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err is, or wraps, a ConfigError.
func IsConfigError(err error) bool {
	var ce ConfigError
	return errors.As(err, &ce)
}
