package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Tiliavir/latecalc/internal/lateness"
	"github.com/Tiliavir/latecalc/internal/storage"
	"github.com/Tiliavir/latecalc/internal/timecalc"
	apperrors "github.com/Tiliavir/latecalc/pkg/errors"
)

// Config is the policy for one assignment run, stored as YAML.
type Config struct {
	Deadline           string          `yaml:"deadline"`
	ZipFileName        string          `yaml:"zip_file_name"`
	GradeBookFile      string          `yaml:"grade_book_csv_input_file_name"`
	CourseName         string          `yaml:"course_name"`
	AssignmentName     string          `yaml:"assignment_name"`
	PersonalDaysColumn int             `yaml:"personal_days_column_id"`
	LateWindow         float64         `yaml:"late_window"`
	FilterLabel        string          `yaml:"filter_label"`
	OutputFormat       string          `yaml:"output_format"`
	EarlyOffsetCounts  *bool           `yaml:"early_offset_counts"`
	GradeBookEnabled   *bool           `yaml:"grade_book_enabled"`
	Labels             lateness.Labels `yaml:"labels"`
	OutputDir          string          `yaml:"output_dir"`
	ExtractDir         string          `yaml:"extract_dir"`
	Logging            LoggingConfig   `yaml:"logging"`

	// DeadlineTime is Deadline parsed by Validate.
	DeadlineTime time.Time `yaml:"-"`
}

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

const (
	// DefaultPath is used when no config file is given.
	DefaultPath = "config.yml"
	// EnvPath overrides DefaultPath.
	EnvPath = "LATECALC_CONFIG"
)

var requiredKeys = []string{
	"deadline",
	"zip_file_name",
	"course_name",
	"assignment_name",
	"late_window",
	"filter_label",
	"output_format",
}

var gradeBookKeys = []string{
	"grade_book_csv_input_file_name",
	"personal_days_column_id",
}

// ResolvePath picks the config file: explicit argument, then $LATECALC_CONFIG,
// then DefaultPath. fallback reports whether DefaultPath was chosen.
func ResolvePath(arg string) (path string, fallback bool) {
	if arg != "" {
		return arg, false
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env, false
	}
	return DefaultPath, true
}

// Load reads and validates the config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, fmt.Errorf("configuration file not found: %s", path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates YAML config data.
func Parse(data []byte) (Config, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, apperrors.ConfigError{Field: "(file)", Message: fmt.Sprintf("invalid YAML: %v", err)}
	}
	if err := requireKeys(raw, requiredKeys); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, apperrors.ConfigError{Field: "(file)", Message: fmt.Sprintf("invalid value: %v", err)}
	}
	cfg.applyDefaults()

	if cfg.GradeBookOn() {
		if err := requireKeys(raw, gradeBookKeys); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func requireKeys(raw map[string]interface{}, keys []string) error {
	for _, k := range keys {
		if v, ok := raw[k]; !ok || v == nil {
			return apperrors.ConfigError{Field: k, Message: "missing required configuration input"}
		}
	}
	return nil
}

// applyDefaults fills zero-value fields with built-in defaults so callers
// always get a usable Config even if the file only sets required keys.
func (c *Config) applyDefaults() {
	if c.EarlyOffsetCounts == nil {
		v := true
		c.EarlyOffsetCounts = &v
	}
	if c.GradeBookEnabled == nil {
		v := true
		c.GradeBookEnabled = &v
	}
	c.Labels = c.Labels.WithDefaults()
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
}

// Validate checks field values and parses the deadline.
func (c *Config) Validate() error {
	t, err := timecalc.ParseDeadline(c.Deadline)
	if err != nil {
		return apperrors.ConfigError{Field: "deadline", Value: c.Deadline, Message: "must be formatted as YYYY-MM-DD HH:MM"}
	}
	c.DeadlineTime = t

	if c.LateWindow < 0 {
		return apperrors.ConfigError{Field: "late_window", Value: c.LateWindow, Message: "must not be negative"}
	}
	if _, err := storage.Extension(c.OutputFormat); err != nil {
		return apperrors.ConfigError{Field: "output_format", Value: c.OutputFormat, Message: "supported formats are 'csv' and 'excel'"}
	}
	if err := c.Labels.Validate(); err != nil {
		return apperrors.ConfigError{Field: "labels", Message: err.Error()}
	}
	if _, ok := c.Labels.Lookup(c.FilterLabel); !ok {
		return apperrors.ConfigError{
			Field:   "filter_label",
			Value:   c.FilterLabel,
			Message: fmt.Sprintf("must be one of %q, %q, %q", c.Labels.OverFull, c.Labels.Full, c.Labels.Available),
		}
	}
	for _, f := range []struct{ field, value string }{
		{"zip_file_name", c.ZipFileName},
		{"course_name", c.CourseName},
		{"assignment_name", c.AssignmentName},
	} {
		if f.value == "" {
			return apperrors.ConfigError{Field: f.field, Message: "must not be empty"}
		}
	}
	if c.GradeBookOn() {
		if c.GradeBookFile == "" {
			return apperrors.ConfigError{Field: "grade_book_csv_input_file_name", Message: "must not be empty"}
		}
		if c.PersonalDaysColumn < 0 {
			return apperrors.ConfigError{Field: "personal_days_column_id", Value: c.PersonalDaysColumn, Message: "must not be negative"}
		}
	}
	return nil
}

// GradeBookOn reports whether the grade book is to be updated.
func (c Config) GradeBookOn() bool {
	return c.GradeBookEnabled == nil || *c.GradeBookEnabled
}

// EarlyCounts reports whether early submissions keep their negative offset.
func (c Config) EarlyCounts() bool {
	return c.EarlyOffsetCounts == nil || *c.EarlyOffsetCounts
}

// Policy returns the classification parameters.
func (c Config) Policy() lateness.Policy {
	return lateness.Policy{
		Deadline:           c.DeadlineTime,
		GraceWindowMinutes: c.LateWindow,
		EarlyOffsetCounts:  c.EarlyCounts(),
	}
}

// WriteDefault writes the annotated config template to path. An existing file
// is never overwritten.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(Template), 0o644); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
