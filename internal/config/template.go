package config

// Template is the annotated config written by `latecalc init`.
const Template = `# latecalc configuration
#
# Computes lateness for one assignment from a submission archive and adds
# the resulting penalty days to a grade book.

# ── Assignment ───────────────────────────────────────────────────────────────
course_name: CS101
assignment_name: HW1

# Deadline in local time, formatted YYYY-MM-DD HH:MM.
deadline: "2024-03-01 23:59"

# Minutes past the deadline that are not penalized yet.
late_window: 30

# When false, early submissions are reported as exactly on time (0h 0m).
early_offset_counts: true

# ── Inputs ───────────────────────────────────────────────────────────────────
# Archive of submission folders named "{id} - {name} - {Mon D, YYYY HMM AM}".
zip_file_name: submissions.zip

# Directory the archive is extracted to. Leave empty for a temporary
# directory that is removed after the run.
extract_dir: ""

# ── Reports ──────────────────────────────────────────────────────────────────
# csv or excel
output_format: excel
output_dir: "."

# Status labels. The legacy vocabulary is:
#   over_full: LATE / full: LATE (within offset) / available: EARLY
labels:
  over_full: Over-Full
  full: Full
  available: Available

# Rows with this label are written to the late submissions report.
# Must be one of the labels above.
filter_label: Over-Full

# ── Grade book ───────────────────────────────────────────────────────────────
grade_book_enabled: true
# CSV export of the grade book (.xlsx is read as well). Needs "First Name"
# and "Last Name" columns.
grade_book_csv_input_file_name: grade_book.csv
# Zero-based position for a new "Personal Days Used" column. Ignored when the
# grade book already has one.
personal_days_column_id: 3

# ── Logging ──────────────────────────────────────────────────────────────────
logging:
  # debug, info, warn or error
  level: info
  # console or json
  format: console
`
