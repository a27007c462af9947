package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/latecalc/internal/grader"
	"github.com/Tiliavir/latecalc/internal/lateness"
	"github.com/Tiliavir/latecalc/internal/logger"
	"github.com/Tiliavir/latecalc/internal/model"
	"github.com/Tiliavir/latecalc/internal/report"
	"github.com/Tiliavir/latecalc/internal/storage"
	"github.com/Tiliavir/latecalc/internal/table"
	"github.com/Tiliavir/latecalc/internal/ui"
	apperrors "github.com/Tiliavir/latecalc/pkg/errors"
)

var (
	reportFormat   string
	reportFiltered bool
)

var reportCmd = &cobra.Command{
	Use:   "report [config.yml]",
	Short: "Print the lateness report without writing files",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "md", "Output format: md, csv, json")
	reportCmd.Flags().BoolVar(&reportFiltered, "filtered", false, "Only show rows matching filter_label")
}

// reportRow is the JSON shape of one report line.
type reportRow struct {
	StudentName    string `json:"student_name"`
	SubmissionTime string `json:"submission_time"`
	LateDuration   string `json:"late_duration"`
	LateFlag       string `json:"late_flag"`
	LateDays       int    `json:"late_days"`
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	records, err := grader.Collect(cfg, logger.Get())
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return apperrors.ErrEmptyResult
	}
	if reportFiltered {
		records = filterRecords(records, cfg.Labels, cfg.FilterLabel)
	}

	out := cmd.OutOrStdout()
	switch reportFormat {
	case "csv":
		return storage.WriteCSV(out, report.Build(records, cfg.Labels))
	case "json":
		rows := make([]reportRow, 0, len(records))
		for _, r := range report.Sorted(records) {
			rows = append(rows, reportRow{
				StudentName:    r.StudentName,
				SubmissionTime: r.SubmissionTime,
				LateDuration:   r.OffsetDisplay,
				LateFlag:       cfg.Labels.Label(r.Status),
				LateDays:       r.PenaltyDays,
			})
		}
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	default: // md
		styles := ui.DefaultStyles()
		styles.Highlight = func(r table.Row) bool { return r[report.ColLateFlag] == cfg.FilterLabel }
		title := fmt.Sprintf("%s %s – deadline %s, grace %gm", cfg.CourseName, cfg.AssignmentName, cfg.Deadline, cfg.LateWindow)
		fmt.Fprint(out, ui.View(title, report.Build(records, cfg.Labels), styles))
		counts := grader.Count(records)
		fmt.Fprintln(out, "--------------------------------")
		for _, s := range model.Statuses {
			fmt.Fprintf(out, "%-20s%d\n", cfg.Labels.Label(s), counts[s])
		}
	}
	return nil
}

func filterRecords(records map[string]model.LatenessRecord, labels lateness.Labels, label string) map[string]model.LatenessRecord {
	out := map[string]model.LatenessRecord{}
	for name, r := range records {
		if labels.Label(r.Status) == label {
			out[name] = r
		}
	}
	return out
}
