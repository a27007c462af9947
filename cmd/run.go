package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/latecalc/internal/grader"
	"github.com/Tiliavir/latecalc/internal/logger"
	"github.com/Tiliavir/latecalc/internal/model"
	"github.com/Tiliavir/latecalc/internal/report"
	"github.com/Tiliavir/latecalc/internal/storage"
)

var runSkipApplied bool

var runCmd = &cobra.Command{
	Use:   "run [config.yml]",
	Short: "Write lateness reports and update the grade book",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runSkipApplied, "skip-applied", false, "Skip the grade book update if the ledger shows it was already applied")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	res, err := grader.Run(grader.Options{
		Config:      cfg,
		SkipApplied: runSkipApplied,
		Log:         logger.Get(),
	})

	out := cmd.OutOrStdout()
	ext, _ := storage.Extension(cfg.OutputFormat)
	names := report.FileNames(cfg.CourseName, cfg.AssignmentName, ext)
	kind := "CSV"
	if cfg.OutputFormat == storage.FormatExcel {
		kind = "Excel"
	}
	for _, path := range res.Written {
		switch filepath.Base(path) {
		case names.Full:
			fmt.Fprintf(out, "%s sheet generated: %s\n", kind, path)
		case names.Filtered:
			fmt.Fprintf(out, "Late submissions %s sheet generated: %s\n", kind, path)
		case names.GradeBook:
			fmt.Fprintf(out, "Updated grade book CSV file generated: %s\n", path)
		}
	}
	if res.Skipped {
		fmt.Fprintf(out, "Grade book not updated: already applied on %s\n", res.Previous.AppliedAt.Format("2006-01-02 15:04"))
	}

	if len(res.Records) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Summary:")
		for _, s := range model.Statuses {
			fmt.Fprintf(out, "  %d %s\n", res.Counts[s], cfg.Labels.Label(s))
		}
		if res.Merge != nil && len(res.Merge.Unmatched) > 0 {
			fmt.Fprintf(out, "  %d not found in grade book\n", len(res.Merge.Unmatched))
		}
	}
	return err
}
