package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/latecalc/internal/model"
	"github.com/Tiliavir/latecalc/internal/storage"
)

var ledgerDir string

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "List grade book updates recorded in an output directory",
	Args:  cobra.NoArgs,
	RunE:  runLedger,
}

func init() {
	ledgerCmd.Flags().StringVar(&ledgerDir, "dir", ".", "Output directory holding the ledger")
}

func runLedger(cmd *cobra.Command, args []string) error {
	lf, err := storage.LoadLedger(storage.LedgerPath(ledgerDir))
	if err != nil {
		return err
	}
	printLedger(cmd.OutOrStdout(), lf.Entries)
	return nil
}

// printLedger groups entries by course and prints them in recorded order.
func printLedger(w io.Writer, entries []model.LedgerEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No grade book updates recorded.")
		return
	}

	var currentCourse string
	for _, e := range entries {
		if e.Course != currentCourse {
			fmt.Fprintln(w, e.Course)
			currentCourse = e.Course
		}
		fmt.Fprintf(w, "%s  %-12s deadline %s  %d students  %s\n",
			e.AppliedAt.Format("2006-01-02 15:04"), e.Assignment, e.Deadline, e.Students, e.GradeBook)
	}
}
