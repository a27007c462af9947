package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tiliavir/latecalc/internal/model"
)

// LedgerPath returns the ledger file location inside an output directory.
func LedgerPath(outputDir string) string {
	return filepath.Join(outputDir, ".latecalc", "ledger.json")
}

// LoadLedger loads the ledger at path. Returns an empty ledger if not found.
func LoadLedger(path string) (model.LedgerFile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return model.LedgerFile{Entries: []model.LedgerEntry{}}, nil
	}
	if err != nil {
		return model.LedgerFile{}, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var lf model.LedgerFile
	if err := json.Unmarshal(data, &lf); err != nil {
		// Back up corrupt file and abort.
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		return model.LedgerFile{}, fmt.Errorf("corrupt JSON in %s (backed up to %s): %w", path, backupPath, err)
	}
	if lf.Entries == nil {
		lf.Entries = []model.LedgerEntry{}
	}
	return lf, nil
}

// SaveLedger atomically writes the ledger to path.
func SaveLedger(path string, lf model.LedgerFile) error {
	data, err := json.MarshalIndent(lf, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}
	return writeAtomic(path, data, 0o600)
}

// AppendLedger adds entry to the ledger at path.
func AppendLedger(path string, entry model.LedgerEntry) error {
	lf, err := LoadLedger(path)
	if err != nil {
		return err
	}
	lf.Entries = append(lf.Entries, entry)
	return SaveLedger(path, lf)
}

// FindApplied returns the most recent entry for the same course, assignment,
// deadline and grade book, or nil.
func FindApplied(lf model.LedgerFile, course, assignment, deadline, gradeBook string) *model.LedgerEntry {
	for i := len(lf.Entries) - 1; i >= 0; i-- {
		e := lf.Entries[i]
		if e.Course == course && e.Assignment == assignment && e.Deadline == deadline && e.GradeBook == gradeBook {
			return &lf.Entries[i]
		}
	}
	return nil
}
