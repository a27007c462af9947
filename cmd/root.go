package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/latecalc/internal/config"
	"github.com/Tiliavir/latecalc/internal/logger"
	apperrors "github.com/Tiliavir/latecalc/pkg/errors"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "latecalc",
	Short: "Late Calculator – lateness reports and personal-day accrual for assignments",
	Long: `latecalc reads an assignment policy from a YAML file, extracts the
submission archive, classifies each student's latest submission against the
deadline and grace window, writes a full and a filtered report, and adds the
resulting penalty days to the grade book.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 1 for configuration problems and 2 for everything else.
func exitCode(err error) int {
	if apperrors.IsConfigError(err) {
		return 1
	}
	return 2
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(ledgerCmd)
}

// loadConfig resolves the config path from args, loads it and initializes
// logging from its settings.
func loadConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	path, fallback := config.ResolvePath(arg)
	if fallback {
		fmt.Fprintf(cmd.ErrOrStderr(), "No configuration file provided. Using default: %s\n", path)
	}

	cfg, err := config.Load(path)
	if err != nil {
		logger.Init(levelFor("info"), "console")
		return config.Config{}, err
	}
	logger.Init(levelFor(cfg.Logging.Level), cfg.Logging.Format)
	return cfg, nil
}

func levelFor(level string) string {
	if verbose {
		return "debug"
	}
	return level
}
