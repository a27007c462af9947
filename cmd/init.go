package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/latecalc/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [config.yml]",
	Short: "Write an annotated config template",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath
	if len(args) > 0 {
		path = args[0]
	}
	if err := config.WriteDefault(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote config template to %s\n", path)
	return nil
}
