/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fulmenhq/licet/internal/ops"
	"github.com/fulmenhq/licet/pkg/exitcode"
	"github.com/fulmenhq/licet/pkg/snapshot"
)

// newValidateCommand creates a fresh validate command instance.
func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a snapshot file against the input schema",
		Long: `Validate checks a snapshot file against the embedded JSON schema and
lists every violation. No report is rendered.`,
		RunE: runValidate,
	}

	cmd.Flags().String("snapshot", "", "Path to the license facts snapshot (JSON or YAML)")

	return cmd
}

// validateCmd represents the validate command
var validateCmd = newValidateCommand()

func init() {
	if err := ops.RegisterCommand("validate", ops.GroupCompliance, validateCmd, "Validate a snapshot file against the input schema"); err != nil {
		panic(fmt.Sprintf("Failed to register validate command: %v", err))
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	snapshotPath, _ := cmd.Flags().GetString("snapshot")
	if snapshotPath == "" {
		return fmt.Errorf("--snapshot is required")
	}

	violations, err := snapshot.ValidateFile(snapshotPath)
	if err != nil {
		return err
	}
	if len(violations) == 0 {
		cmd.Printf("✅ %s is a valid snapshot\n", snapshotPath)
		return nil
	}

	cmd.Printf("❌ %s has %d schema violation(s):\n", snapshotPath, len(violations))
	for _, v := range violations {
		cmd.Printf("  - %s\n", v)
	}
	os.Exit(exitcode.ValidationError)
	return nil
}
