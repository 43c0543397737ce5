/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fulmenhq/licet/internal/ops"
	"github.com/fulmenhq/licet/pkg/config"
	"github.com/fulmenhq/licet/pkg/exitcode"
	"github.com/fulmenhq/licet/pkg/logger"
	"github.com/fulmenhq/licet/pkg/policy"
	"github.com/fulmenhq/licet/pkg/report"
	"github.com/fulmenhq/licet/pkg/snapshot"
)

// newCheckCommand creates a fresh check command instance.
func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate a snapshot against a license policy",
		Long: `Check assembles the report in memory and evaluates it against a YAML
policy. Deny rules produce high-severity issues, warn rules produce medium.
The command exits non-zero when the configured fail-on threshold is crossed.`,
		RunE: runCheck,
	}

	cmd.Flags().String("snapshot", "", "Path to the license facts snapshot (JSON or YAML)")
	cmd.Flags().String("policy", "", "Path to the YAML policy file")
	cmd.Flags().String("fail-on", "", "Issue threshold that fails the command: high, medium, never")

	return cmd
}

// checkCmd represents the check command
var checkCmd = newCheckCommand()

func init() {
	if err := ops.RegisterCommand("check", ops.GroupCompliance, checkCmd, "Evaluate a snapshot against a license policy"); err != nil {
		panic(fmt.Sprintf("Failed to register check command: %v", err))
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadProjectConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	snapshotPath, _ := cmd.Flags().GetString("snapshot")
	policyPath, _ := cmd.Flags().GetString("policy")
	jsonOut, _ := cmd.Flags().GetBool("json")
	failOn := cfg.Policy.FailOn
	if cmd.Flags().Changed("fail-on") {
		failOn, _ = cmd.Flags().GetString("fail-on")
	}
	if policyPath == "" {
		policyPath = cfg.Policy.Path
	}
	if snapshotPath == "" {
		return fmt.Errorf("--snapshot is required")
	}
	if policyPath == "" {
		return fmt.Errorf("--policy is required (or set policy.path in .licet.yaml)")
	}

	snap, err := snapshot.Load(snapshotPath)
	if err != nil {
		return err
	}

	engine := policy.NewEngine()
	if err := engine.LoadPolicy(policyPath); err != nil {
		return err
	}

	// Policies address single-license rows, so check always evaluates the
	// single-mode view regardless of the render configuration.
	rep := report.Assemble(snap.Dependencies, snap.ImportedModules, report.ModeSingle)
	issues, err := engine.Evaluate(cmd.Context(), rep)
	if err != nil {
		return err
	}

	if jsonOut {
		out, err := json.MarshalIndent(issues, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode issues: %w", err)
		}
		cmd.Println(string(out))
	} else if len(issues) == 0 {
		cmd.Printf("✅ %d dependencies comply with %s\n", len(snap.Dependencies), policyPath)
	} else {
		for _, issue := range issues {
			cmd.Printf("[%s] %s\n", issue.Severity, issue.Message)
		}
		cmd.Printf("\n%d issue(s) found\n", len(issues))
	}

	if policy.ShouldFail(issues, failOn) {
		logger.Error("Policy check failed",
			logger.Int("issues", len(issues)),
			logger.String("failOn", failOn))
		os.Exit(exitcode.PolicyViolation)
	}
	return nil
}
