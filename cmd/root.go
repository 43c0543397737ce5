/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package cmd

import (
	"os"

	"github.com/fulmenhq/licet/internal/ops"
	"github.com/fulmenhq/licet/pkg/buildinfo"
	"github.com/fulmenhq/licet/pkg/exitcode"
	"github.com/fulmenhq/licet/pkg/logger"
	"github.com/spf13/cobra"
)

// newRootCommand creates a fresh root command instance.
// This factory pattern allows tests to create isolated command trees without shared state.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "licet",
		Short: "Dependency license report renderer",
		Long: `Licet turns collected dependency license facts into structured reports.
It reads an already-assembled snapshot file and renders it as JSON (the
canonical artifact) plus optional csv, xml, html, markdown, and text views.

Examples:
   licet render --snapshot licenses.json          # Render reports/licenses/index.json
   licet render --snapshot licenses.json --all-licenses --format json,html
   licet check --snapshot licenses.json --policy policy.yaml
   licet validate --snapshot licenses.json        # Schema validation only`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			initializeLogger(cmd)
		},
	}

	// Add global flags
	cmd.PersistentFlags().String("log-level", "info", "Set log level (trace|debug|info|warn|error)")
	cmd.PersistentFlags().Bool("json", false, "Output results and logs in JSON format")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	// Wire Cobra's built-in --version using licet's binary version
	cmd.Version = buildinfo.BinaryVersion
	cmd.SetVersionTemplate("licet {{.Version}}\n")

	// Grouped help by command group (Report → Compliance → Support)
	cmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		reg := ops.GetRegistry()
		cmd.Println(cmd.Long)
		cmd.Println()
		cmd.Println("Report Commands:")
		for _, c := range reg.GetCommandsByGroup(ops.GroupReport) {
			cmd.Printf("  %-12s %s\n", c.Name, c.Description)
		}
		cmd.Println()
		cmd.Println("Compliance Commands:")
		for _, c := range reg.GetCommandsByGroup(ops.GroupCompliance) {
			cmd.Printf("  %-12s %s\n", c.Name, c.Description)
		}
		cmd.Println()
		cmd.Println("Support Commands:")
		for _, c := range reg.GetCommandsByGroup(ops.GroupSupport) {
			cmd.Printf("  %-12s %s\n", c.Name, c.Description)
		}
		cmd.Println()
		cmd.Println("Flags:")
		cmd.Print(cmd.UsageString())
	})

	return cmd
}

// registerSubcommands adds all subcommands to the root command.
// This is called from init() for production and can be called explicitly in tests.
func registerSubcommands(cmd *cobra.Command) {
	cmd.AddCommand(renderCmd)
	cmd.AddCommand(checkCmd)
	cmd.AddCommand(validateCmd)
	cmd.AddCommand(versionCmd)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCommand()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		logger.Error("Command execution failed", logger.Err(err))
		os.Exit(exitcode.GeneralError)
	}
}

func init() {
	// Register all subcommands with the production rootCmd
	registerSubcommands(rootCmd)
}

// initializeLogger sets up the logger based on command flags
func initializeLogger(cmd *cobra.Command) {
	logLevelStr, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("json")
	noColor, _ := cmd.Flags().GetBool("no-color")

	config := logger.Config{
		Level:     logger.ParseLevel(logLevelStr),
		UseColor:  !noColor,
		JSON:      jsonLogs,
		Component: "licet",
	}

	if err := logger.Initialize(config); err != nil {
		// Fallback to stderr
		if _, writeErr := os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n"); writeErr != nil {
			// Best effort: nothing else we can do here
			_ = writeErr
		}
		os.Exit(exitcode.ConfigError)
	}
}
