/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/fulmenhq/licet/internal/gitmeta"
	"github.com/fulmenhq/licet/internal/ops"
	"github.com/fulmenhq/licet/pkg/buildinfo"
)

// newVersionCommand creates a fresh version command instance.
func newVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE:  runVersion,
	}

	cmd.Flags().Bool("extended", false, "Include runtime and git details")

	return cmd
}

// versionCmd represents the version command
var versionCmd = newVersionCommand()

func init() {
	if err := ops.RegisterCommand("version", ops.GroupSupport, versionCmd, "Show version information"); err != nil {
		panic(fmt.Sprintf("Failed to register version command: %v", err))
	}
}

// versionInfo is the version report surface for both text and JSON output.
type versionInfo struct {
	Version       string `json:"version"`
	ModuleVersion string `json:"moduleVersion,omitempty"`
	GoVersion     string `json:"goVersion,omitempty"`
	Platform      string `json:"platform,omitempty"`
	GitCommit     string `json:"gitCommit,omitempty"`
	GitBranch     string `json:"gitBranch,omitempty"`
	GitDirty      bool   `json:"gitDirty,omitempty"`
}

func runVersion(cmd *cobra.Command, args []string) error {
	jsonOut, _ := cmd.Flags().GetBool("json")
	extended, _ := cmd.Flags().GetBool("extended")

	info := versionInfo{Version: buildinfo.BinaryVersion}
	if extended {
		info.ModuleVersion = buildinfo.ModuleVersion()
		info.GoVersion = runtime.Version()
		info.Platform = runtime.GOOS + "/" + runtime.GOARCH
		if p := gitmeta.Resolve("."); p != nil {
			info.GitCommit = p.Commit
			info.GitBranch = p.Branch
			info.GitDirty = p.Dirty
		}
	}

	if jsonOut {
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode version info: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	cmd.Printf("licet %s\n", info.Version)
	if extended {
		if info.ModuleVersion != "" {
			cmd.Printf("  module:   %s\n", info.ModuleVersion)
		}
		cmd.Printf("  go:       %s\n", info.GoVersion)
		cmd.Printf("  platform: %s\n", info.Platform)
		if info.GitCommit != "" {
			dirty := ""
			if info.GitDirty {
				dirty = " (dirty)"
			}
			cmd.Printf("  git:      %s @ %s%s\n", info.GitBranch, info.GitCommit, dirty)
		}
	}
	return nil
}
