/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/fulmenhq/licet/pkg/config"
)

const sampleSnapshot = `{
  "project": "demo",
  "version": "1.0.0",
  "dependencies": [
    {
      "group": "dev.lunary",
      "name": "core",
      "version": "1.2.3",
      "projectUrl": "https://example.com/core",
      "licenses": [
        {"name": "Apache-2.0", "url": "https://www.apache.org/licenses/LICENSE-2.0"}
      ]
    },
    {
      "group": "dev.lunary",
      "name": "util",
      "licenses": [{"name": "MIT"}]
    }
  ]
}`

// chdirTemp moves the test into a fresh directory so project config lookup
// and relative output paths stay isolated.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("failed to restore working directory: %v", err)
		}
	})
	return dir
}

func writeSnapshot(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "licenses.json")
	if err := os.WriteFile(path, []byte(sampleSnapshot), 0o644); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}
	return path
}

// newTestRoot builds an isolated command tree so flag state never leaks
// between test executions.
func newTestRoot() *cobra.Command {
	cmd := newRootCommand()
	cmd.AddCommand(newRenderCommand(), newCheckCommand(), newValidateCommand(), newVersionCommand())
	return cmd
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newTestRoot()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	dir := chdirTemp(t)
	snap := writeSnapshot(t, dir)

	_, err := execute(t, "render", "--snapshot", snap, "--output-dir", "out")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "out", "index.json"))
	if err != nil {
		t.Fatalf("failed to read artifact: %v", err)
	}
	var rep struct {
		Dependencies []map[string]any `json:"dependencies"`
	}
	if err := json.Unmarshal(data, &rep); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if len(rep.Dependencies) != 2 {
		t.Fatalf("dependencies = %d, want 2", len(rep.Dependencies))
	}
	if rep.Dependencies[0]["moduleName"] != "dev.lunary:core" {
		t.Errorf("first row = %v, want dev.lunary:core", rep.Dependencies[0]["moduleName"])
	}
}

func TestRenderCommandMultipleFormats(t *testing.T) {
	dir := chdirTemp(t)
	snap := writeSnapshot(t, dir)

	_, err := execute(t, "render", "--snapshot", snap, "--output-dir", "out",
		"--format", "json,csv,markdown", "--file-name", "report.json")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, name := range []string{"report.json", "index.csv", "index.md"} {
		if _, err := os.Stat(filepath.Join(dir, "out", name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}
}

func TestRenderCommandExclude(t *testing.T) {
	dir := chdirTemp(t)
	snap := writeSnapshot(t, dir)

	_, err := execute(t, "render", "--snapshot", snap, "--output-dir", "out",
		"--exclude", "dev.lunary:util")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "out", "index.json"))
	if err != nil {
		t.Fatalf("failed to read artifact: %v", err)
	}
	if strings.Contains(string(data), "dev.lunary:util") {
		t.Error("excluded module still present in report")
	}
}

func TestRenderCommandAllLicenses(t *testing.T) {
	dir := chdirTemp(t)
	snap := writeSnapshot(t, dir)

	_, err := execute(t, "render", "--snapshot", snap, "--output-dir", "out", "--all-licenses")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "out", "index.json"))
	if err != nil {
		t.Fatalf("failed to read artifact: %v", err)
	}
	if !strings.Contains(string(data), "moduleLicenses") {
		t.Error("all-licenses render should emit moduleLicenses arrays")
	}
}

func TestRenderCommandMissingSnapshot(t *testing.T) {
	chdirTemp(t)

	if _, err := execute(t, "render"); err == nil {
		t.Fatal("expected error without --snapshot")
	}
}

func TestResolveRenderOptionsFlagOverrides(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.Dir = "from-config"
	cfg.Output.Formats = []string{"json", "html"}

	cmd := &cobra.Command{Use: "render"}
	cmd.Flags().String("snapshot", "", "")
	cmd.Flags().String("output-dir", "", "")
	cmd.Flags().String("file-name", "", "")
	cmd.Flags().Bool("all-licenses", false, "")
	cmd.Flags().StringSlice("format", nil, "")
	cmd.Flags().StringArray("exclude", nil, "")
	cmd.Flags().StringArray("import", nil, "")
	cmd.Flags().Bool("normalize", false, "")

	if err := cmd.ParseFlags([]string{"--snapshot", "s.json", "--output-dir", "from-flag", "--format", "csv"}); err != nil {
		t.Fatalf("flag parse failed: %v", err)
	}

	opts := resolveRenderOptions(cfg, cmd.Flags())
	if opts.outputDir != "from-flag" {
		t.Errorf("outputDir = %q, want flag value", opts.outputDir)
	}
	if len(opts.formats) != 1 || opts.formats[0] != "csv" {
		t.Errorf("formats = %v, want [csv]", opts.formats)
	}
	if opts.fileName != cfg.Output.FileName {
		t.Errorf("fileName = %q, want config default %q", opts.fileName, cfg.Output.FileName)
	}
}
