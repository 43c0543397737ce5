/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePolicy(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "policy.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write policy: %v", err)
	}
	return path
}

func TestCheckCommandCompliant(t *testing.T) {
	dir := chdirTemp(t)
	snap := writeSnapshot(t, dir)
	pol := writePolicy(t, dir, "licenses:\n  allowed: [Apache-2.0, MIT]\n  unknown: allow\n")

	out, err := execute(t, "check", "--snapshot", snap, "--policy", pol)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, "comply") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestCheckCommandIssuesWithFailOnNever(t *testing.T) {
	dir := chdirTemp(t)
	snap := writeSnapshot(t, dir)
	pol := writePolicy(t, dir, "licenses:\n  forbidden: [MIT]\n  unknown: allow\n")

	// fail-on never reports issues without failing the command.
	out, err := execute(t, "check", "--snapshot", snap, "--policy", pol, "--fail-on", "never")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, "dev.lunary:util") || !strings.Contains(out, "forbidden") {
		t.Errorf("expected forbidden-license issue in output, got: %q", out)
	}
}

func TestCheckCommandJSONOutput(t *testing.T) {
	dir := chdirTemp(t)
	snap := writeSnapshot(t, dir)
	pol := writePolicy(t, dir, "licenses:\n  forbidden: [MIT]\n  unknown: allow\n")

	out, err := execute(t, "check", "--snapshot", snap, "--policy", pol, "--fail-on", "never", "--json")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, `"severity": "high"`) {
		t.Errorf("expected JSON issue list, got: %q", out)
	}
}

func TestCheckCommandMissingPolicy(t *testing.T) {
	dir := chdirTemp(t)
	snap := writeSnapshot(t, dir)

	if _, err := execute(t, "check", "--snapshot", snap); err == nil {
		t.Fatal("expected error without --policy")
	}
}

func TestValidateCommandValid(t *testing.T) {
	dir := chdirTemp(t)
	snap := writeSnapshot(t, dir)

	out, err := execute(t, "validate", "--snapshot", snap)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !strings.Contains(out, "valid snapshot") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestValidateCommandMissingFlag(t *testing.T) {
	chdirTemp(t)

	if _, err := execute(t, "validate"); err == nil {
		t.Fatal("expected error without --snapshot")
	}
}
