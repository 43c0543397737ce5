// Package policy evaluates rendered license facts against an allow/forbid
// policy. Policies are written as simple YAML and transpiled to Rego for
// evaluation by embedded OPA.
package policy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/open-policy-agent/opa/v1/rego"
	"gopkg.in/yaml.v3"

	"github.com/fulmenhq/licet/pkg/report"
	"github.com/fulmenhq/licet/pkg/safeio"
)

// Severity classifies a policy issue. Deny rules produce high, warn rules
// produce medium.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
)

// Issue is one policy finding against a rendered dependency row.
type Issue struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Engine holds a transpiled policy ready for evaluation.
type Engine struct {
	regoCode string
}

// NewEngine creates an engine with no policy loaded.
func NewEngine() *Engine {
	return &Engine{}
}

// LoadPolicy reads a YAML policy file and transpiles it to Rego.
func (e *Engine) LoadPolicy(path string) error {
	cleanPath, err := safeio.CleanUserPath(path)
	if err != nil {
		return fmt.Errorf("invalid policy path: %w", err)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to read policy file: %w", err)
	}
	return e.LoadPolicyBytes(data)
}

// LoadPolicyBytes transpiles YAML policy bytes to Rego.
func (e *Engine) LoadPolicyBytes(data []byte) error {
	code, err := transpileYAMLToRego(data)
	if err != nil {
		return err
	}
	e.regoCode = code
	return nil
}

// Evaluate runs the loaded policy against a single-license-mode report and
// returns every issue found. The report is passed to OPA through a JSON
// round trip so the rules see exactly the emitted document shape.
func (e *Engine) Evaluate(ctx context.Context, rep *report.Report) ([]Issue, error) {
	if e.regoCode == "" {
		return nil, fmt.Errorf("no policy loaded")
	}

	raw, err := json.Marshal(rep)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report for evaluation: %w", err)
	}
	var input map[string]interface{}
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, fmt.Errorf("failed to decode report for evaluation: %w", err)
	}

	rs, err := rego.New(
		rego.Query("data.licet.compliance"),
		rego.Input(input),
		rego.Module("policy.rego", e.regoCode),
	).Eval(ctx)
	if err != nil {
		return nil, fmt.Errorf("policy evaluation failed: %w", err)
	}

	var issues []Issue
	for _, result := range rs {
		for _, expr := range result.Expressions {
			doc, ok := expr.Value.(map[string]interface{})
			if !ok {
				continue
			}
			issues = append(issues, collectIssues(doc["deny"], SeverityHigh)...)
			issues = append(issues, collectIssues(doc["warn"], SeverityMedium)...)
		}
	}
	return issues, nil
}

func collectIssues(v interface{}, sev Severity) []Issue {
	msgs, ok := v.([]interface{})
	if !ok {
		return nil
	}
	issues := make([]Issue, 0, len(msgs))
	for _, m := range msgs {
		issues = append(issues, Issue{Severity: sev, Message: fmt.Sprintf("%v", m)})
	}
	return issues
}

// ShouldFail reports whether the issue set crosses the fail-on threshold.
// Recognized thresholds: "high" (default), "medium", "never".
func ShouldFail(issues []Issue, failOn string) bool {
	switch strings.ToLower(strings.TrimSpace(failOn)) {
	case "never":
		return false
	case "medium":
		return len(issues) > 0
	default:
		for _, issue := range issues {
			if issue.Severity == SeverityHigh {
				return true
			}
		}
		return false
	}
}

// policyDoc is the YAML policy surface.
type policyDoc struct {
	Licenses struct {
		Forbidden []string `yaml:"forbidden"`
		Allowed   []string `yaml:"allowed"`
		Unknown   string   `yaml:"unknown"` // allow | warn | deny
	} `yaml:"licenses"`
}

// transpileYAMLToRego converts the YAML policy to a Rego module with deny
// and warn rule sets over input.dependencies rows.
func transpileYAMLToRego(yamlData []byte) (string, error) {
	var doc policyDoc
	if err := yaml.Unmarshal(yamlData, &doc); err != nil {
		return "", fmt.Errorf("failed to parse policy: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("package licet.compliance\n\n")

	if len(doc.Licenses.Forbidden) > 0 {
		buf.WriteString("deny contains msg if {\n")
		buf.WriteString("  dep := input.dependencies[_]\n")
		buf.WriteString("  forbidden := " + formatRegoArray(doc.Licenses.Forbidden) + "\n")
		buf.WriteString("  forbidden[_] == dep.moduleLicense\n")
		buf.WriteString("  msg := sprintf(\"module %s uses forbidden license %s\", [dep.moduleName, dep.moduleLicense])\n")
		buf.WriteString("}\n\n")
	}

	if len(doc.Licenses.Allowed) > 0 {
		buf.WriteString("allowed_license(l) if {\n")
		buf.WriteString("  allowed := " + formatRegoArray(doc.Licenses.Allowed) + "\n")
		buf.WriteString("  allowed[_] == l\n")
		buf.WriteString("}\n\n")
		buf.WriteString("deny contains msg if {\n")
		buf.WriteString("  dep := input.dependencies[_]\n")
		buf.WriteString("  dep.moduleLicense\n")
		buf.WriteString("  not allowed_license(dep.moduleLicense)\n")
		buf.WriteString("  msg := sprintf(\"module %s uses license %s outside the allow list\", [dep.moduleName, dep.moduleLicense])\n")
		buf.WriteString("}\n\n")
	}

	switch strings.ToLower(doc.Licenses.Unknown) {
	case "deny":
		buf.WriteString("deny contains msg if {\n")
		buf.WriteString("  dep := input.dependencies[_]\n")
		buf.WriteString("  not dep.moduleLicense\n")
		buf.WriteString("  msg := sprintf(\"module %s has no license information\", [dep.moduleName])\n")
		buf.WriteString("}\n\n")
	case "warn", "":
		buf.WriteString("warn contains msg if {\n")
		buf.WriteString("  dep := input.dependencies[_]\n")
		buf.WriteString("  not dep.moduleLicense\n")
		buf.WriteString("  msg := sprintf(\"module %s has no license information\", [dep.moduleName])\n")
		buf.WriteString("}\n\n")
	case "allow":
		// unknown licenses pass silently
	default:
		return "", fmt.Errorf("unknown licenses.unknown mode: %s", doc.Licenses.Unknown)
	}

	return buf.String(), nil
}

// formatRegoArray quotes values into a Rego array literal,
// e.g. [GPL-3.0, MIT] -> ["GPL-3.0", "MIT"].
func formatRegoArray(values []string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprintf("%q", v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
