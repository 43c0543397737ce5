// Package snapshot loads the already-assembled license facts a render runs
// from. A snapshot file (JSON or YAML) is validated against the embedded
// input schema before any typed record is built; discovery of dependencies
// happens upstream and is out of scope here.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/fulmenhq/licet/internal/assets"
	"github.com/fulmenhq/licet/pkg/license"
	"github.com/fulmenhq/licet/pkg/safeio"
)

// ErrSchemaViolation indicates a snapshot file that failed schema validation.
var ErrSchemaViolation = errors.New("snapshot does not match schema")

// Snapshot is one immutable ProjectData view: everything a render needs.
type Snapshot struct {
	Project         string
	Version         string
	Dependencies    []license.ModuleRecord
	ImportedModules []license.ImportedModuleBundle
}

// wire mirrors the on-disk shape. Kept separate from the typed records so
// the file format can move without touching the render path.
type wire struct {
	Project         string `json:"project"`
	Version         string `json:"version"`
	Dependencies    []struct {
		Group      string                     `json:"group"`
		Name       string                     `json:"name"`
		Version    string                     `json:"version"`
		ProjectURL string                     `json:"projectUrl"`
		Licenses   []license.LicenseCandidate `json:"licenses"`
	} `json:"dependencies"`
	ImportedModules []struct {
		Name    string                   `json:"name"`
		Modules []license.ImportedModule `json:"modules"`
	} `json:"importedModules"`
}

// Load reads, validates, and types a snapshot file. YAML files are
// canonicalized to JSON before validation so both formats share one schema.
func Load(path string) (*Snapshot, error) {
	cleanPath, err := safeio.CleanUserPath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot path: %w", err)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	canonical, err := canonicalJSON(data, filepath.Ext(cleanPath))
	if err != nil {
		return nil, err
	}
	if violations, err := Validate(canonical); err != nil {
		return nil, err
	} else if len(violations) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(violations, "; "))
	}

	var w wire
	if err := json.Unmarshal(canonical, &w); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	snap := &Snapshot{Project: w.Project, Version: w.Version}
	for _, d := range w.Dependencies {
		rec, err := license.NewModuleRecord(d.Group, d.Name)
		if err != nil {
			return nil, fmt.Errorf("dependency %q:%q: %w", d.Group, d.Name, err)
		}
		rec.Version = d.Version
		rec.ProjectURL = d.ProjectURL
		rec.Licenses = d.Licenses
		snap.Dependencies = append(snap.Dependencies, rec)
	}
	for _, b := range w.ImportedModules {
		snap.ImportedModules = append(snap.ImportedModules, license.ImportedModuleBundle{
			Name:    b.Name,
			Modules: b.Modules,
		})
	}
	return snap, nil
}

// Validate checks canonical JSON snapshot bytes against the embedded schema
// and returns one description per violation. A nil error with a non-empty
// slice means the file parsed but does not conform.
func Validate(canonical []byte) ([]string, error) {
	schemaBytes, err := assets.GetSnapshotSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded schema: %w", err)
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewBytesLoader(canonical),
	)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}
	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return violations, nil
}

// ValidateFile loads a snapshot file and reports its schema violations
// without building typed records. Used by the validate command.
func ValidateFile(path string) ([]string, error) {
	cleanPath, err := safeio.CleanUserPath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot path: %w", err)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	canonical, err := canonicalJSON(data, filepath.Ext(cleanPath))
	if err != nil {
		return nil, err
	}
	return Validate(canonical)
}

// canonicalJSON converts YAML input to JSON bytes; JSON input passes through
// after a validity check.
func canonicalJSON(data []byte, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		var tmp any
		if err := yaml.Unmarshal(data, &tmp); err != nil {
			return nil, fmt.Errorf("failed to parse YAML snapshot: %w", err)
		}
		jb, err := json.Marshal(tmp)
		if err != nil {
			return nil, fmt.Errorf("failed to canonicalize snapshot: %w", err)
		}
		return jb, nil
	default:
		if !json.Valid(data) {
			return nil, errors.New("snapshot is not valid JSON")
		}
		return data, nil
	}
}
