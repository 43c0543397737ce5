// Package license holds the typed records a license report is rendered from
// and the selection logic that picks representative license facts per module.
package license

import (
	"errors"
	"strings"
)

// ErrMissingCoordinates indicates a module record without a group or name.
var ErrMissingCoordinates = errors.New("module record requires group and name")

// LicenseCandidate is one (name, url, projectUrl) triple discovered for a
// module. A module carries several when its metadata is ambiguous or the
// component is genuinely multi-licensed.
type LicenseCandidate struct {
	Name       string `json:"name,omitempty"`
	URL        string `json:"url,omitempty"`
	ProjectURL string `json:"projectUrl,omitempty"`
}

// ModuleRecord identifies one resolved dependency. Identity is group+name;
// records sharing coordinates but differing in version render independently.
type ModuleRecord struct {
	Group      string             `json:"group"`
	Name       string             `json:"name"`
	Version    string             `json:"version,omitempty"`
	ProjectURL string             `json:"projectUrl,omitempty"`
	Licenses   []LicenseCandidate `json:"licenses,omitempty"`
}

// NewModuleRecord builds a validated record. Group and name must be non-blank;
// rendering itself never re-validates and formats whatever the record holds.
func NewModuleRecord(group, name string) (ModuleRecord, error) {
	if strings.TrimSpace(group) == "" || strings.TrimSpace(name) == "" {
		return ModuleRecord{}, ErrMissingCoordinates
	}
	return ModuleRecord{Group: group, Name: name}, nil
}

// Coordinates returns the "{group}:{name}" identity string. It is a pure
// formatting rule: empty parts are formatted as-is, never rejected here.
func (m ModuleRecord) Coordinates() string {
	return m.Group + ":" + m.Name
}

// ImportedModule is one pre-resolved member of an imported bundle. Unlike
// ModuleRecord it carries exactly one license directly, no candidate list.
type ImportedModule struct {
	Name       string `json:"name"`
	ProjectURL string `json:"projectUrl,omitempty"`
	Version    string `json:"version,omitempty"`
	License    string `json:"license,omitempty"`
	LicenseURL string `json:"licenseUrl,omitempty"`
}

// ImportedModuleBundle is a named, ordered group of dependencies imported in
// bulk from an external manifest rather than discovered by graph traversal.
type ImportedModuleBundle struct {
	Name    string           `json:"name"`
	Modules []ImportedModule `json:"modules,omitempty"`
}
