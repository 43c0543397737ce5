package report

import "github.com/fulmenhq/licet/pkg/license"

// Mode selects how license facts collapse into dependency rows.
type Mode int

const (
	// ModeSingle emits one representative license per module (default).
	ModeSingle Mode = iota
	// ModeAll emits every distinct license discovered per module.
	ModeAll
)

// String returns the mode name used in logs and flags.
func (m Mode) String() string {
	if m == ModeAll {
		return "all-licenses"
	}
	return "single-license"
}

// Report is the top-level object. Either section disappears from the output
// when it rendered empty, matching the trimming rule applied to every row.
type Report struct {
	Dependencies    []Entry       `json:"dependencies,omitempty"`
	ImportedModules []BundleEntry `json:"importedModules,omitempty"`
}

// Assemble composes the dependencies and importedModules sections from one
// immutable snapshot of collected facts. Pure transformation: safe to call
// concurrently for distinct output artifacts.
func Assemble(deps []license.ModuleRecord, bundles []license.ImportedModuleBundle, mode Mode) *Report {
	rep := &Report{}
	if mode == ModeAll {
		rep.Dependencies = RenderAll(deps)
	} else {
		rep.Dependencies = RenderSingle(deps)
	}
	if len(rep.Dependencies) == 0 {
		rep.Dependencies = nil
	}
	rep.ImportedModules = RenderBundles(bundles)
	if len(rep.ImportedModules) == 0 {
		rep.ImportedModules = nil
	}
	return rep
}
