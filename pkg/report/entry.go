// Package report shapes collected license facts into the final report
// structure and renders it in the supported output formats.
package report

// Entry is one row of the dependencies section. The two concrete shapes are
// SingleEntry (one representative license) and MultiEntry (every discovered
// license); they are distinct types rather than one loosely-filled mapping.
type Entry interface {
	// Name returns the "{group}:{name}" identity the section is sorted by.
	Name() string
}

// SingleEntry is the single-license-mode row. Every field except ModuleName
// is optional and omitted from JSON when blank.
type SingleEntry struct {
	ModuleName       string `json:"moduleName"`
	ModuleURL        string `json:"moduleUrl,omitempty"`
	ModuleVersion    string `json:"moduleVersion,omitempty"`
	ModuleLicense    string `json:"moduleLicense,omitempty"`
	ModuleLicenseURL string `json:"moduleLicenseUrl,omitempty"`
}

func (e SingleEntry) Name() string { return e.ModuleName }

// LicenseRef is one discovered license in a MultiEntry.
type LicenseRef struct {
	ModuleLicense    string `json:"moduleLicense,omitempty"`
	ModuleLicenseURL string `json:"moduleLicenseUrl,omitempty"`
}

// MultiEntry is the all-licenses-mode row.
type MultiEntry struct {
	ModuleName     string       `json:"moduleName"`
	ModuleVersion  string       `json:"moduleVersion,omitempty"`
	ModuleURLs     []string     `json:"moduleUrls,omitempty"`
	ModuleLicenses []LicenseRef `json:"moduleLicenses,omitempty"`
}

func (e MultiEntry) Name() string { return e.ModuleName }

// BundleMember is one pre-resolved dependency inside an imported bundle row.
type BundleMember struct {
	ModuleName       string `json:"moduleName"`
	ModuleURL        string `json:"moduleUrl,omitempty"`
	ModuleVersion    string `json:"moduleVersion,omitempty"`
	ModuleLicense    string `json:"moduleLicense,omitempty"`
	ModuleLicenseURL string `json:"moduleLicenseUrl,omitempty"`
}

// BundleEntry is one row of the importedModules section. Members stay an
// ordered array; an empty bundle drops the dependencies key entirely.
type BundleEntry struct {
	ModuleName   string         `json:"moduleName"`
	Dependencies []BundleMember `json:"dependencies,omitempty"`
}
