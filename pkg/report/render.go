package report

import (
	"sort"
	"strings"

	"github.com/fulmenhq/licet/pkg/license"
)

// RenderSingle maps each module record to its single-license-mode row and
// returns the rows sorted ascending by moduleName.
func RenderSingle(deps []license.ModuleRecord) []Entry {
	entries := make([]Entry, 0, len(deps))
	for _, m := range deps {
		url, lic, licURL := license.SelectSingle(m)
		entries = append(entries, SingleEntry{
			ModuleName:       m.Coordinates(),
			ModuleURL:        url,
			ModuleVersion:    strings.TrimSpace(m.Version),
			ModuleLicense:    lic,
			ModuleLicenseURL: licURL,
		})
	}
	sortEntries(entries)
	return entries
}

// RenderAll maps each module record to its all-licenses-mode row, with
// duplicate license pairings collapsed, sorted ascending by moduleName.
func RenderAll(deps []license.ModuleRecord) []Entry {
	entries := make([]Entry, 0, len(deps))
	for _, m := range deps {
		urls, pairs := license.SelectAll(m)
		refs := make([]LicenseRef, 0, len(pairs))
		for _, p := range pairs {
			refs = append(refs, LicenseRef{ModuleLicense: p.Name, ModuleLicenseURL: p.URL})
		}
		entries = append(entries, MultiEntry{
			ModuleName:     m.Coordinates(),
			ModuleVersion:  strings.TrimSpace(m.Version),
			ModuleURLs:     urls,
			ModuleLicenses: refs,
		})
	}
	sortEntries(entries)
	return entries
}

// RenderBundles maps imported bundles to their report rows. Members keep
// their manifest order; the outer list is sorted ascending by bundle name
// with the same comparator and stability rule as the dependencies section.
func RenderBundles(bundles []license.ImportedModuleBundle) []BundleEntry {
	entries := make([]BundleEntry, 0, len(bundles))
	for _, b := range bundles {
		members := make([]BundleMember, 0, len(b.Modules))
		for _, m := range b.Modules {
			members = append(members, BundleMember{
				ModuleName:       strings.TrimSpace(m.Name),
				ModuleURL:        strings.TrimSpace(m.ProjectURL),
				ModuleVersion:    strings.TrimSpace(m.Version),
				ModuleLicense:    strings.TrimSpace(m.License),
				ModuleLicenseURL: strings.TrimSpace(m.LicenseURL),
			})
		}
		if len(members) == 0 {
			members = nil
		}
		entries = append(entries, BundleEntry{ModuleName: strings.TrimSpace(b.Name), Dependencies: members})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ModuleName < entries[j].ModuleName
	})
	return entries
}

// sortEntries orders rows ascending by moduleName using plain code-point
// string comparison. Stable: records sharing group:name (version variants)
// keep their input order; no secondary key is applied.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
}
