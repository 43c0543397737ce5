package license

import "strings"

// Pair is one deduplicated (license name, license url) pairing surfaced in
// all-licenses mode.
type Pair struct {
	Name string
	URL  string
}

// SelectSingle picks the representative license facts for single-license mode.
// Zero candidates yield all-empty values. With multiple candidates the FIRST
// in declared order wins; ties are not merged, so multi-licensed modules lose
// information here in favor of a flat report row. The returned url is the
// module's own project URL, independent of which candidate was chosen.
func SelectSingle(m ModuleRecord) (url, name, licenseURL string) {
	url = strings.TrimSpace(m.ProjectURL)
	if len(m.Licenses) == 0 {
		return url, "", ""
	}
	first := m.Licenses[0]
	return url, strings.TrimSpace(first.Name), strings.TrimSpace(first.URL)
}

// SelectAll collects every distinct license pairing and every distinct
// project URL referenced by the module and its candidates, preserving first
// occurrence order. Values are trimmed before comparison and blanks never
// enter either sequence; the module's own project URL sorts first among URLs.
func SelectAll(m ModuleRecord) (urls []string, licenses []Pair) {
	seenURL := make(map[string]struct{})
	addURL := func(u string) {
		u = strings.TrimSpace(u)
		if u == "" {
			return
		}
		if _, dup := seenURL[u]; dup {
			return
		}
		seenURL[u] = struct{}{}
		urls = append(urls, u)
	}

	addURL(m.ProjectURL)
	seenPair := make(map[Pair]struct{})
	for _, c := range m.Licenses {
		addURL(c.ProjectURL)
		p := Pair{Name: strings.TrimSpace(c.Name), URL: strings.TrimSpace(c.URL)}
		if p == (Pair{}) {
			continue
		}
		if _, dup := seenPair[p]; dup {
			continue
		}
		seenPair[p] = struct{}{}
		licenses = append(licenses, p)
	}
	return urls, licenses
}
