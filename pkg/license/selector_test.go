package license

import (
	"reflect"
	"testing"
)

func TestSelectSingleNoCandidates(t *testing.T) {
	m := ModuleRecord{Group: "a", Name: "x"}
	url, name, licURL := SelectSingle(m)
	if url != "" || name != "" || licURL != "" {
		t.Errorf("expected all-empty selection, got (%q, %q, %q)", url, name, licURL)
	}
}

func TestSelectSingleFirstCandidateWins(t *testing.T) {
	m := ModuleRecord{
		Group:      "a",
		Name:       "x",
		ProjectURL: "https://example.com/x",
		Licenses: []LicenseCandidate{
			{Name: "MIT", URL: "u1"},
			{Name: "Apache-2.0", URL: "u2"},
		},
	}
	url, name, licURL := SelectSingle(m)
	if name != "MIT" || licURL != "u1" {
		t.Errorf("first-candidate policy violated: got (%q, %q)", name, licURL)
	}
	if url != "https://example.com/x" {
		t.Errorf("project url = %q, want module's own url", url)
	}
}

func TestSelectSingleTrimsWhitespace(t *testing.T) {
	m := ModuleRecord{
		Group:    "a",
		Name:     "x",
		Licenses: []LicenseCandidate{{Name: "  MIT  ", URL: " u1 "}},
	}
	_, name, licURL := SelectSingle(m)
	if name != "MIT" || licURL != "u1" {
		t.Errorf("whitespace not trimmed: got (%q, %q)", name, licURL)
	}
}

func TestSelectAllDeduplicates(t *testing.T) {
	m := ModuleRecord{
		Group: "a",
		Name:  "x",
		Licenses: []LicenseCandidate{
			{Name: "MIT", URL: "u1"},
			{Name: "MIT", URL: "u1"},
			{Name: "Apache-2.0", URL: "u2"},
		},
	}
	_, licenses := SelectAll(m)
	want := []Pair{{Name: "MIT", URL: "u1"}, {Name: "Apache-2.0", URL: "u2"}}
	if !reflect.DeepEqual(licenses, want) {
		t.Errorf("SelectAll licenses = %v, want %v", licenses, want)
	}
}

func TestSelectAllURLOrder(t *testing.T) {
	m := ModuleRecord{
		Group:      "a",
		Name:       "x",
		ProjectURL: "https://own",
		Licenses: []LicenseCandidate{
			{Name: "MIT", URL: "u1", ProjectURL: "https://mirror"},
			{Name: "BSD-3-Clause", URL: "u2", ProjectURL: "https://own"},
		},
	}
	urls, _ := SelectAll(m)
	want := []string{"https://own", "https://mirror"}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("SelectAll urls = %v, want %v", urls, want)
	}
}

func TestSelectAllSkipsBlankPairs(t *testing.T) {
	m := ModuleRecord{
		Group: "a",
		Name:  "x",
		Licenses: []LicenseCandidate{
			{Name: "  ", URL: ""},
			{Name: "MIT", URL: "u1"},
		},
	}
	_, licenses := SelectAll(m)
	if len(licenses) != 1 || licenses[0].Name != "MIT" {
		t.Errorf("blank pair should be skipped, got %v", licenses)
	}
}
