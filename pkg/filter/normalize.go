package filter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fulmenhq/licet/internal/assets"
	"github.com/fulmenhq/licet/pkg/license"
)

// NormalizerRule rewrites alias spellings of one license to its canonical
// SPDX identifier. The rule's url fills in when the source carried none.
type NormalizerRule struct {
	Canonical string   `yaml:"canonical"`
	URL       string   `yaml:"url"`
	Aliases   []string `yaml:"aliases"`
}

type normalizerBundle struct {
	Version int              `yaml:"version"`
	Rules   []NormalizerRule `yaml:"rules"`
}

// Normalizer maps alias spellings (case-insensitive, whitespace-trimmed) to
// their canonical rule.
type Normalizer struct {
	byAlias map[string]NormalizerRule
}

// NewNormalizer builds a normalizer from a YAML rule bundle.
func NewNormalizer(rulesYAML []byte) (*Normalizer, error) {
	var bundle normalizerBundle
	if err := yaml.Unmarshal(rulesYAML, &bundle); err != nil {
		return nil, fmt.Errorf("failed to parse normalizer rules: %w", err)
	}
	byAlias := make(map[string]NormalizerRule)
	for _, rule := range bundle.Rules {
		if rule.Canonical == "" {
			return nil, fmt.Errorf("normalizer rule without canonical name")
		}
		byAlias[aliasKey(rule.Canonical)] = rule
		for _, alias := range rule.Aliases {
			byAlias[aliasKey(alias)] = rule
		}
	}
	return &Normalizer{byAlias: byAlias}, nil
}

// DefaultNormalizer builds the normalizer from the embedded rule bundle.
func DefaultNormalizer() (*Normalizer, error) {
	data, err := assets.GetDefaultNormalizerRules()
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded normalizer rules: %w", err)
	}
	return NewNormalizer(data)
}

func aliasKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// rewrite returns the canonical (name, url) for a license spelling. Unknown
// names pass through untouched; a known name keeps its own url when present.
func (n *Normalizer) rewrite(name, url string) (string, string) {
	rule, ok := n.byAlias[aliasKey(name)]
	if !ok {
		return name, url
	}
	if strings.TrimSpace(url) == "" {
		url = rule.URL
	}
	return rule.Canonical, url
}

// ApplyModules returns copies of the records with every license candidate
// rewritten to canonical form. Candidate order is preserved.
func (n *Normalizer) ApplyModules(deps []license.ModuleRecord) []license.ModuleRecord {
	out := make([]license.ModuleRecord, len(deps))
	for i, d := range deps {
		rec := d
		if len(d.Licenses) > 0 {
			rec.Licenses = make([]license.LicenseCandidate, len(d.Licenses))
			for j, c := range d.Licenses {
				c.Name, c.URL = n.rewrite(c.Name, c.URL)
				rec.Licenses[j] = c
			}
		}
		out[i] = rec
	}
	return out
}

// ApplyBundles rewrites the single license carried by each bundle member.
func (n *Normalizer) ApplyBundles(bundles []license.ImportedModuleBundle) []license.ImportedModuleBundle {
	out := make([]license.ImportedModuleBundle, len(bundles))
	for i, b := range bundles {
		bundle := b
		if len(b.Modules) > 0 {
			bundle.Modules = make([]license.ImportedModule, len(b.Modules))
			for j, m := range b.Modules {
				m.License, m.LicenseURL = n.rewrite(m.License, m.LicenseURL)
				bundle.Modules[j] = m
			}
		}
		out[i] = bundle
	}
	return out
}
