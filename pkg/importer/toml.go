package importer

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/fulmenhq/licet/pkg/license"
	"github.com/fulmenhq/licet/pkg/safeio"
)

type tomlManifest struct {
	Bundle []struct {
		Name    string `toml:"name"`
		Modules []struct {
			Name       string `toml:"name"`
			URL        string `toml:"url"`
			Version    string `toml:"version"`
			License    string `toml:"license"`
			LicenseURL string `toml:"licenseUrl"`
		} `toml:"modules"`
	} `toml:"bundle"`
}

// LoadTOML parses a bundle manifest of the form:
//
//	[[bundle]]
//	name = "vendor"
//
//	  [[bundle.modules]]
//	  name = "legacy"
//	  license = "BSD-3-Clause"
func LoadTOML(path string) ([]license.ImportedModuleBundle, error) {
	cleanPath, err := safeio.CleanUserPath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid manifest path: %w", err)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read TOML manifest: %w", err)
	}
	var manifest tomlManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse TOML manifest %s: %w", cleanPath, err)
	}

	var bundles []license.ImportedModuleBundle
	for _, b := range manifest.Bundle {
		if b.Name == "" {
			return nil, fmt.Errorf("manifest %s: bundle without name", cleanPath)
		}
		bundle := license.ImportedModuleBundle{Name: b.Name}
		for _, m := range b.Modules {
			bundle.Modules = append(bundle.Modules, license.ImportedModule{
				Name:       m.Name,
				ProjectURL: m.URL,
				Version:    m.Version,
				License:    m.License,
				LicenseURL: m.LicenseURL,
			})
		}
		bundles = append(bundles, bundle)
	}
	return bundles, nil
}
