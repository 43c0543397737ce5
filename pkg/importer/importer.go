// Package importer parses imported-module bundle manifests. Bundles arrive
// from external manifests (lockfile-like sources) rather than dependency
// graph traversal, and are appended to a snapshot's importedModules before
// rendering.
package importer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fulmenhq/licet/pkg/license"
)

// ErrUnsupportedManifest indicates a manifest extension no parser handles.
var ErrUnsupportedManifest = errors.New("unsupported bundle manifest format")

// Load dispatches a manifest path to its parser by extension.
func Load(path string) ([]license.ImportedModuleBundle, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return LoadXML(path)
	case ".toml":
		return LoadTOML(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedManifest, path)
	}
}

// LoadAll parses every manifest path in order and concatenates the bundles,
// preserving manifest order within and across files.
func LoadAll(paths []string) ([]license.ImportedModuleBundle, error) {
	var bundles []license.ImportedModuleBundle
	for _, p := range paths {
		loaded, err := Load(p)
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, loaded...)
	}
	return bundles, nil
}
