package importer

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/fulmenhq/licet/pkg/license"
	"github.com/fulmenhq/licet/pkg/safeio"
)

// LoadXML parses a bundle manifest of the form:
//
//	<bundles>
//	  <bundle name="vendor">
//	    <module name="legacy" url="..." version="..." license="..." licenseUrl="..."/>
//	  </bundle>
//	</bundles>
//
// Module order inside each bundle is preserved.
func LoadXML(path string) ([]license.ImportedModuleBundle, error) {
	cleanPath, err := safeio.CleanUserPath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid manifest path: %w", err)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(cleanPath); err != nil {
		return nil, fmt.Errorf("failed to parse XML manifest %s: %w", cleanPath, err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "bundles" {
		return nil, fmt.Errorf("manifest %s: expected <bundles> root element", cleanPath)
	}

	var bundles []license.ImportedModuleBundle
	for _, be := range root.SelectElements("bundle") {
		name := be.SelectAttrValue("name", "")
		if name == "" {
			return nil, fmt.Errorf("manifest %s: bundle without name attribute", cleanPath)
		}
		bundle := license.ImportedModuleBundle{Name: name}
		for _, me := range be.SelectElements("module") {
			bundle.Modules = append(bundle.Modules, license.ImportedModule{
				Name:       me.SelectAttrValue("name", ""),
				ProjectURL: me.SelectAttrValue("url", ""),
				Version:    me.SelectAttrValue("version", ""),
				License:    me.SelectAttrValue("license", ""),
				LicenseURL: me.SelectAttrValue("licenseUrl", ""),
			})
		}
		bundles = append(bundles, bundle)
	}
	return bundles, nil
}
