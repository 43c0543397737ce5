package report

import (
	"io"

	"github.com/beevik/etree"
)

// XMLRenderer emits the report as an indented XML document. Both entry
// shapes nest naturally: single-mode rows become attributes, multi-mode
// rows carry url and license child elements.
type XMLRenderer struct{}

func (r *XMLRenderer) Format() string { return "xml" }

func (r *XMLRenderer) DefaultFileName() string { return "index.xml" }

func (r *XMLRenderer) Render(w io.Writer, rep *Report) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("licenseReport")

	if len(rep.Dependencies) > 0 {
		deps := root.CreateElement("dependencies")
		for _, e := range rep.Dependencies {
			appendModuleElement(deps, e)
		}
	}

	if len(rep.ImportedModules) > 0 {
		imported := root.CreateElement("importedModules")
		for _, b := range rep.ImportedModules {
			be := imported.CreateElement("bundle")
			be.CreateAttr("name", b.ModuleName)
			for _, m := range b.Dependencies {
				me := be.CreateElement("module")
				me.CreateAttr("name", m.ModuleName)
				setAttrIfPresent(me, "url", m.ModuleURL)
				setAttrIfPresent(me, "version", m.ModuleVersion)
				setAttrIfPresent(me, "license", m.ModuleLicense)
				setAttrIfPresent(me, "licenseUrl", m.ModuleLicenseURL)
			}
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func appendModuleElement(parent *etree.Element, e Entry) {
	me := parent.CreateElement("module")
	me.CreateAttr("name", e.Name())
	switch t := e.(type) {
	case SingleEntry:
		setAttrIfPresent(me, "url", t.ModuleURL)
		setAttrIfPresent(me, "version", t.ModuleVersion)
		setAttrIfPresent(me, "license", t.ModuleLicense)
		setAttrIfPresent(me, "licenseUrl", t.ModuleLicenseURL)
	case MultiEntry:
		setAttrIfPresent(me, "version", t.ModuleVersion)
		for _, u := range t.ModuleURLs {
			me.CreateElement("url").SetText(u)
		}
		for _, ref := range t.ModuleLicenses {
			le := me.CreateElement("license")
			setAttrIfPresent(le, "name", ref.ModuleLicense)
			setAttrIfPresent(le, "url", ref.ModuleLicenseURL)
		}
	}
}

func setAttrIfPresent(el *etree.Element, key, value string) {
	if value != "" {
		el.CreateAttr(key, value)
	}
}
