package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/aymerick/raymond"

	"github.com/fulmenhq/licet/internal/assets"
)

// HTMLRenderer emits the report through the embedded Handlebars template.
// Template rows pass through Trim so the template never sees blank fields.
type HTMLRenderer struct {
	opts Options
}

var registerHelpersOnce sync.Once

func (r *HTMLRenderer) Format() string { return "html" }

func (r *HTMLRenderer) DefaultFileName() string { return "index.html" }

func (r *HTMLRenderer) Render(w io.Writer, rep *Report) error {
	registerHelpersOnce.Do(func() {
		raymond.RegisterHelper("orDash", func(v string) string {
			if v == "" {
				return "—"
			}
			return v
		})
	})

	tpl, err := assets.GetReportTemplate()
	if err != nil {
		return fmt.Errorf("failed to load report template: %w", err)
	}

	data := map[string]any{
		"title":        r.opts.title(),
		"dependencies": htmlRows(rep.Dependencies),
		"imported":     htmlBundles(rep.ImportedModules),
	}
	if p := r.opts.Provenance; p != nil {
		data["provenance"] = p.Describe()
	}

	out, err := raymond.Render(tpl, Trim(data))
	if err != nil {
		return fmt.Errorf("failed to render report template: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func htmlRows(entries []Entry) []map[string]any {
	rows := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		fr := flatten(e)
		rows = append(rows, Trim(map[string]any{
			"moduleName":       fr.Name,
			"moduleUrl":        fr.URL,
			"moduleVersion":    fr.Version,
			"moduleLicense":    fr.License,
			"moduleLicenseUrl": fr.LicenseURL,
		}))
	}
	return rows
}

func htmlBundles(bundles []BundleEntry) []map[string]any {
	out := make([]map[string]any, 0, len(bundles))
	for _, b := range bundles {
		rows := make([]map[string]any, 0, len(b.Dependencies))
		for _, m := range b.Dependencies {
			rows = append(rows, Trim(map[string]any{
				"moduleName":       m.ModuleName,
				"moduleUrl":        m.ModuleURL,
				"moduleVersion":    m.ModuleVersion,
				"moduleLicense":    m.ModuleLicense,
				"moduleLicenseUrl": m.ModuleLicenseURL,
			}))
		}
		out = append(out, Trim(map[string]any{
			"moduleName":   b.ModuleName,
			"dependencies": rows,
		}))
	}
	return out
}
