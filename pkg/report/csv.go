package report

import (
	"encoding/csv"
	"io"
)

// CSVRenderer emits one flat table. Direct dependencies carry an empty
// bundle column; imported bundle members carry their bundle's name.
type CSVRenderer struct{}

func (r *CSVRenderer) Format() string { return "csv" }

func (r *CSVRenderer) DefaultFileName() string { return "index.csv" }

func (r *CSVRenderer) Render(w io.Writer, rep *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"bundle", "moduleName", "moduleVersion", "moduleUrl", "moduleLicense", "moduleLicenseUrl"}); err != nil {
		return err
	}
	for _, e := range rep.Dependencies {
		row := flatten(e)
		if err := cw.Write([]string{"", row.Name, row.Version, row.URL, row.License, row.LicenseURL}); err != nil {
			return err
		}
	}
	for _, b := range rep.ImportedModules {
		for _, m := range b.Dependencies {
			if err := cw.Write([]string{b.ModuleName, m.ModuleName, m.ModuleVersion, m.ModuleURL, m.ModuleLicense, m.ModuleLicenseURL}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
