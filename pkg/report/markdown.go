package report

import (
	"io"

	"github.com/nao1215/markdown"
)

// MarkdownRenderer emits the report as a GitHub-flavored Markdown document
// with one table per section.
type MarkdownRenderer struct {
	opts Options
}

func (r *MarkdownRenderer) Format() string { return "markdown" }

func (r *MarkdownRenderer) DefaultFileName() string { return "index.md" }

func (r *MarkdownRenderer) Render(w io.Writer, rep *Report) error {
	md := markdown.NewMarkdown(w)
	md.H1(r.opts.title())
	md.PlainText("")

	if len(rep.Dependencies) > 0 {
		md.H2("Dependencies")
		md.PlainText("")
		rows := make([][]string, 0, len(rep.Dependencies))
		for _, e := range rep.Dependencies {
			fr := flatten(e)
			rows = append(rows, []string{fr.Name, fr.Version, fr.License, fr.LicenseURL, fr.URL})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Module", "Version", "License", "License URL", "Project URL"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	for _, b := range rep.ImportedModules {
		md.H2("Imported: " + b.ModuleName)
		md.PlainText("")
		if len(b.Dependencies) == 0 {
			md.PlainText("No members.")
			md.PlainText("")
			continue
		}
		rows := make([][]string, 0, len(b.Dependencies))
		for _, m := range b.Dependencies {
			rows = append(rows, []string{m.ModuleName, m.ModuleVersion, m.ModuleLicense, m.ModuleLicenseURL, m.ModuleURL})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Module", "Version", "License", "License URL", "Project URL"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if p := r.opts.Provenance; p != nil {
		md.PlainText("Rendered from " + p.Describe() + ".")
	}
	return md.Build()
}
