package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// TextRenderer emits a plain-text table with display-width-aware column
// alignment, so wide runes in module names do not skew the layout.
type TextRenderer struct {
	opts Options
}

func (r *TextRenderer) Format() string { return "text" }

func (r *TextRenderer) DefaultFileName() string { return "index.txt" }

func (r *TextRenderer) Render(w io.Writer, rep *Report) error {
	if _, err := fmt.Fprintln(w, r.opts.title()); err != nil {
		return err
	}
	if p := r.opts.Provenance; p != nil {
		if _, err := fmt.Fprintf(w, "revision: %s\n", p.Describe()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	header := []string{"MODULE", "VERSION", "LICENSE", "LICENSE URL"}
	rows := [][]string{}
	for _, e := range rep.Dependencies {
		fr := flatten(e)
		rows = append(rows, []string{fr.Name, fr.Version, fr.License, fr.LicenseURL})
	}
	if err := writeColumns(w, header, rows); err != nil {
		return err
	}

	for _, b := range rep.ImportedModules {
		if _, err := fmt.Fprintf(w, "\nimported: %s\n", b.ModuleName); err != nil {
			return err
		}
		memberRows := [][]string{}
		for _, m := range b.Dependencies {
			memberRows = append(memberRows, []string{m.ModuleName, m.ModuleVersion, m.ModuleLicense, m.ModuleLicenseURL})
		}
		if len(memberRows) == 0 {
			continue
		}
		if err := writeColumns(w, header, memberRows); err != nil {
			return err
		}
	}
	return nil
}

// writeColumns pads each cell to its column's widest display width.
func writeColumns(w io.Writer, header []string, rows [][]string) error {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	writeRow := func(cells []string) error {
		var b strings.Builder
		for i, cell := range cells {
			b.WriteString(cell)
			if i < len(cells)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)+2))
			}
		}
		_, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
		return err
	}
	if err := writeRow(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(row); err != nil {
			return err
		}
	}
	return nil
}
