package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnknownFormat indicates a format name no renderer is registered for.
var ErrUnknownFormat = errors.New("unknown report format")

// Provenance identifies the repository state a report was rendered from.
// Decorated formats (html, markdown, text) display it; the JSON artifact
// never carries it, its schema is fixed.
type Provenance struct {
	Commit string
	Branch string
	Dirty  bool
}

// Describe returns the one-line provenance label shown in decorated formats.
func (p Provenance) Describe() string {
	label := p.Commit
	if p.Branch != "" {
		label = p.Branch + "@" + p.Commit
	}
	if p.Dirty {
		label += " (dirty)"
	}
	return label
}

// Options carries cross-format renderer settings.
type Options struct {
	// Title heads decorated formats. Defaults to "License Report".
	Title string
	// Provenance is shown in decorated formats when non-nil.
	Provenance *Provenance
}

func (o Options) title() string {
	if strings.TrimSpace(o.Title) == "" {
		return "License Report"
	}
	return strings.TrimSpace(o.Title)
}

// Renderer serializes an assembled report to one output format.
type Renderer interface {
	// Format returns the canonical format name.
	Format() string
	// DefaultFileName returns the artifact name used when none is configured.
	DefaultFileName() string
	// Render writes the serialized report. Implementations are pure with
	// respect to the report; a failed write is the only error source besides
	// serialization itself.
	Render(w io.Writer, rep *Report) error
}

// NewRenderer resolves a format name to its renderer.
func NewRenderer(format string, opts Options) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "":
		return &JSONRenderer{}, nil
	case "csv":
		return &CSVRenderer{}, nil
	case "xml":
		return &XMLRenderer{}, nil
	case "html":
		return &HTMLRenderer{opts: opts}, nil
	case "markdown", "md":
		return &MarkdownRenderer{opts: opts}, nil
	case "text", "txt":
		return &TextRenderer{opts: opts}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// Formats lists the supported format names in display order.
func Formats() []string {
	return []string{"json", "csv", "xml", "html", "markdown", "text"}
}

// flatRow is the tabular projection shared by csv, text, markdown, and html.
// Multi-mode rows flatten their sequences: urls and license urls join with
// ", ", license names join with " OR ".
type flatRow struct {
	Name       string
	URL        string
	Version    string
	License    string
	LicenseURL string
}

func flatten(e Entry) flatRow {
	switch t := e.(type) {
	case SingleEntry:
		return flatRow{Name: t.ModuleName, URL: t.ModuleURL, Version: t.ModuleVersion, License: t.ModuleLicense, LicenseURL: t.ModuleLicenseURL}
	case MultiEntry:
		names := make([]string, 0, len(t.ModuleLicenses))
		urls := make([]string, 0, len(t.ModuleLicenses))
		for _, ref := range t.ModuleLicenses {
			if ref.ModuleLicense != "" {
				names = append(names, ref.ModuleLicense)
			}
			if ref.ModuleLicenseURL != "" {
				urls = append(urls, ref.ModuleLicenseURL)
			}
		}
		return flatRow{
			Name:       t.ModuleName,
			URL:        strings.Join(t.ModuleURLs, ", "),
			Version:    t.ModuleVersion,
			License:    strings.Join(names, " OR "),
			LicenseURL: strings.Join(urls, ", "),
		}
	default:
		return flatRow{Name: e.Name()}
	}
}
