// Package assets embeds the data files the binary ships with: the snapshot
// input schema, the HTML report template, and the default license
// normalization rules.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed embedded_schemas
var schemas embed.FS

//go:embed embedded_templates
var templates embed.FS

//go:embed embedded_normalizers
var normalizers embed.FS

// SnapshotSchemaName identifies the embedded input schema version.
const SnapshotSchemaName = "project-snapshot-v1.0.0"

// GetSnapshotSchema returns the JSON Schema a snapshot file is validated
// against before rendering.
func GetSnapshotSchema() ([]byte, error) {
	return fs.ReadFile(schemas, "embedded_schemas/"+SnapshotSchemaName+".json")
}

// GetReportTemplate returns the Handlebars template behind the html format.
func GetReportTemplate() (string, error) {
	data, err := fs.ReadFile(templates, "embedded_templates/report.html.hbs")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetDefaultNormalizerRules returns the built-in license normalization
// bundle (YAML). Callers may substitute their own bundle at load time.
func GetDefaultNormalizerRules() ([]byte, error) {
	return fs.ReadFile(normalizers, "embedded_normalizers/default-licenses.yaml")
}
