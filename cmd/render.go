/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/fulmenhq/licet/internal/gitmeta"
	"github.com/fulmenhq/licet/internal/ops"
	"github.com/fulmenhq/licet/pkg/config"
	"github.com/fulmenhq/licet/pkg/filter"
	"github.com/fulmenhq/licet/pkg/importer"
	"github.com/fulmenhq/licet/pkg/logger"
	"github.com/fulmenhq/licet/pkg/report"
	"github.com/fulmenhq/licet/pkg/snapshot"
)

// newRenderCommand creates a fresh render command instance.
func newRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the dependency license report",
		Long: `Render reads a license facts snapshot, applies configured filters, and
writes the report in one or more formats. The JSON artifact is canonical;
other formats are presentation views of the same data.`,
		RunE: runRender,
	}

	cmd.Flags().String("snapshot", "", "Path to the license facts snapshot (JSON or YAML)")
	cmd.Flags().String("output-dir", "", "Directory the report artifacts are written to")
	cmd.Flags().String("file-name", "", "File name for the json artifact (default index.json)")
	cmd.Flags().Bool("all-licenses", false, "List every discovered license per module instead of one representative")
	cmd.Flags().StringSlice("format", nil, "Report formats: json, csv, xml, html, markdown, text")
	cmd.Flags().StringArray("exclude", nil, "Glob over group:name coordinates; matching dependencies are dropped")
	cmd.Flags().StringArray("import", nil, "Bundle manifest (.xml or .toml) appended to importedModules")
	cmd.Flags().Bool("normalize", false, "Rewrite license names to canonical SPDX identifiers")

	return cmd
}

// renderCmd represents the render command
var renderCmd = newRenderCommand()

func init() {
	if err := ops.RegisterCommand("render", ops.GroupReport, renderCmd, "Render the dependency license report"); err != nil {
		panic(fmt.Sprintf("Failed to register render command: %v", err))
	}
}

// renderOptions is the fully resolved render configuration: file/env config
// with changed flags layered on top.
type renderOptions struct {
	snapshotPath string
	outputDir    string
	fileName     string
	allLicenses  bool
	formats      []string
	excludes     []string
	imports      []string
	normalize    bool
	title        string
}

// resolveRenderOptions merges config values and flag overrides. Only flags
// the user actually set override the config layer.
func resolveRenderOptions(cfg *config.Config, flags *pflag.FlagSet) renderOptions {
	opts := renderOptions{
		outputDir:   cfg.Output.Dir,
		fileName:    cfg.Output.FileName,
		allLicenses: cfg.Output.AllLicenses,
		formats:     cfg.Output.Formats,
		excludes:    cfg.Filter.Exclude,
		normalize:   cfg.Filter.Normalize,
		title:       cfg.Output.Title,
	}
	opts.snapshotPath, _ = flags.GetString("snapshot")
	if flags.Changed("output-dir") {
		opts.outputDir, _ = flags.GetString("output-dir")
	}
	if flags.Changed("file-name") {
		opts.fileName, _ = flags.GetString("file-name")
	}
	if flags.Changed("all-licenses") {
		opts.allLicenses, _ = flags.GetBool("all-licenses")
	}
	if flags.Changed("format") {
		opts.formats, _ = flags.GetStringSlice("format")
	}
	if flags.Changed("exclude") {
		opts.excludes, _ = flags.GetStringArray("exclude")
	}
	if flags.Changed("normalize") {
		opts.normalize, _ = flags.GetBool("normalize")
	}
	opts.imports, _ = flags.GetStringArray("import")
	return opts
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadProjectConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	opts := resolveRenderOptions(cfg, cmd.Flags())
	if opts.snapshotPath == "" {
		return fmt.Errorf("--snapshot is required")
	}

	snap, err := snapshot.Load(opts.snapshotPath)
	if err != nil {
		return err
	}
	logger.Debug("Loaded snapshot",
		logger.String("path", opts.snapshotPath),
		logger.Int("dependencies", len(snap.Dependencies)),
		logger.Int("importedModules", len(snap.ImportedModules)))

	deps := snap.Dependencies
	bundles := snap.ImportedModules

	if len(opts.imports) > 0 {
		imported, err := importer.LoadAll(opts.imports)
		if err != nil {
			return err
		}
		bundles = append(bundles, imported...)
	}

	excluder, err := filter.NewExcluder(opts.excludes)
	if err != nil {
		return err
	}
	deps = excluder.Apply(deps)

	if opts.normalize {
		normalizer, err := filter.DefaultNormalizer()
		if err != nil {
			return err
		}
		deps = normalizer.ApplyModules(deps)
		bundles = normalizer.ApplyBundles(bundles)
	}

	mode := report.ModeSingle
	if opts.allLicenses {
		mode = report.ModeAll
	}
	rep := report.Assemble(deps, bundles, mode)

	artifacts := make([]report.Artifact, 0, len(opts.formats))
	for _, f := range opts.formats {
		art := report.Artifact{Format: f}
		if f == "json" {
			art.FileName = opts.fileName
		}
		artifacts = append(artifacts, art)
	}
	if len(artifacts) == 0 {
		artifacts = append(artifacts, report.Artifact{Format: "json", FileName: opts.fileName})
	}

	renderOpts := report.Options{Title: opts.title}
	if p := gitmeta.Resolve("."); p != nil {
		renderOpts.Provenance = &report.Provenance{Commit: p.Commit, Branch: p.Branch, Dirty: p.Dirty}
	}

	logger.Info("Rendering license report",
		logger.String("mode", mode.String()),
		logger.Int("dependencies", len(deps)),
		logger.Int("bundles", len(bundles)),
		logger.Int("artifacts", len(artifacts)))

	return report.Deliver(cmd.Context(), rep, opts.outputDir, artifacts, renderOpts)
}
