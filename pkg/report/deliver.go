package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/fulmenhq/licet/pkg/logger"
	"github.com/fulmenhq/licet/pkg/safeio"
)

// Artifact names one output file to produce: a format plus an optional file
// name (the renderer's default applies when blank).
type Artifact struct {
	Format   string
	FileName string
}

// Deliver renders the report once per artifact and publishes each file
// atomically under outputDir. Artifacts render concurrently; inputs are
// read-only so this is safe. The first failure cancels the remaining
// renders and is returned; no retries, no partially visible files.
func Deliver(ctx context.Context, rep *Report, outputDir string, artifacts []Artifact, opts Options) error {
	cleanDir, err := safeio.CleanUserPath(outputDir)
	if err != nil {
		return fmt.Errorf("invalid output directory: %w", err)
	}
	if err := os.MkdirAll(cleanDir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, art := range artifacts {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			r, err := NewRenderer(art.Format, opts)
			if err != nil {
				return err
			}
			name := strings.TrimSpace(art.FileName)
			if name == "" {
				name = r.DefaultFileName()
			}
			var buf bytes.Buffer
			if err := r.Render(&buf, rep); err != nil {
				return fmt.Errorf("failed to render %s report: %w", r.Format(), err)
			}
			path := filepath.Join(cleanDir, name)
			if err := safeio.WriteFileAtomic(path, buf.Bytes()); err != nil {
				return fmt.Errorf("failed to write %s report: %w", r.Format(), err)
			}
			logger.Info("Wrote report artifact",
				logger.String("format", r.Format()),
				logger.String("path", path),
				logger.Int("bytes", buf.Len()))
			return nil
		})
	}
	return g.Wait()
}
