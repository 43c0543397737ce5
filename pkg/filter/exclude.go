// Package filter adjusts collected license facts before rendering:
// glob-based dependency exclusion and license-name normalization.
package filter

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/fulmenhq/licet/pkg/license"
)

// Excluder drops dependencies whose "{group}:{name}" coordinates match any
// of its glob patterns.
type Excluder struct {
	patterns []string
}

// NewExcluder validates every pattern up front so a bad glob fails the run
// instead of silently matching nothing.
func NewExcluder(patterns []string) (*Excluder, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid exclude pattern: %s", p)
		}
	}
	return &Excluder{patterns: patterns}, nil
}

// Excluded reports whether the coordinates match any pattern.
func (e *Excluder) Excluded(coordinates string) bool {
	for _, p := range e.patterns {
		if ok, _ := doublestar.Match(p, coordinates); ok {
			return true
		}
	}
	return false
}

// Apply returns the records that survive exclusion, in input order.
func (e *Excluder) Apply(deps []license.ModuleRecord) []license.ModuleRecord {
	if len(e.patterns) == 0 {
		return deps
	}
	kept := make([]license.ModuleRecord, 0, len(deps))
	for _, d := range deps {
		if e.Excluded(d.Coordinates()) {
			continue
		}
		kept = append(kept, d)
	}
	return kept
}
