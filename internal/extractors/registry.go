package extractors

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/careerfolio/resume-agent/internal/core/domain"
	"github.com/careerfolio/resume-agent/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry selects the extractor for a file based on its extension.
type Registry struct {
	byFormat map[domain.Format]driven.Extractor
}

// NewRegistry creates a registry holding the given extractors.
// Registering two extractors for the same format keeps the last one.
func NewRegistry(extractors ...driven.Extractor) *Registry {
	r := &Registry{byFormat: make(map[domain.Format]driven.Extractor, len(extractors))}
	for _, e := range extractors {
		r.byFormat[e.Format()] = e
	}
	return r
}

// Extract detects the file's format and runs the matching extractor.
func (r *Registry) Extract(ctx context.Context, path string) (string, error) {
	format, ok := domain.FormatForExtension(filepath.Ext(path))
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, filepath.Ext(path))
	}

	extractor, ok := r.byFormat[format]
	if !ok {
		return "", fmt.Errorf("%w: no extractor for %s", domain.ErrUnsupportedFormat, format)
	}

	return extractor.Extract(ctx, path)
}

// Supported reports whether the extension maps to a registered extractor.
func (r *Registry) Supported(ext string) bool {
	format, ok := domain.FormatForExtension(ext)
	if !ok {
		return false
	}
	_, ok = r.byFormat[format]
	return ok
}
