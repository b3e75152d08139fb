package driven

import (
	"context"

	"github.com/careerfolio/resume-agent/internal/core/domain"
)

// Extractor pulls plain text out of a source file.
// Each extractor handles one document format.
type Extractor interface {
	// Format returns the document format this extractor handles.
	Format() domain.Format

	// Extract reads the file at path and returns its text content.
	// An empty string with a nil error means the file held no text.
	Extract(ctx context.Context, path string) (string, error)
}

// ExtractorRegistry selects the appropriate extractor for a file.
type ExtractorRegistry interface {
	// Extract detects the file's format from its extension and runs
	// the matching extractor. Returns domain.ErrUnsupportedFormat for
	// extensions no registered extractor handles.
	Extract(ctx context.Context, path string) (string, error)

	// Supported reports whether the file extension is handled.
	Supported(ext string) bool
}
