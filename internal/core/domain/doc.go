// Package domain defines the core business entities for the resume agent.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: An extracted source document (a resume/CV file)
//   - Chunk: A searchable unit within a document
//   - SearchResult: A retrieved chunk with its relevance score
//   - QueryOutcome: The assembled answer returned to callers
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
