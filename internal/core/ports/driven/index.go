package driven

import (
	"context"

	"github.com/careerfolio/resume-agent/internal/core/domain"
)

// VectorIndex stores index entries and answers nearest-neighbour queries
// by vector distance. The index owns its concurrency safety; the chunk-ID
// scheme guarantees no two source files write the same ID.
type VectorIndex interface {
	// Upsert inserts or replaces the entry with the same ID.
	Upsert(ctx context.Context, entry domain.IndexEntry) error

	// Query returns up to k entries nearest to the query vector,
	// ordered by ascending distance.
	Query(ctx context.Context, vector []float32, k int) ([]Hit, error)

	// All returns every stored entry. Used for summary statistics;
	// embeddings are not populated.
	All(ctx context.Context) ([]domain.IndexEntry, error)

	// Count returns the number of stored entries.
	Count(ctx context.Context) (int, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// Hit is a single nearest-neighbour match.
type Hit struct {
	// Entry is the stored entry, without its embedding.
	Entry domain.IndexEntry

	// Distance is the vector distance to the query. Non-negative;
	// smaller means more similar.
	Distance float64
}
