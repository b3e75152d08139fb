// Package memory provides an in-memory vector index for tests and
// short-lived sessions where persistence is not wanted.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/careerfolio/resume-agent/internal/core/domain"
	"github.com/careerfolio/resume-agent/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// Index is an in-memory implementation of driven.VectorIndex using
// brute-force scan. Adequate for the corpus sizes a personal resume
// collection produces.
type Index struct {
	mu      sync.RWMutex
	entries map[string]domain.IndexEntry
}

// NewIndex creates an empty in-memory vector index.
func NewIndex() *Index {
	return &Index{
		entries: make(map[string]domain.IndexEntry),
	}
}

// Upsert inserts or replaces the entry with the same ID.
func (i *Index) Upsert(_ context.Context, entry domain.IndexEntry) error {
	if entry.ID == "" {
		return domain.ErrInvalidInput
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.entries[entry.ID] = entry
	return nil
}

// Query returns up to k entries nearest to the query vector.
func (i *Index) Query(_ context.Context, vector []float32, k int) ([]driven.Hit, error) {
	if k <= 0 {
		return nil, nil
	}

	i.mu.RLock()
	defer i.mu.RUnlock()

	hits := make([]driven.Hit, 0, len(i.entries))
	for _, entry := range i.entries {
		distance := domain.CosineDistance(vector, entry.Embedding)
		stripped := entry
		stripped.Embedding = nil
		hits = append(hits, driven.Hit{Entry: stripped, Distance: distance})
	}

	sort.Slice(hits, func(a, b int) bool {
		if hits[a].Distance != hits[b].Distance {
			return hits[a].Distance < hits[b].Distance
		}
		return hits[a].Entry.ID < hits[b].Entry.ID
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

// All returns every stored entry without embeddings.
func (i *Index) All(_ context.Context) ([]domain.IndexEntry, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	entries := make([]domain.IndexEntry, 0, len(i.entries))
	for _, entry := range i.entries {
		entry.Embedding = nil
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(a, b int) bool {
		return entries[a].ID < entries[b].ID
	})
	return entries, nil
}

// Count returns the number of stored entries.
func (i *Index) Count(_ context.Context) (int, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.entries), nil
}

// Clear removes all entries.
func (i *Index) Clear(_ context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.entries = make(map[string]domain.IndexEntry)
	return nil
}

// Close releases resources. No-op for the in-memory index.
func (i *Index) Close() error {
	return nil
}
