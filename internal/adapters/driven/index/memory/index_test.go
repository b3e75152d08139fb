package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerfolio/resume-agent/internal/core/domain"
)

func testEntry(id string, embedding []float32) domain.IndexEntry {
	return domain.IndexEntry{
		ID:        id,
		Content:   "content of " + id,
		Embedding: embedding,
		Metadata: domain.EntryMetadata{
			SourceFile:   "resume.txt",
			DocumentType: domain.DocumentTypeResume,
			ProcessedAt:  time.Now().UTC(),
		},
	}
}

func TestIndex_UpsertAndCount(t *testing.T) {
	idx := NewIndex()
	ctx := context.Background()

	require.NoError(t, idx.Upsert(ctx, testEntry("resume_a.txt_0", []float32{1, 0})))
	require.NoError(t, idx.Upsert(ctx, testEntry("resume_a.txt_1", []float32{0, 1})))

	count, err := idx.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestIndex_UpsertReplacesSameID(t *testing.T) {
	idx := NewIndex()
	ctx := context.Background()

	entry := testEntry("resume_a.txt_0", []float32{1, 0})
	require.NoError(t, idx.Upsert(ctx, entry))

	entry.Content = "updated content"
	require.NoError(t, idx.Upsert(ctx, entry))

	count, err := idx.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	entries, err := idx.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, "updated content", entries[0].Content)
}

func TestIndex_UpsertEmptyID(t *testing.T) {
	idx := NewIndex()

	err := idx.Upsert(context.Background(), domain.IndexEntry{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIndex_QueryOrdersByDistance(t *testing.T) {
	idx := NewIndex()
	ctx := context.Background()

	require.NoError(t, idx.Upsert(ctx, testEntry("far", []float32{0, 1})))
	require.NoError(t, idx.Upsert(ctx, testEntry("near", []float32{1, 0.1})))
	require.NoError(t, idx.Upsert(ctx, testEntry("exact", []float32{1, 0})))

	hits, err := idx.Query(ctx, []float32{1, 0}, 3)
	require.NoError(t, err)
	require.Len(t, hits, 3)

	assert.Equal(t, "exact", hits[0].Entry.ID)
	assert.Equal(t, "near", hits[1].Entry.ID)
	assert.Equal(t, "far", hits[2].Entry.ID)
	assert.LessOrEqual(t, hits[0].Distance, hits[1].Distance)
	assert.LessOrEqual(t, hits[1].Distance, hits[2].Distance)
}

func TestIndex_QueryLimitsToK(t *testing.T) {
	idx := NewIndex()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, idx.Upsert(ctx, testEntry(id, []float32{1, 0})))
	}

	hits, err := idx.Query(ctx, []float32{1, 0}, 3)
	require.NoError(t, err)
	assert.Len(t, hits, 3)
}

func TestIndex_QueryStripsEmbeddings(t *testing.T) {
	idx := NewIndex()
	ctx := context.Background()

	require.NoError(t, idx.Upsert(ctx, testEntry("a", []float32{1, 0})))

	hits, err := idx.Query(ctx, []float32{1, 0}, 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Nil(t, hits[0].Entry.Embedding)
}

func TestIndex_QueryEmptyIndex(t *testing.T) {
	idx := NewIndex()

	hits, err := idx.Query(context.Background(), []float32{1, 0}, 3)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestIndex_Clear(t *testing.T) {
	idx := NewIndex()
	ctx := context.Background()

	require.NoError(t, idx.Upsert(ctx, testEntry("a", []float32{1, 0})))
	require.NoError(t, idx.Clear(ctx))

	count, err := idx.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
