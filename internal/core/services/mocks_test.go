package services

import (
	"context"
	"sync"

	"github.com/careerfolio/resume-agent/internal/core/domain"
	"github.com/careerfolio/resume-agent/internal/core/ports/driving"
)

// --- Mock implementations ---

// mockEmbeddingService implements driven.EmbeddingService for testing.
type mockEmbeddingService struct {
	vector   []float32
	embedErr error
}

func (m *mockEmbeddingService) Embed(_ context.Context, _ string) ([]float32, error) {
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	return m.vector, nil
}

func (m *mockEmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := m.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		embeddings[i] = vec
	}
	return embeddings, nil
}

func (m *mockEmbeddingService) Dimensions() int   { return len(m.vector) }
func (m *mockEmbeddingService) ModelName() string { return "mock" }

func (m *mockEmbeddingService) Ping(_ context.Context) error { return nil }
func (m *mockEmbeddingService) Close() error                 { return nil }

// mockIngestor implements driving.Ingestor for testing.
type mockIngestor struct {
	mu        sync.Mutex
	report    *driving.IngestReport
	ingestErr error
	calls     int
}

func (m *mockIngestor) Ingest(_ context.Context) (*driving.IngestReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.ingestErr != nil {
		return nil, m.ingestErr
	}
	if m.report != nil {
		return m.report, nil
	}
	return &driving.IngestReport{}, nil
}

func (m *mockIngestor) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockQueryEngine implements driving.QueryEngine for testing.
type mockQueryEngine struct {
	outcome   *domain.QueryOutcome
	match     *domain.SkillMatch
	answerErr error
	matchErr  error
}

func (m *mockQueryEngine) Search(_ context.Context, _ string, _ int) ([]domain.SearchResult, error) {
	return nil, nil
}

func (m *mockQueryEngine) Answer(_ context.Context, _ string) (*domain.QueryOutcome, error) {
	if m.answerErr != nil {
		return nil, m.answerErr
	}
	return m.outcome, nil
}

func (m *mockQueryEngine) SkillMatch(_ context.Context, _ string) (*domain.SkillMatch, error) {
	if m.matchErr != nil {
		return nil, m.matchErr
	}
	return m.match, nil
}

// mockConfigStore implements driven.ConfigStore backed by a map.
type mockConfigStore struct {
	data map[string]any
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{data: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	val, ok := m.data[key]
	return val, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if val, ok := m.data[key].(string); ok {
		return val
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	if val, ok := m.data[key].(int); ok {
		return val
	}
	return 0
}

func (m *mockConfigStore) GetBool(key string) bool {
	if val, ok := m.data[key].(bool); ok {
		return val
	}
	return false
}

func (m *mockConfigStore) Set(key string, value any) error {
	m.data[key] = value
	return nil
}

func (m *mockConfigStore) Save() error { return nil }
func (m *mockConfigStore) Load() error { return nil }

func (m *mockConfigStore) Path() string { return "mock://config" }
