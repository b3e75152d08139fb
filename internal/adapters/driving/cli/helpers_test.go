package cli

import (
	"context"
	"time"

	"github.com/careerfolio/resume-agent/internal/core/domain"
	"github.com/careerfolio/resume-agent/internal/core/ports/driven"
	"github.com/careerfolio/resume-agent/internal/core/ports/driving"
	"github.com/careerfolio/resume-agent/internal/core/services"
)

// setupTestServices replaces the package-level services with mocks.
// Returns a cleanup function that restores the previous values.
func setupTestServices() func() {
	prevSettings := settingsService
	prevIngest := ingestService
	prevEngine := queryEngine
	prevAgent := agentService
	prevIndex := vectorIndex

	settingsService = services.NewSettingsService(newMockConfigStore())
	ingestService = &mockIngestor{report: &driving.IngestReport{
		RunID:          "test-run",
		FilesFound:     1,
		FilesProcessed: 1,
		ChunksIndexed:  3,
	}}
	queryEngine = &mockEngine{}
	agentService = &mockAgent{
		outcome: &domain.QueryOutcome{
			Response:     "I have 5 years of experience.",
			Category:     domain.CategoryExperience,
			SourceChunks: 2,
			Confidence:   0.8,
			Timestamp:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		match: &domain.SkillMatch{
			MatchPercentage: 50.0,
			MatchingSkills:  []string{"python", "golang"},
			SkillsSummary:   "Python, Go, SQL",
			Confidence:      0.7,
		},
		info: &domain.AgentInfo{
			Name:         "Personal Resume Agent",
			Description:  "Answers resume questions",
			Initialized:  true,
			Capabilities: []string{"Answer questions about work experience"},
		},
	}
	vectorIndex = &mockIndex{}

	return func() {
		settingsService = prevSettings
		ingestService = prevIngest
		queryEngine = prevEngine
		agentService = prevAgent
		vectorIndex = prevIndex
	}
}

type mockAgent struct {
	outcome     *domain.QueryOutcome
	match       *domain.SkillMatch
	info        *domain.AgentInfo
	initErr     error
	initialized bool
	queries     []string
}

var _ driving.Agent = (*mockAgent)(nil)

func (m *mockAgent) Initialize(_ context.Context) error {
	if m.initErr != nil {
		return m.initErr
	}
	m.initialized = true
	return nil
}

func (m *mockAgent) Ready() bool { return m.initialized }

func (m *mockAgent) ProcessQuery(_ context.Context, query string) *domain.QueryOutcome {
	m.queries = append(m.queries, query)
	return m.outcome
}

func (m *mockAgent) SkillMatch(_ context.Context, _ string) *domain.SkillMatch {
	return m.match
}

func (m *mockAgent) Info(_ context.Context) *domain.AgentInfo {
	return m.info
}

type mockIngestor struct {
	report    *driving.IngestReport
	ingestErr error
	calls     int
}

var _ driving.Ingestor = (*mockIngestor)(nil)

func (m *mockIngestor) Ingest(_ context.Context) (*driving.IngestReport, error) {
	m.calls++
	if m.ingestErr != nil {
		return nil, m.ingestErr
	}
	return m.report, nil
}

type mockEngine struct {
	results []domain.SearchResult
}

var _ driving.QueryEngine = (*mockEngine)(nil)

func (m *mockEngine) Search(_ context.Context, _ string, _ int) ([]domain.SearchResult, error) {
	return m.results, nil
}

func (m *mockEngine) Answer(_ context.Context, _ string) (*domain.QueryOutcome, error) {
	return &domain.QueryOutcome{}, nil
}

func (m *mockEngine) SkillMatch(_ context.Context, _ string) (*domain.SkillMatch, error) {
	return &domain.SkillMatch{}, nil
}

type mockIndex struct {
	entries []domain.IndexEntry
	cleared bool
}

var _ driven.VectorIndex = (*mockIndex)(nil)

func (m *mockIndex) Upsert(_ context.Context, entry domain.IndexEntry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockIndex) Query(_ context.Context, _ []float32, _ int) ([]driven.Hit, error) {
	return nil, nil
}

func (m *mockIndex) All(_ context.Context) ([]domain.IndexEntry, error) {
	return m.entries, nil
}

func (m *mockIndex) Count(_ context.Context) (int, error) {
	return len(m.entries), nil
}

func (m *mockIndex) Clear(_ context.Context) error {
	m.cleared = true
	m.entries = nil
	return nil
}

func (m *mockIndex) Close() error { return nil }

type mockConfigStore struct {
	data map[string]any
}

var _ driven.ConfigStore = (*mockConfigStore)(nil)

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{data: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if v, ok := m.data[key].(string); ok {
		return v
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	if v, ok := m.data[key].(int); ok {
		return v
	}
	return 0
}

func (m *mockConfigStore) GetBool(key string) bool {
	if v, ok := m.data[key].(bool); ok {
		return v
	}
	return false
}

func (m *mockConfigStore) Set(key string, value any) error {
	m.data[key] = value
	return nil
}

func (m *mockConfigStore) Save() error { return nil }
func (m *mockConfigStore) Load() error { return nil }

func (m *mockConfigStore) Path() string { return "/tmp/test-config.toml" }
