package mcp

import (
	"context"
	"time"

	"github.com/careerfolio/resume-agent/internal/core/domain"
	"github.com/careerfolio/resume-agent/internal/core/ports/driving"
)

// mockAgent implements driving.Agent for testing.
type mockAgent struct {
	outcome *domain.QueryOutcome
	match   *domain.SkillMatch
	info    *domain.AgentInfo
	ready   bool
}

var _ driving.Agent = (*mockAgent)(nil)

func (m *mockAgent) Initialize(_ context.Context) error { return nil }
func (m *mockAgent) Ready() bool                        { return m.ready }

func (m *mockAgent) ProcessQuery(_ context.Context, _ string) *domain.QueryOutcome {
	if m.outcome != nil {
		return m.outcome
	}
	return &domain.QueryOutcome{Timestamp: time.Now().UTC()}
}

func (m *mockAgent) SkillMatch(_ context.Context, _ string) *domain.SkillMatch {
	if m.match != nil {
		return m.match
	}
	return &domain.SkillMatch{}
}

func (m *mockAgent) Info(_ context.Context) *domain.AgentInfo {
	if m.info != nil {
		return m.info
	}
	return &domain.AgentInfo{LastUpdated: time.Now().UTC()}
}

// mockEngine implements driving.QueryEngine for testing.
type mockEngine struct {
	results   []domain.SearchResult
	searchErr error
}

var _ driving.QueryEngine = (*mockEngine)(nil)

func (m *mockEngine) Search(_ context.Context, _ string, k int) ([]domain.SearchResult, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if k < len(m.results) {
		return m.results[:k], nil
	}
	return m.results, nil
}

func (m *mockEngine) Answer(_ context.Context, _ string) (*domain.QueryOutcome, error) {
	return &domain.QueryOutcome{}, nil
}

func (m *mockEngine) SkillMatch(_ context.Context, _ string) (*domain.SkillMatch, error) {
	return &domain.SkillMatch{}, nil
}
