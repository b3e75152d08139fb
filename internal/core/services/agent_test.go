package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerfolio/resume-agent/internal/adapters/driven/index/memory"
	"github.com/careerfolio/resume-agent/internal/core/domain"
	"github.com/careerfolio/resume-agent/internal/core/ports/driving"
)

func TestAgent_NotReadyBeforeInitialize(t *testing.T) {
	agent := NewAgentService(&mockIngestor{}, &mockQueryEngine{}, memory.NewIndex())

	assert.False(t, agent.Ready())
}

func TestAgent_Initialize(t *testing.T) {
	ingestor := &mockIngestor{report: &driving.IngestReport{FilesProcessed: 1, ChunksIndexed: 3}}
	agent := NewAgentService(ingestor, &mockQueryEngine{}, memory.NewIndex())

	require.NoError(t, agent.Initialize(context.Background()))
	assert.True(t, agent.Ready())
}

func TestAgent_InitializeIdempotent(t *testing.T) {
	ingestor := &mockIngestor{}
	agent := NewAgentService(ingestor, &mockQueryEngine{}, memory.NewIndex())
	ctx := context.Background()

	require.NoError(t, agent.Initialize(ctx))
	require.NoError(t, agent.Initialize(ctx))
	require.NoError(t, agent.Initialize(ctx))

	assert.Equal(t, 1, ingestor.callCount())
}

func TestAgent_InitializeNoDocumentsStillReady(t *testing.T) {
	ingestor := &mockIngestor{ingestErr: domain.ErrNoDocuments}
	agent := NewAgentService(ingestor, &mockQueryEngine{}, memory.NewIndex())

	require.NoError(t, agent.Initialize(context.Background()))
	assert.True(t, agent.Ready())
}

func TestAgent_InitializeFailureCanBeRetried(t *testing.T) {
	ingestor := &mockIngestor{ingestErr: errors.New("disk error")}
	agent := NewAgentService(ingestor, &mockQueryEngine{}, memory.NewIndex())
	ctx := context.Background()

	require.Error(t, agent.Initialize(ctx))
	assert.False(t, agent.Ready())

	// Retry after the underlying problem is fixed.
	ingestor.ingestErr = nil
	require.NoError(t, agent.Initialize(ctx))
	assert.True(t, agent.Ready())
	assert.Equal(t, 2, ingestor.callCount())
}

func TestAgent_ProcessQueryBeforeInitialize(t *testing.T) {
	agent := NewAgentService(&mockIngestor{}, &mockQueryEngine{}, memory.NewIndex())

	outcome := agent.ProcessQuery(context.Background(), "what are your skills?")
	require.NotNil(t, outcome)

	assert.Equal(t, "Agent not initialized. Please initialize first.", outcome.Response)
	assert.Zero(t, outcome.Confidence)
	assert.Zero(t, outcome.SourceChunks)
}

func TestAgent_ProcessQuery(t *testing.T) {
	want := &domain.QueryOutcome{
		Response:     "Here are the relevant skills and technologies:\n\nGo, Python",
		Category:     domain.CategorySkills,
		SourceChunks: 2,
		Confidence:   0.8,
		Timestamp:    time.Now().UTC(),
	}
	agent := NewAgentService(&mockIngestor{}, &mockQueryEngine{outcome: want}, memory.NewIndex())
	require.NoError(t, agent.Initialize(context.Background()))

	outcome := agent.ProcessQuery(context.Background(), "skills?")
	assert.Equal(t, want, outcome)
}

func TestAgent_ProcessQueryEngineError(t *testing.T) {
	engine := &mockQueryEngine{answerErr: errors.New("index corrupted")}
	agent := NewAgentService(&mockIngestor{}, engine, memory.NewIndex())
	require.NoError(t, agent.Initialize(context.Background()))

	outcome := agent.ProcessQuery(context.Background(), "what are your skills?")
	require.NotNil(t, outcome)

	assert.Equal(t, "I encountered an error while processing your question. Please try again.", outcome.Response)
	assert.Equal(t, domain.CategorySkills, outcome.Category)
	assert.Zero(t, outcome.Confidence)
}

func TestAgent_SkillMatchBeforeInitialize(t *testing.T) {
	agent := NewAgentService(&mockIngestor{}, &mockQueryEngine{}, memory.NewIndex())

	match := agent.SkillMatch(context.Background(), "python developer")
	require.NotNil(t, match)

	assert.Zero(t, match.MatchPercentage)
	assert.Zero(t, match.Confidence)
}

func TestAgent_SkillMatch(t *testing.T) {
	want := &domain.SkillMatch{
		MatchPercentage: 66.7,
		MatchingSkills:  []string{"python", "docker"},
		Confidence:      0.5,
	}
	agent := NewAgentService(&mockIngestor{}, &mockQueryEngine{match: want}, memory.NewIndex())
	require.NoError(t, agent.Initialize(context.Background()))

	match := agent.SkillMatch(context.Background(), "python docker rust")
	assert.Equal(t, want, match)
}

func TestAgent_SkillMatchEngineError(t *testing.T) {
	engine := &mockQueryEngine{matchErr: errors.New("embedding down")}
	agent := NewAgentService(&mockIngestor{}, engine, memory.NewIndex())
	require.NoError(t, agent.Initialize(context.Background()))

	match := agent.SkillMatch(context.Background(), "python")
	require.NotNil(t, match)
	assert.Zero(t, match.MatchPercentage)
	assert.Zero(t, match.Confidence)
}

func TestAgent_Info(t *testing.T) {
	index := memory.NewIndex()
	agent := NewAgentService(&mockIngestor{}, &mockQueryEngine{}, index)
	ctx := context.Background()

	info := agent.Info(ctx)
	assert.Equal(t, "Personal Resume Agent", info.Name)
	assert.NotEmpty(t, info.Description)
	assert.False(t, info.Initialized)
	assert.Len(t, info.Capabilities, 5)
	assert.Equal(t, "No resume information available", info.ResumeSummary)
	assert.False(t, info.LastUpdated.IsZero())

	require.NoError(t, agent.Initialize(ctx))
	require.NoError(t, index.Upsert(ctx, domain.IndexEntry{
		ID:      "resume_resume.txt_0",
		Content: "Skills: Go",
		Metadata: domain.EntryMetadata{
			SourceFile:   "resume.txt",
			DocumentType: domain.DocumentTypeResume,
		},
	}))

	info = agent.Info(ctx)
	assert.True(t, info.Initialized)
	assert.Contains(t, info.ResumeSummary, "Total content chunks: 1")
	assert.Contains(t, info.ResumeSummary, "resume.txt")
}
