package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/careerfolio/resume-agent/internal/core/domain"
	"github.com/careerfolio/resume-agent/internal/core/ports/driven"
	"github.com/careerfolio/resume-agent/internal/core/ports/driving"
	"github.com/careerfolio/resume-agent/internal/logger"
)

// Ensure AgentService implements the interface.
var _ driving.Agent = (*AgentService)(nil)

// Agent identity returned by Info.
const (
	agentName        = "Personal Resume Agent"
	agentDescription = "AI agent with comprehensive knowledge of personal resume and professional background"
)

// agentCapabilities lists what the agent can help with.
var agentCapabilities = []string{
	"Answer questions about work experience",
	"Highlight relevant skills for job applications",
	"Provide education and certification details",
	"Explain career progression and achievements",
	"Generate tailored professional responses",
}

// Fixed responses for degraded outcomes.
const (
	notInitializedResponse = "Agent not initialized. Please initialize first."
	systemErrorResponse    = "I encountered an error while processing your question. Please try again."
)

// agentState tracks the initialisation lifecycle.
type agentState int

const (
	stateUninitialized agentState = iota
	stateInitializing
	stateReady
	stateFailed
)

// AgentService is the stateful facade over ingestion and querying.
// A failed initialisation can be retried; queries made before the
// agent is ready yield a degraded outcome, never an error.
type AgentService struct {
	mu       sync.Mutex
	state    agentState
	ingestor driving.Ingestor
	engine   driving.QueryEngine
	index    driven.VectorIndex
}

// NewAgentService creates an uninitialised agent.
func NewAgentService(
	ingestor driving.Ingestor,
	engine driving.QueryEngine,
	index driven.VectorIndex,
) *AgentService {
	return &AgentService{
		ingestor: ingestor,
		engine:   engine,
		index:    index,
	}
}

// Initialize loads the resume knowledge base. Idempotent: repeat calls
// after success are no-ops. An empty data directory leaves the agent
// ready with an empty knowledge base; every query then answers with
// the category's no-information message.
func (s *AgentService) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateReady {
		return nil
	}

	s.state = stateInitializing
	logger.Section("Agent Initialisation")

	report, err := s.ingestor.Ingest(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoDocuments) {
			logger.Warn("No documents found; agent ready with empty knowledge base")
			s.state = stateReady
			return nil
		}
		s.state = stateFailed
		return fmt.Errorf("initializing agent: %w", err)
	}

	logger.Info("Agent ready: %d chunks from %d files",
		report.ChunksIndexed, report.FilesProcessed)
	s.state = stateReady
	return nil
}

// Ready reports whether the agent can answer queries.
func (s *AgentService) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == stateReady
}

// ProcessQuery answers a user query. Failures surface as degraded
// outcomes with a plain-language message and confidence 0.
func (s *AgentService) ProcessQuery(ctx context.Context, query string) *domain.QueryOutcome {
	if !s.Ready() {
		return &domain.QueryOutcome{
			Response:  notInitializedResponse,
			Category:  domain.CategoryGeneral,
			Timestamp: time.Now().UTC(),
		}
	}

	outcome, err := s.engine.Answer(ctx, query)
	if err != nil {
		logger.Warn("Query failed: %v", err)
		return &domain.QueryOutcome{
			Response:  systemErrorResponse,
			Category:  ClassifyQuery(query),
			Timestamp: time.Now().UTC(),
		}
	}
	return outcome
}

// SkillMatch analyses a job description against indexed skills.
// Failures surface as an empty match with confidence 0.
func (s *AgentService) SkillMatch(ctx context.Context, jobDescription string) *domain.SkillMatch {
	if !s.Ready() {
		return &domain.SkillMatch{SkillsSummary: notInitializedResponse}
	}

	match, err := s.engine.SkillMatch(ctx, jobDescription)
	if err != nil {
		logger.Warn("Skill match failed: %v", err)
		return &domain.SkillMatch{SkillsSummary: systemErrorResponse}
	}
	return match
}

// Info describes the agent and its current knowledge base.
func (s *AgentService) Info(ctx context.Context) *domain.AgentInfo {
	return &domain.AgentInfo{
		Name:          agentName,
		Description:   agentDescription,
		Initialized:   s.Ready(),
		Capabilities:  agentCapabilities,
		ResumeSummary: s.resumeSummary(ctx),
		LastUpdated:   time.Now().UTC(),
	}
}

// resumeSummary builds a statistics summary of the indexed knowledge.
func (s *AgentService) resumeSummary(ctx context.Context) string {
	entries, err := s.index.All(ctx)
	if err != nil {
		logger.Warn("Resume summary failed: %v", err)
		return "Error retrieving resume summary"
	}
	if len(entries) == 0 {
		return "No resume information available"
	}

	seen := make(map[string]struct{})
	var sources []string
	for _, entry := range entries {
		if _, ok := seen[entry.Metadata.SourceFile]; ok {
			continue
		}
		seen[entry.Metadata.SourceFile] = struct{}{}
		sources = append(sources, entry.Metadata.SourceFile)
	}
	sort.Strings(sources)

	return fmt.Sprintf(
		"Resume Knowledge Base Summary:\n"+
			"- Total content chunks: %d\n"+
			"- Source files: %s\n"+
			"- Knowledge areas available for queries about professional experience, skills, education, etc.",
		len(entries), strings.Join(sources, ", "))
}
