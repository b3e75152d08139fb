package driving

import (
	"context"

	"github.com/careerfolio/resume-agent/internal/core/domain"
)

// Agent is the stateful facade over ingestion and querying.
// It owns the initialized/uninitialized lifecycle; queries made before
// Initialize succeed with a system-error outcome rather than an error.
type Agent interface {
	// Initialize loads the resume knowledge base. Idempotent: repeat
	// calls after success are no-ops; a failed initialisation may be
	// retried.
	Initialize(ctx context.Context) error

	// Ready reports whether the agent can answer queries.
	Ready() bool

	// ProcessQuery answers a user query. Never returns a raw error to
	// represent user-visible failure: degraded outcomes carry a
	// plain-language message and confidence 0.
	ProcessQuery(ctx context.Context, query string) *domain.QueryOutcome

	// SkillMatch analyses a job description against indexed skills.
	SkillMatch(ctx context.Context, jobDescription string) *domain.SkillMatch

	// Info describes the agent and its current knowledge base.
	Info(ctx context.Context) *domain.AgentInfo
}
