package driving

import (
	"context"

	"github.com/careerfolio/resume-agent/internal/core/domain"
)

// QueryEngine answers natural-language questions from the indexed resume.
type QueryEngine interface {
	// Search returns the k nearest chunks to the query text,
	// ordered by descending relevance.
	Search(ctx context.Context, query string, k int) ([]domain.SearchResult, error)

	// Answer classifies the query, retrieves relevant chunks and
	// assembles a templated response.
	Answer(ctx context.Context, query string) (*domain.QueryOutcome, error)

	// SkillMatch analyses how well the indexed skills cover a job
	// description.
	SkillMatch(ctx context.Context, jobDescription string) (*domain.SkillMatch, error)
}
