package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/careerfolio/resume-agent/internal/core/domain"
	"github.com/careerfolio/resume-agent/internal/core/ports/driven"
	"github.com/careerfolio/resume-agent/internal/core/ports/driving"
	"github.com/careerfolio/resume-agent/internal/logger"
)

// Ensure QueryService implements the interface.
var _ driving.QueryEngine = (*QueryService)(nil)

// Retrieval and response assembly parameters.
const (
	// answerRetrievalDepth is how many chunks are retrieved per answer.
	answerRetrievalDepth = 5

	// answerContextChunks is how many retrieved chunks contribute text.
	answerContextChunks = 3

	// answerContextLimit is the maximum context length in runes.
	answerContextLimit = 800

	// skillsQuery is the fixed retrieval query for skill matching.
	skillsQuery = "skills technologies programming"

	// skillMatchLimit is the maximum number of reported matching skills.
	skillMatchLimit = 10

	// skillsSummaryLimit is the maximum skills summary length in runes.
	skillsSummaryLimit = 500

	// skillTokenMinLength is the shortest job token considered a skill.
	skillTokenMinLength = 3
)

// categoryKeywords maps each query category to its trigger keywords.
// Categories are tested in the order of domain.Categories; the first
// category with any keyword present in the query wins.
var categoryKeywords = map[domain.QueryCategory][]string{
	domain.CategoryExperience:   {"experience", "work", "job", "employment", "career", "role", "position"},
	domain.CategorySkills:       {"skills", "technology", "programming", "languages", "tools", "expertise"},
	domain.CategoryEducation:    {"education", "degree", "university", "college", "school", "certification"},
	domain.CategoryAchievements: {"achievements", "accomplishments", "awards", "recognition", "success"},
	domain.CategoryProjects:     {"projects", "portfolio", "built", "developed", "created"},
	domain.CategoryContact:      {"contact", "email", "phone", "location", "address", "reach"},
}

// responseTemplates holds the per-category answer prefix sentences.
var responseTemplates = map[domain.QueryCategory]string{
	domain.CategoryExperience:   "Here's information about professional experience:",
	domain.CategorySkills:       "Here are the relevant skills and technologies:",
	domain.CategoryEducation:    "Here's the educational background:",
	domain.CategoryAchievements: "Here are notable achievements and accomplishments:",
	domain.CategoryProjects:     "Here are relevant projects and developments:",
	domain.CategoryContact:      "Here's the contact information:",
	domain.CategoryGeneral:      "Based on the resume information:",
}

// noInfoResponses holds the per-category messages for empty retrievals.
var noInfoResponses = map[domain.QueryCategory]string{
	domain.CategoryExperience:   "I don't have specific information about that work experience in the resume.",
	domain.CategorySkills:       "I don't have information about those particular skills in the resume.",
	domain.CategoryEducation:    "I don't have information about that educational background in the resume.",
	domain.CategoryAchievements: "I don't have information about those specific achievements in the resume.",
	domain.CategoryProjects:     "I don't have information about those particular projects in the resume.",
	domain.CategoryContact:      "I don't have contact information available in the resume.",
	domain.CategoryGeneral:      "I don't have information about that topic in the resume.",
}

// QueryService answers natural-language questions from the indexed resume.
type QueryService struct {
	embedder driven.EmbeddingService
	index    driven.VectorIndex
}

// NewQueryService creates a new query service.
func NewQueryService(embedder driven.EmbeddingService, index driven.VectorIndex) *QueryService {
	return &QueryService{
		embedder: embedder,
		index:    index,
	}
}

// Search returns the k nearest chunks to the query text, ordered by
// descending relevance.
func (s *QueryService) Search(ctx context.Context, query string, k int) ([]domain.SearchResult, error) {
	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEmbeddingUnavailable, err)
	}

	hits, err := s.index.Query(ctx, vector, k)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIndexUnavailable, err)
	}

	results := make([]domain.SearchResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, domain.SearchResult{
			Content:   hit.Entry.Content,
			Metadata:  hit.Entry.Metadata,
			Distance:  hit.Distance,
			Relevance: domain.RelevanceFromDistance(hit.Distance),
		})
	}
	return results, nil
}

// Answer classifies the query, retrieves relevant chunks and assembles
// a templated response.
func (s *QueryService) Answer(ctx context.Context, query string) (*domain.QueryOutcome, error) {
	logger.Section("Query Answering")

	category := ClassifyQuery(query)
	logger.Debug("Query %q classified as %s", query, category)

	results, err := s.Search(ctx, query, answerRetrievalDepth)
	if err != nil {
		return nil, err
	}
	logger.Debug("Retrieved %d chunks", len(results))

	outcome := &domain.QueryOutcome{
		Category:     category,
		SourceChunks: len(results),
		Confidence:   confidence(results),
		Timestamp:    time.Now().UTC(),
	}

	contextText := contextFrom(results)
	if contextText == "" {
		outcome.Response = noInfoResponses[category]
		outcome.SourceChunks = 0
		outcome.Confidence = 0
		return outcome, nil
	}

	var b strings.Builder
	b.WriteString(responseTemplates[category])
	b.WriteString("\n\n")
	b.WriteString(truncate(contextText, answerContextLimit))
	fmt.Fprintf(&b, "\n\n(Based on %d relevant sections from resume)", len(results))

	outcome.Response = b.String()
	return outcome, nil
}

// SkillMatch analyses how well the indexed skills cover a job description.
func (s *QueryService) SkillMatch(ctx context.Context, jobDescription string) (*domain.SkillMatch, error) {
	logger.Section("Skill Matching")

	results, err := s.Search(ctx, skillsQuery, answerRetrievalDepth)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return &domain.SkillMatch{
			SkillsSummary: "No skills information available in resume",
		}, nil
	}

	contents := make([]string, 0, len(results))
	for _, result := range results {
		contents = append(contents, result.Content)
	}
	skillsContent := strings.Join(contents, " ")

	jobTokens := strings.Fields(strings.ToLower(jobDescription))
	skillTokens := make(map[string]struct{})
	for _, token := range strings.Fields(strings.ToLower(skillsContent)) {
		skillTokens[token] = struct{}{}
	}

	// Matches preserve job-description order and are not deduplicated.
	var matches []string
	for _, token := range jobTokens {
		if len(token) <= skillTokenMinLength {
			continue
		}
		if _, ok := skillTokens[token]; ok {
			matches = append(matches, token)
		}
	}

	percentage := float64(len(matches)) / math.Max(float64(len(jobTokens)), 1) * 100
	percentage = math.Min(percentage, 100)
	percentage = math.Round(percentage*10) / 10

	reported := matches
	if len(reported) > skillMatchLimit {
		reported = reported[:skillMatchLimit]
	}

	logger.Debug("Matched %d of %d job tokens (%.1f%%)", len(matches), len(jobTokens), percentage)

	return &domain.SkillMatch{
		MatchPercentage: percentage,
		MatchingSkills:  reported,
		SkillsSummary:   truncate(skillsContent, skillsSummaryLimit),
		Confidence:      confidence(results),
	}, nil
}

// ClassifyQuery maps a query to its category by first-match keyword
// lookup, tested in fixed priority order. CategoryGeneral is the
// catch-all when no keyword matches.
func ClassifyQuery(query string) domain.QueryCategory {
	lower := strings.ToLower(query)
	for _, category := range domain.Categories() {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(lower, keyword) {
				return category
			}
		}
	}
	return domain.CategoryGeneral
}

// contextFrom joins the top chunks' text with newline separators.
func contextFrom(results []domain.SearchResult) string {
	top := results
	if len(top) > answerContextChunks {
		top = top[:answerContextChunks]
	}

	contents := make([]string, 0, len(top))
	for _, result := range top {
		if result.Content != "" {
			contents = append(contents, result.Content)
		}
	}
	return strings.Join(contents, "\n")
}

// confidence is the mean relevance of the top results, capped at 1.
func confidence(results []domain.SearchResult) float64 {
	top := results
	if len(top) > answerContextChunks {
		top = top[:answerContextChunks]
	}
	if len(top) == 0 {
		return 0
	}

	var sum float64
	for _, result := range top {
		sum += result.Relevance
	}
	return math.Min(sum/float64(len(top)), 1.0)
}

// truncate cuts text to at most limit runes.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
