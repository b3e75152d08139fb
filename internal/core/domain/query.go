package domain

import "time"

// QueryCategory classifies a user query into one of a fixed set of
// resume topics. Classification is total: every query maps to exactly
// one category, with CategoryGeneral as the catch-all.
type QueryCategory string

const (
	// CategoryExperience covers work history and roles.
	CategoryExperience QueryCategory = "experience"

	// CategorySkills covers technologies and expertise.
	CategorySkills QueryCategory = "skills"

	// CategoryEducation covers degrees and certifications.
	CategoryEducation QueryCategory = "education"

	// CategoryAchievements covers awards and recognition.
	CategoryAchievements QueryCategory = "achievements"

	// CategoryProjects covers portfolio and built systems.
	CategoryProjects QueryCategory = "projects"

	// CategoryContact covers contact details.
	CategoryContact QueryCategory = "contact"

	// CategoryGeneral is the catch-all when no keyword matches.
	CategoryGeneral QueryCategory = "general"
)

// Categories lists all query categories in classification priority order.
func Categories() []QueryCategory {
	return []QueryCategory{
		CategoryExperience,
		CategorySkills,
		CategoryEducation,
		CategoryAchievements,
		CategoryProjects,
		CategoryContact,
		CategoryGeneral,
	}
}

// SearchResult is a retrieved chunk with its distance and derived
// relevance. Produced transiently per query, never persisted.
type SearchResult struct {
	// Content is the chunk text.
	Content string

	// Metadata describes the chunk's origin.
	Metadata EntryMetadata

	// Distance is the raw vector distance reported by the index.
	// Non-negative; smaller means more similar.
	Distance float64

	// Relevance is max(0, 1-Distance), clamped to [0,1].
	Relevance float64
}

// RelevanceFromDistance converts a vector distance into a relevance
// score in [0,1]. Higher relevance means more similar.
func RelevanceFromDistance(distance float64) float64 {
	r := 1.0 - distance
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// QueryOutcome is the assembled answer for a single query call.
type QueryOutcome struct {
	// Response is the templated answer text.
	Response string

	// Category is the classified query type.
	Category QueryCategory

	// SourceChunks is the number of chunks that contributed.
	SourceChunks int

	// Confidence is the aggregate relevance of the contributing
	// chunks, in [0,1]. Zero when nothing was retrieved.
	Confidence float64

	// Timestamp is when the outcome was produced.
	Timestamp time.Time
}

// SkillMatch reports how well the indexed skills match a job description.
type SkillMatch struct {
	// MatchPercentage is in [0,100], rounded to one decimal place.
	MatchPercentage float64

	// MatchingSkills are the first matching job-description tokens,
	// in job-description order. At most ten; duplicates are kept.
	MatchingSkills []string

	// SkillsSummary is an excerpt of the retrieved skills content.
	SkillsSummary string

	// Confidence is the aggregate relevance of the skills chunks used.
	Confidence float64
}

// AgentInfo describes the agent and its capabilities to callers.
type AgentInfo struct {
	// Name is the agent's display name.
	Name string

	// Description summarises what the agent does.
	Description string

	// Initialized reports whether the agent is ready to answer.
	Initialized bool

	// Capabilities lists what the agent can help with.
	Capabilities []string

	// ResumeSummary is a statistics summary of the indexed knowledge.
	ResumeSummary string

	// LastUpdated is when this info snapshot was produced.
	LastUpdated time.Time
}
