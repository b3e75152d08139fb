package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// defaultSearchLimit bounds the search tool when no limit is given.
const defaultSearchLimit = 5

// QueryInput is the input schema for the query_resume tool.
type QueryInput struct {
	Query string `json:"query" jsonschema:"the natural-language question about the resume"`
}

// QueryOutput is the output schema for the query_resume tool.
type QueryOutput struct {
	Response     string  `json:"response"`
	QueryType    string  `json:"query_type"`
	SourceChunks int     `json:"source_chunks"`
	Confidence   float64 `json:"confidence"`
	Timestamp    string  `json:"timestamp"`
}

// SkillMatchInput is the input schema for the skill_match tool.
type SkillMatchInput struct {
	JobDescription string `json:"job_description" jsonschema:"the job description to match against indexed skills"`
}

// SkillMatchOutput is the output schema for the skill_match tool.
type SkillMatchOutput struct {
	MatchPercentage float64  `json:"match_percentage"`
	MatchingSkills  []string `json:"matching_skills"`
	SkillsSummary   string   `json:"skills_summary"`
	Confidence      float64  `json:"confidence"`
}

// AgentInfoInput is the input schema for the agent_info tool.
type AgentInfoInput struct{}

// AgentInfoOutput is the output schema for the agent_info tool.
type AgentInfoOutput struct {
	AgentName     string   `json:"agent_name"`
	Description   string   `json:"description"`
	Initialized   bool     `json:"initialized"`
	Capabilities  []string `json:"capabilities"`
	ResumeSummary string   `json:"resume_summary"`
	LastUpdated   string   `json:"last_updated"`
}

// SearchInput is the input schema for the search_resume tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query to find resume chunks"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 5)"`
}

// SearchOutput is the output schema for the search_resume tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single retrieved chunk.
type SearchResultOutput struct {
	Content    string  `json:"content"`
	SourceFile string  `json:"source_file"`
	ChunkIndex int     `json:"chunk_index"`
	Relevance  float64 `json:"relevance"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "query_resume",
		Description: "Answer a natural-language question from the indexed resume",
	}, s.handleQuery)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "skill_match",
		Description: "Analyse how well the indexed skills cover a job description",
	}, s.handleSkillMatch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "agent_info",
		Description: "Describe the agent and its indexed knowledge base",
	}, s.handleAgentInfo)

	if s.ports.Engine != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "search_resume",
			Description: "Retrieve the resume chunks most relevant to a query",
		}, s.handleSearch)
	}
}

// handleQuery handles the query_resume tool invocation.
func (s *Server) handleQuery(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryInput,
) (*mcp.CallToolResult, QueryOutput, error) {
	outcome := s.ports.Agent.ProcessQuery(ctx, input.Query)

	return nil, QueryOutput{
		Response:     outcome.Response,
		QueryType:    string(outcome.Category),
		SourceChunks: outcome.SourceChunks,
		Confidence:   outcome.Confidence,
		Timestamp:    outcome.Timestamp.Format(time.RFC3339),
	}, nil
}

// handleSkillMatch handles the skill_match tool invocation.
func (s *Server) handleSkillMatch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SkillMatchInput,
) (*mcp.CallToolResult, SkillMatchOutput, error) {
	match := s.ports.Agent.SkillMatch(ctx, input.JobDescription)

	return nil, SkillMatchOutput{
		MatchPercentage: match.MatchPercentage,
		MatchingSkills:  match.MatchingSkills,
		SkillsSummary:   match.SkillsSummary,
		Confidence:      match.Confidence,
	}, nil
}

// handleAgentInfo handles the agent_info tool invocation.
func (s *Server) handleAgentInfo(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ AgentInfoInput,
) (*mcp.CallToolResult, AgentInfoOutput, error) {
	info := s.ports.Agent.Info(ctx)

	return nil, AgentInfoOutput{
		AgentName:     info.Name,
		Description:   info.Description,
		Initialized:   info.Initialized,
		Capabilities:  info.Capabilities,
		ResumeSummary: info.ResumeSummary,
		LastUpdated:   info.LastUpdated.Format(time.RFC3339),
	}, nil
}

// handleSearch handles the search_resume tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	results, err := s.ports.Engine.Search(ctx, input.Query, limit)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = SearchResultOutput{
			Content:    results[i].Content,
			SourceFile: results[i].Metadata.SourceFile,
			ChunkIndex: results[i].Metadata.ChunkIndex,
			Relevance:  results[i].Relevance,
		}
	}

	return nil, output, nil
}
