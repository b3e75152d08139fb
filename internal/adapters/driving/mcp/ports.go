package mcp

import (
	"github.com/careerfolio/resume-agent/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Agent answers queries and skill-match requests.
	Agent driving.Agent

	// Engine provides raw retrieval for the search tool. Optional;
	// the search tool is not registered when nil.
	Engine driving.QueryEngine
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Agent == nil {
		return ErrMissingAgent
	}
	return nil
}
