// Package tui provides an interactive chat interface for the resume
// agent. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/careerfolio/resume-agent/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the chat view.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Agent answers questions about the resume.
	Agent driving.Agent
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Agent == nil {
		return ErrMissingAgent
	}
	return nil
}
