package tui

import "errors"

// ErrMissingAgent is returned when the agent port is not provided.
var ErrMissingAgent = errors.New("tui: agent is required")
