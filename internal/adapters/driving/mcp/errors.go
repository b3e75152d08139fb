// Package mcp provides an MCP (Model Context Protocol) server adapter for
// the resume agent. It enables AI assistants to query the indexed resume
// over a JSON-RPC transport (stdio or HTTP).
package mcp

import "errors"

// ErrMissingAgent is returned when the agent port is not provided.
var ErrMissingAgent = errors.New("mcp: agent is required")
