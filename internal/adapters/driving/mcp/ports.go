package mcp

import (
	"github.com/custodia-labs/lineage-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Sessions creates a fresh lineage session per request. Sessions are
	// single writer, and tool calls may run concurrently.
	Sessions driving.SessionFactory
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Sessions == nil {
		return ErrMissingSessionFactory
	}
	return nil
}
