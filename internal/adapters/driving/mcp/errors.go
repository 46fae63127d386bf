// Package mcp provides an MCP (Model Context Protocol) server adapter for lineage.
// It lets AI assistants read lineage tables, walk ancestry and pick versions to compare.
package mcp

import "errors"

// ErrMissingSessionFactory is returned when the session factory is not provided.
var ErrMissingSessionFactory = errors.New("mcp: session factory is required")
