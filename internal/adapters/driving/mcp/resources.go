package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for lineage resources.
	uriScheme = "lineage://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "lineages/{lineageId}/table",
		Name:        "lineage-table",
		Description: "Flattened version table of a lineage",
		MIMEType:    "application/json",
	}, s.handleTableResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "lineages/{lineageId}/warnings",
		Name:        "lineage-warnings",
		Description: "Records dropped or flagged while loading a lineage",
		MIMEType:    "application/json",
	}, s.handleWarningsResource)
}

// handleTableResource returns the flattened table of a lineage.
func (s *Server) handleTableResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	lineageID := extractLineageID(req.Params.URI, "/table")
	if lineageID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	session, err := s.load(ctx, lineageID)
	if err != nil {
		return nil, fmt.Errorf("loading lineage: %w", err)
	}
	return jsonResource(req.Params.URI, nonNil(session.Table().Rows))
}

// handleWarningsResource returns the warnings of a lineage load.
func (s *Server) handleWarningsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	lineageID := extractLineageID(req.Params.URI, "/warnings")
	if lineageID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	session, err := s.load(ctx, lineageID)
	if err != nil {
		return nil, fmt.Errorf("loading lineage: %w", err)
	}
	return jsonResource(req.Params.URI, nonNil(session.Warnings()))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractLineageID extracts the lineage id from a URI like
// lineage://lineages/{lineageId}/table.
func extractLineageID(uri, suffix string) string {
	const prefix = uriScheme + "lineages/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	id := strings.TrimSuffix(uri, suffix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
