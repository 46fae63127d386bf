package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
)

// TableInput is the input schema for the lineage_table tool.
type TableInput struct {
	LineageID string `json:"lineage_id" jsonschema:"the lineage uuid to fetch"`
}

// TableOutput is the output schema for the lineage_table tool.
type TableOutput struct {
	LineageID string                 `json:"lineage_id"`
	Rows      []domain.VersionRecord `json:"rows"`
	Warnings  []domain.Warning       `json:"warnings"`
	Count     int                    `json:"count"`
	Roots     []string               `json:"roots"`
}

// PathInput is the input schema for the lineage_path tool.
type PathInput struct {
	LineageID string `json:"lineage_id" jsonschema:"the lineage uuid to fetch"`
	VersionID string `json:"version_id" jsonschema:"the version to start the walk from"`
}

// PathOutput is the output schema for the lineage_path tool.
type PathOutput struct {
	Path []domain.VersionRecord `json:"path"`
}

// ChildrenInput is the input schema for the version_children tool.
type ChildrenInput struct {
	LineageID string `json:"lineage_id" jsonschema:"the lineage uuid to fetch"`
	VersionID string `json:"version_id" jsonschema:"the parent version"`
}

// ChildrenOutput is the output schema for the version_children tool.
type ChildrenOutput struct {
	Children []domain.VersionRecord `json:"children"`
}

// HistoryInput is the input schema for the dataset_history tool.
type HistoryInput struct {
	LineageID string `json:"lineage_id" jsonschema:"the lineage uuid to fetch"`
	Dataset   string `json:"dataset" jsonschema:"the dataset name"`
}

// HistoryOutput is the output schema for the dataset_history tool.
type HistoryOutput struct {
	Versions []domain.VersionRecord `json:"versions"`
}

// CompareInput is the input schema for the compare_versions tool.
type CompareInput struct {
	LineageID string `json:"lineage_id" jsonschema:"the lineage uuid to fetch"`
	FirstID   string `json:"first_id" jsonschema:"the before version"`
	SecondID  string `json:"second_id" jsonschema:"the after version"`
}

// CompareOutput is the output schema for the compare_versions tool.
type CompareOutput struct {
	Label   string                `json:"label"`
	Request domain.DiffRequest    `json:"request"`
	First   *domain.VersionRecord `json:"first,omitempty"`
	Second  *domain.VersionRecord `json:"second,omitempty"`
	Missing []string              `json:"missing"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "lineage_table",
		Description: "Fetch a lineage and return every version as one table ordered by id",
	}, s.handleTable)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "lineage_path",
		Description: "Walk derived_from links from a version up to its root",
	}, s.handlePath)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "version_children",
		Description: "List the versions derived directly from a version, oldest first",
	}, s.handleChildren)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "dataset_history",
		Description: "List every version of one dataset ordered by timestamp",
	}, s.handleHistory)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "compare_versions",
		Description: "Select two versions of a lineage for comparison",
	}, s.handleCompare)
}

func (s *Server) handleTable(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TableInput,
) (*mcp.CallToolResult, TableOutput, error) {
	session, err := s.load(ctx, input.LineageID)
	if err != nil {
		return nil, TableOutput{}, err
	}

	rows := session.Table().Rows
	roots := make([]string, 0)
	for _, r := range session.Roots() {
		roots = append(roots, r.ID)
	}
	return nil, TableOutput{
		LineageID: session.LineageID(),
		Rows:      nonNil(rows),
		Warnings:  nonNil(session.Warnings()),
		Count:     len(rows),
		Roots:     roots,
	}, nil
}

func (s *Server) handleChildren(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ChildrenInput,
) (*mcp.CallToolResult, ChildrenOutput, error) {
	session, err := s.load(ctx, input.LineageID)
	if err != nil {
		return nil, ChildrenOutput{}, err
	}

	children, err := session.Children(input.VersionID)
	if err != nil {
		return nil, ChildrenOutput{}, fmt.Errorf("listing children: %w", err)
	}
	return nil, ChildrenOutput{Children: nonNil(children)}, nil
}

func (s *Server) handlePath(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PathInput,
) (*mcp.CallToolResult, PathOutput, error) {
	session, err := s.load(ctx, input.LineageID)
	if err != nil {
		return nil, PathOutput{}, err
	}

	path, err := session.Ancestry(input.VersionID)
	if err != nil {
		return nil, PathOutput{}, fmt.Errorf("resolving ancestry: %w", err)
	}
	return nil, PathOutput{Path: path}, nil
}

func (s *Server) handleHistory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HistoryInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	session, err := s.load(ctx, input.LineageID)
	if err != nil {
		return nil, HistoryOutput{}, err
	}
	return nil, HistoryOutput{Versions: nonNil(session.DatasetHistory(input.Dataset))}, nil
}

func (s *Server) handleCompare(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CompareInput,
) (*mcp.CallToolResult, CompareOutput, error) {
	if input.FirstID == "" || input.SecondID == "" {
		return nil, CompareOutput{}, fmt.Errorf("%w: first_id and second_id are required", domain.ErrInvalidInput)
	}

	session, err := s.load(ctx, input.LineageID)
	if err != nil {
		return nil, CompareOutput{}, err
	}

	output := CompareOutput{Missing: []string{}}
	tbl := session.Table()
	if r, ok := tbl.Find(input.FirstID); ok {
		output.First = &r
	} else {
		output.Missing = append(output.Missing, input.FirstID)
	}
	if r, ok := tbl.Find(input.SecondID); ok {
		output.Second = &r
	} else {
		output.Missing = append(output.Missing, input.SecondID)
	}

	session.Select(input.FirstID)
	req, _ := session.Select(input.SecondID)
	output.Request = req
	output.Label = req.Label()
	return nil, output, nil
}

// nonNil keeps empty slices as [] in structured output.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
