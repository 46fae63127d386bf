package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
)

func TestExtractLineageID(t *testing.T) {
	tests := []struct {
		name   string
		uri    string
		suffix string
		want   string
	}{
		{name: "table uri", uri: "lineage://lineages/abc/table", suffix: "/table", want: "abc"},
		{name: "warnings uri", uri: "lineage://lineages/abc/warnings", suffix: "/warnings", want: "abc"},
		{name: "wrong scheme", uri: "other://lineages/abc/table", suffix: "/table", want: ""},
		{name: "wrong suffix", uri: "lineage://lineages/abc/warnings", suffix: "/table", want: ""},
		{name: "nested path", uri: "lineage://lineages/a/b/table", suffix: "/table", want: ""},
		{name: "empty id", uri: "lineage://lineages//table", suffix: "/table", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractLineageID(tt.uri, tt.suffix))
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleTableResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns table as json", func(t *testing.T) {
		server, _ := newTestServer(t)
		uri := "lineage://lineages/" + testLineageID + "/table"

		result, err := server.handleTableResource(ctx, makeReadResourceRequest(uri))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, uri, result.Contents[0].URI)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, "\"id\": \"323abc\"")
	})

	t.Run("malformed uri returns not found", func(t *testing.T) {
		server, gateway := newTestServer(t)

		_, err := server.handleTableResource(ctx, makeReadResourceRequest("lineage://lineages/table"))

		assert.Error(t, err)
		assert.Equal(t, 0, gateway.Calls())
	})

	t.Run("fetch failure returns error", func(t *testing.T) {
		server, gateway := newTestServer(t)
		gateway.FailWith(domain.ErrFetchFailed)

		_, err := server.handleTableResource(ctx, makeReadResourceRequest("lineage://lineages/"+testLineageID+"/table"))

		assert.ErrorIs(t, err, domain.ErrFetchFailed)
	})
}

func TestServer_handleWarningsResource(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer(t)
	uri := "lineage://lineages/" + testLineageID + "/warnings"

	result, err := server.handleWarningsResource(ctx, makeReadResourceRequest(uri))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Contains(t, result.Contents[0].Text, "MalformedRecord")
	assert.Contains(t, result.Contents[0].Text, "\"record_id\": \"bad\"")
}
