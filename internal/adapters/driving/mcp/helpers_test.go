package mcp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lineage-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/lineage-cli/internal/core/domain"
	"github.com/custodia-labs/lineage-cli/internal/core/services"
)

const testLineageID = "5a6b7c8d-1e2f-4a3b-8c4d-5e6f7a8b9c0d"

func record(dataset, op, ts string, parent any) domain.RawFields {
	return domain.RawFields{
		domain.FieldBy:          "user1",
		domain.FieldDatasetName: dataset,
		domain.FieldOperation:   op,
		domain.FieldTimestamp:   ts,
		domain.FieldDerivedFrom: parent,
	}
}

// newTestServer returns a server over a gateway holding one lineage: a chain
// of three versions plus a record with a missing timestamp.
func newTestServer(t *testing.T) (*Server, *memory.LineageGateway) {
	t.Helper()
	gateway := memory.NewLineageGateway()
	gateway.Put(testLineageID, domain.RawPayload{
		"42e581bc-0315-496b-a62b-13d33e224c0a": domain.RawGroup{
			"123abc": record("random_name", "create", "2024-04-02 12:40:02", nil),
			"223abc": record("random_name", "update", "2024-04-02 12:40:09", "123abc"),
			"323abc": record("random_name_copy", "create", "2024-04-02 12:41:15", "223abc"),
			"bad":    domain.RawFields{domain.FieldOperation: "create"},
		},
	})

	server, err := NewServer(&Ports{Sessions: services.NewSessionFactory(gateway)})
	require.NoError(t, err)
	return server, gateway
}
