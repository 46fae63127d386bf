package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/lineage-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/lineage-cli/internal/core/domain"
	"github.com/custodia-labs/lineage-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lineage-cli/internal/core/services"
)

const testLineageID = "3c9d2e1f-6a7b-4c8d-9e0f-1a2b3c4d5e6f"

func record(dataset, op, ts string, parent any) domain.RawFields {
	return domain.RawFields{
		domain.FieldBy:          "user1",
		domain.FieldDatasetName: dataset,
		domain.FieldOperation:   op,
		domain.FieldTimestamp:   ts,
		domain.FieldDerivedFrom: parent,
	}
}

// versioned adds the service's version label to a record.
func versioned(fields domain.RawFields, label string) domain.RawFields {
	fields[domain.FieldVersion] = label
	return fields
}

// testPayload holds a versioned chain of three records and a copy derived
// from the last of them in a second group.
func testPayload() domain.RawPayload {
	return domain.RawPayload{
		"42e581bc-0315-496b-a62b-13d33e224c0a": domain.RawGroup{
			"123abc": versioned(record("random_name", "create", "2024-04-02 12:40:02", nil), "1"),
			"223abc": versioned(record("random_name", "update", "2024-04-02 12:40:09", "123abc"), "2"),
			"323abc": versioned(record("random_name", "update:renamed column", "2024-04-02 12:41:15", "223abc"), "3"),
		},
		"9b2f7c61-8d4e-4f3a-a2b1-c0d9e8f7a6b5": domain.RawGroup{
			"423abc_c": record("random_name_copy", "create", "2024-04-02 12:45:00", "323abc"),
		},
	}
}

// mockAuthService implements driving.AuthService for testing.
type mockAuthService struct {
	loginErr  error
	logoutErr error
	status    driving.AuthStatus

	username string
	password string
	logouts  int
}

func (m *mockAuthService) Login(_ context.Context, username, password string) error {
	m.username = username
	m.password = password
	return m.loginErr
}

func (m *mockAuthService) Logout() error {
	m.logouts++
	return m.logoutErr
}

func (m *mockAuthService) Status() driving.AuthStatus {
	return m.status
}

// testServices holds the services installed by setupTestServices.
type testServices struct {
	gateway *memory.LineageGateway
	auth    *mockAuthService
	config  *memory.ConfigStore
}

// setupTestServices installs in-memory services and returns a cleanup
// function that restores the previous ones.
func setupTestServices(t *testing.T) *testServices {
	t.Helper()

	gateway := memory.NewLineageGateway()
	gateway.Put(testLineageID, testPayload())
	config := memory.NewConfigStore()
	auth := &mockAuthService{
		status: driving.AuthStatus{Method: domain.AuthMethodPassword, Authenticated: true},
	}

	origSessions, origAuth, origSettings, origChanges := sessionFactory, authService, settingsService, changeSource
	SetServices(&Services{
		Sessions: services.NewSessionFactory(gateway),
		Auth:     auth,
		Settings: services.NewSettingsService(config),
	})
	t.Cleanup(func() {
		sessionFactory, authService, settingsService, changeSource = origSessions, origAuth, origSettings, origChanges
	})

	return &testServices{gateway: gateway, auth: auth, config: config}
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeWithInput(t, "", args...)
}

func executeWithInput(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetIn(bytes.NewBufferString(input))
	rootCmd.SetArgs(args)
	resetFlags(rootCmd)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag to its default, since cobra keeps parsed
// values between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

var testExpiry = time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
