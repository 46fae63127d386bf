package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lineage-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/lineage-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/lineage-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/lineage-cli/internal/core/domain"
	"github.com/custodia-labs/lineage-cli/internal/core/services"
)

const testLineageID = "0f3c2b1a-9d8e-4f7a-b6c5-d4e3f2a1b0c9"

func record(dataset, op, ts string, parent any) domain.RawFields {
	return domain.RawFields{
		domain.FieldBy:          "user1",
		domain.FieldDatasetName: dataset,
		domain.FieldOperation:   op,
		domain.FieldTimestamp:   ts,
		domain.FieldDerivedFrom: parent,
	}
}

func testPayload() domain.RawPayload {
	return domain.RawPayload{
		"42e581bc-0315-496b-a62b-13d33e224c0a": domain.RawGroup{
			"123abc": record("random_name", "create", "2024-04-02 12:40:02", nil),
			"223abc": record("random_name", "update", "2024-04-02 12:40:09", "123abc"),
			"323abc": record("random_name", "update", "2024-04-02 12:41:15", "223abc"),
		},
	}
}

func newTestApp(t *testing.T) (*App, *memory.LineageGateway) {
	t.Helper()
	gateway := memory.NewLineageGateway()
	gateway.Put(testLineageID, testPayload())
	app, err := NewApp(&Ports{Session: services.NewSession(gateway)}, testLineageID)
	require.NoError(t, err)
	app.SetDimensions(100, 30)
	return app, gateway
}

// runLoad executes a load command synchronously and feeds the result back.
func runLoad(t *testing.T, app *App, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	loaded, ok := msg.(messages.LineageLoaded)
	require.True(t, ok, "expected LineageLoaded, got %T", msg)
	app.Update(loaded)
}

func loadedApp(t *testing.T) (*App, *memory.LineageGateway) {
	t.Helper()
	app, gateway := newTestApp(t)
	runLoad(t, app, app.startLoad(testLineageID))
	return app, gateway
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(app *App, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = app.Update(keyMsg(k))
	}
	return cmd
}

func TestNewApp_Success(t *testing.T) {
	app, _ := newTestApp(t)

	assert.Equal(t, messages.ViewTable, app.CurrentView())
	assert.Equal(t, testLineageID, app.LineageID())
	assert.False(t, app.Loading())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{}, testLineageID)

	assert.ErrorIs(t, err, ErrMissingSession)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := newTestApp(t)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Same(t, app, app.WithContext(ctx))
}

func TestApp_Init(t *testing.T) {
	app, _ := newTestApp(t)

	cmd := app.Init()

	assert.NotNil(t, cmd)
	assert.True(t, app.Loading())
}

func TestApp_Init_WithoutLineageOpensPrompt(t *testing.T) {
	app, err := NewApp(&Ports{Session: services.NewSession(memory.NewLineageGateway())}, "")
	require.NoError(t, err)

	app.Init()

	assert.Equal(t, messages.ViewPrompt, app.CurrentView())
	assert.False(t, app.Loading())
}

func TestApp_Update_WindowSize(t *testing.T) {
	gateway := memory.NewLineageGateway()
	app, err := NewApp(&Ports{Session: services.NewSession(gateway)}, testLineageID)
	require.NoError(t, err)
	assert.False(t, app.Ready())

	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.True(t, app.Ready())
}

func TestApp_Load_PopulatesTable(t *testing.T) {
	app, gateway := loadedApp(t)

	assert.False(t, app.Loading())
	assert.NoError(t, app.Err())
	assert.Equal(t, 1, gateway.Calls())
	assert.Len(t, app.table.Rows(), 3)
	assert.Equal(t, status.StateReady, app.status.State())
	assert.Contains(t, app.View(), "323abc")
}

func TestApp_Load_Failure(t *testing.T) {
	app, gateway := loadedApp(t)
	gateway.FailWith(domain.ErrFetchFailed)

	runLoad(t, app, press(app, "R"))

	assert.ErrorIs(t, app.Err(), domain.ErrFetchFailed)
	assert.Equal(t, status.StateError, app.status.State())
	// The previous table stays on screen.
	assert.Len(t, app.table.Rows(), 3)

	press(app, "esc")
	assert.NoError(t, app.Err())
	assert.Equal(t, status.StateReady, app.status.State())
}

func TestApp_Refetch_IgnoredWhileLoading(t *testing.T) {
	app, _ := newTestApp(t)
	app.startLoad(testLineageID)

	cmd := press(app, "R")

	assert.Nil(t, cmd)
}

func TestApp_Select_TwoRowsProducesDiff(t *testing.T) {
	app, _ := loadedApp(t)

	press(app, " ")
	assert.Equal(t, []string{"123abc"}, app.ports.Session.DiffBuffer())
	assert.Empty(t, app.status.LastDiff())

	press(app, "j", " ")

	assert.Equal(t, domain.DiffReady, app.ports.Session.DiffState())
	assert.Equal(t, "Value 1:123abc Value 2:223abc", app.status.LastDiff())
	req, ok := app.diff.Request()
	require.True(t, ok)
	assert.Equal(t, domain.DiffRequest{FirstID: "123abc", SecondID: "223abc"}, req)
	assert.Contains(t, app.View(), "Value 1:123abc Value 2:223abc")
}

func TestApp_Reset_ClearsSelection(t *testing.T) {
	app, _ := loadedApp(t)
	press(app, " ", "j", " ")

	press(app, "r")

	assert.Equal(t, domain.DiffEmpty, app.ports.Session.DiffState())
	assert.Empty(t, app.ports.Session.DiffBuffer())
	assert.Empty(t, app.status.LastDiff())
	_, ok := app.diff.Request()
	assert.False(t, ok)
}

func TestApp_Reload_KeepsSelection(t *testing.T) {
	app, _ := loadedApp(t)
	press(app, " ")

	runLoad(t, app, press(app, "R"))

	assert.Equal(t, []string{"123abc"}, app.ports.Session.DiffBuffer())
}

func TestApp_Navigation(t *testing.T) {
	app, _ := loadedApp(t)

	press(app, "G")
	assert.Equal(t, 2, app.table.Cursor())

	press(app, "k")
	assert.Equal(t, 1, app.table.Cursor())

	press(app, "g")
	assert.Equal(t, 0, app.table.Cursor())
}

func TestApp_Prompt_LoadsTypedLineage(t *testing.T) {
	app, gateway := loadedApp(t)
	other := "11111111-2222-4333-8444-555555555555"
	gateway.Put(other, domain.RawPayload{
		"group": domain.RawGroup{"aaa": record("other", "create", "2024-04-02 12:40:02", nil)},
	})

	press(app, "l")
	require.Equal(t, messages.ViewPrompt, app.CurrentView())

	// q is typed into the prompt rather than quitting.
	press(app, "q")
	assert.Equal(t, "q", app.input.Value())
	assert.Equal(t, messages.ViewPrompt, app.CurrentView())
	app.input.SetValue(other)

	runLoad(t, app, press(app, "enter"))

	assert.Equal(t, messages.ViewTable, app.CurrentView())
	assert.Equal(t, other, app.LineageID())
	assert.Len(t, app.table.Rows(), 1)
}

func TestApp_Prompt_EmptyValueIgnored(t *testing.T) {
	app, _ := loadedApp(t)
	press(app, "l")

	cmd := press(app, "enter")

	assert.Nil(t, cmd)
	assert.Equal(t, messages.ViewPrompt, app.CurrentView())
}

func TestApp_Prompt_Cancel(t *testing.T) {
	app, _ := loadedApp(t)
	press(app, "l")

	press(app, "esc")

	assert.Equal(t, messages.ViewTable, app.CurrentView())
	assert.Equal(t, testLineageID, app.LineageID())
}

func TestApp_HelpView(t *testing.T) {
	app, _ := loadedApp(t)

	press(app, "?")
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Equal(t, status.StateHelp, app.status.State())
	assert.Contains(t, app.View(), "refetch")

	press(app, "esc")
	assert.Equal(t, messages.ViewTable, app.CurrentView())
	assert.Equal(t, status.StateReady, app.status.State())
}

func TestApp_Quit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			app, _ := loadedApp(t)

			cmd := press(app, k)

			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestApp_FixtureChanged_ReloadsMatchingLineage(t *testing.T) {
	tests := []struct {
		name       string
		changedID  string
		wantReload bool
	}{
		{name: "single file fixture", changedID: "", wantReload: true},
		{name: "same lineage", changedID: testLineageID, wantReload: true},
		{name: "other lineage", changedID: "other", wantReload: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := loadedApp(t)

			app.Update(messages.FixtureChanged{LineageID: tt.changedID})

			assert.Equal(t, tt.wantReload, app.Loading())
		})
	}
}

func TestApp_FixtureChanged_DuringLoadReloadsAfterwards(t *testing.T) {
	app, gateway := loadedApp(t)
	inFlight := app.startLoad(testLineageID)
	msg := inFlight()

	app.Update(messages.FixtureChanged{LineageID: testLineageID})
	payload := testPayload()
	group, _, _ := payload.Group("42e581bc-0315-496b-a62b-13d33e224c0a")
	group["423abc"] = record("random_name", "update", "2024-04-02 12:42:00", "323abc")
	gateway.Put(testLineageID, payload)

	_, next := app.Update(msg)

	require.NotNil(t, next)
	assert.True(t, app.Loading())
	runLoad(t, app, next)
	assert.False(t, app.Loading())
	assert.Len(t, app.table.Rows(), 4)
}

func TestApp_FixtureChanged_DuringLoadOfOtherLineage(t *testing.T) {
	app, _ := loadedApp(t)
	inFlight := app.startLoad(testLineageID)

	app.Update(messages.FixtureChanged{LineageID: "other"})
	_, next := app.Update(inFlight())

	assert.Nil(t, next)
	assert.False(t, app.Loading())
}

func TestApp_Load_MarksRoots(t *testing.T) {
	app, _ := loadedApp(t)

	var marked []string
	for _, line := range strings.Split(app.table.View(), "\n") {
		if strings.Contains(line, "*") {
			marked = append(marked, line)
		}
	}

	require.Len(t, marked, 1)
	assert.Contains(t, marked[0], "123abc")
	assert.NotContains(t, marked[0], "223abc")
}

func TestApp_Watch_DeliversChanges(t *testing.T) {
	gateway := memory.NewLineageGateway()
	gateway.Put(testLineageID, testPayload())
	src := &stubChangeSource{ids: []string{testLineageID}}
	app, err := NewApp(&Ports{Session: services.NewSession(gateway), Changes: src}, testLineageID)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	app.WithContext(ctx)

	wait := app.startWatch()
	require.NotNil(t, wait)
	assert.Nil(t, app.startWatch(), "watch starts once")

	done := make(chan tea.Msg, 1)
	go func() { done <- wait() }()

	select {
	case msg := <-done:
		assert.Equal(t, messages.FixtureChanged{LineageID: testLineageID}, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("no change delivered")
	}
	assert.True(t, src.Started())
}

func TestApp_View_NotReady(t *testing.T) {
	app, err := NewApp(&Ports{Session: services.NewSession(memory.NewLineageGateway())}, testLineageID)
	require.NoError(t, err)

	assert.Equal(t, "Initialising...", app.View())
}
