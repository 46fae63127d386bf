package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/lineage-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/lineage-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/lineage-cli/internal/adapters/driving/tui/components/table"
	"github.com/custodia-labs/lineage-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/lineage-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/lineage-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lineage-cli/internal/adapters/driving/tui/views/diffpanel"
	"github.com/custodia-labs/lineage-cli/internal/core/domain"
	"github.com/custodia-labs/lineage-cli/internal/logger"
)

// diffPanelHeight is the number of lines the diff panel occupies.
const diffPanelHeight = 8

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// Loads run as commands off the update loop. While a load is outstanding the
// app does not read the session table; rows are copied into the table
// component when the load reports back.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	table  *table.VersionTable
	diff   *diffpanel.View
	status *status.Bar
	input  *input.LineageInput
	help   help.Model

	currentView messages.ViewType
	lineageID   string
	loading     bool
	loadingID   string
	err         error

	// reloadPending is set when a change arrives for the lineage being
	// loaded; the reload starts once that load reports back.
	reloadPending bool

	changes  chan string
	watching bool

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a TUI for the given lineage id. An empty id opens the
// lineage prompt on start.
func NewApp(ports *Ports, lineageID string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	a := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		table:       table.NewVersionTable(s),
		diff:        diffpanel.NewView(s),
		status:      status.NewBar(s, km),
		input:       input.NewLineageInput(s),
		help:        help.New(),
		currentView: messages.ViewTable,
		lineageID:   lineageID,
		changes:     make(chan string, 1),
	}
	ports.Session.OnDiffReady(a.showDiff)
	return a, nil
}

// WithContext sets the context for loads and watching.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle("lineage")}
	if a.lineageID == "" {
		cmds = append(cmds, a.openPrompt())
	} else {
		cmds = append(cmds, a.startLoad(a.lineageID))
	}
	if cmd := a.startWatch(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case messages.LineageLoaded:
		return a, a.handleLoaded(msg)

	case messages.FixtureChanged:
		cmds := []tea.Cmd{a.waitForChange()}
		affects := func(id string) bool {
			return id != "" && (msg.LineageID == "" || msg.LineageID == id)
		}
		switch {
		case a.loading && affects(a.loadingID):
			logger.Debug("tui: change to %s during load, reloading afterwards", a.loadingID)
			a.reloadPending = true
		case !a.loading && affects(a.lineageID):
			logger.Debug("tui: reloading %s after fixture change", a.lineageID)
			cmds = append(cmds, a.startLoad(a.lineageID))
		}
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.currentView {
		case messages.ViewPrompt:
			return a.updatePrompt(msg)
		case messages.ViewHelp:
			return a.updateHelp(msg)
		default:
			return a.updateTable(msg)
		}
	}

	return a, nil
}

func (a *App) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return a, tea.Quit
	case keymap.Matches(k, a.keymap.Help):
		a.currentView = messages.ViewHelp
		a.status.SetState(status.StateHelp)
	case keymap.Matches(k, a.keymap.Up):
		a.table.MoveUp()
	case keymap.Matches(k, a.keymap.Down):
		a.table.MoveDown()
	case keymap.Matches(k, a.keymap.Top):
		a.table.MoveTop()
	case keymap.Matches(k, a.keymap.Bottom):
		a.table.MoveBottom()
	case keymap.Matches(k, a.keymap.Select):
		if row, ok := a.table.Current(); ok {
			a.ports.Session.Select(row.ID)
			a.syncSelection()
		}
	case keymap.Matches(k, a.keymap.Reset):
		a.ports.Session.ResetDiff()
		a.diff.Clear()
		a.status.SetLastDiff("")
		a.syncSelection()
		a.layout()
	case keymap.Matches(k, a.keymap.Refetch):
		if !a.loading && a.lineageID != "" {
			return a, a.startLoad(a.lineageID)
		}
	case keymap.Matches(k, a.keymap.Open):
		if !a.loading {
			return a, a.openPrompt()
		}
	case keymap.Matches(k, a.keymap.Cancel):
		if a.err != nil {
			a.err = nil
			a.status.SetMessage("")
			a.status.SetState(status.StateReady)
		}
	}
	return a, nil
}

func (a *App) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, a.keymap.Confirm):
		id := a.input.Value()
		if id == "" {
			return a, nil
		}
		a.input.Blur()
		a.currentView = messages.ViewTable
		return a, a.startLoad(id)
	case keymap.Matches(k, a.keymap.Cancel):
		a.input.Blur()
		a.currentView = messages.ViewTable
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return a, tea.Quit
	case keymap.Matches(k, a.keymap.Help), keymap.Matches(k, a.keymap.Cancel):
		a.currentView = messages.ViewTable
		a.restoreStatus()
	}
	return a, nil
}

func (a *App) openPrompt() tea.Cmd {
	a.currentView = messages.ViewPrompt
	a.input.Reset()
	return a.input.Focus()
}

// startLoad marks the app as loading and returns the command that runs
// the fetch.
func (a *App) startLoad(lineageID string) tea.Cmd {
	a.loading = true
	a.loadingID = lineageID
	a.status.SetState(status.StateLoading)
	session := a.ports.Session
	ctx := a.ctx
	return func() tea.Msg {
		return messages.LineageLoaded{LineageID: lineageID, Err: session.Load(ctx, lineageID)}
	}
}

// handleLoaded applies a finished load and returns the deferred reload, if
// a change arrived while it ran.
func (a *App) handleLoaded(msg messages.LineageLoaded) tea.Cmd {
	a.loading = false
	a.loadingID = ""

	if msg.Err != nil {
		a.err = msg.Err
		a.status.SetState(status.StateError)
		a.status.SetMessage(msg.Err.Error())
	} else {
		a.err = nil
		a.lineageID = msg.LineageID
		tbl := a.ports.Session.Table()
		if tbl != nil {
			a.table.SetRows(tbl.Rows)
		}
		roots := a.ports.Session.Roots()
		ids := make([]string, len(roots))
		for i, r := range roots {
			ids[i] = r.ID
		}
		a.table.SetRoots(ids)
		a.status.SetMessage("")
		a.status.SetCounts(tbl.Len(), len(a.ports.Session.Warnings()))
		a.restoreStatus()
		a.syncSelection()
	}

	if !a.reloadPending {
		return nil
	}
	a.reloadPending = false
	return a.startLoad(msg.LineageID)
}

// startWatch starts the change source once and returns the command that
// waits for its first event.
func (a *App) startWatch() tea.Cmd {
	if a.ports.Changes == nil || a.watching {
		return nil
	}
	a.watching = true

	src, ctx, changes := a.ports.Changes, a.ctx, a.changes
	go func() {
		err := src.Watch(ctx, func(lineageID string) {
			select {
			case changes <- lineageID:
			default:
				// A reload is already queued.
			}
		})
		if err != nil {
			logger.Warn("tui: change watcher stopped: %v", err)
		}
	}()
	return a.waitForChange()
}

func (a *App) waitForChange() tea.Cmd {
	ctx, changes := a.ctx, a.changes
	return func() tea.Msg {
		select {
		case id := <-changes:
			return messages.FixtureChanged{LineageID: id}
		case <-ctx.Done():
			return nil
		}
	}
}

// showDiff is registered as the session's diff-ready listener.
func (a *App) showDiff(req domain.DiffRequest) {
	a.status.SetLastDiff(req.Label())
	a.diff.SetDiff(req, a.row(req.FirstID), a.row(req.SecondID))
	a.layout()
}

func (a *App) row(id string) *domain.VersionRecord {
	for _, r := range a.table.Rows() {
		if r.ID == id {
			return &r
		}
	}
	return nil
}

func (a *App) syncSelection() {
	buffer := a.ports.Session.DiffBuffer()
	a.table.SetMarked(buffer)
	a.status.SetBuffer(buffer)
}

func (a *App) restoreStatus() {
	switch {
	case a.loading:
		a.status.SetState(status.StateLoading)
	case a.err != nil:
		a.status.SetState(status.StateError)
	default:
		a.status.SetState(status.StateReady)
	}
}

func (a *App) layout() {
	// Title and status bar take one line each.
	tableHeight := a.height - 2
	if _, ok := a.diff.Request(); ok {
		tableHeight -= diffPanelHeight
	}
	a.table.SetDimensions(a.width, tableHeight)
	a.diff.SetDimensions(a.width, diffPanelHeight)
	a.status.SetWidth(a.width)
	a.input.SetWidth(a.width)
	a.help.Width = a.width
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	title := "No lineage loaded"
	if a.lineageID != "" {
		title = "Lineage " + a.lineageID
	}
	header := a.styles.Title.Render(title)

	var body string
	switch a.currentView {
	case messages.ViewPrompt:
		body = a.input.View()
	case messages.ViewHelp:
		body = a.help.FullHelpView(a.keymap.FullHelp())
	default:
		body = a.table.View()
		if panel := a.diff.View(); panel != "" {
			body = lipgloss.JoinVertical(lipgloss.Left, body, panel)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, a.status.View())
}

// Run starts the TUI application. Log output is held until it exits.
func (a *App) Run() error {
	release := logger.Hold()
	defer release()

	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// LineageID returns the lineage shown by the app.
func (a *App) LineageID() string {
	return a.lineageID
}

// Loading returns true while a load is outstanding.
func (a *App) Loading() bool {
	return a.loading
}

// Err returns the error of the last failed load.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.layout()
}
