// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/lineage-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/lineage-cli/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
	StateHelp    State = "help"
)

// Bar displays load state, the pending diff buffer, the last diff label
// and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	state    State
	message  string
	rows     int
	warnings int
	buffer   []string
	lastDiff string
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateLoading,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Loading lineage...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateHelp:
		return s.styles.Normal.Render("Help")
	}

	parts := []string{s.styles.Normal.Render(fmt.Sprintf("%d rows", s.rows))}
	if s.warnings > 0 {
		parts = append(parts, s.styles.Warning.Render(fmt.Sprintf("%d warnings", s.warnings)))
	}
	if len(s.buffer) > 0 {
		parts = append(parts, s.styles.Marked.Render("buffer ["+strings.Join(s.buffer, ", ")+"]"))
	}
	if s.lastDiff != "" {
		parts = append(parts, s.styles.Success.Render(s.lastDiff))
	}
	return strings.Join(parts, s.styles.Muted.Render(" | "))
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.state == StateHelp {
		bindings = []key.Binding{s.keymap.Cancel, s.keymap.Quit}
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the error message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetCounts sets the row and warning counts of the loaded table.
func (s *Bar) SetCounts(rows, warnings int) {
	s.rows = rows
	s.warnings = warnings
}

// SetBuffer sets the pending diff buffer.
func (s *Bar) SetBuffer(ids []string) {
	s.buffer = append([]string(nil), ids...)
}

// SetLastDiff sets the label of the most recent diff pair.
func (s *Bar) SetLastDiff(label string) {
	s.lastDiff = label
}

// LastDiff returns the label of the most recent diff pair.
func (s *Bar) LastDiff() string {
	return s.lastDiff
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

