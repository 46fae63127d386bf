// Package input provides text input components for the TUI.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/lineage-cli/internal/adapters/driving/tui/styles"
)

// LineageInput wraps a bubbles textinput for entering a lineage id.
type LineageInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewLineageInput creates a new lineage id input.
func NewLineageInput(s *styles.Styles) *LineageInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "00000000-0000-0000-0000-000000000000"
	ti.CharLimit = 64
	ti.Width = 40

	return &LineageInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Update handles input messages.
func (l *LineageInput) Update(msg tea.Msg) (*LineageInput, tea.Cmd) {
	var cmd tea.Cmd
	l.textinput, cmd = l.textinput.Update(msg)
	return l, cmd
}

// View renders the input.
func (l *LineageInput) View() string {
	label := l.styles.Title.Render("Lineage: ")
	field := l.styles.InputField.Render(l.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the trimmed input value.
func (l *LineageInput) Value() string {
	return strings.TrimSpace(l.textinput.Value())
}

// SetValue sets the input value.
func (l *LineageInput) SetValue(value string) {
	l.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (l *LineageInput) Focus() tea.Cmd {
	return l.textinput.Focus()
}

// Blur removes focus from the input.
func (l *LineageInput) Blur() {
	l.textinput.Blur()
}

// Focused returns whether the input is focused.
func (l *LineageInput) Focused() bool {
	return l.textinput.Focused()
}

// SetWidth sets the width of the input.
func (l *LineageInput) SetWidth(width int) {
	l.width = width
	// Account for label and padding
	inputWidth := width - 14
	if inputWidth < 20 {
		inputWidth = 20
	}
	l.textinput.Width = inputWidth
}

// Width returns the current width.
func (l *LineageInput) Width() int {
	return l.width
}

// Reset clears the input.
func (l *LineageInput) Reset() {
	l.textinput.Reset()
}
