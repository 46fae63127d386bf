// Package styles provides the colour theme and lipgloss styles of the lineage TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
)

// Theme is the colour palette of the TUI.
type Theme struct {
	// Accent highlights titles and the cursor row.
	Accent lipgloss.Color

	// Selection marks rows held in the diff buffer.
	Selection lipgloss.Color

	// Text is the default foreground. Subtle is for secondary text.
	Text   lipgloss.Color
	Subtle lipgloss.Color

	// Surface is the status bar background.
	Surface lipgloss.Color

	// Border outlines the prompt and the diff panel.
	Border lipgloss.Color

	// Create, Update, Read and Delete colour the operation column.
	Create lipgloss.Color
	Update lipgloss.Color
	Read   lipgloss.Color
	Delete lipgloss.Color

	// Warn and Fail colour load warnings and fetch errors.
	Warn lipgloss.Color
	Fail lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#7C3AED"),
		Selection: lipgloss.Color("#06B6D4"),
		Text:      lipgloss.Color("#CDD6F4"),
		Subtle:    lipgloss.Color("#6C7086"),
		Surface:   lipgloss.Color("#181825"),
		Border:    lipgloss.Color("#45475A"),
		Create:    lipgloss.Color("#A6E3A1"),
		Update:    lipgloss.Color("#89B4FA"),
		Read:      lipgloss.Color("#BAC2DE"),
		Delete:    lipgloss.Color("#EBA0AC"),
		Warn:      lipgloss.Color("#F9E2AF"),
		Fail:      lipgloss.Color("#F38BA8"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme      *Theme
	operations map[domain.Operation]lipgloss.Style

	Title      lipgloss.Style
	Header     lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Cursor     lipgloss.Style
	Marked     lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Panel      lipgloss.Style
}

// NewStyles creates styles from a theme. A nil theme means DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	boxed := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	return &Styles{
		theme: theme,
		operations: map[domain.Operation]lipgloss.Style{
			domain.OperationCreate: fg(theme.Create),
			domain.OperationUpdate: fg(theme.Update),
			domain.OperationRead:   fg(theme.Read),
			domain.OperationDelete: fg(theme.Delete),
		},

		Title:  fg(theme.Accent).Bold(true),
		Header: fg(theme.Selection).Bold(true).Underline(true),
		Normal: fg(theme.Text),
		Muted:  fg(theme.Subtle),
		Cursor: fg(theme.Text).Background(theme.Accent).Bold(true),
		Marked: fg(theme.Selection).Bold(true),

		Error:   fg(theme.Fail),
		Success: fg(theme.Create),
		Warning: fg(theme.Warn),

		InputField: boxed,
		Panel:      boxed,
		StatusBar:  fg(theme.Subtle).Background(theme.Surface).Padding(0, 1),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Operation returns the style of an operation cell. Unknown operations use
// the normal style.
func (s *Styles) Operation(op domain.Operation) lipgloss.Style {
	if style, ok := s.operations[op]; ok {
		return style
	}
	return s.Normal
}
