package render

import "github.com/charmbracelet/lipgloss"

// Layout constants.
const (
	minCellW = 7 // minimum width of one step column
	labelW   = 7 // width of the qubit label gutter
)

// Styles colors the drawing. The zero value renders plain text, which
// tests and piped output rely on.
type Styles struct {
	Gate      lipgloss.Style
	Control   lipgloss.Style
	Wire      lipgloss.Style
	Label     lipgloss.Style
	Classical lipgloss.Style
}

// DefaultStyles returns the terminal color scheme.
func DefaultStyles() Styles {
	return Styles{
		Gate:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#73daca")),
		Control:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ff9e64")),
		Wire:      lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89")),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("#7dcfff")),
		Classical: lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68")),
	}
}
