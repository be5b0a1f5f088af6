// Package styles provides reusable lipgloss-based TUI components.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme holds lipgloss colors and styles for the panel TUI.
type Theme struct {
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Error  lipgloss.Color

	Title    lipgloss.Style
	Normal   lipgloss.Style
	Subtle   lipgloss.Style
	Selected lipgloss.Style
	Disabled lipgloss.Style

	BadgeAllowed lipgloss.Style
	BadgeBlocked lipgloss.Style

	ErrorStyle lipgloss.Style
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() *Theme {
	t := &Theme{
		Text:   lipgloss.Color("252"),
		Muted:  lipgloss.Color("241"),
		Accent: lipgloss.Color("81"),
		Error:  lipgloss.Color("203"),
	}

	t.Title = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.Normal = lipgloss.NewStyle().Foreground(t.Text)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Selected = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.Disabled = lipgloss.NewStyle().Foreground(t.Muted).Strikethrough(true)

	t.BadgeAllowed = lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true)
	t.BadgeBlocked = lipgloss.NewStyle().Foreground(t.Error).Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)

	return t
}
