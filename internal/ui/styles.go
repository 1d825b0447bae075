package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// --- UI Styles ---
var (
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	dividerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	subtleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	tagStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#D68910")).
			Padding(0, 1)
	tagFocusStyle = tagStyle.
			Background(lipgloss.Color("#8942E1"))
	tagDeleteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FDEBD0"))
	moreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#C68008")).
			Padding(0, 1)

	resultsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8942E1")).
			Padding(0, 1)
	listItemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	cursorBarStyle = lipgloss.NewStyle().Background(lipgloss.Color("#FFAB78"))
	hoverStyle     = lipgloss.NewStyle().Background(lipgloss.Color("#2A2B3D")).Bold(true)
	matchStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#3AC4BA")).Underline(true)
)

// renderFooter creates the help footer below the panel.
func renderFooter(statusLine string, helpLines ...string) string {
	var b strings.Builder

	if statusLine != "" {
		b.WriteString(subtleStyle.Render(statusLine) + "\n")
	}

	for _, line := range helpLines {
		b.WriteString(helpStyle.Render(line) + "\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}
