package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// helpLines lists every binding shown on the help overlay.
var helpLines = [][2]string{
	{"q", "quit"},
	{"r", "refresh now (restarts the wait)"},
	{"h", "show/hide this help"},
	{"p", "pause/resume refreshing"},
	{"-", "decrease refresh interval (min 1s)"},
	{"+", "increase refresh interval (max 60s)"},
}

// renderHelp renders the full-screen help overlay. While visible it replaces
// the dashboard entirely; no fetches are issued until it is closed.
func renderHelp(width int) string {
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("Keyboard Shortcuts"))
	sb.WriteString("\n\n")
	for _, line := range helpLines {
		sb.WriteString("  ")
		sb.WriteString(StyleGreen.Bold(true).Render(line[0]))
		sb.WriteString("  ")
		sb.WriteString(line[1])
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(StyleDim.Render("Press h again to return."))

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGreen).
		Padding(1, 2).
		Render(sb.String())

	if width > lipgloss.Width(panel) {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, panel)
	}
	return panel
}
