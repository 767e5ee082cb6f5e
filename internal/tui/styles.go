package tui

import "github.com/charmbracelet/lipgloss"

// Color constants — sysdash palette.
var (
	colorGreen  = lipgloss.Color("#10b981")
	colorYellow = lipgloss.Color("#f59e0b")
	colorRed    = lipgloss.Color("#ef4444")
	colorGray   = lipgloss.Color("#6b7280")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorCyan   = lipgloss.Color("#06b6d4")
	colorPurple = lipgloss.Color("#8b5cf6")
	colorWhite  = lipgloss.Color("#f8fafc")
	colorDark   = lipgloss.Color("#1e293b")
	colorAlt    = lipgloss.Color("#0f172a")
)

// StyleHeader — full-width dark header bar.
var StyleHeader = lipgloss.NewStyle().
	Background(colorDark).
	Foreground(colorWhite).
	Padding(0, 1)

// StyleCard — bordered card for the summary stat panels.
var StyleCard = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorGray).
	Padding(0, 1)

// Utility styles.
var (
	StyleError  = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	StylePaused = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	StyleLive   = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	StyleDim    = lipgloss.NewStyle().Foreground(colorGray)
	StyleTitle  = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
)

// Named color styles for table cell coloring.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(colorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(colorYellow)
	StyleBlue   = lipgloss.NewStyle().Foreground(colorBlue)
	StyleCyan   = lipgloss.NewStyle().Foreground(colorCyan)
	StylePurple = lipgloss.NewStyle().Foreground(colorPurple)
)

// usageColor maps a utilization percentage to a traffic-light color:
// green below 60, yellow below 85, red at or above 85.
func usageColor(percent float64) lipgloss.Color {
	switch {
	case percent < 60:
		return colorGreen
	case percent < 85:
		return colorYellow
	default:
		return colorRed
	}
}

// sanitize strips control characters from remote-supplied strings (process
// names and command lines) before they reach the terminal.
func sanitize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
