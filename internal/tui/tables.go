package tui

import (
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
)

// statsTable builds a borderless lipgloss table with a separator under the
// header row, alternate-row background striping, and per-column foreground
// colors. colors[i] applies to column i; missing entries fall back to white.
func statsTable(width int, headers []string, rows [][]string, colors []lipgloss.Color) string {
	t := ltable.New().
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(colorGray)
			}
			base := lipgloss.NewStyle()
			if row%2 == 0 {
				base = base.Background(colorAlt)
			}
			if col < len(colors) {
				return base.Foreground(colors[col])
			}
			return base.Foreground(colorWhite)
		}).
		BorderStyle(lipgloss.NewStyle().Foreground(colorGray)).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(true).
		BorderColumn(false)

	if width > 0 {
		t = t.Width(width)
	}

	for _, r := range rows {
		t = t.Row(r...)
	}
	return t.String()
}

// renderSection renders a titled table section, or a dim placeholder line
// when the section has no rows.
func renderSection(title, body string, empty bool) string {
	header := StyleTitle.Render(title)
	if empty {
		return lipgloss.JoinVertical(lipgloss.Left, header, StyleDim.Render("  (no data)"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}
