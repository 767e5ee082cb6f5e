package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/sysdash/internal/state"
)

// renderHeader renders the top header bar.
//
// Layout:
//
//	left:   "Sys Stats  <endpoint URL>"
//	center: "● LIVE" / "⏸ PAUSED" / "● <kind> error ..." indicator
//	right:  "Last: HH:MM:SS  Every: Ns"
func renderHeader(app *App, v state.View) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	baseURL := ""
	if app.client != nil {
		baseURL = app.client.BaseURL()
	}
	left := "Sys Stats  " + StyleDim.Render(baseURL)

	var center string
	switch {
	case app.st.LastError() != nil:
		errMsg := app.st.LastError().Error()
		if len(errMsg) > 40 {
			errMsg = errMsg[:40] + "..."
		}
		center = StyleError.Render("● " + errMsg)
	case v.Paused:
		center = StylePaused.Render("⏸ PAUSED")
	case app.st.Latest() == nil:
		center = StyleDim.Render("● connecting")
	default:
		center = StyleLive.Render("● LIVE")
	}

	lastStr := "--:--:--"
	if !app.lastUpdated.IsZero() {
		lastStr = app.lastUpdated.Format("15:04:05")
	}
	right := StyleDim.Render(fmt.Sprintf("Last: %s  Every: %ds", lastStr, v.RefreshInterval))

	// Build row: left + padding + center + padding + right, filling innerWidth.
	// StyleHeader has Padding(0, 1) so inner content width = total width - 2.
	innerWidth := width - 2
	leftVW := lipgloss.Width(left)
	centerVW := lipgloss.Width(center)
	rightVW := lipgloss.Width(right)

	spacing := innerWidth - leftVW - centerVW - rightVW
	if spacing < 0 {
		spacing = 0
	}
	leftSpacing := spacing / 2
	rightSpacing := spacing - leftSpacing

	row := left +
		strings.Repeat(" ", leftSpacing) +
		center +
		strings.Repeat(" ", rightSpacing) +
		right

	return StyleHeader.Width(width).Render(row)
}
