package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/sysdash/internal/format"
	"github.com/dm/sysdash/internal/model"
)

// renderSummary renders the stat cards row: CPU, RAM, and (when a GPU is
// reported) GPU load and VRAM. Each card shows the current value, a mini
// usage bar, a sparkline over recent polls, and a label.
// Wide terminals (>= 80 cols): all cards in one horizontal row.
// Narrow terminals (< 80 cols): cards stacked in rows of 2.
func renderSummary(app *App, snap *model.Snapshot) string {
	width := app.width
	if width <= 0 {
		width = 80
	}
	narrowMode := width < 80

	gpu, hasGPU := snap.PrimaryGPU()
	cardCount := 2
	if hasGPU {
		cardCount = 4
	}

	var cardWidth int
	if narrowMode {
		cardWidth = (width-4)/2 - 2
	} else {
		cardWidth = (width-2*cardCount)/cardCount - 2
	}
	if cardWidth < 10 {
		cardWidth = 10
	}

	// Inner width: card width minus the border (2) and padding (2).
	innerWidth := cardWidth - 4
	if innerWidth < 4 {
		innerWidth = 4
	}

	cpuPct := snap.Stats.CPU
	cpuCard := renderStatCard(
		format.FormatPercent(cpuPct),
		cpuPct,
		app.history.Values("cpu"),
		"CPU",
		cardWidth, innerWidth,
	)

	ramPct := snap.Stats.RAM.Percent
	ramCard := renderStatCard(
		format.FormatPercent(ramPct)+" of "+format.FormatBytes(snap.Stats.RAM.Total),
		ramPct,
		app.history.Values("ram"),
		"RAM",
		cardWidth, innerWidth,
	)

	cards := []string{cpuCard, ramCard}
	if hasGPU {
		gpuCard := renderStatCard(
			format.FormatPercent(gpu.Load),
			gpu.Load,
			app.history.Values("gpu"),
			format.TruncateText("GPU "+sanitize(gpu.Name), innerWidth),
			cardWidth, innerWidth,
		)
		vramCard := renderStatCard(
			format.FormatPercent(gpu.MemoryPercent)+" ("+format.FormatBytes(int64(gpu.MemoryUsed))+")",
			gpu.MemoryPercent,
			app.history.Values("vram"),
			"VRAM",
			cardWidth, innerWidth,
		)
		cards = append(cards, gpuCard, vramCard)
	}

	timeLine := StyleDim.Render("  " + snap.Stats.CurrentTime)

	if narrowMode {
		var rows []string
		for i := 0; i < len(cards); i += 2 {
			if i+1 < len(cards) {
				rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i], cards[i+1]))
			} else {
				rows = append(rows, cards[i])
			}
		}
		return lipgloss.JoinVertical(lipgloss.Left, append([]string{timeLine}, rows...)...)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	return lipgloss.JoinVertical(lipgloss.Left, timeLine, row)
}

// renderStatCard renders one bordered card:
//
//	╭────────────────╮
//	│ 37.5%          │   ← bold, threshold-colored value
//	│ ███░░░░░░░     │   ← mini usage bar
//	│ ▁▂▃▅▇█▇▅▃▂     │   ← sparkline over recent polls
//	│ CPU            │   ← dim label
//	╰────────────────╯
func renderStatCard(value string, percent float64, history []float64, label string, cardWidth, innerWidth int) string {
	color := usageColor(percent)

	valueLine := lipgloss.NewStyle().Bold(true).Foreground(color).Render(
		format.TruncateText(value, innerWidth))
	barLine := renderMiniBar(percent, innerWidth)
	sparkLine := RenderSparkline(history, innerWidth, color)
	labelLine := StyleDim.Render(format.TruncateText(label, innerWidth))

	return StyleCard.Width(cardWidth - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		valueLine,
		barLine,
		sparkLine,
		labelLine,
	))
}

// renderMiniBar renders a mini progress bar using Unicode block characters.
// Fills proportionally using "█" for filled and "░" for empty cells.
func renderMiniBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
