package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/sysdash/internal/state"
)

// renderDashboard composes the full panel tree: header, summary cards, the
// two process tables side by side, GPU stats, GPU processes next to Ollama
// models, and the key-hint footer. Before the first successful fetch only
// the header, a waiting line, and the footer are shown.
func renderDashboard(app *App, v state.View) string {
	parts := []string{renderHeader(app, v)}

	snap := app.st.Latest()
	if snap == nil {
		parts = append(parts, "", StyleDim.Render("  Waiting for first snapshot..."))
		parts = append(parts, renderFooter(app))
		return strings.Join(parts, "\n")
	}

	if s := renderSummary(app, snap); s != "" {
		parts = append(parts, s)
	}

	width := app.width
	if width <= 0 {
		width = 80
	}
	half := (width - 1) / 2

	cpuTable := renderTopCPU(snap, half)
	memTable := renderTopMemory(snap, half)
	parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, cpuTable, " ", memTable))

	if g := renderGPUStats(snap, width); g != "" {
		parts = append(parts, g)
	}

	gpuProcs := renderGPUProcesses(snap, half)
	ollama := renderOllamaModels(snap, half, time.Now())
	parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, gpuProcs, " ", ollama))

	parts = append(parts, renderFooter(app))
	return strings.Join(parts, "\n")
}
