package tui

import (
	"strings"

	"github.com/dm/sysdash/internal/format"
	"github.com/dm/sysdash/internal/state"
)

// renderOneline renders the compact single-line view: CPU, RAM, first GPU,
// and the first loaded Ollama model. Errors and pause state are appended as
// short markers instead of panels.
func renderOneline(app *App, v state.View) string {
	snap := app.st.Latest()
	if snap == nil {
		if err := app.st.LastError(); err != nil {
			return StyleError.Render("fetch failed: " + err.Error())
		}
		return StyleDim.Render("waiting for first snapshot...")
	}

	var parts []string
	parts = append(parts,
		"CPU: "+StyleGreen.Bold(true).Render(format.FormatPercent(snap.Stats.CPU)),
		"RAM: "+StyleYellow.Bold(true).Render(format.FormatPercent(snap.Stats.RAM.Percent))+
			" / "+StyleCyan.Render(format.FormatBytes(snap.Stats.RAM.Total)),
	)

	if gpu, ok := snap.PrimaryGPU(); ok {
		parts = append(parts,
			"GPU: "+StyleBlue.Bold(true).Render(format.FormatPercent(gpu.Load))+
				" VRAM: "+StylePurple.Bold(true).Render(format.FormatPercent(gpu.MemoryPercent)))
	}

	if models := snap.Stats.OllamaProcesses.Models; len(models) > 0 {
		m := models[0]
		parts = append(parts,
			"(Ollama: "+sanitize(m.Name)+", "+StyleBlue.Render(format.FormatBytes(m.SizeVRAM))+")")
	}

	line := strings.Join(parts, "  ")
	if v.Paused {
		line += "  " + StylePaused.Render("[PAUSED]")
	}
	if err := app.st.LastError(); err != nil {
		line += "  " + StyleError.Render("[stale: "+err.Error()+"]")
	}
	return line
}
