package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/sysdash/internal/format"
	"github.com/dm/sysdash/internal/model"
)

// renderOllamaModels renders the loaded Ollama models table with size, VRAM
// residency, and expiry countdown relative to now.
func renderOllamaModels(snap *model.Snapshot, width int, now time.Time) string {
	models := snap.Stats.OllamaProcesses.Models
	rows := make([][]string, 0, len(models))
	for _, m := range models {
		gpuLoaded := ""
		if m.Size > 0 {
			ratio := float64(m.SizeVRAM) / float64(m.Size) * 100
			gpuLoaded = fmt.Sprintf("%.0f%%", ratio)
		}
		rows = append(rows, []string{
			format.TruncateText(sanitize(m.Name), 20),
			format.FormatBytes(m.Size),
			format.FormatBytes(m.SizeVRAM),
			gpuLoaded,
			format.TimeUntil(m.ExpiresAt, now),
		})
	}
	body := statsTable(width,
		[]string{"Model", "Size", "VRAM", "GPU%", "Expires"},
		rows,
		[]lipgloss.Color{colorGreen, colorBlue, colorBlue, colorRed, colorYellow},
	)
	return renderSection("Ollama Models", body, len(rows) == 0)
}
