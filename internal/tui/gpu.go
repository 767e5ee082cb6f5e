package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/sysdash/internal/format"
	"github.com/dm/sysdash/internal/model"
)

// renderGPUStats renders the per-GPU metrics table. Returns empty string
// when the endpoint reports no GPU, so the panel disappears entirely.
func renderGPUStats(snap *model.Snapshot, width int) string {
	if !snap.Stats.HasGPU || len(snap.Stats.GPU) == 0 {
		return ""
	}

	rows := make([][]string, 0, len(snap.Stats.GPU))
	for _, g := range snap.Stats.GPU {
		rows = append(rows, []string{
			format.TruncateText(sanitize(g.Name), 28),
			format.FormatPercent(g.Load),
			format.FormatBytes(int64(g.MemoryUsed)),
			format.FormatPercent(g.MemoryPercent),
			format.FormatPercent(g.FanSpeed),
			fmt.Sprintf("%.1f W", g.PowerDraw),
			fmt.Sprintf("%.0f°C", g.Temperature),
		})
	}
	body := statsTable(width,
		[]string{"Name", "Load", "VRAM", "VRAM%", "Fan", "Power", "Temp"},
		rows,
		[]lipgloss.Color{colorGreen, colorBlue, colorPurple, colorPurple, colorCyan, colorYellow, colorRed},
	)
	return renderSection("GPU Stats", body, false)
}

// renderGPUProcesses renders the top GPU processes table.
func renderGPUProcesses(snap *model.Snapshot, width int) string {
	procs := snap.Stats.TopGPUProcesses
	rows := make([][]string, 0, len(procs))
	cmdW := cmdlineWidth(width)
	for _, p := range procs {
		rows = append(rows, []string{
			strconv.Itoa(p.PID),
			format.TruncateText(sanitize(p.Name), 15),
			format.FormatBytes(p.MemoryUsed),
			format.TruncateText(sanitize(p.Cmdline), cmdW),
		})
	}
	body := statsTable(width,
		[]string{"PID", "Name", "VRAM", "Cmdline"},
		rows,
		[]lipgloss.Color{colorCyan, colorGreen, colorBlue, colorWhite},
	)
	return renderSection("GPU Processes", body, len(rows) == 0)
}
