package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/sysdash/internal/format"
	"github.com/dm/sysdash/internal/model"
)

// cmdlineWidth returns how many characters of a command line fit next to
// the fixed columns of a process table.
func cmdlineWidth(tableWidth int) int {
	w := tableWidth - 40
	if w < 12 {
		w = 12
	}
	return w
}

// renderTopCPU renders the "Top CPU" process table.
func renderTopCPU(snap *model.Snapshot, width int) string {
	procs := snap.Stats.TopCPU
	rows := make([][]string, 0, len(procs))
	cmdW := cmdlineWidth(width)
	for _, p := range procs {
		rows = append(rows, []string{
			strconv.Itoa(p.PID),
			format.TruncateText(sanitize(p.Name), 15),
			format.FormatPercent(p.CPUPercent),
			format.TruncateText(sanitize(p.Cmdline), cmdW),
		})
	}
	body := statsTable(width,
		[]string{"PID", "Name", "CPU%", "Cmdline"},
		rows,
		[]lipgloss.Color{colorCyan, colorGreen, colorYellow, colorWhite},
	)
	return renderSection("Top CPU", body, len(rows) == 0)
}

// renderTopMemory renders the "Top Memory" process table.
func renderTopMemory(snap *model.Snapshot, width int) string {
	procs := snap.Stats.TopMemory
	rows := make([][]string, 0, len(procs))
	cmdW := cmdlineWidth(width)
	for _, p := range procs {
		rows = append(rows, []string{
			strconv.Itoa(p.PID),
			format.TruncateText(sanitize(p.Name), 15),
			format.FormatBytes(p.MemoryUsage),
			format.FormatPercent(p.MemoryPercent),
			format.TruncateText(sanitize(p.Cmdline), cmdW),
		})
	}
	body := statsTable(width,
		[]string{"PID", "Name", "Mem", "Mem%", "Cmdline"},
		rows,
		[]lipgloss.Color{colorCyan, colorGreen, colorBlue, colorYellow, colorWhite},
	)
	return renderSection("Top Memory", body, len(rows) == 0)
}
