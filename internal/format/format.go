package format

import (
	"fmt"
	"time"
)

// FormatBytes formats a byte count into a human-readable string with 1 decimal place.
// Thresholds: <1KB → B, <1MB → KB, <1GB → MB, <1TB → GB, else TB.
func FormatBytes(bytes int64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
		tb = gb * 1024
	)
	switch {
	case bytes < kb:
		return fmt.Sprintf("%d B", bytes)
	case bytes < mb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/kb)
	case bytes < gb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/mb)
	case bytes < tb:
		return fmt.Sprintf("%.1f GB", float64(bytes)/gb)
	default:
		return fmt.Sprintf("%.1f TB", float64(bytes)/tb)
	}
}

// FormatPercent formats a percentage with one decimal place.
// Example: 34.5 → "34.5%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// TimeUntil renders the time remaining until an ISO-8601 expiry timestamp as
// H:MM:SS relative to now. Already-expired timestamps return "Expired";
// unparseable ones return "N/A".
func TimeUntil(expiresAt string, now time.Time) string {
	exp, err := time.Parse(time.RFC3339, expiresAt)
	if err != nil {
		return "N/A"
	}
	remaining := exp.Sub(now).Truncate(time.Second)
	if remaining <= 0 {
		return "Expired"
	}
	h := int(remaining.Hours())
	m := int(remaining.Minutes()) % 60
	s := int(remaining.Seconds()) % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// TruncateText shortens s to at most width characters, replacing the tail
// with "…" when truncated. Width <= 1 returns at most one rune.
func TruncateText(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		if width < 1 {
			return ""
		}
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
