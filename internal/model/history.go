package model

import "time"

const defaultHistoryCap = 60

// UsagePoint is a single timestamped data point stored in the ring buffer.
type UsagePoint struct {
	Timestamp   time.Time
	CPUPercent  float64
	RAMPercent  float64
	GPULoad     float64
	VRAMPercent float64
}

// UsageHistory is a fixed-size ring buffer of UsagePoints feeding the
// summary sparklines. When the buffer is full, new pushes overwrite the
// oldest entry.
type UsageHistory struct {
	buf  []UsagePoint
	head int // index of the next write position
	size int // number of valid entries
}

// NewUsageHistory creates a UsageHistory with the given capacity.
// If capacity <= 0, the defaultHistoryCap (60) is used.
func NewUsageHistory(capacity int) *UsageHistory {
	if capacity <= 0 {
		capacity = defaultHistoryCap
	}
	return &UsageHistory{
		buf: make([]UsagePoint, capacity),
	}
}

// Push appends a new point to the history, overwriting the oldest if full.
func (h *UsageHistory) Push(p UsagePoint) {
	h.buf[h.head] = p
	h.head = (h.head + 1) % len(h.buf)
	if h.size < len(h.buf) {
		h.size++
	}
}

// Len returns the number of valid entries in the history.
func (h *UsageHistory) Len() int {
	return h.size
}

// Clear resets the history to empty.
func (h *UsageHistory) Clear() {
	h.head = 0
	h.size = 0
}

// Values returns a slice of float64 for the named field in chronological
// order (oldest first). Valid field names: "cpu", "ram", "gpu", "vram".
func (h *UsageHistory) Values(field string) []float64 {
	out := make([]float64, h.size)
	// oldest entry sits at (head - size + cap) % cap
	start := (h.head - h.size + len(h.buf)) % len(h.buf)
	for i := 0; i < h.size; i++ {
		p := h.buf[(start+i)%len(h.buf)]
		switch field {
		case "cpu":
			out[i] = p.CPUPercent
		case "ram":
			out[i] = p.RAMPercent
		case "gpu":
			out[i] = p.GPULoad
		case "vram":
			out[i] = p.VRAMPercent
		}
	}
	return out
}
