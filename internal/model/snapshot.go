package model

import (
	"time"

	"github.com/dm/sysdash/internal/client"
)

// Snapshot holds the result of a single poll cycle. It is immutable once
// constructed; the dashboard replaces it wholesale and never mutates it.
type Snapshot struct {
	Stats     client.Stats
	FetchedAt time.Time
}

// NewSnapshot wraps a fetched stats payload with its fetch timestamp.
func NewSnapshot(stats *client.Stats, fetchedAt time.Time) *Snapshot {
	return &Snapshot{
		Stats:     *stats,
		FetchedAt: fetchedAt,
	}
}

// PrimaryGPU returns the first GPU record, or false when none is present.
// The summary panel shows only the first GPU, matching the collector's
// summary convention.
func (s *Snapshot) PrimaryGPU() (client.GPUStats, bool) {
	if !s.Stats.HasGPU || len(s.Stats.GPU) == 0 {
		return client.GPUStats{}, false
	}
	return s.Stats.GPU[0], true
}
