// Package state holds the dashboard's shared mutable configuration.
//
// One Dashboard instance is created at startup and shared by reference
// between the input handler and the render loop. Every read and write goes
// through a method holding the same mutex, so no partial update is ever
// observable and no caller sees a mix of pre- and post-mutation values.
// The lock is never held across a blocking call: network fetches and input
// reads happen entirely outside this package.
package state

import (
	"sync"

	"github.com/dm/sysdash/internal/model"
)

// Refresh interval bounds in seconds. Operator adjustments clamp into this
// range rather than being rejected.
const (
	MinInterval = 1
	MaxInterval = 60
)

// View is a consistent read of the operator-controlled fields, taken under
// the lock in a single operation.
type View struct {
	Paused          bool
	HelpVisible     bool
	RefreshInterval int // seconds, always in [MinInterval, MaxInterval]
}

// Dashboard is the single source of truth for operator-controlled
// configuration and the last good snapshot.
type Dashboard struct {
	mu              sync.Mutex
	paused          bool
	helpVisible     bool
	refreshInterval int
	latest          *model.Snapshot
	lastErr         error
}

// New creates a Dashboard with the given initial refresh interval,
// clamped into [MinInterval, MaxInterval].
func New(intervalSeconds int) *Dashboard {
	return &Dashboard{
		refreshInterval: clampInterval(intervalSeconds),
	}
}

// View returns a consistent tuple of the operator-controlled fields.
func (d *Dashboard) View() View {
	d.mu.Lock()
	defer d.mu.Unlock()
	return View{
		Paused:          d.paused,
		HelpVisible:     d.helpVisible,
		RefreshInterval: d.refreshInterval,
	}
}

// SetPaused sets the pause flag.
func (d *Dashboard) SetPaused(paused bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.paused = paused
}

// TogglePaused flips the pause flag and returns the new value.
func (d *Dashboard) TogglePaused() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.paused = !d.paused
	return d.paused
}

// ToggleHelp flips the help overlay flag and returns the new value.
func (d *Dashboard) ToggleHelp() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.helpVisible = !d.helpVisible
	return d.helpVisible
}

// AdjustInterval adds delta (seconds, may be negative) to the refresh
// interval, clamps the result into [MinInterval, MaxInterval], and returns
// the new value. Out-of-range deltas clamp silently.
func (d *Dashboard) AdjustInterval(delta int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.refreshInterval = clampInterval(d.refreshInterval + delta)
	return d.refreshInterval
}

// SetLatest stores a freshly fetched snapshot and clears the last error.
// The snapshot is stored only while the dashboard is not paused; a pause
// taking effect after the fetch was issued simply discards the result.
// Returns whether the snapshot was stored.
func (d *Dashboard) SetLatest(snap *model.Snapshot) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.paused {
		return false
	}
	d.latest = snap
	d.lastErr = nil
	return true
}

// Latest returns the last stored snapshot, or nil before the first
// successful fetch.
func (d *Dashboard) Latest() *model.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.latest
}

// SetLastError records a fetch failure for display. The previously stored
// snapshot is retained: stale-but-valid beats empty.
func (d *Dashboard) SetLastError(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lastErr = err
}

// LastError returns the most recent fetch error, or nil after a success.
func (d *Dashboard) LastError() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastErr
}

func clampInterval(v int) int {
	if v < MinInterval {
		return MinInterval
	}
	if v > MaxInterval {
		return MaxInterval
	}
	return v
}
