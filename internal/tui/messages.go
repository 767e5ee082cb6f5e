package tui

import (
	"time"

	"github.com/dm/sysdash/internal/model"
)

// SnapshotMsg delivers a successful poll result to the render loop.
type SnapshotMsg struct{ Snapshot *model.Snapshot }

// FetchErrorMsg signals a poll failure.
type FetchErrorMsg struct{ Err error }

// TickMsg ends one wait phase. Gen identifies the schedule that issued the
// tick: a rebuild or interval change bumps the app's generation, so ticks
// from an abandoned schedule land harmlessly and the wait restarts cleanly.
type TickMsg struct {
	Gen int
	At  time.Time
}
