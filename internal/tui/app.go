package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/sysdash/internal/client"
	"github.com/dm/sysdash/internal/model"
	"github.com/dm/sysdash/internal/state"
)

// App is the root Bubble Tea model for sysdash. It coordinates the fetch
// cadence, pause/help gating, and rendering. The keyboard side lives in
// bubbletea's input loop, which delivers keypresses as messages; App and
// that loop share nothing but the Dashboard, whose methods serialize access.
type App struct {
	client client.StatsClient
	st     *state.Dashboard

	// Poll state
	fetching bool // true while a fetchCmd goroutine is in-flight
	tickGen  int  // current wait-phase generation; stale TickMsgs are dropped
	history  *model.UsageHistory

	lastUpdated time.Time

	// Layout
	width, height int

	// Render mode and fault containment
	oneline      bool
	lastFrame    string
	renderFaults int
}

// NewApp creates a new App around the given client and shared dashboard state.
func NewApp(c client.StatsClient, st *state.Dashboard, oneline bool) *App {
	return &App{
		client:   c,
		st:       st,
		history:  model.NewUsageHistory(0),
		oneline:  oneline,
		fetching: true, // Init() always issues an immediate fetchCmd
	}
}

// Init implements tea.Model. Starts the first fetch immediately on launch.
func (app *App) Init() tea.Cmd {
	return fetchCmd(app.client, app.st.View().RefreshInterval)
}

// Update implements tea.Model — the single state-mutation entry point.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height

	case SnapshotMsg:
		app.fetching = false
		app.lastUpdated = msg.Snapshot.FetchedAt
		// SetLatest is pause-gated: a pause that landed while the fetch was
		// in flight discards the result, and the history stays untouched so
		// the sparklines freeze together with the panels.
		if app.st.SetLatest(msg.Snapshot) {
			point := model.UsagePoint{
				Timestamp:  msg.Snapshot.FetchedAt,
				CPUPercent: msg.Snapshot.Stats.CPU,
				RAMPercent: msg.Snapshot.Stats.RAM.Percent,
			}
			if gpu, ok := msg.Snapshot.PrimaryGPU(); ok {
				point.GPULoad = gpu.Load
				point.VRAMPercent = gpu.MemoryPercent
			}
			app.history.Push(point)
		}
		return app, app.scheduleTick()

	case FetchErrorMsg:
		// Recovered locally: the indicator shows the failure, the previous
		// snapshot stays, and the cadence continues at the plain interval.
		app.fetching = false
		app.st.SetLastError(msg.Err)
		return app, app.scheduleTick()

	case TickMsg:
		if msg.Gen != app.tickGen {
			return app, nil // abandoned schedule, a newer wait is running
		}
		v := app.st.View()
		if v.HelpVisible || v.Paused {
			// No fetch this cycle; keep ticking so refresh resumes as soon
			// as help closes or pause lifts.
			return app, app.scheduleTick()
		}
		if app.fetching {
			return app, nil
		}
		app.fetching = true
		return app, fetchCmd(app.client, v.RefreshInterval)

	case tea.KeyMsg:
		return app.handleKey(msg)
	}

	return app, nil
}

// handleKey maps operator keys to state mutations and control signals.
// Unbound keys fall through without effect.
func (app *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return app, tea.Quit

	case key.Matches(msg, keys.Refresh):
		if app.fetching {
			return app, nil
		}
		// Invalidate the pending wait; the fetch result schedules a fresh
		// one, so the interval restarts from the rebuild.
		app.tickGen++
		app.fetching = true
		return app, fetchCmd(app.client, app.st.View().RefreshInterval)

	case key.Matches(msg, keys.Help):
		app.st.ToggleHelp()

	case key.Matches(msg, keys.Pause):
		app.st.TogglePaused()

	case key.Matches(msg, keys.Slower):
		app.st.AdjustInterval(-1)
		return app, app.rescheduleWait()

	case key.Matches(msg, keys.Faster):
		app.st.AdjustInterval(1)
		return app, app.rescheduleWait()
	}

	return app, nil
}

// scheduleTick starts a fresh wait phase at the current refresh interval,
// invalidating any tick still pending from an earlier schedule.
func (app *App) scheduleTick() tea.Cmd {
	app.tickGen++
	d := time.Duration(app.st.View().RefreshInterval) * time.Second
	return tickCmd(d, app.tickGen)
}

// rescheduleWait restarts the pending wait so an interval change takes
// effect immediately. While a fetch is in flight there is no pending wait;
// the fetch result will schedule one at the new interval.
func (app *App) rescheduleWait() tea.Cmd {
	if app.fetching {
		return nil
	}
	return app.scheduleTick()
}

// View implements tea.Model. A panic inside rendering is contained here:
// the previous frame is shown again instead of crashing the dashboard.
func (app *App) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			app.renderFaults++
			out = app.lastFrame
		}
	}()

	v := app.st.View()

	var frame string
	switch {
	case v.HelpVisible:
		frame = renderHelp(app.width)
	case app.oneline:
		frame = renderOneline(app, v)
	default:
		frame = renderDashboard(app, v)
	}

	app.lastFrame = frame
	return frame
}

// tickCmd schedules a TickMsg for generation gen after duration d.
func tickCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}

// fetchCmd is a Bubble Tea command performing one blocking GET of the stats
// endpoint. The request timeout is derived from the refresh interval so a
// hung endpoint cannot overlap the next cycle.
func fetchCmd(c client.StatsClient, intervalSeconds int) tea.Cmd {
	return func() tea.Msg {
		timeout := time.Duration(intervalSeconds)*time.Second - 500*time.Millisecond
		if timeout < 500*time.Millisecond {
			timeout = 500 * time.Millisecond
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		stats, err := c.GetStats(ctx)
		if err != nil {
			return FetchErrorMsg{Err: err}
		}
		return SnapshotMsg{Snapshot: model.NewSnapshot(stats, time.Now())}
	}
}
