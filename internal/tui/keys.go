package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds all key bindings for the dashboard.
type keyMap struct {
	Quit    key.Binding
	Refresh key.Binding
	Help    key.Binding
	Pause   key.Binding
	Slower  key.Binding
	Faster  key.Binding
}

// keys is the global key map. Unbound keys are ignored without error.
var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "Q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r", "R"),
		key.WithHelp("r", "refresh now"),
	),
	Help: key.NewBinding(
		key.WithKeys("h", "H"),
		key.WithHelp("h", "toggle help"),
	),
	Pause: key.NewBinding(
		key.WithKeys("p", "P"),
		key.WithHelp("p", "pause/resume"),
	),
	Slower: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "interval -1s"),
	),
	// "=" is accepted as an unshifted "+" on common layouts.
	Faster: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "interval +1s"),
	),
}

// footerHint is the brief key reminder shown in the footer.
const footerHint = "q: quit  r: refresh  h: help  p: pause  +/-: interval"
