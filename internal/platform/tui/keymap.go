package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// ViewerKeyMap defines key bindings for the stage viewer.
type ViewerKeyMap struct {
	Next   key.Binding
	Finish key.Binding
	Play   key.Binding
	Reset  key.Binding
	Glyphs key.Binding
	Help   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k ViewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Play, k.Reset, k.Help, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k ViewerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Finish, k.Play, k.Reset},
		{k.Glyphs, k.Help, k.Back, k.Quit},
	}
}

// DefaultViewerKeyMap returns the default viewer key bindings.
func DefaultViewerKeyMap() ViewerKeyMap {
	return ViewerKeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n", " "),
			key.WithHelp("→/space", "next stage"),
		),
		Finish: key.NewBinding(
			key.WithKeys("enter", "f"),
			key.WithHelp("enter", "run to end"),
		),
		Play: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "autoplay"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r", "left", "h"),
			key.WithHelp("r", "restart"),
		),
		Glyphs: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "box glyphs"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserKeyMap defines key bindings for the puzzle browser.
type BrowserKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Open  key.Binding
	Solve key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Solve, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.Solve, k.Help, k.Quit},
	}
}

// DefaultBrowserKeyMap returns the default browser key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "view"),
		),
		Solve: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "solve"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
