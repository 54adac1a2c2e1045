package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/games/tiles"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Lanes   [tiles.LaneCount]key.Binding
	Tap     key.Binding // Help entry for all lanes
	Up      key.Binding
	Down    key.Binding
	Start   key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Start, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Lanes[:],
		{k.Up, k.Down, k.Start, k.Restart},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Lanes: [tiles.LaneCount]key.Binding{
			key.NewBinding(key.WithKeys("d", "1"), key.WithHelp("d/1", "lane 1")),
			key.NewBinding(key.WithKeys("f", "2"), key.WithHelp("f/2", "lane 2")),
			key.NewBinding(key.WithKeys("j", "3"), key.WithHelp("j/3", "lane 3")),
			key.NewBinding(key.WithKeys("k", "4"), key.WithHelp("k/4", "lane 4")),
		},
		Tap: key.NewBinding(
			key.WithKeys("d", "f", "j", "k"),
			key.WithHelp("d f j k", "tap"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("up/w", "prev level"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "next level"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	for lane, b := range k.Lanes {
		if key.Matches(msg, b) {
			return core.LaneAction(lane)
		}
	}

	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Start):
		return core.ActionConfirm
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}
