package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Up             key.Binding
	Left           key.Binding
	Down           key.Binding
	Right          key.Binding
	Undo           key.Binding
	Reset          key.Binding
	ClearBest      key.Binding
	StartHuman     key.Binding
	StartAutomatic key.Binding
	Confirm        key.Binding
	Back           key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u", "z"),
			key.WithHelp("u", "undo"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new game"),
		),
		ClearBest: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear best"),
		),
		StartHuman: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "play"),
		),
		StartAutomatic: key.NewBinding(
			key.WithKeys(" ", "i"),
			key.WithHelp("space/i", "autoplay"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a semantic action.
// Returns core.ActionNone for unbound keys.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Undo):
		return core.ActionUndo
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.ClearBest):
		return core.ActionClearBest
	case key.Matches(msg, k.StartHuman):
		return core.ActionStartHuman
	case key.Matches(msg, k.StartAutomatic):
		return core.ActionStartAutomatic
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}

// stateHelp shows only the bindings that apply in the current game state.
type stateHelp struct {
	keys   KeyMap
	state  t2048.State
	player t2048.PlayerKind
}

// ShortHelp returns key bindings for the short help view.
func (h stateHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.state {
	case t2048.StateStartScreen:
		return []key.Binding{k.Confirm, k.StartAutomatic, k.Quit}
	case t2048.StateGameOver:
		return []key.Binding{k.Confirm, k.Reset, k.Quit}
	}
	if h.player == t2048.PlayerAutomatic {
		return []key.Binding{k.Reset, k.Back, k.Quit}
	}
	return []key.Binding{k.Up, k.Left, k.Down, k.Right, k.Undo, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (h stateHelp) FullHelp() [][]key.Binding {
	k := h.keys
	switch h.state {
	case t2048.StateStartScreen:
		return [][]key.Binding{
			{k.Confirm, k.StartHuman, k.StartAutomatic},
			{k.ClearBest, k.Quit},
		}
	case t2048.StateGameOver:
		return [][]key.Binding{
			{k.Confirm, k.Reset},
			{k.ClearBest, k.Quit},
		}
	}
	if h.player == t2048.PlayerAutomatic {
		return [][]key.Binding{
			{k.Reset, k.ClearBest},
			{k.Back, k.Quit},
		}
	}
	return [][]key.Binding{
		{k.Up, k.Left, k.Down, k.Right},
		{k.Undo, k.Reset, k.ClearBest},
		{k.Back, k.Help, k.Quit},
	}
}
