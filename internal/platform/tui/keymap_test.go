package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey("w"), core.ActionUp},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey("a"), core.ActionLeft},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runeKey("s"), core.ActionDown},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey("d"), core.ActionRight},
		{"undo", runeKey("u"), core.ActionUndo},
		{"reset", runeKey("r"), core.ActionReset},
		{"clear best", runeKey("c"), core.ActionClearBest},
		{"start human", runeKey("h"), core.ActionStartHuman},
		{"start automatic", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionStartAutomatic},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"help", runeKey("?"), core.ActionHelp},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestStateHelpMatchesState(t *testing.T) {
	km := DefaultKeyMap()

	start := stateHelp{keys: km, state: t2048.StateStartScreen}
	for _, b := range start.ShortHelp() {
		if b.Help().Key == km.Undo.Help().Key {
			t.Error("start screen help lists undo")
		}
	}

	playing := stateHelp{keys: km, state: t2048.StatePlaying, player: t2048.PlayerHuman}
	found := false
	for _, group := range playing.FullHelp() {
		for _, b := range group {
			if b.Help().Key == km.Undo.Help().Key {
				found = true
			}
		}
	}
	if !found {
		t.Error("human playing help should list undo")
	}
}
