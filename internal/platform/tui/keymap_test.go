package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"vim down", runeKey('j'), core.ActionDown},
		{"wasd left", runeKey('a'), core.ActionLeft},
		{"vim right", runeKey('l'), core.ActionRight},
		{"space steps", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPrimary},
		{"enter steps", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPrimary},
		{"f flags", runeKey('f'), core.ActionSecondary},
		{"restart", runeKey('r'), core.ActionRestart},
		{"screenshot", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot},
		{"help", runeKey('?'), core.ActionHelp},
		{"q quits", runeKey('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapHelpCoversBindings(t *testing.T) {
	km := DefaultKeyMap()

	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 10 {
		t.Errorf("full help lists %d bindings, expected 10", total)
	}
	if len(km.ShortHelp()) == 0 {
		t.Error("short help is empty")
	}
}
