package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wall-jump/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionJump, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, core.ActionJump, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionReturn, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone, false},
	}

	for _, tt := range tests {
		got, quit := km.MapKey(tt.msg)
		if got != tt.want || quit != tt.isQuit {
			t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), got, quit, tt.want, tt.isQuit)
		}
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.MouseMsg
		want core.Action
	}{
		{tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.ActionJump},
		{tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, core.ActionReturn},
		{tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, core.ActionNone},
		{tea.MouseMsg{Action: tea.MouseActionMotion}, core.ActionNone},
	}

	for _, tt := range tests {
		if got := km.MapMouse(tt.msg); got != tt.want {
			t.Errorf("MapMouse(%+v) = %v, want %v", tt.msg, got, tt.want)
		}
	}
}
