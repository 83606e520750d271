package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wall-jump/internal/games/walljump"
	"github.com/vovakirdan/wall-jump/internal/storage"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(nil, testRuntime())
	if len(m.items) != len(walljump.Variants()) {
		t.Fatalf("menu has %d items, want %d", len(m.items), len(walljump.Variants()))
	}
	view := m.View()
	for _, v := range walljump.Variants() {
		if !strings.Contains(view, v.Title) {
			t.Errorf("menu view missing %q", v.Title)
		}
	}
}

func TestMenuNavigation(t *testing.T) {
	tests := []struct {
		keys []string
		want string
	}{
		{[]string{"enter"}, walljump.Classic.ID},
		{[]string{"down", "enter"}, walljump.Return.ID},
		{[]string{"down", "down", "down", "down", "enter"}, walljump.Climb.ID},
		{[]string{"up", "enter"}, walljump.Classic.ID},
	}

	for _, tt := range tests {
		var model tea.Model = NewMenuModel(nil, testRuntime())
		for _, k := range tt.keys {
			model, _ = model.Update(keyMsg(k))
		}
		sel := model.(MenuModel).Selected()
		if sel == nil || sel.GameID != tt.want {
			t.Errorf("keys %v selected %+v, want %s", tt.keys, sel, tt.want)
		}
	}
}

func TestMenuReplaysAndQuit(t *testing.T) {
	var model tea.Model = NewMenuModel(nil, testRuntime())
	model, cmd := model.Update(keyMsg("tab"))
	if !model.(MenuModel).WantsReplays() || cmd == nil {
		t.Error("tab did not open replays")
	}

	model = NewMenuModel(nil, testRuntime())
	model, _ = model.Update(keyMsg("q"))
	if !model.(MenuModel).IsQuitting() {
		t.Error("q did not quit")
	}
}

func TestMenuReplayCounts(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "replays.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 3; i++ {
		if _, err := store.SaveReplay(storage.ReplayEntry{GameID: walljump.Return.ID, Data: []byte("x")}); err != nil {
			t.Fatalf("SaveReplay() failed: %v", err)
		}
	}

	m := NewMenuModel(store, testRuntime())
	if m.counts[walljump.Return.ID] != 3 {
		t.Errorf("count = %d, want 3", m.counts[walljump.Return.ID])
	}
	if m.counts[walljump.Classic.ID] != 0 {
		t.Errorf("classic count = %d, want 0", m.counts[walljump.Classic.ID])
	}
}
