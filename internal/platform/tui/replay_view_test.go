package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wall-jump/internal/config"
	"github.com/vovakirdan/wall-jump/internal/games/walljump"
)

func testReplay(frames int) walljump.Replay {
	vp := walljump.Viewport{Width: 400, Height: 460}
	rec := walljump.NewRecorder(walljump.Classic.ID, 9, vp, config.DefaultWallJumpConfig())
	for i := 0; i < frames; i++ {
		rec.Record(0.1, nil, vp)
	}
	return rec.Finish(walljump.State{ElapsedTime: 0.1 * float64(frames)})
}

func TestReplayViewPlaysBack(t *testing.T) {
	m, err := NewReplayViewModel(testReplay(10), 40, 24, 60)
	if err != nil {
		t.Fatalf("NewReplayViewModel() failed: %v", err)
	}
	var model tea.Model = m

	start := time.Unix(100, 0)
	model, _ = model.Update(TickMsg{Time: start, Gen: 1})
	model, cmd := model.Update(TickMsg{Time: start.Add(450 * time.Millisecond), Gen: 1})
	if cmd == nil {
		t.Fatal("playback stopped rescheduling")
	}

	// Four 0.1s frames fit in 0.45s at normal speed.
	rv := model.(ReplayViewModel)
	if got := rv.cursor.State().ElapsedTime; got < 0.39 || got > 0.41 {
		t.Errorf("elapsed after 0.45s = %v, want 0.4", got)
	}
	if view := rv.View(); !strings.Contains(view, "REPLAY Wall Jump") {
		t.Errorf("status line missing from view")
	}
}

func TestReplayViewPauseAndSpeed(t *testing.T) {
	m, err := NewReplayViewModel(testReplay(50), 40, 24, 60)
	if err != nil {
		t.Fatalf("NewReplayViewModel() failed: %v", err)
	}
	var model tea.Model = m

	model, _ = model.Update(keyMsg("+"))
	model, _ = model.Update(keyMsg("+"))
	model, _ = model.Update(keyMsg("+"))
	if got := playbackSpeeds[model.(ReplayViewModel).speed]; got != 4 {
		t.Errorf("speed = %v, want 4 (clamped)", got)
	}

	model, _ = model.Update(keyMsg("p"))
	start := time.Unix(100, 0)
	model, _ = model.Update(TickMsg{Time: start, Gen: 1})
	model, _ = model.Update(TickMsg{Time: start.Add(time.Second), Gen: 1})
	if got := model.(ReplayViewModel).cursor.State().ElapsedTime; got != 0 {
		t.Errorf("paused playback advanced to %v", got)
	}
}

func TestReplayViewQuitDropsTicks(t *testing.T) {
	m, err := NewReplayViewModel(testReplay(5), 40, 24, 60)
	if err != nil {
		t.Fatalf("NewReplayViewModel() failed: %v", err)
	}
	var model tea.Model = m

	model, cmd := model.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, cmd = model.Update(TickMsg{Time: time.Now(), Gen: 1}); cmd != nil {
		t.Error("tick after quit rescheduled playback")
	}
}

func TestNewReplayViewRejectsUnknownVariant(t *testing.T) {
	r := testReplay(1)
	r.Variant = "tetris"
	if _, err := NewReplayViewModel(r, 40, 24, 60); err == nil {
		t.Error("expected an error for an unknown variant")
	}
}
