package walljump

import (
	"strings"
	"testing"

	"github.com/vovakirdan/wall-jump/internal/config"
	"github.com/vovakirdan/wall-jump/internal/core"
	"github.com/vovakirdan/wall-jump/internal/registry"
)

func newTestGame(t *testing.T, v Variant) *Game {
	t.Helper()
	SetConfigPath(t.TempDir() + "/missing.yaml")
	t.Cleanup(func() { SetConfigPath("") })

	g := New(v)
	g.Reset(core.RuntimeConfig{ScreenW: 60, ScreenH: 25, TickRate: 60, Seed: 42})
	return g
}

func jumpFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range Variants() {
		if !registry.Exists(v.ID) {
			t.Errorf("variant %q not registered", v.ID)
		}
		g, err := registry.Create(v.ID)
		if err != nil {
			t.Fatalf("Create(%q) error: %v", v.ID, err)
		}
		if g.Title() != v.Title {
			t.Errorf("Title() = %q, want %q", g.Title(), v.Title)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() core.GameState {
		g := newTestGame(t, Classic)
		var st core.GameState
		for i := 0; i < 3000; i++ {
			in := core.NewInputFrame()
			if i%17 == 0 {
				in.Set(core.ActionJump)
			}
			st = g.Step(in, 1.0/60).State
			if st.GameOver {
				break
			}
		}
		return st
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("runs differ: %+v vs %+v", a, b)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, Classic)
	g.Step(core.NewInputFrame(), 0.1)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	st := g.Step(pause, 0.1).State
	if !st.Paused {
		t.Fatal("expected paused")
	}
	before := g.Snapshot().ElapsedTime

	g.Step(jumpFrame(), 0.5)
	if g.Snapshot().ElapsedTime != before || g.Snapshot().Jumping {
		t.Error("paused game advanced")
	}

	st = g.Step(pause, 0.1).State
	if st.Paused {
		t.Error("expected resumed")
	}
}

func TestGameRestartOnAction(t *testing.T) {
	g := newTestGame(t, Classic)
	g.state.GameOver = true
	g.state.ElapsedTime = 12
	g.state.Obstacles = []Obstacle{{X: 20, Y: 20, Width: 40, Height: 40}}
	seed := g.Seed()

	st := g.Step(jumpFrame(), 0.1).State
	if st.GameOver || st.Elapsed != 0 {
		t.Fatalf("restart not applied: %+v", st)
	}
	s := g.Snapshot()
	if len(s.Obstacles) != 0 || !s.OnLeftWall || s.Jumping {
		t.Errorf("restarted state not initial: %+v", s)
	}
	if g.Seed() == seed {
		t.Error("restart should draw a new run seed")
	}
}

func TestGameReturnWithPrimaryOnly(t *testing.T) {
	g := newTestGame(t, Return)
	g.Step(jumpFrame(), 0)
	for i := 0; i < 500 && !g.Snapshot().InReturnBand(g.Params(), g.Viewport()); i++ {
		g.Step(core.NewInputFrame(), 0.01)
	}
	s := g.Snapshot()
	if !s.Jumping || !s.InReturnBand(g.Params(), g.Viewport()) {
		t.Fatalf("never reached the band: %+v", s)
	}

	// A touch or click maps to the jump action only.
	g.Step(jumpFrame(), 0.01)
	if !g.Snapshot().Returning {
		t.Fatal("mid-air jump in the band did not turn back")
	}
	for i := 0; i < 500 && g.Snapshot().Jumping; i++ {
		g.Step(core.NewInputFrame(), 0.01)
	}
	if s := g.Snapshot(); !s.OnLeftWall || s.Jumping {
		t.Errorf("return landed on the wrong wall: %+v", s)
	}
}

func TestGameClimbNeedsRestartKey(t *testing.T) {
	g := newTestGame(t, Climb)
	g.state.GameOver = true

	if st := g.Step(jumpFrame(), 0.1).State; !st.GameOver {
		t.Fatal("jump restarted the climbing variant")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	if st := g.Step(restart, 0.1).State; st.GameOver {
		t.Error("restart key ignored")
	}
}

func TestGameResizeKeepsRun(t *testing.T) {
	g := newTestGame(t, Classic)
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame(), 0.01)
	}
	elapsed := g.Snapshot().ElapsedTime

	g.Resize(100, 40)
	g.Step(core.NewInputFrame(), 0.01)

	s := g.Snapshot()
	if !approx(s.ElapsedTime, elapsed+0.01) {
		t.Errorf("resize reset the run: elapsed %v", s.ElapsedTime)
	}
	vp := g.Viewport()
	if want := g.Params().RestX(true, vp); s.PlayerX != want {
		t.Errorf("PlayerX = %v, want %v", s.PlayerX, want)
	}
	if vp.Width != 100*g.cfg.Display.CellWidth {
		t.Errorf("viewport width = %v", vp.Width)
	}
}

func TestGameSetViewportSurvivesRestart(t *testing.T) {
	g := newTestGame(t, Classic)
	g.SetViewport(Viewport{Width: 640, Height: 480})
	g.Resize(10, 10)
	if got := g.Viewport(); got.Width != 640 || got.Height != 480 {
		t.Fatalf("Viewport() = %+v after cell resize", got)
	}

	g.state.GameOver = true
	g.Step(jumpFrame(), 0)
	if got := g.Viewport(); got.Width != 640 {
		t.Errorf("restart dropped world viewport: %+v", got)
	}
	if want := 480 * g.Params().YFraction; g.Snapshot().PlayerY != want {
		t.Errorf("PlayerY = %v, want %v", g.Snapshot().PlayerY, want)
	}
}

func TestGameSetConfigAppliesOnRestart(t *testing.T) {
	g := newTestGame(t, Classic)
	cfg := config.DefaultWallJumpConfig()
	cfg.Player.Size = 10

	g.SetConfig(cfg)
	if g.Params().PlayerSize == 10 {
		t.Fatal("config applied mid-run")
	}

	g.state.GameOver = true
	g.Step(jumpFrame(), 0)
	if g.Params().PlayerSize != 10 {
		t.Errorf("PlayerSize = %v after restart, want 10", g.Params().PlayerSize)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, Classic)
	screen := core.NewScreen(60, 25)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Time 00:00") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}

	g.state.GameOver = true
	g.state.ElapsedTime = 75.9
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "01:15") {
		t.Errorf("game over overlay missing:\n%s", out)
	}

	g.Render(nil)
}

func TestDifficultyPresetApplied(t *testing.T) {
	SetDifficultyPreset("fixed")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := newTestGame(t, Classic)
	if g.Params().Difficulty.IsEnabled() {
		t.Error("fixed preset should disable progression")
	}
}
