package desktop

import (
	"strings"
	"testing"

	"github.com/vovakirdan/wall-jump/internal/core"
	"github.com/vovakirdan/wall-jump/internal/games/walljump"
)

func TestRGBA(t *testing.T) {
	tests := []struct {
		c    core.Color
		want uint8 // red channel
	}{
		{walljump.ColorObstacle, palette[walljump.ColorObstacle].R},
		{core.ColorBrightWhite, 0xff},
		{core.Color(200), 0xff},
		{core.ColorDefault, 0xff},
	}
	for _, tt := range tests {
		got := RGBA(tt.c)
		if got.R != tt.want || got.A != 0xff {
			t.Errorf("RGBA(%d) = %+v", tt.c, got)
		}
	}
}

func TestPaletteCoversShapeColors(t *testing.T) {
	for _, c := range []core.Color{
		walljump.ColorWall,
		walljump.ColorMidline,
		walljump.ColorObstacle,
		walljump.ColorPlayerResting,
		walljump.ColorPlayerJumping,
	} {
		if _, ok := palette[c]; !ok {
			t.Errorf("no window color for %d", c)
		}
	}
}

func TestDrawableSkipsClearAndEmpty(t *testing.T) {
	shapes := []walljump.Shape{
		{Kind: walljump.ShapeClear, Rect: core.NewRectF(0, 0, 100, 100)},
		{Kind: walljump.ShapeWall, Rect: core.NewRectF(0, 0, 10, 100)},
		{Kind: walljump.ShapeObstacle, Rect: core.NewRectF(0, 0, 0, 10)},
		{Kind: walljump.ShapePlayer, Rect: core.NewRectF(20, 20, 5, 5)},
	}
	got := drawable(shapes)
	if len(got) != 2 || got[0].Kind != walljump.ShapeWall || got[1].Kind != walljump.ShapePlayer {
		t.Errorf("drawable() = %+v", got)
	}
	if shapes[1].Kind != walljump.ShapeWall {
		t.Error("input slice modified")
	}
}

func TestStatusLine(t *testing.T) {
	g := walljump.New(walljump.Classic)
	walljump.SetConfigPath(t.TempDir() + "/missing.yaml")
	t.Cleanup(func() { walljump.SetConfigPath("") })
	g.SetViewport(walljump.Viewport{Width: 480, Height: 640})
	g.Reset(core.RuntimeConfig{Seed: 3})

	if line := statusLine(g); !strings.HasPrefix(line, "Time 00:00") || !strings.Contains(line, "Wall Jump") {
		t.Errorf("statusLine() = %q", line)
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause, 0)
	if line := statusLine(g); !strings.Contains(line, "PAUSED") {
		t.Errorf("statusLine() while paused = %q", line)
	}
}
