// Package desktop runs Wall Jump in a window with ebiten. The window build
// needs the 'ebiten' tag; without it Run reports that the frontend is
// missing so the rest of the binary stays headless-friendly.
package desktop

import (
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wall-jump/internal/core"
	"github.com/vovakirdan/wall-jump/internal/games/walljump"
	"github.com/vovakirdan/wall-jump/internal/storage"
)

// Options configure a desktop run.
type Options struct {
	Variant walljump.Variant
	Seed    int64
	Width   int // Initial window size in pixels
	Height  int
	Store   *storage.Store // Finished runs are saved here when set
	Logger  *log.Logger
}

// palette maps core.Color to window colors.
var palette = map[core.Color]color.RGBA{
	core.ColorGray:         {R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff},
	core.ColorBlue:         {R: 0x24, G: 0x72, B: 0xc8, A: 0xff},
	core.ColorRed:          {R: 0xcd, G: 0x31, B: 0x31, A: 0xff},
	core.ColorBrightCyan:   {R: 0x29, G: 0xb8, B: 0xdb, A: 0xff},
	core.ColorBrightYellow: {R: 0xf5, G: 0xf5, B: 0x43, A: 0xff},
	core.ColorBrightWhite:  {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// background is the window clear color.
var background = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff}

// RGBA returns the window color for c. Unknown colors draw white.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorBrightWhite]
}

// drawable filters the projected shapes down to what the window paints.
// The clear shape is handled by filling the whole frame instead.
func drawable(shapes []walljump.Shape) []walljump.Shape {
	out := shapes[:0:0]
	for _, sh := range shapes {
		if sh.Kind == walljump.ShapeClear || sh.Rect.W <= 0 || sh.Rect.H <= 0 {
			continue
		}
		out = append(out, sh)
	}
	return out
}

// statusLine is the HUD text drawn above the play area.
func statusLine(g *walljump.Game) string {
	st := g.State()
	line := "Time " + walljump.FormatElapsed(st.Elapsed) + "   " + g.Title()
	switch {
	case st.GameOver:
		line += "   GAME OVER  (C copies the time)"
	case st.Paused:
		line += "   PAUSED"
	}
	return line
}
