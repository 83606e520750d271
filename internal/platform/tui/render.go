package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wall-jump/internal/core"
)

// palette maps core.Color to ANSI color codes.
var palette = map[core.Color]string{
	core.ColorGray:         "245",
	core.ColorBlue:         "4",
	core.ColorRed:          "1",
	core.ColorBrightCyan:   "14",
	core.ColorBrightYellow: "11",
	core.ColorBrightWhite:  "15",
}

// ScreenRenderer turns a Screen into styled terminal output. Each SSH
// session gets its own so colors follow that client's terminal profile.
type ScreenRenderer struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
}

// NewScreenRenderer builds styles from r, or from the default renderer
// when r is nil.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	sr := &ScreenRenderer{
		styles: make(map[core.Color]lipgloss.Style, len(palette)),
		plain:  r.NewStyle(),
	}
	for c, code := range palette {
		sr.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return sr
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	if s == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(sr.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

func (sr *ScreenRenderer) style(c core.Color) lipgloss.Style {
	if st, ok := sr.styles[c]; ok {
		return st
	}
	return sr.plain
}

// RenderScreen renders with the default terminal profile.
func RenderScreen(s *core.Screen) string {
	return NewScreenRenderer(nil).Render(s)
}
