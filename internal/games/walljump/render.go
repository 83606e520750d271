package walljump

import (
	"math"

	"github.com/vovakirdan/wall-jump/internal/core"
)

// MidlineWidth is the drawn width of the center band in world units.
const MidlineWidth = 4.0

// ShapeKind tells frontends what a projected rectangle represents.
type ShapeKind int

const (
	ShapeClear ShapeKind = iota
	ShapeWall
	ShapeMidline
	ShapeObstacle
	ShapePlayer
)

// Shape is one filled rectangle in world coordinates.
type Shape struct {
	Kind  ShapeKind
	Rect  core.RectF
	Color core.Color
}

// Colors used by the projector.
const (
	ColorWall          = core.ColorGray
	ColorMidline       = core.ColorBlue
	ColorObstacle      = core.ColorRed
	ColorPlayerResting = core.ColorBrightCyan
	ColorPlayerJumping = core.ColorBrightYellow
)

// Project maps a state to draw calls in back-to-front order.
// It only reads s.
func Project(s State, vp Viewport, p Params) []Shape {
	shapes := make([]Shape, 0, len(s.Obstacles)+5)
	shapes = append(shapes,
		Shape{Kind: ShapeClear, Rect: core.NewRectF(0, 0, vp.Width, vp.Height)},
		Shape{Kind: ShapeWall, Rect: core.NewRectF(0, 0, p.WallThickness, vp.Height), Color: ColorWall},
		Shape{Kind: ShapeWall, Rect: core.NewRectF(vp.Width-p.WallThickness, 0, p.WallThickness, vp.Height), Color: ColorWall},
		Shape{Kind: ShapeMidline, Rect: core.NewRectF(vp.Width/2-MidlineWidth/2, 0, MidlineWidth, vp.Height), Color: ColorMidline},
	)

	for _, o := range s.Obstacles {
		shapes = append(shapes, Shape{Kind: ShapeObstacle, Rect: o.Rect(), Color: ColorObstacle})
	}

	player := Shape{
		Kind:  ShapePlayer,
		Rect:  core.NewRectF(s.PlayerX, s.PlayerY-s.ArcOffset(p), p.PlayerSize, p.PlayerSize),
		Color: ColorPlayerResting,
	}
	if s.Jumping {
		player.Color = ColorPlayerJumping
	}
	return append(shapes, player)
}

// Rasterizer draws projected shapes into a character grid.
type Rasterizer struct {
	CellWidth  float64
	CellHeight float64
	OffsetY    int // rows reserved above the play area
}

// Viewport returns the world-space size of a w×h cell area.
func (r Rasterizer) Viewport(cols, rows int) Viewport {
	return Viewport{
		Width:  float64(cols) * r.CellWidth,
		Height: float64(max(rows-r.OffsetY, 0)) * r.CellHeight,
	}
}

// Draw paints shapes into dst. A nil screen is a no-op.
func (r Rasterizer) Draw(dst *core.Screen, shapes []Shape) {
	if dst == nil || r.CellWidth <= 0 || r.CellHeight <= 0 {
		return
	}
	for _, sh := range shapes {
		if sh.Kind == ShapeClear {
			dst.Clear()
			continue
		}
		cells := r.cells(sh.Rect)
		dst.FillRect(cells, shapeRune(sh), sh.Color)
	}
}

// cells converts a world rectangle to the covering cell rectangle,
// clipped to the top of the play area. A shape that is at least partly
// visible covers at least one cell.
func (r Rasterizer) cells(rect core.RectF) core.Rect {
	x0 := int(math.Floor(rect.X / r.CellWidth))
	y0 := int(math.Floor(rect.Y / r.CellHeight))
	x1 := int(math.Ceil(rect.Right() / r.CellWidth))
	y1 := int(math.Ceil(rect.Bottom() / r.CellHeight))
	w := max(x1-x0, 1)
	h := max(y1-y0, 1)
	if y0 < 0 {
		h = max(y1, 0)
		y0 = 0
	}
	return core.NewRect(x0, y0+r.OffsetY, w, h)
}

func shapeRune(sh Shape) rune {
	switch sh.Kind {
	case ShapeWall:
		return '█'
	case ShapeMidline:
		return '┊'
	case ShapeObstacle:
		return '▓'
	case ShapePlayer:
		if sh.Color == ColorPlayerJumping {
			return '◆'
		}
		return '■'
	default:
		return ' '
	}
}
