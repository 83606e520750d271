// Package core provides fundamental types and utilities shared by the game
// engine and its frontends. It has no external dependencies (no Bubble Tea,
// no ebiten) so simulation code stays pure and testable.
package core

// Rect is an integer rectangle in screen cells. Used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// RectF is an axis-aligned bounding box in continuous world units.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a world-space rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal center.
func (r RectF) CenterX() float64 {
	return r.X + r.W/2
}

// Overlaps reports whether two boxes intersect. Edges that merely touch
// count as overlapping: all four half-plane tests are inclusive.
func (r RectF) Overlaps(other RectF) bool {
	return r.Right() >= other.X &&
		r.X <= other.Right() &&
		r.Bottom() >= other.Y &&
		r.Y <= other.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
