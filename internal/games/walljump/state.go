package walljump

import "github.com/vovakirdan/wall-jump/internal/core"

// Viewport is the current drawable area in world units.
type Viewport struct {
	Width  float64 `yaml:"w"`
	Height float64 `yaml:"h"`
}

// Cause records why a run ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseObstacle
	CauseCeiling
)

func (c Cause) String() string {
	switch c {
	case CauseObstacle:
		return "obstacle"
	case CauseCeiling:
		return "ceiling"
	default:
		return "none"
	}
}

// Obstacle is a hazard sliding down one wall. Only Y changes after spawn.
type Obstacle struct {
	X, Y       float64
	Width      float64
	Height     float64
	OnLeftWall bool
}

// Rect returns the obstacle's collision box.
func (o Obstacle) Rect() core.RectF {
	return core.NewRectF(o.X, o.Y, o.Width, o.Height)
}

// State is the complete simulation state of one run. It is a value:
// Advance returns a new State and never mutates its input.
type State struct {
	PlayerX float64
	PlayerY float64

	OnLeftWall   bool
	Jumping      bool
	JumpProgress float64

	// Returning marks a jump that lands back on the wall it left.
	Returning bool
	// Pivoted jumps interpolate from JumpPivotX instead of the origin wall.
	Pivoted    bool
	JumpPivotX float64

	Obstacles     []Obstacle
	ElapsedTime   float64
	LastSpawnTime float64

	GameOver bool
	Cause    Cause
}

// NewState returns the initial state of a run.
func NewState(p Params, vp Viewport) State {
	s := State{
		OnLeftWall: true,
		PlayerX:    p.RestX(true, vp),
		PlayerY:    vp.Height * p.YFraction,
		Obstacles:  []Obstacle{},
	}
	if p.Variant.Climbing {
		s.PlayerY = vp.Height * p.ClimbStart
	}
	return s
}

// PlayerRect returns the player's collision box.
func (s State) PlayerRect(p Params) core.RectF {
	return core.NewRectF(s.PlayerX, s.PlayerY, p.PlayerSize, p.PlayerSize)
}

// InReturnBand reports whether the player's center is inside the midline band.
func (s State) InReturnBand(p Params, vp Viewport) bool {
	center := s.PlayerX + p.PlayerSize/2
	d := center - vp.Width/2
	if d < 0 {
		d = -d
	}
	return d <= p.ReturnBand/2
}

// ArcOffset is the visual lift of the player at the current jump progress.
// It never affects collision.
func (s State) ArcOffset(p Params) float64 {
	if !s.Jumping {
		return 0
	}
	t := core.ClampF(s.JumpProgress, 0, 1)
	return 4 * p.ArcHeight * t * (1 - t)
}
