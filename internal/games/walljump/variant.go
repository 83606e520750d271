package walljump

import "github.com/vovakirdan/wall-jump/internal/config"

// Pacing selects the jump rate constant.
type Pacing int

const (
	PacingBrisk Pacing = iota
	PacingControlled
)

// Variant describes one ruleset of the game.
type Variant struct {
	ID    string
	Title string

	Pacing Pacing

	// AllowReturn accepts an in-air action inside the midline band that
	// sends the player back to the wall it left.
	AllowReturn bool

	// AirJump lets the primary action restart a jump while airborne.
	AirJump bool

	// Climbing moves the player upward every tick and tests collisions
	// against obstacles on both walls. Reaching the top ends the run.
	Climbing bool

	// RestartOnAction lets the jump action restart a finished run.
	RestartOnAction bool

	// WallSizedObstacles matches obstacle width to the wall thickness
	// instead of the configured fixed size.
	WallSizedObstacles bool
}

// Built-in variants.
var (
	Classic = Variant{
		ID:              "walljump",
		Title:           "Wall Jump",
		Pacing:          PacingBrisk,
		RestartOnAction: true,
	}

	Return = Variant{
		ID:                 "walljump_return",
		Title:              "Wall Jump: Return",
		Pacing:             PacingControlled,
		AllowReturn:        true,
		RestartOnAction:    true,
		WallSizedObstacles: true,
	}

	Climb = Variant{
		ID:       "walljump_climb",
		Title:    "Wall Jump: Climb",
		Pacing:   PacingBrisk,
		AirJump:  true,
		Climbing: true,
	}
)

// Variants returns every built-in variant.
func Variants() []Variant {
	return []Variant{Classic, Return, Climb}
}

// VariantByID looks up a built-in variant.
func VariantByID(id string) (Variant, bool) {
	for _, v := range Variants() {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// Params is the flattened, per-run tuning consumed by the engine.
type Params struct {
	Variant Variant

	PlayerSize    float64
	Margin        float64
	YFraction     float64
	WallThickness float64

	JumpRate   float64
	ReturnBand float64
	ArcHeight  float64

	ObstacleWidth  float64
	ObstacleHeight float64
	ObstacleSpeed  float64
	CullMargin     float64

	ClimbSpeed float64
	ClimbStart float64
	CellWidth  float64
	CellHeight float64
	Difficulty *config.DifficultyManager
}

// NewParams resolves a config for the given variant.
func NewParams(v Variant, cfg config.WallJumpConfig) Params {
	p := Params{
		Variant:        v,
		PlayerSize:     cfg.Player.Size,
		Margin:         cfg.Player.Margin,
		YFraction:      cfg.Player.YFraction,
		WallThickness:  cfg.Walls.Thickness,
		JumpRate:       cfg.Jump.BriskRate,
		ReturnBand:     cfg.Jump.ReturnBand,
		ArcHeight:      cfg.Jump.ArcHeight,
		ObstacleWidth:  cfg.Obstacles.Width,
		ObstacleHeight: cfg.Obstacles.Height,
		ObstacleSpeed:  cfg.Obstacles.Speed,
		CullMargin:     cfg.Obstacles.CullMargin,
		ClimbSpeed:     cfg.Climb.Speed,
		ClimbStart:     cfg.Climb.StartFraction,
		CellWidth:      cfg.Display.CellWidth,
		CellHeight:     cfg.Display.CellHeight,
		Difficulty:     config.NewDifficultyManager(cfg.Difficulty),
	}
	if v.Pacing == PacingControlled {
		p.JumpRate = cfg.Jump.ControlledRate
	}
	if v.WallSizedObstacles {
		p.ObstacleWidth = cfg.Walls.Thickness
		p.ObstacleHeight = 2 * cfg.Walls.Thickness
	}
	return p
}

// RestX returns the resting x-coordinate of the player on a wall.
func (p Params) RestX(left bool, vp Viewport) float64 {
	if left {
		return p.WallThickness + p.Margin
	}
	return vp.Width - p.WallThickness - p.Margin - p.PlayerSize
}
