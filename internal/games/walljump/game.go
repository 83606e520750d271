// Package walljump implements Wall Jump: a square bounces between two
// vertical walls while obstacles slide down them. Survival time is the
// score.
//
// The simulation lives in Advance, a pure function of the previous
// state, the frame delta, the routed commands and the viewport. Game
// adapts it to the registry so the platform can drive it.
package walljump

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/wall-jump/internal/config"
	"github.com/vovakirdan/wall-jump/internal/core"
	"github.com/vovakirdan/wall-jump/internal/registry"
)

// hudRows is the number of screen rows above the play area.
const hudRows = 1

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// ConfigPath returns the custom config path, if any.
func ConfigPath() string {
	return configPath
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// LoadConfig loads the tuning for a run, applying the CLI preset.
// Errors fall back to the built-in defaults.
func LoadConfig() config.WallJumpConfig {
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultWallJumpConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Game adapts the engine to the registry.
type Game struct {
	variant Variant
	runtime core.RuntimeConfig

	cfg     config.WallJumpConfig
	pending *config.WallJumpConfig
	params  Params
	raster  Rasterizer
	vp      Viewport
	worldVP *Viewport

	state    State
	router   *Router
	bits     *RandBits
	seeds    *rand.Rand
	runSeed  int64
	paused   bool
	recorder *Recorder
	finished *Replay
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Variant returns the ruleset this game runs.
func (g *Game) Variant() Variant {
	return g.variant
}

// Reset loads the config and starts a fresh run. Run seeds are drawn
// from runtime.Seed, so a session is reproducible as a whole.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = LoadConfig()
	g.pending = nil
	g.seeds = rand.New(rand.NewSource(runtime.Seed))
	g.restart()
}

// restart replaces the whole state with a fresh run.
func (g *Game) restart() {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
	}
	g.params = NewParams(g.variant, g.cfg)
	g.raster = Rasterizer{
		CellWidth:  g.cfg.Display.CellWidth,
		CellHeight: g.cfg.Display.CellHeight,
		OffsetY:    hudRows,
	}
	g.vp = g.raster.Viewport(g.runtime.ScreenW, g.runtime.ScreenH)
	if g.worldVP != nil {
		g.vp = *g.worldVP
	}
	g.runSeed = g.seeds.Int63()
	g.bits = NewRandBits(g.runSeed)
	g.state = NewState(g.params, g.vp)
	g.router = NewRouter(g.variant)
	g.paused = false
	g.recorder = NewRecorder(g.variant.ID, g.runSeed, g.vp, g.cfg)
	g.finished = nil
}

// SetConfig queues new tuning. It takes effect on the next restart so a
// run never changes rules midway.
func (g *Game) SetConfig(cfg config.WallJumpConfig) {
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.pending = &cfg
}

// Resize updates the viewport without touching the run.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	if g.worldVP == nil {
		g.vp = g.raster.Viewport(screenW, screenH)
	}
}

// SetViewport sets the play area in world units directly, for frontends
// that draw in pixels. It overrides the cell-based size from then on.
func (g *Game) SetViewport(vp Viewport) {
	g.worldVP = &vp
	g.vp = vp
}

// Step routes this frame's input and advances the run by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionPause) && !g.state.GameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.router.Push(Event{Kind: EventPrimary}, g.state, g.vp, g.params)
	}
	if in.Has(core.ActionReturn) {
		g.router.Push(Event{Kind: EventSecondary}, g.state, g.vp, g.params)
	}
	if in.Has(core.ActionRestart) {
		g.router.Push(Event{Kind: EventRestart}, g.state, g.vp, g.params)
	}

	cmds := g.router.Drain()
	for _, cmd := range cmds {
		if cmd == CommandRestart {
			g.restart()
			return core.StepResult{State: g.State()}
		}
	}

	if g.state.GameOver {
		return core.StepResult{State: g.State()}
	}

	g.state = Advance(g.state, dt, cmds, g.vp, g.bits, g.params)
	g.recorder.Record(dt, cmds, g.vp)
	if g.state.GameOver {
		r := g.recorder.Finish(g.state)
		g.finished = &r
	}

	return core.StepResult{State: g.State()}
}

// Snapshot returns a copy of the engine state.
func (g *Game) Snapshot() State {
	s := g.state
	s.Obstacles = append([]Obstacle(nil), g.state.Obstacles...)
	return s
}

// Params returns the tuning of the current run.
func (g *Game) Params() Params {
	return g.params
}

// Viewport returns the current play area in world units.
func (g *Game) Viewport() Viewport {
	return g.vp
}

// Seed returns the seed of the current run.
func (g *Game) Seed() int64 {
	return g.runSeed
}

// TakeReplay returns the recording of a finished run once.
func (g *Game) TakeReplay() (Replay, bool) {
	if g.finished == nil {
		return Replay{}, false
	}
	r := *g.finished
	g.finished = nil
	return r, true
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if dst == nil {
		return
	}
	g.raster.Draw(dst, Project(g.state, g.vp, g.params))

	// Draw HUD
	dst.FillRect(core.NewRect(0, 0, dst.Width(), hudRows), ' ', core.ColorDefault)
	dst.DrawTextColored(1, 0, "Time "+FormatElapsed(g.state.ElapsedTime), core.ColorBrightWhite)
	title := g.variant.Title
	dst.DrawTextColored(dst.Width()-len(title)-1, 0, title, core.ColorGray)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.state.GameOver {
		g.drawCenteredMessage(dst, g.gameOverTitle(), fmt.Sprintf("Time: %s  |  %s", FormatElapsed(g.state.ElapsedTime), g.restartHint()))
	}
}

func (g *Game) gameOverTitle() string {
	if g.state.Cause == CauseCeiling {
		return "TOP REACHED"
	}
	return "GAME OVER"
}

func (g *Game) restartHint() string {
	if g.variant.RestartOnAction {
		return "Space or R to restart"
	}
	return "Press R to restart"
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(math.Floor(g.state.ElapsedTime)),
		Elapsed:  g.state.ElapsedTime,
		GameOver: g.state.GameOver,
		Paused:   g.paused,
	}
}

// Register the variants with the registry
func init() {
	for _, v := range Variants() {
		v := v
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}
