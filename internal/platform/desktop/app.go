//go:build ebiten

package desktop

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/wall-jump/internal/core"
	"github.com/vovakirdan/wall-jump/internal/games/walljump"
	"github.com/vovakirdan/wall-jump/internal/storage"
)

// App adapts a Wall Jump game to the ebiten.Game interface.
type App struct {
	game   *walljump.Game
	clock  *core.FrameClock
	store  *storage.Store
	logger *log.Logger
	face   *text.GoXFace

	width, height int
	vp            walljump.Viewport
	touches       []ebiten.TouchID
	clipboardOK   bool
}

// New constructs an App for the given options.
func New(opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	g := walljump.New(opts.Variant)
	g.SetViewport(walljump.Viewport{Width: float64(opts.Width), Height: float64(opts.Height)})
	g.Reset(core.RuntimeConfig{TickRate: ebiten.DefaultTPS, Seed: opts.Seed})

	a := &App{
		game:   g,
		clock:  core.NewFrameClock(),
		store:  opts.Store,
		logger: opts.Logger,
		face:   text.NewGoXFace(basicfont.Face7x13),
		width:  opts.Width,
		height: opts.Height,
	}
	if err := clipboard.Init(); err != nil {
		a.logger.Warn("clipboard unavailable", "error", err)
	} else {
		a.clipboardOK = true
	}
	return a
}

// Update handles per-frame input and advances the game.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	vp := walljump.Viewport{Width: float64(a.width), Height: float64(a.height)}
	if vp != a.vp {
		a.vp = vp
		a.game.SetViewport(vp)
	}

	in := a.readInput()
	wasPaused := a.game.State().Paused

	dt := a.clock.Delta(time.Now())
	a.game.Step(in, dt)

	// Pausing stops the clock so resuming starts from a zero delta.
	if paused := a.game.State().Paused; paused != wasPaused {
		if paused {
			a.clock.Stop()
		} else {
			a.clock.Resume()
		}
	}

	if a.game.State().GameOver {
		a.saveReplay()
		if a.clipboardOK && inpututil.IsKeyJustPressed(ebiten.KeyC) {
			clipboard.Write(clipboard.FmtText, []byte(walljump.FormatElapsed(a.game.State().Elapsed)))
		}
	}
	return nil
}

// readInput collects this frame's keys, buttons and touches.
func (a *App) readInput() core.InputFrame {
	in := core.NewInputFrame()
	for _, k := range []ebiten.Key{ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW} {
		if inpututil.IsKeyJustPressed(k) {
			in.Set(core.ActionJump)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		in.Set(core.ActionReturn)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Set(core.ActionPause)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Set(core.ActionJump)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		in.Set(core.ActionReturn)
	}

	a.touches = inpututil.AppendJustPressedTouchIDs(a.touches[:0])
	if len(a.touches) > 0 {
		in.Set(core.ActionJump)
	}
	return in
}

func (a *App) saveReplay() {
	r, ok := a.game.TakeReplay()
	if !ok || a.store == nil {
		return
	}
	data, err := r.Encode()
	if err != nil {
		a.logger.Warn("could not encode replay", "error", err)
		return
	}
	id, err := a.store.SaveReplay(storage.ReplayEntry{
		GameID:   r.Variant,
		Seed:     r.Seed,
		Frames:   len(r.Frames),
		Duration: r.Elapsed,
		Data:     data,
	})
	if err != nil {
		a.logger.Warn("could not save replay", "error", err)
		return
	}
	a.logger.Info("replay saved", "id", id, "time", walljump.FormatElapsed(r.Elapsed))
}

// Draw renders the projected shapes and the HUD.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	s := a.game.Snapshot()
	for _, sh := range drawable(walljump.Project(s, a.game.Viewport(), a.game.Params())) {
		vector.DrawFilledRect(screen,
			float32(sh.Rect.X), float32(sh.Rect.Y),
			float32(sh.Rect.W), float32(sh.Rect.H),
			RGBA(sh.Color), false)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 6)
	op.ColorScale.ScaleWithColor(RGBA(core.ColorBrightWhite))
	text.Draw(screen, statusLine(a.game), a.face, op)
}

// Layout uses the window size as the world viewport.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width, a.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 480, 640
	}
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Variant.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	app := New(opts)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
