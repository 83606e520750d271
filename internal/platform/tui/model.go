package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wall-jump/internal/config"
	"github.com/vovakirdan/wall-jump/internal/core"
	"github.com/vovakirdan/wall-jump/internal/games/walljump"
	"github.com/vovakirdan/wall-jump/internal/registry"
	"github.com/vovakirdan/wall-jump/internal/storage"
)

// configurable games accept new tuning from a config reload.
type configurable interface {
	SetConfig(cfg config.WallJumpConfig)
}

// recording games hand over the replay of a finished run.
type recording interface {
	TakeReplay() (walljump.Replay, bool)
}

// Options tune a GameModel beyond the runtime config.
type Options struct {
	// Embedded models hand control back to a parent on B/Esc instead of
	// quitting the program.
	Embedded bool

	// Watcher delivers config file changes. The model closes it on teardown.
	Watcher *config.Watcher

	Logger   *log.Logger
	Renderer *ScreenRenderer
}

// GameModel is the Bubble Tea model for running a game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	clock      *core.FrameClock
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	gen        int
	running    bool
	quitting   bool
	backToMenu bool
	lastSaved  int64
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}
	if opts.Renderer == nil {
		opts.Renderer = NewScreenRenderer(nil)
	}

	game.Reset(cfg)

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		clock:      core.NewFrameClock(),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		gen:        1,
		running:    true,
		gameState:  game.State(),
	}
}

// Init starts the frame loop and, if configured, the config watch.
func (m GameModel) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.config.TickRate, m.gen)}
	if m.opts.Watcher != nil {
		cmds = append(cmds, waitForConfig(m.opts.Watcher))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := m.keyMapper.MapMouse(msg); action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if !m.running || msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick(msg.Time)

	case ConfigReloadMsg:
		return m.handleReload(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.teardown()
		return m, tea.Quit
	}

	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.teardown()
		if m.opts.Embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize keeps the run going with the new dimensions.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step and schedules the next frame.
// The loop keeps running after game over; the game itself is inert then.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Delta(now)

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveReplay()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.gen)
}

// saveReplay stores the finished run, once.
func (m *GameModel) saveReplay() {
	rec, ok := m.game.(recording)
	if !ok {
		return
	}
	replay, ok := rec.TakeReplay()
	if !ok || m.store == nil {
		return
	}

	data, err := replay.Encode()
	if err != nil {
		m.opts.Logger.Warn("could not encode replay", "game", m.game.ID(), "error", err)
		return
	}
	id, err := m.store.SaveReplay(storage.ReplayEntry{
		GameID:   replay.Variant,
		Seed:     replay.Seed,
		Frames:   len(replay.Frames),
		Duration: replay.Elapsed,
		Data:     data,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save replay", "game", m.game.ID(), "error", err)
		return
	}
	m.lastSaved = id
}

// handleReload forwards new tuning to the game and keeps watching.
func (m GameModel) handleReload(msg ConfigReloadMsg) (tea.Model, tea.Cmd) {
	if !m.running || m.opts.Watcher == nil {
		return m, nil
	}
	if msg.Err != nil {
		m.opts.Logger.Warn("config reload failed", "error", msg.Err)
	} else if g, ok := m.game.(configurable); ok {
		g.SetConfig(msg.Config)
		m.opts.Logger.Info("config reloaded, applies on next run", "path", msg.Path)
	}
	return m, waitForConfig(m.opts.Watcher)
}

// teardown stops the frame loop. Pending ticks are dropped on arrival.
func (m *GameModel) teardown() {
	if !m.running {
		return
	}
	m.running = false
	m.gen++
	m.clock.Stop()
	if m.opts.Watcher != nil {
		if err := m.opts.Watcher.Close(); err != nil {
			m.opts.Logger.Warn("could not close config watcher", "error", err)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return m.opts.Renderer.Render(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Running reports whether the frame loop is still scheduled.
func (m GameModel) Running() bool {
	return m.running
}

// LastReplayID returns the ID of the most recently saved replay, or 0.
func (m GameModel) LastReplayID() int64 {
	return m.lastSaved
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer press is a jump
	)

	final, err := p.Run()
	if m, ok := final.(GameModel); ok {
		m.teardown()
	}
	return err
}
