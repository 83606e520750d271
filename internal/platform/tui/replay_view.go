package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wall-jump/internal/core"
	"github.com/vovakirdan/wall-jump/internal/games/walljump"
)

// playback speeds selectable with +/-.
var playbackSpeeds = []float64{0.25, 0.5, 1, 2, 4}

// ReplayViewModel plays a recorded run back in real time.
type ReplayViewModel struct {
	cursor   *walljump.Cursor
	title    string
	screen   *core.Screen
	renderer *ScreenRenderer
	raster   walljump.Rasterizer
	clock    *core.FrameClock
	tickRate int
	simTime  float64
	speed    int
	paused   bool
	gen      int
	running  bool
	quitting bool
}

// NewReplayViewModel prepares playback of r on a w×h terminal.
func NewReplayViewModel(r walljump.Replay, w, h, tickRate int) (ReplayViewModel, error) {
	c, err := walljump.NewCursor(r)
	if err != nil {
		return ReplayViewModel{}, err
	}
	title := r.Variant
	if v, ok := walljump.VariantByID(r.Variant); ok {
		title = v.Title
	}
	p := c.Params()
	return ReplayViewModel{
		cursor:   c,
		title:    title,
		screen:   core.NewScreen(w, h),
		renderer: NewScreenRenderer(nil),
		raster:   walljump.Rasterizer{CellWidth: p.CellWidth, CellHeight: p.CellHeight, OffsetY: 1},
		clock:    core.NewFrameClock(),
		tickRate: tickRate,
		speed:    2,
		gen:      1,
		running:  true,
	}, nil
}

// Init starts playback.
func (m ReplayViewModel) Init() tea.Cmd {
	return tickCmd(m.tickRate, m.gen)
}

// Update handles messages.
func (m ReplayViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "b":
			m.quitting = true
			m.running = false
			m.gen++
			m.clock.Stop()
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		case "+", "=":
			m.speed = min(m.speed+1, len(playbackSpeeds)-1)
		case "-":
			m.speed = max(m.speed-1, 0)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if !m.running || msg.Gen != m.gen {
			return m, nil
		}
		dt := m.clock.Delta(msg.Time)
		if !m.paused {
			m.simTime += dt * playbackSpeeds[m.speed]
			m.cursor.AdvanceTo(m.simTime)
		}
		return m, tickCmd(m.tickRate, m.gen)
	}
	return m, nil
}

// View renders the replayed state.
func (m ReplayViewModel) View() string {
	if m.quitting {
		return ""
	}
	s := m.cursor.State()
	m.raster.Draw(m.screen, walljump.Project(s, m.cursor.Viewport(), m.cursor.Params()))

	m.screen.FillRect(core.NewRect(0, 0, m.screen.Width(), 1), ' ', core.ColorDefault)
	status := fmt.Sprintf("REPLAY %s  Time %s  x%g", m.title, walljump.FormatElapsed(s.ElapsedTime), playbackSpeeds[m.speed])
	if m.paused {
		status += "  [paused]"
	}
	if m.cursor.Done() {
		status += "  [end]"
	}
	m.screen.DrawTextColored(1, 0, status, core.ColorBrightWhite)
	return m.renderer.Render(m.screen)
}

// RunReplay plays a replay in the terminal until the user leaves.
func RunReplay(r walljump.Replay, w, h, tickRate int) error {
	model, err := NewReplayViewModel(r, w, h, tickRate)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

