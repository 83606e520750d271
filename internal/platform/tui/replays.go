package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wall-jump/internal/games/walljump"
	"github.com/vovakirdan/wall-jump/internal/storage"
)

// Replay browser layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show variant sidebar
	sidebarWidth       = 24  // Width of variant sidebar
	maxReplays         = 100 // Max replays to load
)

// ReplayKeyMap defines the key bindings for the replay browser.
type ReplayKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Watch    key.Binding
	Delete   key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Watch, k.Delete, k.NextGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ReplayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Watch, k.Delete},
		{k.NextGame, k.PrevGame, k.Back, k.Quit},
	}
}

// DefaultReplayKeyMap returns default key bindings.
func DefaultReplayKeyMap() ReplayKeyMap {
	return ReplayKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Watch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "watch"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReplayBrowserModel lists stored replays per variant.
type ReplayBrowserModel struct {
	variants    []walljump.Variant
	cursor      int
	store       *storage.Store
	replays     []storage.ReplayEntry
	table       table.Model
	help        help.Model
	keys        ReplayKeyMap
	width       int
	height      int
	err         error
	quitting    bool
	goingBack   bool
	watchID     int64 // Set when user picks a replay to watch
	showSidebar bool
}

// NewReplayBrowserModel creates a new replay browser.
func NewReplayBrowserModel(store *storage.Store, width, height int) ReplayBrowserModel {
	h := help.New()
	h.ShowAll = false

	m := ReplayBrowserModel{
		variants:    walljump.Variants(),
		store:       store,
		keys:        DefaultReplayKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.loadReplays()
	return m
}

// createTable creates a new table sized to the window.
func (m *ReplayBrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Time", Width: 7},
		{Title: "Frames", Width: 8},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadReplays loads replays for the selected variant.
func (m *ReplayBrowserModel) loadReplays() {
	m.replays, m.err = nil, nil
	if m.store != nil && len(m.variants) > 0 {
		m.replays, m.err = m.store.RecentReplays(m.variants[m.cursor].ID, maxReplays)
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current replays.
func (m *ReplayBrowserModel) updateTableRows() {
	rows := make([]table.Row, len(m.replays))
	for i, r := range m.replays {
		rows[i] = table.Row{
			strconv.FormatInt(r.ID, 10),
			walljump.FormatElapsed(r.Duration),
			strconv.Itoa(r.Frames),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// selectedReplay returns the replay under the table cursor.
func (m ReplayBrowserModel) selectedReplay() (storage.ReplayEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.replays) {
		return storage.ReplayEntry{}, false
	}
	return m.replays[i], true
}

// Init initializes the replay browser.
func (m ReplayBrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the replay browser.
func (m ReplayBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Watch):
			if r, ok := m.selectedReplay(); ok {
				m.watchID = r.ID
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if r, ok := m.selectedReplay(); ok && m.store != nil {
				m.err = m.store.DeleteReplay(r.ID)
				if m.err == nil {
					m.loadReplays()
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.NextGame):
			if len(m.variants) > 0 {
				m.cursor = (m.cursor + 1) % len(m.variants)
				m.loadReplays()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.variants) > 0 {
				m.cursor = (m.cursor - 1 + len(m.variants)) % len(m.variants)
				m.loadReplays()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the replay browser.
func (m ReplayBrowserModel) View() string {
	if m.quitting || m.goingBack || m.watchID != 0 {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "REPLAYS"
	if len(m.variants) > 0 {
		title = fmt.Sprintf("REPLAYS - %s", m.variants[m.cursor].Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the browser with a sidebar for variant selection.
func (m ReplayBrowserModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Modes\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, v := range m.variants {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + v.Title))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		tableStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout shows the current variant above the table.
func (m ReplayBrowserModel) renderNarrowLayout() string {
	var b strings.Builder
	if len(m.variants) > 0 {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.variants[m.cursor].Title), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))
	return b.String()
}

// renderTableContent renders the table, an error, or an empty message.
func (m ReplayBrowserModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.err != nil {
		return emptyStyle.Render("Could not load replays:\n" + m.err.Error())
	}
	if len(m.replays) == 0 {
		return emptyStyle.Render("No replays recorded yet.\nFinish a run to record one!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ReplayBrowserModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ReplayBrowserModel) IsQuitting() bool {
	return m.quitting
}

// WatchID returns the replay picked for playback, or 0.
func (m ReplayBrowserModel) WatchID() int64 {
	return m.watchID
}

// BrowseResult is the outcome of the replay browser.
type BrowseResult struct {
	WatchID int64
	Back    bool
}

// RunReplayBrowser runs the replay browser screen.
func RunReplayBrowser(store *storage.Store, width, height int) (BrowseResult, error) {
	p := tea.NewProgram(NewReplayBrowserModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return BrowseResult{}, err
	}

	m, ok := finalModel.(ReplayBrowserModel)
	if !ok {
		return BrowseResult{}, nil
	}
	return BrowseResult{WatchID: m.WatchID(), Back: m.IsGoingBack()}, nil
}
