package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wall-jump/internal/core"
	"github.com/vovakirdan/wall-jump/internal/games/walljump"
	"github.com/vovakirdan/wall-jump/internal/storage"
)

// MenuItem represents a selectable variant in the menu.
type MenuItem struct {
	GameID  string
	Title   string
	Summary string
}

// variantSummary describes a ruleset in one line.
func variantSummary(v walljump.Variant) string {
	switch {
	case v.Climbing:
		return "Climb to the top; jump again in mid-air"
	case v.AllowReturn:
		return "Press Down mid-jump to turn back"
	default:
		return "Jump between the walls, dodge the blocks"
	}
}

// MenuModel is the Bubble Tea model for the variant picker menu.
type MenuModel struct {
	items       []MenuItem
	counts      map[string]int
	cursor      int
	width       int
	height      int
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	quitting    bool
	selected    *MenuItem // Set when user selects a variant
	openReplays bool      // True if user pressed Tab for replays
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	variants := walljump.Variants()
	items := make([]MenuItem, 0, len(variants))
	counts := make(map[string]int, len(variants))

	for _, v := range variants {
		items = append(items, MenuItem{
			GameID:  v.ID,
			Title:   v.Title,
			Summary: variantSummary(v),
		})
		if store != nil {
			if n, err := store.ReplayCount(v.ID); err == nil {
				counts[v.ID] = n
			}
		}
	}

	return MenuModel{
		items:     items,
		counts:    counts,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionReplays:
		m.openReplays = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("W A L L   J U M P"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a mode", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-20s", cursor, item.Title)
		if n := m.counts[item.GameID]; n > 0 {
			line += fmt.Sprintf(" (%d replays)", n)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render(m.items[m.cursor].Summary), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Replays  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsReplays returns true if user requested the replay browser.
func (m MenuModel) WantsReplays() bool {
	return m.openReplays
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID       string
	Config       core.RuntimeConfig
	WantsReplays bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsReplays():
		result.WantsReplays = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
