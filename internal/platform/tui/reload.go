package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wall-jump/internal/config"
)

// ConfigReloadMsg carries a re-read config file.
type ConfigReloadMsg struct {
	Path   string
	Config config.WallJumpConfig
	Err    error
}

// waitForConfig blocks until the watcher reports a change, then loads
// the file. A closed watcher ends the wait with no message.
func waitForConfig(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			cfg, err := config.LoadFile(path)
			return ConfigReloadMsg{Path: path, Config: cfg, Err: err}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return ConfigReloadMsg{Path: w.Path(), Err: err}
		}
	}
}
