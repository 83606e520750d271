package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wall-jump/internal/core"
	"github.com/vovakirdan/wall-jump/internal/games/walljump"
	"github.com/vovakirdan/wall-jump/internal/platform/tui"
	"github.com/vovakirdan/wall-jump/internal/registry"
	"github.com/vovakirdan/wall-jump/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start Wall Jump in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Tab opens the replay browser. After a run you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Browse replays
  Q            - Quit

Examples:
  walljump menu
  walljump menu --fps 30
  walljump menu --db ./walljump.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open replay database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	logger := log.New(os.Stderr)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsReplays {
			if !browseReplays(store, cfg) {
				break
			}
			continue
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each run unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg, tui.Options{Logger: logger}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}

// browseReplays runs the replay browser until the user goes back to the
// menu. It returns false when the user quit instead.
func browseReplays(store *storage.Store, cfg core.RuntimeConfig) bool {
	if store == nil {
		fmt.Fprintln(os.Stderr, "Replays need a database; see --db.")
		return true
	}

	for {
		res, err := tui.RunReplayBrowser(store, cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return true
		}
		if res.WatchID == 0 {
			return res.Back
		}

		entry, err := store.ReplayByID(res.WatchID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading replay: %v\n", err)
			continue
		}
		r, err := walljump.DecodeReplay(entry.Data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding replay: %v\n", err)
			continue
		}
		if err := tui.RunReplay(r, cfg.ScreenW, cfg.ScreenH, cfg.TickRate); err != nil {
			fmt.Fprintf(os.Stderr, "Error playing replay: %v\n", err)
		}
	}
}
