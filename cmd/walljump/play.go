package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wall-jump/internal/config"
	"github.com/vovakirdan/wall-jump/internal/core"
	"github.com/vovakirdan/wall-jump/internal/platform/tui"
	"github.com/vovakirdan/wall-jump/internal/registry"
	"github.com/vovakirdan/wall-jump/internal/storage"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: walljump).

Controls:
  Space/Up/W, left click  - Jump to the other wall
  Down/S, right click     - Turn back mid-jump (walljump_return)
  P                       - Pause
  R                       - Restart (after game over)
  Esc/B                   - Leave (when paused or after game over)
  Ctrl+S                  - Save a text screenshot
  Q/Ctrl+C                - Quit

Difficulty options:
  easy   - Spawning starts slow and speeds up to max
  normal - Starts at 30% difficulty
  hard   - Starts at 70% difficulty
  fixed  - No progression

Every finished run is saved as a replay.

Examples:
  walljump play
  walljump play walljump_climb --difficulty easy
  walljump play --config ./my-walljump.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config on change (applies on the next run)")
}

func runPlay(cmd *cobra.Command, args []string) {
	v := variantArg(args)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(v.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts := tui.Options{Logger: log.New(os.Stderr)}
	if flagWatch {
		if flagConfig == "" {
			fmt.Fprintln(os.Stderr, "Error: --watch needs --config")
			os.Exit(1)
		}
		w, watchErr := config.NewWatcher(flagConfig)
		if watchErr != nil {
			fmt.Fprintf(os.Stderr, "Error watching config: %v\n", watchErr)
			os.Exit(1)
		}
		opts.Watcher = w
	}

	// Open replay storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open replay database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
