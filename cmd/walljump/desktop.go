package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wall-jump/internal/platform/desktop"
	"github.com/vovakirdan/wall-jump/internal/storage"
)

var (
	flagWindowW int
	flagWindowH int
)

var desktopCmd = &cobra.Command{
	Use:   "desktop [variant]",
	Short: "Play in a window",
	Long: `Play Wall Jump in a desktop window. Requires a build with -tags ebiten.

Controls:
  Space/Up/W, left click, tap  - Jump
  Down/S, right click          - Turn back mid-jump (walljump_return)
  P/Esc                        - Pause
  R                            - Restart
  C                            - Copy the survival time after game over
  Q                            - Quit

Examples:
  go run -tags ebiten ./cmd/walljump desktop
  walljump desktop walljump_climb --width 360 --height 720`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDesktop,
}

func init() {
	desktopCmd.Flags().IntVar(&flagWindowW, "width", 480, "Window width in pixels")
	desktopCmd.Flags().IntVar(&flagWindowH, "height", 640, "Window height in pixels")
}

func runDesktop(cmd *cobra.Command, args []string) {
	v := variantArg(args)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open replay database: %v\n", err)
		store = nil
	}

	runErr := desktop.Run(desktop.Options{
		Variant: v,
		Seed:    flagSeed,
		Width:   flagWindowW,
		Height:  flagWindowH,
		Store:   store,
		Logger:  log.New(os.Stderr),
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		if errors.Is(runErr, desktop.ErrNoDesktop) {
			fmt.Fprintln(os.Stderr, "Use 'walljump play' for the terminal version.")
		}
		os.Exit(1)
	}
}
