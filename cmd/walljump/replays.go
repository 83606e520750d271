package main

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wall-jump/internal/games/walljump"
	"github.com/vovakirdan/wall-jump/internal/platform/tui"
	"github.com/vovakirdan/wall-jump/internal/storage"
)

var (
	flagReplayLimit int
	flagClear       bool
	flagVerify      bool
	flagDelete      bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays [variant]",
	Short: "List saved replays",
	Long: `List the most recent replays, optionally for one variant.

Examples:
  walljump replays
  walljump replays walljump_climb --limit 5
  walljump replays walljump --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Watch or verify a saved replay",
	Long: `Play back a saved replay in the terminal.

Playback controls:
  Space/P  - Pause
  +/-      - Change speed
  Q/Esc    - Stop

With --verify the run is re-simulated headless and the recomputed
survival time is compared with the stored one.

Examples:
  walljump replay 12
  walljump replay 12 --verify
  walljump replay 12 --delete`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replaysCmd.Flags().IntVar(&flagReplayLimit, "limit", 20, "Number of replays to show")
	replaysCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the listed variant's replays (all when no variant)")
	replayCmd.Flags().BoolVar(&flagVerify, "verify", false, "Re-simulate and print the result instead of playing")
	replayCmd.Flags().BoolVar(&flagDelete, "delete", false, "Delete the replay")
}

func runReplays(cmd *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		gameID = variantArg(args).ID
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearReplays(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing replays: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Replays cleared.")
		return
	}

	entries, err := store.RecentReplays(gameID, flagReplayLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving replays: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Finish a run with 'walljump play' to record one.")
		return
	}

	fmt.Printf("  %-5s  %-16s  %-6s  %-7s  %s\n", "ID", "Variant", "Time", "Frames", "Date")
	fmt.Printf("  %-5s  %-16s  %-6s  %-7s  %s\n", "--", "-------", "----", "------", "----")
	for _, e := range entries {
		fmt.Printf("  %-5d  %-16s  %-6s  %-7d  %s\n",
			e.ID, e.GameID, walljump.FormatElapsed(e.Duration), e.Frames, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if total, err := store.ReplayCount(gameID); err == nil && total > len(entries) {
		fmt.Println()
		fmt.Printf("Showing %d of %d replays.\n", len(entries), total)
	}
}

func runReplay(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid replay id %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagDelete {
		if err := store.DeleteReplay(id); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting replay: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Replay %d deleted.\n", id)
		return
	}

	entry, err := store.ReplayByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading replay: %v\n", err)
		os.Exit(1)
	}
	r, err := walljump.DecodeReplay(entry.Data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding replay: %v\n", err)
		os.Exit(1)
	}

	if flagVerify {
		ok, err := verifyReplay(r)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error re-simulating replay: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			os.Exit(1)
		}
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	if err := tui.RunReplay(r, width, height, flagFPS); err != nil {
		fmt.Fprintf(os.Stderr, "Error playing replay: %v\n", err)
		os.Exit(1)
	}
}

// verifyReplay re-simulates r, prints the outcome and reports whether it
// matches what was recorded.
func verifyReplay(r walljump.Replay) (bool, error) {
	final, err := r.Run(nil)
	if err != nil {
		return false, err
	}

	fmt.Printf("Variant:  %s\n", r.Variant)
	fmt.Printf("Seed:     %d\n", r.Seed)
	fmt.Printf("Frames:   %d\n", len(r.Frames))
	fmt.Printf("Recorded: %s (%s)\n", walljump.FormatElapsed(r.Elapsed), r.Cause)
	fmt.Printf("Replayed: %s (%s)\n", walljump.FormatElapsed(final.ElapsedTime), final.Cause)

	ok := math.Abs(final.ElapsedTime-r.Elapsed) < 1e-9 && final.Cause.String() == r.Cause
	if ok {
		fmt.Println("Replay verified.")
	} else {
		fmt.Println("Replay diverged.")
	}
	return ok, nil
}
