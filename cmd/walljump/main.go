// walljump is a terminal arcade game: bounce between two walls and dodge
// whatever slides down them for as long as you can.
//
// Usage:
//
//	walljump list               - List the variants
//	walljump play [variant]     - Play a variant (default: walljump)
//	walljump menu               - Pick a variant or watch replays interactively
//	walljump serve              - Start the SSH server for remote play
//	walljump replays [variant]  - List saved replays
//	walljump replay <id>        - Watch or verify a saved replay
//	walljump simulate [variant] - Let the autopilot play a headless run
//	walljump desktop [variant]  - Play in a window (ebiten build)
//	walljump config             - Print the effective config as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/walljump.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wall-jump/internal/config"
	"github.com/vovakirdan/wall-jump/internal/games/walljump"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "walljump",
	Short: "Wall Jump - dodge falling blocks between two walls",
	Long: `Wall Jump is a one-button arcade game for the terminal.

A square clings to one of two walls while blocks slide down them.
Jump to the other wall to dodge; survive as long as you can.

Available commands:
  list      - Show the variants
  play      - Play a variant directly
  menu      - Interactive variant picker and replay browser
  serve     - Start SSH server for remote play
  replays   - List saved replays
  replay    - Watch or verify a saved replay
  simulate  - Headless autopilot run
  desktop   - Windowed frontend
  config    - Print the effective config

Examples:
  walljump play
  walljump play walljump_return --difficulty hard
  walljump menu
  walljump serve --ssh :2222
  walljump simulate walljump_climb --seed 7`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagDifficulty != "" {
			if _, err := config.ParsePreset(flagDifficulty); err != nil {
				return err
			}
		}
		walljump.SetConfigPath(flagConfig)
		walljump.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/walljump.db", "Path to replay database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(desktopCmd)
	rootCmd.AddCommand(configCmd)
}

// variantArg resolves an optional variant argument, exiting on unknown IDs.
func variantArg(args []string) walljump.Variant {
	if len(args) == 0 {
		return walljump.Classic
	}
	v, ok := walljump.VariantByID(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'walljump list' to see available variants.")
		os.Exit(1)
	}
	return v
}
