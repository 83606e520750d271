package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wall-jump/internal/core"
	"github.com/vovakirdan/wall-jump/internal/games/walljump"
	"github.com/vovakirdan/wall-jump/internal/storage"
)

var (
	flagSimRuns   int
	flagSimLimit  float64
	flagSimJitter float64
	flagSimSlack  float64
	flagSimWidth  float64
	flagSimHeight float64
	flagSimSave   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [variant]",
	Short: "Let the autopilot play headless runs",
	Long: `Play seeded runs with the built-in autopilot, without a terminal.

Frames are timed by a synthetic clock at --fps with optional jitter, so
the engine sees the same variable deltas a real frontend produces.
Each run stops at game over or after --limit seconds.

Examples:
  walljump simulate
  walljump simulate walljump_return --runs 10 --seed 1
  walljump simulate walljump_climb --jitter 0.3 --save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs")
	simulateCmd.Flags().Float64Var(&flagSimLimit, "limit", 300, "Stop a run after this many simulated seconds")
	simulateCmd.Flags().Float64Var(&flagSimJitter, "jitter", 0.2, "Frame time jitter as a fraction of the frame period")
	simulateCmd.Flags().Float64Var(&flagSimSlack, "slack", 0.05, "Autopilot reaction slack in seconds")
	simulateCmd.Flags().Float64Var(&flagSimWidth, "width", 400, "Viewport width in world units")
	simulateCmd.Flags().Float64Var(&flagSimHeight, "height", 600, "Viewport height in world units")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save finished runs as replays")
}

// simulation describes one headless run.
type simulation struct {
	variant  walljump.Variant
	seed     int64
	viewport walljump.Viewport
	fps      int
	jitter   float64
	limit    float64
	pilot    walljump.Autopilot
}

// simResult is the outcome of a headless run.
type simResult struct {
	state  walljump.State
	frames int
	replay walljump.Replay
	ended  bool // game over before the limit
}

// run plays the simulation to game over or the time limit.
func (sim simulation) run() simResult {
	game := walljump.New(sim.variant)
	game.SetViewport(sim.viewport)
	game.Reset(core.RuntimeConfig{TickRate: sim.fps, Seed: sim.seed})

	fps := sim.fps
	if fps <= 0 {
		fps = 60
	}
	period := time.Second / time.Duration(fps)
	rng := rand.New(rand.NewSource(sim.seed))
	clock := core.NewFrameClock()
	now := time.Unix(0, 0)

	var res simResult
	for {
		s := game.Snapshot()
		if s.GameOver || s.ElapsedTime >= sim.limit {
			break
		}

		in := core.NewInputFrame()
		for _, ev := range sim.pilot.Decide(s, game.Viewport(), game.Params()) {
			switch ev.Kind {
			case walljump.EventPrimary:
				in.Set(core.ActionJump)
			case walljump.EventSecondary:
				in.Set(core.ActionReturn)
			}
		}

		jitter := 1 + sim.jitter*(2*rng.Float64()-1)
		now = now.Add(time.Duration(float64(period) * jitter))
		game.Step(in, clock.Delta(now))
		res.frames++
	}

	res.state = game.Snapshot()
	res.replay, res.ended = game.TakeReplay()
	return res
}

func runSimulate(cmd *cobra.Command, args []string) {
	v := variantArg(args)
	if flagSimRuns < 1 {
		fmt.Fprintln(os.Stderr, "Error: --runs must be at least 1")
		os.Exit(1)
	}

	var store *storage.Store
	if flagSimSave {
		s, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
			os.Exit(1)
		}
		store = s
	}
	exitCode := 0
	defer func() {
		if store != nil {
			store.Close()
		}
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	}()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	seeds := rand.New(rand.NewSource(seed))

	fmt.Printf("%s, %d run(s), seed %d\n\n", v.Title, flagSimRuns, seed)
	fmt.Printf("  %-4s  %-20s  %-6s  %-8s  %s\n", "Run", "Seed", "Time", "Frames", "Result")
	fmt.Printf("  %-4s  %-20s  %-6s  %-8s  %s\n", "---", "----", "----", "------", "------")

	var total, best float64
	for i := 1; i <= flagSimRuns; i++ {
		sim := simulation{
			variant:  v,
			seed:     seeds.Int63(),
			viewport: walljump.Viewport{Width: flagSimWidth, Height: flagSimHeight},
			fps:      flagFPS,
			jitter:   flagSimJitter,
			limit:    flagSimLimit,
			pilot:    walljump.Autopilot{Slack: flagSimSlack},
		}
		res := sim.run()

		result := "survived"
		if res.ended {
			result = res.state.Cause.String()
		}
		fmt.Printf("  %-4d  %-20d  %-6s  %-8d  %s\n",
			i, sim.seed, walljump.FormatElapsed(res.state.ElapsedTime), res.frames, result)

		total += res.state.ElapsedTime
		best = max(best, res.state.ElapsedTime)

		if store != nil && res.ended {
			if err := saveSimulated(store, res.replay); err != nil {
				fmt.Fprintf(os.Stderr, "Error saving replay: %v\n", err)
				exitCode = 1
			}
		}
	}

	fmt.Println()
	fmt.Printf("Best: %s  Average: %s\n",
		walljump.FormatElapsed(best), walljump.FormatElapsed(total/float64(flagSimRuns)))
}

func saveSimulated(store *storage.Store, r walljump.Replay) error {
	data, err := r.Encode()
	if err != nil {
		return err
	}
	_, err = store.SaveReplay(storage.ReplayEntry{
		GameID:   r.Variant,
		Seed:     r.Seed,
		Frames:   len(r.Frames),
		Duration: r.Elapsed,
		Data:     data,
	})
	return err
}
