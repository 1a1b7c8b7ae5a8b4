package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/autoplay"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/game"
)

var (
	flagGames    int
	flagPolicy   string
	flagMaxMoves int
	flagBoards   bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Play headless games with a built-in policy",
	Long: `Play one or more games without a terminal UI and print a summary.

Game i uses seed+i, so a fixed --seed replays the same run.

Policies:
  priority - Down, Left, Right, Up: first move that changes the board
  random   - Uniform among moves that change the board
  greedy   - Most merges one move ahead

Examples:
  t2048 autoplay
  t2048 autoplay --games 100 --policy random --seed 7
  t2048 autoplay --size 3 --win 128 --boards`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runAutoplay,
}

func init() {
	autoplayCmd.Flags().IntVar(&flagGames, "games", 1, "Number of games to play")
	autoplayCmd.Flags().StringVar(&flagPolicy, "policy", "greedy", "Move policy: "+strings.Join(autoplay.PolicyNames, ", "))
	autoplayCmd.Flags().IntVar(&flagMaxMoves, "max-moves", 0, "Stop each game after this many moves (0 = no limit)")
	autoplayCmd.Flags().BoolVar(&flagBoards, "boards", false, "Print the final board of every game")
}

func runAutoplay(cmd *cobra.Command, args []string) error {
	if flagGames < 1 {
		return fmt.Errorf("--games must be at least 1, got %d", flagGames)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	out := cmd.OutOrStdout()
	var won, lost, stopped, best int
	for i := range flagGames {
		gameSeed := seed + int64(i)
		policy, policyErr := autoplay.NewPolicy(flagPolicy, gameSeed)
		if policyErr != nil {
			return policyErr
		}

		res, runErr := autoplay.Run(cmd.Context(), cfg, policy, gameSeed, flagMaxMoves, game.WithLogger(logger))
		if runErr != nil {
			return runErr
		}

		switch res.Status {
		case engine.Won:
			won++
		case engine.Lost:
			lost++
		default:
			stopped++
		}
		best = max(best, res.MaxTile)

		fmt.Fprintf(out, "game %-4d seed=%-20d %-7s moves=%-6d max=%d\n",
			i+1, res.Seed, res.Status, res.Moves, res.MaxTile)
		if flagBoards {
			fmt.Fprintln(out, res.Grid)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Policy: %s  Games: %d  Won: %d  Lost: %d  Stopped: %d  Best tile: %d\n",
		flagPolicy, flagGames, won, lost, stopped, best)
	logger.Info("autoplay finished", "games", flagGames, "won", won, "lost", lost, "best", best)
	return nil
}
