// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048                    - Play (same as t2048 play)
//	t2048 play               - Play interactively
//	t2048 autoplay           - Let a policy play headless games
//	t2048 config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Game config YAML (default: search ~/.t2048, ./configs)
//	--size <n>            - Board size override
//	--win <n>             - Winning tile override
//	--seed <value>        - RNG seed for reproducible games
//	--difficulty <name>   - Spawn preset: easy, normal, hard
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagSize       int
	flagWin        int
	flagSeed       int64
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 puzzle for the terminal. Slide the tiles on the
board; equal neighbours merge into their sum. Reach the winning tile
before the board fills up.

Available commands:
  play      - Play interactively (default)
  autoplay  - Watch a policy play headless games
  config    - Print the effective configuration

Examples:
  t2048
  t2048 --size 5 --win 4096
  t2048 play --difficulty hard
  t2048 autoplay --games 10 --policy greedy
  t2048 config --config ./my-2048.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.IntVar(&flagSize, "size", 0, "Board size (0 = from config)")
	pf.IntVar(&flagWin, "win", 0, "Winning tile value (0 = from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Input polls per second")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(configCmd)
}
