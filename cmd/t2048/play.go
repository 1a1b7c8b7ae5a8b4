package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var flagFPS int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start an interactive game.

Controls:
  Arrows/WASD/HJKL - Move
  P                - Pause
  R                - New game (after a win or loss)
  ?                - Toggle full help
  Q/Esc/Ctrl+C     - Quit

Examples:
  t2048 play
  t2048 play --size 3 --win 256
  t2048 play --difficulty easy --seed 42
  t2048 play --config ./my-2048.yaml --log-file t2048.log`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 60, "Input polls per second")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	g := game.New(cfg, game.WithLogger(logger))
	return tui.Run(g, rc, logger)
}
