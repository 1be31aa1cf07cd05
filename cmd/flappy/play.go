package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var flagDemo bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/W - Start a round, then flap
  Ctrl+S     - Save a screenshot to ~/.flappy/screenshots
  Q/Ctrl+C   - Quit

A collision returns to the menu; press Space to play again.

Examples:
  flappy play
  flappy play --demo
  flappy play --config ./my-flappy.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDemo, "demo", false, "Let the autopilot play")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The alternate screen owns the terminal: log to a file or nowhere
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
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
		TickRate: cfg.TickRate,
		Seed:     flagSeed,
	}

	game, err := flappy.New(cfg, logger)
	if err != nil {
		return err
	}

	var g tui.Game = game
	if flagDemo {
		g = flappy.NewDemo(game)
	}

	logger.Info("starting", "demo", flagDemo, "tick_rate", rc.TickRate, "size", fmt.Sprintf("%dx%d", width, height))
	if err := tui.Run(g, rc, tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
