package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-extreme/internal/games/snakex"
	"github.com/vovakirdan/snake-extreme/internal/platform/tui"
	"github.com/vovakirdan/snake-extreme/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: snakex).

Controls:
  Arrows/WASD  - Steer
  Enter/Space  - Start a round
  P/Esc        - Pause, any key resumes
  X            - End the round
  Click        - Start and pause buttons
  B            - Back
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slow start, late hazards
  normal - Default pacing
  hard   - Fast start, early lightning
  fixed  - No speed-up, stays at the config's initial level

Examples:
  snakex play
  snakex play snakex_classic
  snakex play --difficulty hard
  snakex play --config ./my-snakex.yaml --log-file snakex.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	mode := string(snakex.VariantExtreme)
	if len(args) == 1 {
		mode = args[0]
	}

	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'snakex list' to see available modes", mode)
	}

	game, err := registry.Create(mode)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	player := openAudio(mode)
	defer player.Close()

	logger.Info("playing", "mode", mode, "fps", flagFPS, "seed", flagSeed)
	if _, err := tui.Run(game, runtimeConfig(), tui.Options{
		Store:  store,
		Audio:  player,
		Logger: logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
