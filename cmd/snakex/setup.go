package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-extreme/internal/audio"
	"github.com/vovakirdan/snake-extreme/internal/config"
	"github.com/vovakirdan/snake-extreme/internal/core"
	"github.com/vovakirdan/snake-extreme/internal/games/snakex"
	"github.com/vovakirdan/snake-extreme/internal/storage"
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

// setup validates global flags, opens the log file and hands the settings
// to the game package.
func setup() error {
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
			Prefix:          "snakex",
		})
	}

	snakex.SetConfigPath(flagConfig)
	snakex.SetDifficultyPreset(flagDifficulty)
	snakex.SetLogger(logger)
	return nil
}

// teardown closes the log file.
func teardown() {
	if logFile != nil {
		//nolint:errcheck // Exiting anyway
		logFile.Close()
	}
}

// serverLogger returns the logger for long-running servers. Without a log
// file they log to stderr.
func serverLogger() *log.Logger {
	if logFile != nil {
		return logger
	}
	return log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Failure is reported and play goes on
// without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "err", err)
		return nil
	}
	return store
}

// openAudio opens the speaker for a mode. Failure is reported and play goes
// on silently.
func openAudio(mode string) *audio.Player {
	if !flagSound {
		return nil
	}
	cfg := snakex.LoadConfig(snakex.Variant(mode))
	player, err := audio.NewPlayer(cfg.Audio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger.Warn("audio disabled", "err", err)
		return nil
	}
	return player
}
