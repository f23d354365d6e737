package main

import (
	"fmt"
	"os"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/internal/tui"
)

// PlayCmd runs the interactive game
type PlayCmd struct {
	LogFile string `default:"drawpoker.log" help:"File to write logs to while the TUI is running"`
}

func (cmd *PlayCmd) Run(globals *Globals) error {
	cfg, rules, err := globals.loadConfig()
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(cmd.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	logger := newLogger(logFile, cfg, "drawpoker")
	defer closeLogged(logFile, logger)

	seed := randutil.Resolve(globals.Seed)

	logger.Info("Starting session",
		"hand_size", rules.HandSize(),
		"play_hand_size", rules.PlayHandSize(),
		"redraws", rules.RedrawsAvailable(),
		"deck", rules.DeckSize(),
		"seed", seed)

	if err := tui.Run(game.NewSession(rules, game.WithSeed(seed), game.WithLogger(logger)), logger); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
