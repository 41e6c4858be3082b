package main

import (
	"go.uber.org/zap"

	"baduk_core/internal/bootstrap"
	"baduk_core/internal/domain/game"
	rules "baduk_core/internal/usecase/game"
	"baduk_core/internal/usecase/score"
)

// Smoke driver: load the game-start configuration, play a short
// scripted opening, pass the game out, and log the score. Exists to
// exercise the bootstrap and logging wiring end to end.
func main() {
	logger := NewLogger()
	defer logger.Sync()

	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger.Warnw("no configuration file, using defaults", "error", err)
		cfg = &bootstrap.Config{
			BoardSize: 9,
			RuleSet:   string(game.RuleSetJapanese),
			Komi:      game.RuleSetJapanese.DefaultKomi(),
		}
	}

	state, err := game.NewGameState(cfg.GameConfig())
	if err != nil {
		logger.Fatalw("failed to start game", "error", err)
	}
	logger.Infow("game started",
		"game_id", state.ID, "board_size", cfg.BoardSize,
		"rule_set", cfg.RuleSet, "komi", cfg.Komi, "handicap", cfg.Handicap)

	engine := rules.NewEngine(logger)
	for _, c := range opening(cfg.BoardSize) {
		next, err := engine.Apply(state, game.PlaceMove(state.ToMove, c))
		if err != nil {
			logger.Fatalw("scripted move rejected", "coord", c.String(), "error", err)
		}
		state = next
	}

	for !engine.IsGameOver(state) {
		next, err := engine.Apply(state, game.PassMove(state.ToMove))
		if err != nil {
			logger.Fatalw("pass rejected", "error", err)
		}
		state = next
	}
	logger.Infow("game over", "game_id", state.ID, "reason", state.EndReason, "moves", state.MoveNumber)
	logger.Info("final position:\n" + state.Board.String())

	scorer := score.NewEngine(logger)
	result, err := scorer.Finalize(state, nil, game.RuleSet(cfg.RuleSet), cfg.Komi, cfg.Handicap)
	if err != nil {
		logger.Fatalw("failed to score game", "error", err)
	}
	logger.Infow("final score",
		"black", result.Black, "white", result.White,
		"winner", result.Winner.String(), "margin", result.Margin)
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

// opening is a handful of corner moves so the smoke game has stones and
// territory on the board; tiny boards just pass out.
func opening(size int) []game.Coord {
	if size < 7 {
		return nil
	}
	return []game.Coord{
		{Row: 2, Col: 2},
		{Row: size - 3, Col: size - 3},
		{Row: 2, Col: size - 3},
		{Row: size - 3, Col: 2},
	}
}
