package score

import (
	"fmt"

	"go.uber.org/zap"

	"baduk_core/internal/domain/game"
	"baduk_core/internal/errors"
	"baduk_core/internal/statuses"
)

// Engine computes the final score of a finished game under the selected
// rule set. The counting formulas are the only thing the rule sets
// disagree on, so each is a small pure function dispatched by kind.
type Engine struct {
	analyzer *Analyzer
	log      *zap.SugaredLogger
}

func NewEngine(log *zap.SugaredLogger) *Engine {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Engine{analyzer: NewAnalyzer(log), log: log}
}

func (e *Engine) Analyzer() *Analyzer {
	return e.analyzer
}

// Finalize scores the game. Resignation short-circuits counting: the
// non-resigning color wins regardless of the board. Otherwise the board
// is analyzed with the supplied dead stones (counted as captures for
// the opposing color), komi goes to White, and handicap compensation is
// applied per rule set. A tie after komi is reported as a draw.
func (e *Engine) Finalize(state game.GameState, dead map[game.Coord]bool, ruleSet game.RuleSet, komi float64, handicap int) (game.Score, error) {
	if !ruleSet.Valid() {
		return game.Score{}, fmt.Errorf("%w: %q", errors.ErrInvalidRuleSet, ruleSet)
	}

	if state.EndReason == statuses.EndReasonResignation {
		return game.Score{
			RuleSet:     ruleSet,
			Komi:        komi,
			Winner:      state.Winner,
			Resignation: true,
		}, nil
	}

	t := e.analyzer.Analyze(state.Board, dead)
	capturesBlack := state.CapturedByBlack + t.DeadWhite
	capturesWhite := state.CapturedByWhite + t.DeadBlack

	var black, white float64
	switch ruleSet {
	case game.RuleSetChinese:
		black = float64(t.BlackStones + t.BlackTerritory)
		white = float64(t.WhiteStones+t.WhiteTerritory) + handicapCompensation(ruleSet, handicap)
	case game.RuleSetJapanese:
		black = float64(t.BlackTerritory + capturesBlack)
		white = float64(t.WhiteTerritory + capturesWhite)
	case game.RuleSetAGA:
		black = float64(t.BlackTerritory + capturesBlack + state.PassesBlack)
		white = float64(t.WhiteTerritory+capturesWhite+state.PassesWhite) + handicapCompensation(ruleSet, handicap)
	}
	white += komi

	result := game.Score{
		RuleSet:        ruleSet,
		Komi:           komi,
		Black:          black,
		White:          white,
		BlackTerritory: t.BlackTerritory,
		WhiteTerritory: t.WhiteTerritory,
	}
	switch {
	case black > white:
		result.Winner = game.Black
		result.Margin = black - white
	case white > black:
		result.Winner = game.White
		result.Margin = white - black
	}

	e.log.Debugw("game scored",
		"game_id", state.ID, "rule_set", string(ruleSet),
		"black", black, "white", white, "winner", result.Winner.String())
	return result, nil
}

// handicapCompensation is the white-side make-up for pre-placed Black
// stones: one point per stone under Chinese area counting, one per
// stone beyond the first under AGA, nothing under Japanese rules.
func handicapCompensation(ruleSet game.RuleSet, handicap int) float64 {
	if handicap <= 0 {
		return 0
	}
	switch ruleSet {
	case game.RuleSetChinese:
		return float64(handicap)
	case game.RuleSetAGA:
		return float64(handicap - 1)
	}
	return 0
}
