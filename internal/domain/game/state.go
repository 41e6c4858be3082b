package game

import (
	"fmt"

	"github.com/google/uuid"

	"baduk_core/internal/errors"
	"baduk_core/internal/statuses"
)

// Config is the game-start configuration recognized by the engine.
type Config struct {
	BoardSize int
	RuleSet   RuleSet
	Komi      float64
	Handicap  int
}

// GameState is an immutable snapshot of a game. Applying a move never
// touches an existing state: the rules engine clones the state, edits
// the clone and hands it back, so concurrent searches can fan out from
// one snapshot without locks.
type GameState struct {
	ID         string
	Board      Board
	ToMove     Color
	MoveNumber int
	RuleSet    RuleSet
	Komi       float64
	Handicap   int

	// Stones removed from the board by each color's moves.
	CapturedByBlack int
	CapturedByWhite int

	// Pass counts feed the AGA pass-stone compensation.
	PassesBlack int
	PassesWhite int

	KoPoint Coord
	HasKo   bool

	Status    string
	EndReason string
	// Winner is set when the game ends by resignation.
	Winner Color

	// History[i] is the position hash after move i, with History[0]
	// holding the starting position (handicap stones included) so a
	// cycle back to the opening is caught by the superko check.
	History []uint64
	Moves   []Move
}

// NewGameState starts a game: empty board, optional handicap stones
// pre-placed, Black to move (White when two or more stones are given).
func NewGameState(cfg Config) (GameState, error) {
	if !cfg.RuleSet.Valid() {
		return GameState{}, fmt.Errorf("%w: %q", errors.ErrInvalidRuleSet, cfg.RuleSet)
	}
	if cfg.Handicap < 0 {
		return GameState{}, fmt.Errorf("%w: got %d stones", errors.ErrInvalidHandicap, cfg.Handicap)
	}

	board, err := NewBoard(cfg.BoardSize)
	if err != nil {
		return GameState{}, err
	}

	placements, err := HandicapPlacement(cfg.BoardSize, cfg.Handicap)
	if err != nil {
		return GameState{}, err
	}
	for _, c := range placements {
		if err := board.Place(c, Black); err != nil {
			return GameState{}, err
		}
	}

	toMove := Black
	if len(placements) > 0 {
		toMove = White
	}

	return GameState{
		ID:       uuid.NewString(),
		Board:    board,
		ToMove:   toMove,
		RuleSet:  cfg.RuleSet,
		Komi:     cfg.Komi,
		Handicap: cfg.Handicap,
		Status:   statuses.StatusInProgress,
		History:  []uint64{board.Hash()},
	}, nil
}

// Clone deep-copies the state. Slices get fresh backing arrays so a
// successor appending to its history can never bleed into a sibling.
func (s GameState) Clone() GameState {
	clone := s
	clone.Board = s.Board.Clone()
	clone.History = make([]uint64, len(s.History))
	copy(clone.History, s.History)
	clone.Moves = make([]Move, len(s.Moves))
	copy(clone.Moves, s.Moves)
	return clone
}

func (s GameState) InProgress() bool {
	return s.Status == statuses.StatusInProgress
}

func (s GameState) LastMove() (Move, bool) {
	if len(s.Moves) == 0 {
		return Move{}, false
	}
	return s.Moves[len(s.Moves)-1], true
}

// CapturedBy reports how many opposing stones the color has taken.
func (s GameState) CapturedBy(color Color) int {
	if color == Black {
		return s.CapturedByBlack
	}
	return s.CapturedByWhite
}

// PassesBy reports how many times the color has passed.
func (s GameState) PassesBy(color Color) int {
	if color == Black {
		return s.PassesBlack
	}
	return s.PassesWhite
}
